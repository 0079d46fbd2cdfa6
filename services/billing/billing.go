package billing

import (
	"encoding/json"
	"fmt"

	"flowdesk/config"
	"flowdesk/models"
	"flowdesk/services/user"
	"flowdesk/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// BillingService manages Stripe subscriptions and keeps the user's plan in
// sync with Stripe's view of the world.
type BillingService interface {
	Subscribe(userID string) (*models.SubscriptionStatus, error)
	Cancel(userID string) error
	HandleWebhook(payload []byte, signature string) error
	Status(userID string) (*models.SubscriptionStatus, error)
}

// DefaultBillingService is the production implementation.
type DefaultBillingService struct {
	Users user.UserService
}

// Subscribe creates a Stripe customer for the user if needed, starts a Pro
// subscription, and upgrades the plan.
func (s *DefaultBillingService) Subscribe(userID string) (*models.SubscriptionStatus, error) {
	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Plan == models.PlanPro {
		return nil, fmt.Errorf("user %s is already subscribed", userID)
	}

	stripeID := u.StripeID
	if stripeID == "" {
		cust, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(u.Email),
			Name:  stripe.String(u.Name),
			Metadata: map[string]string{
				"userId":    u.ID,
				"companyId": u.CompanyID,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create stripe customer: %w", err)
		}
		stripeID = cust.ID
	}

	sub, err := subscription.New(&stripe.SubscriptionParams{
		Customer: stripe.String(stripeID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(config.AppConfig.StripeProPriceID)},
		},
		Metadata: map[string]string{"userId": u.ID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe subscription: %w", err)
	}

	if err := s.Users.SetPlan(u.ID, models.PlanPro, stripeID, sub.ID); err != nil {
		return nil, err
	}
	return &models.SubscriptionStatus{Plan: models.PlanPro, SubscriptionID: sub.ID}, nil
}

// Cancel ends the user's subscription at Stripe and downgrades the plan.
func (s *DefaultBillingService) Cancel(userID string) error {
	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return err
	}
	if u.SubID == "" {
		return fmt.Errorf("user %s has no active subscription", userID)
	}

	if _, err := subscription.Cancel(u.SubID, nil); err != nil {
		return fmt.Errorf("failed to cancel stripe subscription: %w", err)
	}
	return s.Users.SetPlan(u.ID, models.PlanFree, u.StripeID, "")
}

// HandleWebhook verifies the Stripe signature and applies subscription state
// changes. Signature verification is the auth on this path.
func (s *DefaultBillingService) HandleWebhook(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		return fmt.Errorf("invalid webhook signature: %w", err)
	}

	logger := utils.GetLogger()
	logger.Info("stripe event received",
		zap.String("eventId", event.ID), zap.String("type", string(event.Type)))

	switch event.Type {
	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("invalid subscription payload: %w", err)
		}
		userID := sub.Metadata["userId"]
		if userID == "" {
			logger.Warn("stripe subscription missing userId metadata", zap.String("subId", sub.ID))
			return nil
		}
		customerID := ""
		if sub.Customer != nil {
			customerID = sub.Customer.ID
		}
		return s.Users.SetPlan(userID, models.PlanFree, customerID, "")

	case "customer.subscription.created", "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("invalid subscription payload: %w", err)
		}
		if sub.Status != stripe.SubscriptionStatusActive && sub.Status != stripe.SubscriptionStatusTrialing {
			return nil
		}
		userID := sub.Metadata["userId"]
		if userID == "" {
			logger.Warn("stripe subscription missing userId metadata", zap.String("subId", sub.ID))
			return nil
		}
		customerID := ""
		if sub.Customer != nil {
			customerID = sub.Customer.ID
		}
		return s.Users.SetPlan(userID, models.PlanPro, customerID, sub.ID)
	}

	return nil
}

// Status reports the user's current plan.
func (s *DefaultBillingService) Status(userID string) (*models.SubscriptionStatus, error) {
	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return &models.SubscriptionStatus{Plan: u.Plan, SubscriptionID: u.SubID}, nil
}
