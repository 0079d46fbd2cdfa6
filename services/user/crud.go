package user

import (
	"fmt"

	"flowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves a user with credential fields blanked.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	usr.PasswordHash = ""
	usr.TokenHash = ""
	return usr, nil
}

// UpdateWorkingHours replaces the user's weekly availability preferences.
// Full validation happens in the availability engine on read; only
// obviously-broken windows are rejected here.
func (s *DefaultUserService) UpdateWorkingHours(id string, wh models.WorkingHours) error {
	for day, cfg := range wh {
		if cfg.IsWorkingDay && cfg.StartHour >= cfg.EndHour {
			return fmt.Errorf("working hours for %s: start must be before end", day)
		}
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"workingHours": wh})
}

// UpdateFCMToken registers a device token for push reminders.
func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	for _, t := range usr.FCMTokens {
		if t == token {
			return nil
		}
	}
	usr.FCMTokens = append(usr.FCMTokens, token)
	return s.Repo.UpdateSetDocument(id, bson.M{"fcmTokens": usr.FCMTokens})
}

// Delete removes the account.
func (s *DefaultUserService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// SetPlan updates the subscription tier and Stripe references. An empty subID
// clears the stored subscription, which is what cancellation needs.
func (s *DefaultUserService) SetPlan(id string, plan models.Plan, stripeID, subID string) error {
	update := bson.M{"plan": plan, "subId": subID}
	if stripeID != "" {
		update["stripeId"] = stripeID
	}
	return s.Repo.UpdateSetDocument(id, update)
}
