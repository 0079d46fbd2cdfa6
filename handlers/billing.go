package handlers

import (
	"io"
	"net/http"

	"flowdesk/services/billing"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingHandler serves subscription endpoints plus the Stripe webhook.
type BillingHandler struct {
	BillingService billing.BillingService
}

// SubscribeHandler handles POST /billing/subscribe.
func (h *BillingHandler) SubscribeHandler(c *gin.Context) {
	status, err := h.BillingService.Subscribe(c.GetString("userID"))
	if err != nil {
		utils.GetLogger().Error("Subscription failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// CancelSubscriptionHandler handles POST /billing/cancel.
func (h *BillingHandler) CancelSubscriptionHandler(c *gin.Context) {
	if err := h.BillingService.Cancel(c.GetString("userID")); err != nil {
		utils.GetLogger().Error("Cancellation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription cancelled"})
}

// SubscriptionStatusHandler handles GET /billing/status.
func (h *BillingHandler) SubscriptionStatusHandler(c *gin.Context) {
	status, err := h.BillingService.Status(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// StripeWebhookHandler handles POST /billing/webhook. No JWT on this path;
// the Stripe signature is the auth.
func (h *BillingHandler) StripeWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing Stripe-Signature header"})
		return
	}

	if err := h.BillingService.HandleWebhook(payload, signature); err != nil {
		utils.GetLogger().Error("Webhook processing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
