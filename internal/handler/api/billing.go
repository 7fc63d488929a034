package api

import (
	"errors"
	"io"
	"net/http"

	"lushquote/internal/handler/httperr"
	"lushquote/internal/handler/middleware"
	"lushquote/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	cmds commands.BillingCommands
}

func NewBillingHandler(cmds commands.BillingCommands) *BillingHandler {
	return &BillingHandler{cmds: cmds}
}

// @Summary Start premium checkout
// @Description Create a subscription checkout session and return its URL
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	url, err := h.cmds.CreateCheckoutSession(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to start checkout", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// @Summary Open billing portal
// @Description Create a customer portal session for subscription management
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /billing/portal [post]
func (h *BillingHandler) CreatePortalSession(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	url, err := h.cmds.CreatePortalSession(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, commands.ErrNoStripeCustomer) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No billing account", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to open portal", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// @Summary Stripe webhook
// @Description Receive subscription lifecycle events from Stripe
// @Tags billing
// @Accept json
// @Success 200
// @Failure 400 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 1<<16))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read payload", nil)
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.cmds.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, commands.ErrWebhookInvalid) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook processing failed", nil)
		return
	}
	c.Status(http.StatusOK)
}
