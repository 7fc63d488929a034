package billing

import (
	"encoding/json"

	"lushquote/internal/pkg/config"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	portalsession "github.com/stripe/stripe-go/v79/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeClient wraps the checkout, customer portal and webhook surfaces of
// the Stripe API used for premium subscriptions.
type StripeClient struct {
	cfg config.StripeConfig
}

func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	stripe.Key = cfg.SecretKey
	return &StripeClient{cfg: cfg}
}

// CreateCheckoutSession opens a subscription checkout for the premium
// price. The owner id rides along as the client reference so the webhook
// can attribute the resulting customer.
func (c *StripeClient) CreateCheckoutSession(ownerID uuid.UUID, email string, customerID *string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(c.cfg.PremiumPrice),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(c.cfg.SuccessURL),
		CancelURL:         stripe.String(c.cfg.CancelURL),
		ClientReferenceID: stripe.String(ownerID.String()),
	}
	if customerID != nil {
		params.Customer = stripe.String(*customerID)
	} else {
		params.CustomerEmail = stripe.String(email)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", errs.Wrap(err, "failed to create checkout session")
	}
	return sess.URL, nil
}

// CreatePortalSession opens the Stripe customer portal where a premium
// owner manages or cancels the subscription.
func (c *StripeClient) CreatePortalSession(customerID string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(c.cfg.PortalURL),
	}

	sess, err := portalsession.New(params)
	if err != nil {
		return "", errs.Wrap(err, "failed to create portal session")
	}
	return sess.URL, nil
}

// ParseWebhook verifies the signature and projects the event onto the
// provider-neutral shape the usecase layer consumes.
func (c *StripeClient) ParseWebhook(payload []byte, signature string) (*commands.BillingEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.cfg.WebhookSecret)
	if err != nil {
		return nil, errs.Wrap(err, "webhook signature verification failed")
	}

	out := &commands.BillingEvent{Type: string(event.Type)}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, errs.Wrap(err, "failed to decode checkout session event")
		}
		if sess.Customer != nil {
			out.CustomerID = sess.Customer.ID
		}
		out.ClientReferenceID = sess.ClientReferenceID

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, errs.Wrap(err, "failed to decode subscription event")
		}
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		out.SubscriptionStatus = string(sub.Status)
	}

	return out, nil
}
