package commands

import (
	"context"
	"log/slog"

	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrNoStripeCustomer = errs.New("owner has no billing account")
	ErrCheckoutFailed   = errs.New("checkout session failed")
	ErrWebhookInvalid   = errs.New("invalid webhook payload")
)

const (
	eventCheckoutCompleted   = "checkout.session.completed"
	eventSubscriptionUpdated = "customer.subscription.updated"
	eventSubscriptionDeleted = "customer.subscription.deleted"
)

type BillingCommands interface {
	CreateCheckoutSession(ctx context.Context, ownerID uuid.UUID) (string, error)
	CreatePortalSession(ctx context.Context, ownerID uuid.UUID) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type billingCommandsImpl struct {
	gateway   BillingGateway
	ownerRepo OwnerRepository
	readStore queries.OwnerReadStore
	clock     clock.Clock
}

func NewBillingCommands(
	gateway BillingGateway,
	ownerRepo OwnerRepository,
	readStore queries.OwnerReadStore,
	clock clock.Clock,
) BillingCommands {
	return &billingCommandsImpl{
		gateway:   gateway,
		ownerRepo: ownerRepo,
		readStore: readStore,
		clock:     clock,
	}
}

func (b *billingCommandsImpl) CreateCheckoutSession(ctx context.Context, ownerID uuid.UUID) (string, error) {
	view, err := b.readStore.FindByID(ctx, ownerID, monthKeyAt(b.clock))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrOwnerNotFound
		}
		return "", err
	}

	url, err := b.gateway.CreateCheckoutSession(ownerID, view.Email, view.StripeCustomerID)
	if err != nil {
		return "", errs.Mark(err, ErrCheckoutFailed)
	}
	return url, nil
}

func (b *billingCommandsImpl) CreatePortalSession(ctx context.Context, ownerID uuid.UUID) (string, error) {
	view, err := b.readStore.FindByID(ctx, ownerID, monthKeyAt(b.clock))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrOwnerNotFound
		}
		return "", err
	}
	if view.StripeCustomerID == nil {
		return "", ErrNoStripeCustomer
	}

	url, err := b.gateway.CreatePortalSession(*view.StripeCustomerID)
	if err != nil {
		return "", errs.Mark(err, ErrCheckoutFailed)
	}
	return url, nil
}

// HandleWebhook applies subscription lifecycle events to the owner's tier.
// Unknown event types are acknowledged and skipped so the provider does not
// retry them forever.
func (b *billingCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := b.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return errs.Mark(err, ErrWebhookInvalid)
	}

	switch event.Type {
	case eventCheckoutCompleted:
		return b.handleCheckoutCompleted(ctx, event)
	case eventSubscriptionUpdated:
		return b.handleSubscriptionUpdated(ctx, event)
	case eventSubscriptionDeleted:
		return b.handleSubscriptionDeleted(ctx, event)
	default:
		slog.Debug("ignoring webhook event", "type", event.Type)
		return nil
	}
}

func (b *billingCommandsImpl) handleCheckoutCompleted(ctx context.Context, event *BillingEvent) error {
	ownerID, err := uuid.Parse(event.ClientReferenceID)
	if err != nil {
		return errs.Mark(err, ErrWebhookInvalid)
	}

	if event.CustomerID != "" {
		if err := b.ownerRepo.SetStripeCustomerID(ctx, ownerID, event.CustomerID); err != nil {
			return err
		}
	}
	return b.ownerRepo.UpdateTierByID(ctx, ownerID, tier.Premium)
}

func (b *billingCommandsImpl) handleSubscriptionUpdated(ctx context.Context, event *BillingEvent) error {
	next := tier.Free
	switch event.SubscriptionStatus {
	case "active", "trialing":
		next = tier.Premium
	}
	return b.updateTierByCustomer(ctx, event, next)
}

func (b *billingCommandsImpl) handleSubscriptionDeleted(ctx context.Context, event *BillingEvent) error {
	return b.updateTierByCustomer(ctx, event, tier.Free)
}

func (b *billingCommandsImpl) updateTierByCustomer(ctx context.Context, event *BillingEvent, next tier.Tier) error {
	if event.CustomerID == "" {
		return errs.Mark(errs.New("webhook event missing customer id"), ErrWebhookInvalid)
	}

	err := b.ownerRepo.UpdateTierByStripeCustomer(ctx, event.CustomerID, next)
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		// Customer created outside this system; nothing to update.
		slog.Warn("webhook for unknown stripe customer", "customer_id", event.CustomerID, "type", event.Type)
		return nil
	}
	return err
}
