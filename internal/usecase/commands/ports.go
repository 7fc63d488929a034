package commands

import (
	"context"

	"lushquote/internal/domain/owner"
	"lushquote/internal/domain/submission"
	"lushquote/internal/domain/template"
	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"

	"github.com/google/uuid"
)

// Write-side ports. Methods that must share a transaction take the
// transaction handle explicitly.

type OwnerRepository interface {
	Create(ctx context.Context, o *owner.Owner) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	FindTierForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (tier.Tier, error)
	UpdateDefaultColor(ctx context.Context, id uuid.UUID, color string) error
	SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
	UpdateTierByID(ctx context.Context, id uuid.UUID, t tier.Tier) error
	UpdateTierByStripeCustomer(ctx context.Context, customerID string, t tier.Tier) error
}

type TemplateRepository interface {
	Create(ctx context.Context, tx infra.DBTX, t *template.Template) error
	CountByOwner(ctx context.Context, tx infra.DBTX, ownerID uuid.UUID) (int, error)
	Update(ctx context.Context, tx infra.DBTX, t *template.Template) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindDomainByID(ctx context.Context, id uuid.UUID) (*template.Template, error)
	FindDomainBySlug(ctx context.Context, tx infra.DBTX, slug string) (*template.Template, tier.Tier, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, tx infra.DBTX, s *submission.Submission) error
	FindStatusForUpdate(ctx context.Context, tx infra.DBTX, ownerID, id uuid.UUID) (submission.Status, error)
	UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status submission.Status) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type UsageRepository interface {
	IncrementIfBelow(ctx context.Context, tx infra.DBTX, ownerID uuid.UUID, monthKey string, limit int) (bool, error)
}

// TemplateCache invalidation keeps the public form cache coherent after a
// template save or delete.
type TemplateCache interface {
	Invalidate(ctx context.Context, slug string) error
}

// BillingEvent is the provider-neutral projection of a billing webhook.
type BillingEvent struct {
	Type               string
	CustomerID         string
	ClientReferenceID  string
	SubscriptionStatus string
}

type BillingGateway interface {
	CreateCheckoutSession(ownerID uuid.UUID, email string, customerID *string) (string, error)
	CreatePortalSession(customerID string) (string, error)
	ParseWebhook(payload []byte, signature string) (*BillingEvent, error)
}

func monthKeyAt(c clock.Clock) string {
	return tier.MonthKey(c.Now())
}
