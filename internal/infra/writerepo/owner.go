package writerepo

import (
	"context"
	"errors"

	"lushquote/internal/domain/owner"
	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OwnerRepository struct {
	db infra.DBTX
}

func NewOwnerRepository(db infra.DBTX) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Create(ctx context.Context, o *owner.Owner) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO owners (id, email, password_hash, display_name, subscription_tier, default_color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID(), o.Email().Value(), o.PasswordHash(), o.DisplayName(),
		string(o.SubscriptionTier()), o.DefaultColor(), o.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create owner", err, classify(err))
	}
	return nil
}

func (r *OwnerRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE owners SET last_login = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

// FindTierForUpdate locks the owner row for the duration of the transaction
// so concurrent writes gated on the tier serialize per owner.
func (r *OwnerRepository) FindTierForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (tier.Tier, error) {
	var raw string
	err := tx.QueryRow(ctx,
		`SELECT subscription_tier FROM owners WHERE id = $1 FOR UPDATE`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to lock owner", err)
	}
	return tier.Resolve(raw), nil
}

func (r *OwnerRepository) UpdateDefaultColor(ctx context.Context, id uuid.UUID, color string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE owners SET default_color = $2, updated_at = now() WHERE id = $1`, id, color)
	if err != nil {
		return infra.WrapRepoErr("failed to update default color", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OwnerRepository) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE owners SET stripe_customer_id = $2, updated_at = now() WHERE id = $1`, id, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to set stripe customer id", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OwnerRepository) UpdateTierByID(ctx context.Context, id uuid.UUID, t tier.Tier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE owners SET subscription_tier = $2, updated_at = now() WHERE id = $1`, id, string(t))
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription tier", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateTierByStripeCustomer applies webhook-driven tier changes where only
// the Stripe customer id is known.
func (r *OwnerRepository) UpdateTierByStripeCustomer(ctx context.Context, customerID string, t tier.Tier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE owners SET subscription_tier = $2, updated_at = now() WHERE stripe_customer_id = $1`,
		customerID, string(t))
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription tier by customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner not found for stripe customer", nil, infra.KindNotFound)
	}
	return nil
}
