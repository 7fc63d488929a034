package readstore

import (
	"context"
	"errors"

	"lushquote/internal/infra"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OwnerReadStore struct {
	db infra.DBTX
}

func NewOwnerReadStore(db infra.DBTX) *OwnerReadStore {
	return &OwnerReadStore{db: db}
}

func (r *OwnerReadStore) FindByEmail(ctx context.Context, email string) (*queries.OwnerAuthRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, display_name, subscription_tier,
		       default_color, stripe_customer_id, is_active, created_at
		FROM owners
		WHERE email = $1`, email)

	var record queries.OwnerAuthRecord
	err := row.Scan(
		&record.View.ID,
		&record.View.Email,
		&record.PasswordHash,
		&record.View.DisplayName,
		&record.View.SubscriptionTier,
		&record.View.DefaultColor,
		&record.View.StripeCustomerID,
		&record.View.IsActive,
		&record.View.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find owner by email", err)
	}
	return &record, nil
}

// FindByID includes the owner's submission count for the given month key so
// profile responses can render the allowance without a second round trip.
// Free owners read the gating counter; premium owners never increment it,
// so their monthly volume is counted from the submissions table instead.
func (r *OwnerReadStore) FindByID(ctx context.Context, id uuid.UUID, monthKey string) (*queries.OwnerView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT o.id, o.email, o.display_name, o.subscription_tier,
		       o.default_color, o.stripe_customer_id, o.is_active, o.created_at,
		       CASE WHEN o.subscription_tier = 'premium' THEN (
		           SELECT COUNT(*)
		           FROM submissions s
		           JOIN templates t ON t.id = s.template_id
		           WHERE t.owner_id = o.id
		             AND to_char(s.created_at AT TIME ZONE 'UTC', 'YYYY-MM') = $2
		       ) ELSE COALESCE(u.count, 0) END
		FROM owners o
		LEFT JOIN usage_counters u ON u.owner_id = o.id AND u.month = $2
		WHERE o.id = $1`, id, monthKey)

	var view queries.OwnerView
	err := row.Scan(
		&view.ID,
		&view.Email,
		&view.DisplayName,
		&view.SubscriptionTier,
		&view.DefaultColor,
		&view.StripeCustomerID,
		&view.IsActive,
		&view.CreatedAt,
		&view.MonthlySubmissionCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find owner by id", err)
	}
	return &view, nil
}

// CurrentUsage returns the submission count for the month, zero when no
// counter row exists yet.
func (r *OwnerReadStore) CurrentUsage(ctx context.Context, ownerID uuid.UUID, monthKey string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE((SELECT count FROM usage_counters WHERE owner_id = $1 AND month = $2), 0)`,
		ownerID, monthKey,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read usage counter", err)
	}
	return count, nil
}
