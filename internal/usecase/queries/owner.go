package queries

import (
	"context"

	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"
	"lushquote/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOwnerNotFound = errs.New("owner not found")
	ErrOwnerInactive = errs.New("owner inactive")
)

type OwnerQueries interface {
	GetCurrentOwner(ctx context.Context, ownerID uuid.UUID) (*OwnerView, error)
}

type OwnerReadStore interface {
	FindByEmail(ctx context.Context, email string) (*OwnerAuthRecord, error)
	FindByID(ctx context.Context, id uuid.UUID, monthKey string) (*OwnerView, error)
	CurrentUsage(ctx context.Context, ownerID uuid.UUID, monthKey string) (int, error)
}

type ownerQueriesImpl struct {
	readStore OwnerReadStore
	clock     clock.Clock
}

func NewOwnerQueries(readStore OwnerReadStore, clock clock.Clock) OwnerQueries {
	return &ownerQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *ownerQueriesImpl) GetCurrentOwner(ctx context.Context, ownerID uuid.UUID) (*OwnerView, error) {
	view, err := q.readStore.FindByID(ctx, ownerID, tier.MonthKey(q.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, ErrOwnerInactive
	}

	applyMonthlyLimit(view)
	return view, nil
}

// applyMonthlyLimit fills the allowance field; premium owners have no cap
// and the field stays nil.
func applyMonthlyLimit(view *OwnerView) {
	if tier.Resolve(view.SubscriptionTier).IsPremium() {
		return
	}
	limit := tier.FreeMonthlySubmissionLimit
	view.MonthlySubmissionLimit = &limit
}
