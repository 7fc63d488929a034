package queries

import (
	"context"

	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"

	"github.com/google/uuid"
)

type DashboardQueries interface {
	GetStats(ctx context.Context, ownerID uuid.UUID) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	ownerRead      OwnerReadStore
	templateRead   TemplateReadStore
	submissionRead SubmissionReadStore
	clock          clock.Clock
}

func NewDashboardQueries(
	ownerRead OwnerReadStore,
	templateRead TemplateReadStore,
	submissionRead SubmissionReadStore,
	clock clock.Clock,
) DashboardQueries {
	return &dashboardQueriesImpl{
		ownerRead:      ownerRead,
		templateRead:   templateRead,
		submissionRead: submissionRead,
		clock:          clock,
	}
}

func (q *dashboardQueriesImpl) GetStats(ctx context.Context, ownerID uuid.UUID) (*DashboardStats, error) {
	owner, err := q.ownerRead.FindByID(ctx, ownerID, tier.MonthKey(q.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	templateCount, err := q.templateRead.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	byStatus, err := q.submissionRead.CountsByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, count := range byStatus {
		total += count
	}

	stats := &DashboardStats{
		TemplateCount:          templateCount,
		TotalSubmissions:       total,
		SubmissionsByStatus:    byStatus,
		MonthlySubmissionCount: owner.MonthlySubmissionCount,
	}
	if !tier.Resolve(owner.SubscriptionTier).IsPremium() {
		limit := tier.FreeMonthlySubmissionLimit
		stats.MonthlySubmissionLimit = &limit
	}
	return stats, nil
}
