//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"
	"lushquote/internal/usecase/queries"
	"lushquote/tests/common/builder"
	queriesmock "lushquote/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardFixture struct {
	queries        queries.DashboardQueries
	ownerRead      *queriesmock.MockOwnerReadStore
	templateRead   *queriesmock.MockTemplateReadStore
	submissionRead *queriesmock.MockSubmissionReadStore
}

func newDashboardQueries(t *testing.T) dashboardFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	ownerRead := queriesmock.NewMockOwnerReadStore(ctrl)
	templateRead := queriesmock.NewMockTemplateReadStore(ctrl)
	submissionRead := queriesmock.NewMockSubmissionReadStore(ctrl)
	mockClock := clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	return dashboardFixture{
		queries:        queries.NewDashboardQueries(ownerRead, templateRead, submissionRead, mockClock),
		ownerRead:      ownerRead,
		templateRead:   templateRead,
		submissionRead: submissionRead,
	}
}

func TestGetStats(t *testing.T) {
	t.Run("aggregates counts for a free owner", func(t *testing.T) {
		f := newDashboardQueries(t)
		view := builder.NewOwnerBuilder().WithMonthlyCount(7).BuildView()

		f.ownerRead.EXPECT().FindByID(gomock.Any(), view.ID, "2025-06").Return(view, nil)
		f.templateRead.EXPECT().CountByOwner(gomock.Any(), view.ID).Return(1, nil)
		f.submissionRead.EXPECT().CountsByStatus(gomock.Any(), view.ID).Return(map[string]int{
			"new":       4,
			"viewed":    2,
			"completed": 1,
		}, nil)

		stats, err := f.queries.GetStats(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TemplateCount)
		assert.Equal(t, 7, stats.TotalSubmissions)
		assert.Equal(t, 7, stats.MonthlySubmissionCount)
		require.NotNil(t, stats.MonthlySubmissionLimit)
		assert.Equal(t, tier.FreeMonthlySubmissionLimit, *stats.MonthlySubmissionLimit)
	})

	t.Run("premium owner gets no limit", func(t *testing.T) {
		f := newDashboardQueries(t)
		view := builder.NewOwnerBuilder().AsPremium().BuildView()

		f.ownerRead.EXPECT().FindByID(gomock.Any(), view.ID, "2025-06").Return(view, nil)
		f.templateRead.EXPECT().CountByOwner(gomock.Any(), view.ID).Return(5, nil)
		f.submissionRead.EXPECT().CountsByStatus(gomock.Any(), view.ID).Return(map[string]int{}, nil)

		stats, err := f.queries.GetStats(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Nil(t, stats.MonthlySubmissionLimit)
		assert.Equal(t, 0, stats.TotalSubmissions)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newDashboardQueries(t)
		id := uuid.New()

		f.ownerRead.EXPECT().
			FindByID(gomock.Any(), id, "2025-06").
			Return(nil, infra.WrapRepoErr("owner not found", nil, infra.KindNotFound))

		_, err := f.queries.GetStats(context.Background(), id)
		assert.ErrorIs(t, err, queries.ErrOwnerNotFound)
	})
}
