package queries

import (
	"context"

	"lushquote/internal/infra"
	"lushquote/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSubmissionNotFound = errs.New("submission not found")

type SubmissionQueries interface {
	GetByID(ctx context.Context, ownerID, submissionID uuid.UUID) (*SubmissionView, error)
	List(ctx context.Context, ownerID uuid.UUID, filter SubmissionListFilter) ([]*SubmissionListItem, error)
}

type SubmissionReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*SubmissionView, error)
	List(ctx context.Context, ownerID uuid.UUID, filter SubmissionListFilter) ([]*SubmissionListItem, error)
	CountsByStatus(ctx context.Context, ownerID uuid.UUID) (map[string]int, error)
}

type submissionQueriesImpl struct {
	readStore SubmissionReadStore
}

func NewSubmissionQueries(readStore SubmissionReadStore) SubmissionQueries {
	return &submissionQueriesImpl{readStore: readStore}
}

func (q *submissionQueriesImpl) GetByID(ctx context.Context, ownerID, submissionID uuid.UUID) (*SubmissionView, error) {
	view, err := q.readStore.FindByID(ctx, ownerID, submissionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *submissionQueriesImpl) List(ctx context.Context, ownerID uuid.UUID, filter SubmissionListFilter) ([]*SubmissionListItem, error) {
	return q.readStore.List(ctx, ownerID, filter)
}
