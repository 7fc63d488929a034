package commands

import (
	"context"

	"lushquote/internal/domain/submission"
	"lushquote/internal/domain/tier"
	reqdto "lushquote/internal/handler/dto/request"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/queries"
	"lushquote/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrQuoteFormNotFound      = errs.New("quote form not found")
	ErrSubmissionLimitReached = errs.New("monthly submission limit reached")
	ErrSubmissionValidation   = errs.New("submission validation failed")
	ErrSubmissionNotFound     = errs.New("submission not found")
	ErrInvalidStatusChange    = errs.New("invalid status change")
)

type SubmitQuoteResult struct {
	SubmissionID        uuid.UUID
	EstimatedTotalCents int64
}

type SubmissionCommands interface {
	SubmitQuote(ctx context.Context, slug string, req reqdto.SubmitQuoteRequest) (*SubmitQuoteResult, error)
	View(ctx context.Context, ownerID, submissionID uuid.UUID) (*queries.SubmissionView, error)
	UpdateStatus(ctx context.Context, ownerID, submissionID uuid.UUID, status string) error
	Delete(ctx context.Context, ownerID, submissionID uuid.UUID) error
}

type submissionCommandsImpl struct {
	submissionRepo SubmissionRepository
	templateRepo   TemplateRepository
	usageRepo      UsageRepository
	readStore      queries.SubmissionReadStore
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewSubmissionCommands(
	submissionRepo SubmissionRepository,
	templateRepo TemplateRepository,
	usageRepo UsageRepository,
	readStore queries.SubmissionReadStore,
	db *pgxpool.Pool,
	clock clock.Clock,
) SubmissionCommands {
	return &submissionCommandsImpl{
		submissionRepo: submissionRepo,
		templateRepo:   templateRepo,
		usageRepo:      usageRepo,
		readStore:      readStore,
		db:             db,
		clock:          clock,
	}
}

// SubmitQuote is the anonymous submission path. The tier read, the counter
// bump and the row insert share one transaction: a rejected attempt rolls
// back without consuming allowance, and concurrent submissions cannot
// overshoot the monthly cap.
func (s *submissionCommandsImpl) SubmitQuote(ctx context.Context, slug string, req reqdto.SubmitQuoteRequest) (*SubmitQuoteResult, error) {
	requestedDate, err := req.ParseRequestedDate()
	if err != nil {
		return nil, errs.Mark(err, ErrSubmissionValidation)
	}
	monthKey := monthKeyAt(s.clock)

	return shared.RunInTxWithRetry(ctx, s.db, 3, func(tx infra.DBTX) (*SubmitQuoteResult, error) {
		tmpl, ownerTier, err := s.templateRepo.FindDomainBySlug(ctx, tx, slug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrQuoteFormNotFound
			}
			return nil, err
		}

		sub, err := submission.New(tmpl, req.Contact(), req.Selections, requestedDate, req.RequestedTime)
		if err != nil {
			return nil, errs.Mark(err, ErrSubmissionValidation)
		}

		// Only free-tier submissions touch the bounded counter. Premium
		// volume is reported from the submissions table, so a later
		// downgrade does not inherit premium-era counts against the cap.
		if tier.ShouldCountSubmission(ownerTier) {
			accepted, err := s.usageRepo.IncrementIfBelow(ctx, tx, tmpl.OwnerID(), monthKey, tier.FreeMonthlySubmissionLimit)
			if err != nil {
				return nil, err
			}
			if !accepted {
				return nil, ErrSubmissionLimitReached
			}
		}

		if err := s.submissionRepo.Create(ctx, tx, sub); err != nil {
			return nil, err
		}

		return &SubmitQuoteResult{
			SubmissionID:        sub.ID(),
			EstimatedTotalCents: sub.EstimatedTotal().Cents(),
		}, nil
	})
}

// View returns the owner's detail view and applies the automatic
// new→viewed transition on first read.
func (s *submissionCommandsImpl) View(ctx context.Context, ownerID, submissionID uuid.UUID) (*queries.SubmissionView, error) {
	_, err := shared.RunInTx(ctx, s.db, func(tx infra.DBTX) (struct{}, error) {
		var zero struct{}

		current, err := s.submissionRepo.FindStatusForUpdate(ctx, tx, ownerID, submissionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, ErrSubmissionNotFound
			}
			return zero, err
		}

		if current != submission.StatusNew {
			return zero, nil
		}
		return zero, s.submissionRepo.UpdateStatus(ctx, tx, submissionID, submission.StatusViewed)
	})
	if err != nil {
		return nil, err
	}

	view, err := s.readStore.FindByID(ctx, ownerID, submissionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (s *submissionCommandsImpl) UpdateStatus(ctx context.Context, ownerID, submissionID uuid.UUID, status string) error {
	next := submission.Status(status)
	if !next.IsValid() {
		return ErrInvalidStatusChange
	}

	_, err := shared.RunInTx(ctx, s.db, func(tx infra.DBTX) (struct{}, error) {
		var zero struct{}

		current, err := s.submissionRepo.FindStatusForUpdate(ctx, tx, ownerID, submissionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, ErrSubmissionNotFound
			}
			return zero, err
		}

		if !current.CanTransitionTo(next) {
			return zero, ErrInvalidStatusChange
		}
		return zero, s.submissionRepo.UpdateStatus(ctx, tx, submissionID, next)
	})
	return err
}

func (s *submissionCommandsImpl) Delete(ctx context.Context, ownerID, submissionID uuid.UUID) error {
	if err := s.submissionRepo.Delete(ctx, ownerID, submissionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	return nil
}
