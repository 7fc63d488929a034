package writerepo

import (
	"context"
	"errors"

	"lushquote/internal/domain/submission"
	"lushquote/internal/infra"
	"lushquote/internal/infra/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SubmissionRepository struct {
	db infra.DBTX
}

func NewSubmissionRepository(db infra.DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, tx infra.DBTX, s *submission.Submission) error {
	lineItems, err := converter.LineItemsToJSON(s.LineItems())
	if err != nil {
		return infra.WrapRepoErr("failed to encode line items", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO submissions (
			id, template_id, customer_name, customer_email, customer_phone,
			customer_notes, line_items, estimated_total_cents,
			requested_date, requested_time, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID(), s.TemplateID(),
		s.Contact().Name, s.Contact().Email, s.Contact().Phone, s.Contact().Notes,
		lineItems, s.EstimatedTotal().Cents(),
		s.RequestedDate(), s.RequestedTime(), string(s.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create submission", err, classify(err))
	}
	return nil
}

// FindStatusForUpdate locks the row so a concurrent status change cannot
// interleave with the transition check. Owner-scoped through the template.
func (r *SubmissionRepository) FindStatusForUpdate(ctx context.Context, tx infra.DBTX, ownerID, id uuid.UUID) (submission.Status, error) {
	var raw string
	err := tx.QueryRow(ctx, `
		SELECT s.status
		FROM submissions s
		JOIN templates t ON t.id = s.template_id
		WHERE s.id = $1 AND t.owner_id = $2
		FOR UPDATE OF s`, id, ownerID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("submission not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to lock submission", err)
	}
	return submission.Status(raw), nil
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status submission.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE submissions SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update submission status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("submission not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM submissions s
		USING templates t
		WHERE s.id = $1 AND t.id = s.template_id AND t.owner_id = $2`,
		id, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete submission", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("submission not found", nil, infra.KindNotFound)
	}
	return nil
}
