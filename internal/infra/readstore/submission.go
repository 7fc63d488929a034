package readstore

import (
	"context"
	"errors"

	"lushquote/internal/infra"
	"lushquote/internal/infra/converter"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SubmissionReadStore struct {
	db infra.DBTX
}

func NewSubmissionReadStore(db infra.DBTX) *SubmissionReadStore {
	return &SubmissionReadStore{db: db}
}

// FindByID is owner-scoped through the template join; another owner's
// submission id reads as not found.
func (r *SubmissionReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.SubmissionView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT s.id, s.template_id, t.business_name,
		       s.customer_name, s.customer_email, s.customer_phone, s.customer_notes,
		       s.line_items, s.estimated_total_cents,
		       s.requested_date, s.requested_time,
		       s.status, s.created_at, s.updated_at
		FROM submissions s
		JOIN templates t ON t.id = s.template_id
		WHERE s.id = $1 AND t.owner_id = $2`, id, ownerID)

	var (
		view         queries.SubmissionView
		rawLineItems []byte
	)
	err := row.Scan(
		&view.ID,
		&view.TemplateID,
		&view.TemplateName,
		&view.CustomerName,
		&view.CustomerEmail,
		&view.CustomerPhone,
		&view.CustomerNotes,
		&rawLineItems,
		&view.EstimatedTotalCents,
		&view.RequestedDate,
		&view.RequestedTime,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("submission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find submission by id", err)
	}

	view.LineItems, err = converter.LineItemViewsFromJSON(rawLineItems)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode submission line items", err)
	}
	return &view, nil
}

func (r *SubmissionReadStore) List(ctx context.Context, ownerID uuid.UUID, filter queries.SubmissionListFilter) ([]*queries.SubmissionListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.template_id, t.business_name,
		       s.customer_name, s.customer_email,
		       s.estimated_total_cents, s.requested_date,
		       s.status, s.created_at
		FROM submissions s
		JOIN templates t ON t.id = s.template_id
		WHERE t.owner_id = $1
		  AND ($2::uuid IS NULL OR s.template_id = $2)
		  AND ($3::text IS NULL OR s.status = $3)
		ORDER BY s.created_at DESC`,
		ownerID, filter.TemplateID, filter.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list submissions", err)
	}
	defer rows.Close()

	var result []*queries.SubmissionListItem
	for rows.Next() {
		var item queries.SubmissionListItem
		err := rows.Scan(
			&item.ID,
			&item.TemplateID,
			&item.TemplateName,
			&item.CustomerName,
			&item.CustomerEmail,
			&item.EstimatedTotalCents,
			&item.RequestedDate,
			&item.Status,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan submission row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate submission rows", err)
	}
	return result, nil
}

// CountsByStatus feeds the dashboard; statuses with no submissions are
// simply absent from the map.
func (r *SubmissionReadStore) CountsByStatus(ctx context.Context, ownerID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.status, COUNT(*)
		FROM submissions s
		JOIN templates t ON t.id = s.template_id
		WHERE t.owner_id = $1
		GROUP BY s.status`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count submissions by status", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count row", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status count rows", err)
	}
	return counts, nil
}
