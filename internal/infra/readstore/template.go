package readstore

import (
	"context"
	"errors"
	"time"

	"lushquote/internal/infra"
	"lushquote/internal/infra/converter"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TemplateReadStore struct {
	db infra.DBTX
}

func NewTemplateReadStore(db infra.DBTX) *TemplateReadStore {
	return &TemplateReadStore{db: db}
}

const templateColumns = `
	id, owner_id, business_name, description, slug, services,
	primary_color, footer_enabled, footer_text,
	request_date_enabled, request_date_optional,
	request_time_enabled, request_time_optional,
	is_active, created_at, updated_at`

func (r *TemplateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TemplateView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+templateColumns+` FROM templates WHERE id = $1`, id)

	view, err := scanTemplateView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find template by id", err)
	}
	return view, nil
}

func (r *TemplateReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.TemplateView, error) {
	rows, err := r.db.Query(ctx, `SELECT`+templateColumns+` FROM templates WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list templates", err)
	}
	defer rows.Close()

	var result []*queries.TemplateView
	for rows.Next() {
		view, err := scanTemplateView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan template row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate template rows", err)
	}
	return result, nil
}

func (r *TemplateReadStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM templates WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count templates", err)
	}
	return count, nil
}

// FindPublicBySlug serves the anonymous quote form: active templates only,
// joined with the owner's tier so the caller can evaluate the submission gate.
func (r *TemplateReadStore) FindPublicBySlug(ctx context.Context, slug string) (*queries.PublicTemplateRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT t.id, t.business_name, t.description, t.slug, t.services,
		       t.primary_color, t.footer_enabled, t.footer_text,
		       t.request_date_enabled, t.request_date_optional,
		       t.request_time_enabled, t.request_time_optional,
		       t.owner_id, o.subscription_tier
		FROM templates t
		JOIN owners o ON o.id = t.owner_id
		WHERE t.slug = $1 AND t.is_active`, slug)

	var (
		record      queries.PublicTemplateRecord
		rawServices []byte
	)
	err := row.Scan(
		&record.View.TemplateID,
		&record.View.BusinessName,
		&record.View.Description,
		&record.View.Slug,
		&rawServices,
		&record.View.PrimaryColor,
		&record.View.FooterEnabled,
		&record.View.FooterText,
		&record.View.RequestDateEnabled,
		&record.View.RequestDateOptional,
		&record.View.RequestTimeEnabled,
		&record.View.RequestTimeOptional,
		&record.OwnerID,
		&record.OwnerTier,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find template by slug", err)
	}

	record.View.Services, err = converter.ServiceViewsFromJSON(rawServices)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode template services", err)
	}
	return &record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplateView(row rowScanner) (*queries.TemplateView, error) {
	var (
		view        queries.TemplateView
		rawServices []byte
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := row.Scan(
		&view.ID,
		&view.OwnerID,
		&view.BusinessName,
		&view.Description,
		&view.Slug,
		&rawServices,
		&view.PrimaryColor,
		&view.FooterEnabled,
		&view.FooterText,
		&view.RequestDateEnabled,
		&view.RequestDateOptional,
		&view.RequestTimeEnabled,
		&view.RequestTimeOptional,
		&view.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt
	view.Services, err = converter.ServiceViewsFromJSON(rawServices)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
