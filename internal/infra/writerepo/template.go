package writerepo

import (
	"context"
	"errors"
	"time"

	"lushquote/internal/domain/template"
	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/infra/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TemplateRepository struct {
	db infra.DBTX
}

func NewTemplateRepository(db infra.DBTX) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create runs inside the template-limit transaction; callers lock the owner
// row first so the count-then-insert pair cannot race.
func (r *TemplateRepository) Create(ctx context.Context, tx infra.DBTX, t *template.Template) error {
	services, err := converter.ServicesToJSON(t.Services())
	if err != nil {
		return infra.WrapRepoErr("failed to encode services", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO templates (
			id, owner_id, business_name, description, slug, services,
			primary_color, footer_enabled, footer_text,
			request_date_enabled, request_date_optional,
			request_time_enabled, request_time_optional, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		t.ID(), t.OwnerID(), t.BusinessName(), t.Description(), t.Slug().Value(), services,
		t.Branding().PrimaryColor, t.FooterEnabled(), t.FooterText(),
		t.RequestDateEnabled(), t.RequestDateOptional(),
		t.RequestTimeEnabled(), t.RequestTimeOptional(), t.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create template", err, classify(err))
	}
	return nil
}

func (r *TemplateRepository) CountByOwner(ctx context.Context, tx infra.DBTX, ownerID uuid.UUID) (int, error) {
	var count int
	err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM templates WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count templates", err)
	}
	return count, nil
}

func (r *TemplateRepository) Update(ctx context.Context, tx infra.DBTX, t *template.Template) error {
	services, err := converter.ServicesToJSON(t.Services())
	if err != nil {
		return infra.WrapRepoErr("failed to encode services", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE templates SET
			business_name = $2, description = $3, slug = $4, services = $5,
			primary_color = $6, footer_enabled = $7, footer_text = $8,
			request_date_enabled = $9, request_date_optional = $10,
			request_time_enabled = $11, request_time_optional = $12,
			is_active = $13, updated_at = now()
		WHERE id = $1`,
		t.ID(), t.BusinessName(), t.Description(), t.Slug().Value(), services,
		t.Branding().PrimaryColor, t.FooterEnabled(), t.FooterText(),
		t.RequestDateEnabled(), t.RequestDateOptional(),
		t.RequestTimeEnabled(), t.RequestTimeOptional(), t.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update template", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the template and, through ON DELETE CASCADE, its
// submissions. Owner-scoped so one owner cannot delete another's template.
func (r *TemplateRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM templates WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("template not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindDomainByID rehydrates the aggregate for an update flow.
func (r *TemplateRepository) FindDomainByID(ctx context.Context, id uuid.UUID) (*template.Template, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, business_name, description, slug, services,
		       primary_color, footer_enabled, footer_text,
		       request_date_enabled, request_date_optional,
		       request_time_enabled, request_time_optional,
		       is_active, created_at, updated_at
		FROM templates WHERE id = $1`, id)

	tmpl, _, err := scanDomainTemplate(row, false)
	return tmpl, err
}

// FindDomainBySlug rehydrates an active template for the public submission
// flow, along with its owner's tier for the monthly gate. Runs on the
// submission transaction so the tier read and the counter bump see one
// consistent snapshot.
func (r *TemplateRepository) FindDomainBySlug(ctx context.Context, tx infra.DBTX, slug string) (*template.Template, tier.Tier, error) {
	row := tx.QueryRow(ctx, `
		SELECT t.id, t.owner_id, t.business_name, t.description, t.slug, t.services,
		       t.primary_color, t.footer_enabled, t.footer_text,
		       t.request_date_enabled, t.request_date_optional,
		       t.request_time_enabled, t.request_time_optional,
		       t.is_active, t.created_at, t.updated_at,
		       o.subscription_tier
		FROM templates t
		JOIN owners o ON o.id = t.owner_id
		WHERE t.slug = $1 AND t.is_active`, slug)

	return scanDomainTemplate(row, true)
}

func scanDomainTemplate(row pgx.Row, withTier bool) (*template.Template, tier.Tier, error) {
	var (
		id, ownerID               uuid.UUID
		businessName, description string
		rawSlug                   string
		rawServices               []byte
		primaryColor              string
		footerEnabled             bool
		footerText                string
		dateEnabled, dateOptional bool
		timeEnabled, timeOptional bool
		isActive                  bool
		createdAt, updatedAt      time.Time
		rawTier                   string
	)

	dest := []any{
		&id, &ownerID, &businessName, &description, &rawSlug, &rawServices,
		&primaryColor, &footerEnabled, &footerText,
		&dateEnabled, &dateOptional, &timeEnabled, &timeOptional,
		&isActive, &createdAt, &updatedAt,
	}
	if withTier {
		dest = append(dest, &rawTier)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("template not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to load template", err)
	}

	services, err := converter.DomainServicesFromJSON(rawServices)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to decode template services", err)
	}
	slug, err := template.NewSlug(rawSlug)
	if err != nil {
		return nil, "", infra.WrapRepoErr("stored slug failed validation", err)
	}

	tmpl := template.Reconstruct(
		id, ownerID, businessName, description, slug, services,
		template.NewBranding(primaryColor), footerEnabled, footerText,
		dateEnabled, dateOptional, timeEnabled, timeOptional,
		isActive, createdAt, updatedAt,
	)
	return tmpl, tier.Resolve(rawTier), nil
}
