package commands

import (
	"context"
	"log/slog"

	"lushquote/internal/domain/template"
	"lushquote/internal/domain/tier"
	reqdto "lushquote/internal/handler/dto/request"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTemplateNotFound     = errs.New("template not found")
	ErrTemplateLimitReached = errs.New("template limit reached")
	ErrSlugTaken            = errs.New("slug already in use")
	ErrTemplateValidation   = errs.New("template validation failed")
)

type TemplateCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req reqdto.TemplateRequest) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, templateID uuid.UUID, req reqdto.TemplateRequest) error
	Delete(ctx context.Context, ownerID, templateID uuid.UUID) error
}

type templateCommandsImpl struct {
	templateRepo TemplateRepository
	ownerRepo    OwnerRepository
	cache        TemplateCache
	db           *pgxpool.Pool
}

func NewTemplateCommands(
	templateRepo TemplateRepository,
	ownerRepo OwnerRepository,
	cache TemplateCache,
	db *pgxpool.Pool,
) TemplateCommands {
	return &templateCommandsImpl{
		templateRepo: templateRepo,
		ownerRepo:    ownerRepo,
		cache:        cache,
		db:           db,
	}
}

// Create enforces the free-tier template cap inside one transaction: the
// owner row lock serializes concurrent creations so the count-then-insert
// pair cannot race past the limit.
func (t *templateCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, req reqdto.TemplateRequest) (uuid.UUID, error) {
	created, err := shared.RunInTx(ctx, t.db, func(tx infra.DBTX) (*template.Template, error) {
		ownerTier, err := t.ownerRepo.FindTierForUpdate(ctx, tx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrOwnerNotFound
			}
			return nil, err
		}

		count, err := t.templateRepo.CountByOwner(ctx, tx, ownerID)
		if err != nil {
			return nil, err
		}
		if !tier.CanCreateTemplate(ownerTier, count) {
			return nil, ErrTemplateLimitReached
		}

		tmpl, err := template.New(ownerID, ownerTier, req.ToSpec())
		if err != nil {
			return nil, errs.Mark(err, ErrTemplateValidation)
		}

		if err := t.templateRepo.Create(ctx, tx, tmpl); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrSlugTaken
			}
			return nil, err
		}
		return tmpl, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	t.invalidate(ctx, created.Slug().Value())
	return created.ID(), nil
}

func (t *templateCommandsImpl) Update(ctx context.Context, ownerID, templateID uuid.UUID, req reqdto.TemplateRequest) error {
	tmpl, err := t.templateRepo.FindDomainByID(ctx, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	if tmpl.OwnerID() != ownerID {
		// Hide other owners' templates instead of acknowledging them.
		return ErrTemplateNotFound
	}
	oldSlug := tmpl.Slug().Value()

	_, err = shared.RunInTx(ctx, t.db, func(tx infra.DBTX) (struct{}, error) {
		var zero struct{}

		// Branding enforcement depends on the tier at save time.
		ownerTier, err := t.ownerRepo.FindTierForUpdate(ctx, tx, ownerID)
		if err != nil {
			return zero, err
		}

		if err := tmpl.ApplyUpdate(ownerTier, req.ToSpec()); err != nil {
			return zero, errs.Mark(err, ErrTemplateValidation)
		}

		if err := t.templateRepo.Update(ctx, tx, tmpl); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return zero, ErrSlugTaken
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, ErrTemplateNotFound
			}
			return zero, err
		}
		return zero, nil
	})
	if err != nil {
		return err
	}

	t.invalidate(ctx, oldSlug)
	if newSlug := tmpl.Slug().Value(); newSlug != oldSlug {
		t.invalidate(ctx, newSlug)
	}
	return nil
}

func (t *templateCommandsImpl) Delete(ctx context.Context, ownerID, templateID uuid.UUID) error {
	tmpl, err := t.templateRepo.FindDomainByID(ctx, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	if tmpl.OwnerID() != ownerID {
		return ErrTemplateNotFound
	}

	if err := t.templateRepo.Delete(ctx, ownerID, templateID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}

	t.invalidate(ctx, tmpl.Slug().Value())
	return nil
}

func (t *templateCommandsImpl) invalidate(ctx context.Context, slug string) {
	if err := t.cache.Invalidate(ctx, slug); err != nil {
		// The entry expires on its own TTL; a stale form is tolerable.
		slog.Warn("failed to invalidate template cache", "slug", slug, "error", err.Error())
	}
}
