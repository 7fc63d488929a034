package queries

import (
	"context"
	"log/slog"

	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"
	"lushquote/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTemplateNotFound = errs.New("template not found")

type TemplateQueries interface {
	GetByID(ctx context.Context, ownerID, templateID uuid.UUID) (*TemplateView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*TemplateView, error)
	GetPublicBySlug(ctx context.Context, slug string) (*PublicTemplateView, error)
}

type TemplateReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TemplateView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*TemplateView, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	FindPublicBySlug(ctx context.Context, slug string) (*PublicTemplateRecord, error)
}

// TemplateCacheStore is the read-through cache over public quote forms.
type TemplateCacheStore interface {
	Get(ctx context.Context, slug string) (*PublicTemplateRecord, bool, error)
	Set(ctx context.Context, slug string, record *PublicTemplateRecord) error
}

type templateQueriesImpl struct {
	readStore TemplateReadStore
	ownerRead OwnerReadStore
	cache     TemplateCacheStore
	clock     clock.Clock
}

func NewTemplateQueries(
	readStore TemplateReadStore,
	ownerRead OwnerReadStore,
	cache TemplateCacheStore,
	clock clock.Clock,
) TemplateQueries {
	return &templateQueriesImpl{
		readStore: readStore,
		ownerRead: ownerRead,
		cache:     cache,
		clock:     clock,
	}
}

func (q *templateQueriesImpl) GetByID(ctx context.Context, ownerID, templateID uuid.UUID) (*TemplateView, error) {
	view, err := q.readStore.FindByID(ctx, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	// Hide other owners' templates instead of acknowledging them.
	if view.OwnerID != ownerID {
		return nil, ErrTemplateNotFound
	}
	return view, nil
}

func (q *templateQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*TemplateView, error) {
	return q.readStore.FindByOwner(ctx, ownerID)
}

// GetPublicBySlug serves the anonymous quote form. The template body comes
// from the cache when warm; the limit flag is always computed from the live
// counter so a cached form cannot hide an exhausted allowance.
func (q *templateQueriesImpl) GetPublicBySlug(ctx context.Context, slug string) (*PublicTemplateView, error) {
	record, err := q.loadPublicRecord(ctx, slug)
	if err != nil {
		return nil, err
	}

	view := record.View
	ownerTier := tier.Resolve(record.OwnerTier)
	if !ownerTier.IsPremium() {
		count, err := q.ownerRead.CurrentUsage(ctx, record.OwnerID, tier.MonthKey(q.clock.Now()))
		if err != nil {
			return nil, err
		}
		view.LimitReached = !tier.CanAcceptSubmission(ownerTier, count)
	}
	return &view, nil
}

func (q *templateQueriesImpl) loadPublicRecord(ctx context.Context, slug string) (*PublicTemplateRecord, error) {
	cached, hit, err := q.cache.Get(ctx, slug)
	if err != nil {
		slog.Warn("template cache read failed", "slug", slug, "error", err.Error())
	} else if hit {
		return cached, nil
	}

	record, err := q.readStore.FindPublicBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	if err := q.cache.Set(ctx, slug, record); err != nil {
		slog.Warn("template cache write failed", "slug", slug, "error", err.Error())
	}
	return record, nil
}
