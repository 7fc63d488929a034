package components

import (
	"lushquote/internal/infra"
	"lushquote/internal/infra/billing"
	"lushquote/internal/infra/cache"
	"lushquote/internal/infra/readstore"
	"lushquote/internal/infra/writerepo"
	"lushquote/internal/pkg/config"
	"lushquote/internal/usecase/commands"
	"lushquote/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Read side
		fx.Annotate(
			readstore.NewOwnerReadStore,
			fx.As(new(queries.OwnerReadStore)),
		),
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
		),
		fx.Annotate(
			readstore.NewSubmissionReadStore,
			fx.As(new(queries.SubmissionReadStore)),
		),
		// Write side
		fx.Annotate(
			writerepo.NewOwnerRepository,
			fx.As(new(commands.OwnerRepository)),
		),
		fx.Annotate(
			writerepo.NewTemplateRepository,
			fx.As(new(commands.TemplateRepository)),
		),
		fx.Annotate(
			writerepo.NewSubmissionRepository,
			fx.As(new(commands.SubmissionRepository)),
		),
		fx.Annotate(
			writerepo.NewUsageRepository,
			fx.As(new(commands.UsageRepository)),
		),
		// Cache and billing gateway
		fx.Annotate(
			NewTemplateCache,
			fx.As(new(commands.TemplateCache)),
			fx.As(new(queries.TemplateCacheStore)),
		),
		fx.Annotate(
			billing.NewStripeClient,
			fx.As(new(commands.BillingGateway)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewTemplateCache(cfg config.Config, client *redis.Client) *cache.TemplateCache {
	return cache.NewTemplateCache(client, cfg.Redis.CacheTTL)
}
