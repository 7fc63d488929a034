package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const slugKeyPrefix = "public_template:"

// TemplateCache is a read-through cache for public quote forms keyed by
// slug. Only the tier-independent record is cached; the limit flag is
// computed per request from the live counter.
type TemplateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTemplateCache(client *redis.Client, ttl time.Duration) *TemplateCache {
	return &TemplateCache{client: client, ttl: ttl}
}

func (c *TemplateCache) Get(ctx context.Context, slug string) (*queries.PublicTemplateRecord, bool, error) {
	raw, err := c.client.Get(ctx, slugKeyPrefix+slug).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read template cache")
	}

	var record queries.PublicTemplateRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		// Treat a corrupt entry as a miss; it gets overwritten on the next Set.
		return nil, false, nil
	}
	return &record, true, nil
}

func (c *TemplateCache) Set(ctx context.Context, slug string, record *queries.PublicTemplateRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errs.Wrap(err, "failed to encode template cache entry")
	}
	if err := c.client.Set(ctx, slugKeyPrefix+slug, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write template cache")
	}
	return nil
}

// Invalidate drops the cached form after a template save or delete.
func (c *TemplateCache) Invalidate(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, slugKeyPrefix+slug).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate template cache")
	}
	return nil
}
