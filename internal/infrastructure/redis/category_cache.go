package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/metrics"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "recipes:categories:"
	keyAllList = keyPrefix + "all"
)

type cachedCategory struct {
	ID   int64   `json:"id"`
	Name *string `json:"nome"`
}

// CategoryCache is a read-through cache in front of a CategoryRepository.
// Categories are global and only change through migrations, so entries
// simply expire after ttl. Redis failures fall back to the repository.
type CategoryCache struct {
	next   repository.CategoryRepository
	rdb    goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCategoryCache(next repository.CategoryRepository, rdb goredis.Cmdable, ttl time.Duration, logger *slog.Logger) *CategoryCache {
	return &CategoryCache{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "category_cache"),
	}
}

func (c *CategoryCache) List(ctx context.Context) ([]domain.Category, error) {
	var cached []cachedCategory
	if c.load(ctx, keyAllList, &cached) {
		out := make([]domain.Category, len(cached))
		for i, cc := range cached {
			out[i] = domain.Category{ID: cc.ID, Name: cc.Name}
		}
		return out, nil
	}

	categories, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	cached = make([]cachedCategory, len(categories))
	for i, cat := range categories {
		cached[i] = cachedCategory{ID: cat.ID, Name: cat.Name}
	}
	c.store(ctx, keyAllList, cached)
	return categories, nil
}

func (c *CategoryCache) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	key := keyPrefix + strconv.FormatInt(id, 10)

	var cached cachedCategory
	if c.load(ctx, key, &cached) {
		return &domain.Category{ID: cached.ID, Name: cached.Name}, nil
	}

	cat, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, cachedCategory{ID: cat.ID, Name: cat.Name})
	return cat, nil
}

func (c *CategoryCache) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		metrics.CategoryCacheRequestsTotal.WithLabelValues("miss").Inc()
		return false
	case err != nil:
		metrics.CategoryCacheRequestsTotal.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.CategoryCacheRequestsTotal.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "cache entry corrupt", "key", key, "error", err)
		return false
	}
	metrics.CategoryCacheRequestsTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *CategoryCache) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
