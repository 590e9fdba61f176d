package product

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ProductKeyPrefix     = "products:detail:"
	ProductListKeyPrefix = "products:list:"
	productListAllKey    = ProductListKeyPrefix + "all"

	ProductGenerationKeyPrefix = "products:gen:"
	generationTTL              = time.Hour
)

func GetProductKey(id uuid.UUID) string {
	return ProductKeyPrefix + id.String()
}

// GetProductListKey returns the list key of one company, or of the public
// storefront when companyID is nil.
func GetProductListKey(companyID *uuid.UUID) string {
	if companyID == nil {
		return productListAllKey
	}
	return ProductListKeyPrefix + companyID.String()
}

// Cache is a read-through Redis cache. A nil rdb disables it.
type Cache struct {
	rdb     redis.Cmdable
	ttl     time.Duration
	sf      singleflight.Group
	metrics *metrics.DomainMetrics
	logger  *zap.Logger
}

func NewCache(rdb redis.Cmdable, ttl time.Duration, m *metrics.DomainMetrics, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("product.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.cache")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl, metrics: m, logger: l}
}

// storeIfCurrent writes KEYS[1] only while the generation in KEYS[2] still
// matches the one read before the load.
var storeIfCurrent = redis.NewScript(`
if (redis.call("GET", KEYS[2]) or "0") ~= ARGV[1] then
	return false
end
return redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
`)

func generationKey(key string) string {
	return ProductGenerationKeyPrefix + key
}

// cached returns the value under key, loading and storing it on a miss.
// Concurrent misses on one key share a single load, which runs detached
// from any one caller's cancellation. A load that overlaps an Invalidate
// is returned but not stored.
func cached[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil || c.rdb == nil {
		return load(ctx)
	}

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var out T
		if json.Unmarshal(raw, &out) == nil {
			c.observe("hit")
			return out, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
	}
	c.observe("miss")

	v, err, _ := c.sf.Do(key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)

		gen, genErr := c.rdb.Get(loadCtx, generationKey(key)).Int64()
		if genErr == redis.Nil {
			gen, genErr = 0, nil
		}

		out, err := load(loadCtx)
		if err != nil {
			return out, err
		}
		if genErr != nil {
			c.logger.Warn("product cache generation read failed", zap.String("key", key), zap.Error(genErr))
			return out, nil
		}
		c.store(loadCtx, key, gen, out)
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *Cache) store(ctx context.Context, key string, gen int64, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	keys := []string{key, generationKey(key)}
	err = storeIfCurrent.Run(ctx, c.rdb, keys, gen, data, c.ttl.Milliseconds()).Err()
	switch {
	case err == redis.Nil:
		c.logger.Debug("product cache write skipped, invalidated during load", zap.String("key", key))
	case err != nil:
		c.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops a product and every list it can appear in, and bumps
// their generations so loads already in flight do not write back.
func (c *Cache) Invalidate(ctx context.Context, productID, companyID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}
	keys := []string{GetProductKey(productID), GetProductListKey(&companyID), productListAllKey}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, generationKey(key))
			pipe.Expire(ctx, generationKey(key), generationTTL)
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	if err != nil {
		c.logger.Error("failed to invalidate product cache", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (c *Cache) observe(result string) {
	if c.metrics != nil {
		c.metrics.ProductCache.WithLabelValues(result).Inc()
	}
}
