package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/infrastructure/observability"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetEx(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// EstimateCache wraps an IEstimateRepository with a read-through cache for
// token lookups, the hottest path of the public page. Every write through
// the wrapper evicts the affected token.
type EstimateCache struct {
	interfaces.IEstimateRepository
	rdb     RedisClient
	ttl     time.Duration
	log     *logger.Logger
	metrics *observability.Metrics
}

var _ interfaces.IEstimateRepository = (*EstimateCache)(nil)

func NewEstimateCache(next interfaces.IEstimateRepository, rdb RedisClient, ttl time.Duration, log *logger.Logger, metrics *observability.Metrics) *EstimateCache {
	return &EstimateCache{
		IEstimateRepository: next,
		rdb:                 rdb,
		ttl:                 ttl,
		log:                 log.With("component", "estimate_cache"),
		metrics:             metrics,
	}
}

func tokenKey(token string) string { return "estimate:token:" + token }

func (c *EstimateCache) GetByToken(ctx context.Context, token string) (entities.Estimate, error) {
	key := tokenKey(token)
	raw, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var e entities.Estimate
		if jerr := json.Unmarshal([]byte(raw), &e); jerr == nil {
			c.metrics.CacheLookup("hit")
			return e, nil
		}
		c.log.Warn("dropping undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("cache read failed", "error", err)
	}
	c.metrics.CacheLookup("miss")

	e, err := c.IEstimateRepository.GetByToken(ctx, token)
	if err != nil || e.ID == "" {
		return e, err
	}
	if data, jerr := json.Marshal(e); jerr == nil {
		if serr := c.rdb.SetEx(ctx, key, data, c.ttl).Err(); serr != nil {
			c.log.Warn("cache write failed", "error", serr)
		}
	}
	return e, nil
}

func (c *EstimateCache) UpdateContent(ctx context.Context, id, userID string, content entities.EstimateContent) (entities.Estimate, error) {
	e, err := c.IEstimateRepository.UpdateContent(ctx, id, userID, content)
	c.evict(ctx, e)
	return e, err
}

func (c *EstimateCache) UpdateContract(ctx context.Context, id string, u entities.ContractUpdate) (entities.Estimate, error) {
	e, err := c.IEstimateRepository.UpdateContract(ctx, id, u)
	c.evict(ctx, e)
	return e, err
}

func (c *EstimateCache) Close(ctx context.Context, id, userID string) (entities.Estimate, error) {
	e, err := c.IEstimateRepository.Close(ctx, id, userID)
	c.evict(ctx, e)
	return e, err
}

func (c *EstimateCache) evict(ctx context.Context, e entities.Estimate) {
	if e.Token == "" {
		return
	}
	if err := c.rdb.Del(context.WithoutCancel(ctx), tokenKey(e.Token)).Err(); err != nil {
		c.log.Warn("cache evict failed", "estimate_id", e.ID, "error", err)
	}
}
