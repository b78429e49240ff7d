package storage

import (
	"context"
	"strconv"
	"time"

	"das-foods/internal/domain"
	"das-foods/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisGuard marks in-flight work with SET NX keys that expire on their own.
type RedisGuard struct {
	Client *redis.Client
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{Client: client}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return g.Client.SetNX(ctx, key, "1", ttl).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.Client.Del(ctx, key).Err()
}

const (
	dailyKeyPrefix = "analytics:daily:"
	allTimeKey     = "analytics:alltime"
)

type RedisPopularity struct {
	Client   *redis.Client
	DailyTTL time.Duration
}

func NewRedisPopularity(client *redis.Client) *RedisPopularity {
	return &RedisPopularity{Client: client, DailyTTL: 7 * 24 * time.Hour}
}

func (p *RedisPopularity) DailyKey(day string) string {
	return dailyKeyPrefix + day
}

func (p *RedisPopularity) RecordSale(ctx context.Context, day string, menuItemID, quantity int) error {
	member := strconv.Itoa(menuItemID)
	dailyKey := p.DailyKey(day)

	pipe := p.Client.TxPipeline()
	pipe.ZIncrBy(ctx, dailyKey, float64(quantity), member)
	pipe.Expire(ctx, dailyKey, p.DailyTTL)
	pipe.ZIncrBy(ctx, allTimeKey, float64(quantity), member)
	_, err := pipe.Exec(ctx)
	return err
}

// TopItems reads the day's ranking, or the all-time ranking when day is empty.
func (p *RedisPopularity) TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	key := allTimeKey
	if day != "" {
		key = p.DailyKey(day)
	}

	results, err := p.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.PopularItem, 0, len(results))
	for _, result := range results {
		member, ok := result.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		items = append(items, domain.PopularItem{MenuItemID: id, Score: result.Score})
	}
	return items, nil
}

var (
	_ service.InFlightGuard   = (*RedisGuard)(nil)
	_ service.PopularityStore = (*RedisPopularity)(nil)
)
