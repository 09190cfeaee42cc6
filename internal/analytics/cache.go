package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	cacheKeyPrefix = "repstats:analytics:"
	cacheTTL       = 5 * time.Minute
)

var ErrCacheMiss = errors.New("analytics cache miss")

// ResultsCache stores serialized derived result sets in redis. Each result
// set is written with a single SET, so readers see either the previous
// complete set or the new complete set, never a partial one.
type ResultsCache struct {
	redisClient *redis.Client
}

func NewResultsCache(redisClient *redis.Client) *ResultsCache {
	return &ResultsCache{
		redisClient: redisClient,
	}
}

func restIntervalsKey(categoryType CategoryType, periodToken string) string {
	return fmt.Sprintf("%srest:%s:%s", cacheKeyPrefix, categoryType, periodToken)
}

func performanceKey(exerciseName, periodToken string) string {
	return fmt.Sprintf("%sperf:%s:%s", cacheKeyPrefix, exerciseName, periodToken)
}

func (c *ResultsCache) SetRestIntervals(
	ctx context.Context,
	categoryType CategoryType,
	periodToken string,
	metrics []RestIntervalMetric,
) error {
	return c.set(ctx, restIntervalsKey(categoryType, periodToken), metrics)
}

func (c *ResultsCache) GetRestIntervals(
	ctx context.Context,
	categoryType CategoryType,
	periodToken string,
) ([]RestIntervalMetric, error) {
	var metrics []RestIntervalMetric
	if err := c.get(ctx, restIntervalsKey(categoryType, periodToken), &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (c *ResultsCache) SetPerformanceSeries(
	ctx context.Context,
	exerciseName string,
	periodToken string,
	records []PerformanceRecord,
) error {
	return c.set(ctx, performanceKey(exerciseName, periodToken), records)
}

func (c *ResultsCache) GetPerformanceSeries(
	ctx context.Context,
	exerciseName string,
	periodToken string,
) ([]PerformanceRecord, error) {
	var records []PerformanceRecord
	if err := c.get(ctx, performanceKey(exerciseName, periodToken), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *ResultsCache) set(ctx context.Context, key string, value interface{}) error {
	valueJson, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cached value: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, valueJson, cacheTTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *ResultsCache) get(ctx context.Context, key string, target interface{}) error {
	cmd := c.redisClient.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(cmd.Val()), target); err != nil {
		return fmt.Errorf("unmarshal cached value %s: %w", key, err)
	}
	return nil
}
