package recipes

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const summaryTTL = 24 * time.Hour

// SummaryCache holds rating summaries so recipe pages skip the database.
type SummaryCache interface {
	Get(ctx context.Context, recipeID string) (Summary, bool, error)
	Set(ctx context.Context, s Summary) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (Summary, bool, error) { return Summary{}, false, nil }
func (noopCache) Set(context.Context, Summary) error                  { return nil }

// RedisCache stores each summary as a hash under recipe:rating:{id}.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, ttl: summaryTTL}
}

func summaryKey(recipeID string) string {
	return "recipe:rating:" + recipeID
}

func (c *RedisCache) Get(ctx context.Context, recipeID string) (Summary, bool, error) {
	vals, err := c.client.HGetAll(ctx, summaryKey(recipeID)).Result()
	if errors.Is(err, redis.Nil) || (err == nil && len(vals) == 0) {
		return Summary{}, false, nil
	}
	if err != nil {
		return Summary{}, false, fmt.Errorf("failed to read rating summary: %w", err)
	}

	avg, err := strconv.ParseFloat(vals["average"], 64)
	if err != nil {
		return Summary{}, false, nil
	}
	count, err := strconv.ParseInt(vals["count"], 10, 64)
	if err != nil {
		return Summary{}, false, nil
	}
	return Summary{RecipeID: recipeID, AverageRating: avg, RatingCount: count}, true, nil
}

func (c *RedisCache) Set(ctx context.Context, s Summary) error {
	key := summaryKey(s.RecipeID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"average", strconv.FormatFloat(s.AverageRating, 'f', 1, 64),
			"count", strconv.FormatInt(s.RatingCount, 10))
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache rating summary: %w", err)
	}
	return nil
}
