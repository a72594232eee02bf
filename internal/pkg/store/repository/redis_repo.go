package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creditreportanalyser/internal/pkg/consts"
	"creditreportanalyser/internal/pkg/models"

	"github.com/redis/go-redis/v9"
)

type RedisStoreAdapter struct {
	client *redis.Client
}

func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	return a.client.Get(ctx, key).Bytes()
}

func (a *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

// GetSummary returns the cached cross-report summary. A miss surfaces as an
// error wrapping redis.Nil.
func (a *RedisStoreAdapter) GetSummary(ctx context.Context) (*models.ReportsSummary, error) {
	data, err := a.Get(ctx, consts.SummaryCacheKey)
	if err != nil {
		return nil, err
	}

	var summary models.ReportsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached summary: %w", err)
	}

	return &summary, nil
}

func (a *RedisStoreAdapter) SaveSummary(ctx context.Context, summary *models.ReportsSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	ttl := consts.SummaryCacheTTLSeconds * time.Second
	return a.Set(ctx, consts.SummaryCacheKey, data, ttl)
}

func (a *RedisStoreAdapter) InvalidateSummary(ctx context.Context) error {
	return a.Delete(ctx, consts.SummaryCacheKey)
}
