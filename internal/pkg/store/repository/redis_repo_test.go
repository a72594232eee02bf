package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"creditreportanalyser/internal/pkg/consts"
	"creditreportanalyser/internal/pkg/models"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStoreAdapter(t *testing.T) {
	db, mock := redismock.NewClientMock()

	adapter := NewRedisStoreAdapter(db)

	assert.NotNil(t, adapter)
	assert.Equal(t, db, adapter.client)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreAdapter_Set(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"
		value := "test-value"
		expiration := 5 * time.Minute

		mock.ExpectSet(key, value, expiration).SetVal("OK")

		err := adapter.Set(ctx, key, value, expiration)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)

		mock.ExpectSet("test-key", "test-value", time.Minute).SetErr(redis.Nil)

		err := adapter.Set(context.Background(), "test-key", "test-value", time.Minute)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func intPtr(v int) *int { return &v }

func TestRedisStoreAdapter_Summary(t *testing.T) {
	summary := &models.ReportsSummary{
		TotalReports:            3,
		AverageCreditScore:      intPtr(712),
		TotalActiveAccounts:     5,
		TotalClosedAccounts:     2,
		TotalOutstandingBalance: 340000,
	}
	payload, err := json.Marshal(summary)
	require.NoError(t, err)

	t.Run("SaveSummary", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)

		mock.ExpectSet(consts.SummaryCacheKey, payload, consts.SummaryCacheTTLSeconds*time.Second).SetVal("OK")

		assert.NoError(t, adapter.SaveSummary(context.Background(), summary))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetSummary hit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)

		mock.ExpectGet(consts.SummaryCacheKey).SetVal(string(payload))

		got, err := adapter.GetSummary(context.Background())

		require.NoError(t, err)
		assert.Equal(t, summary, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetSummary miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)

		mock.ExpectGet(consts.SummaryCacheKey).RedisNil()

		got, err := adapter.GetSummary(context.Background())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, redis.Nil)
	})

	t.Run("GetSummary corrupt payload", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)

		mock.ExpectGet(consts.SummaryCacheKey).SetVal("{not json")

		got, err := adapter.GetSummary(context.Background())

		assert.Nil(t, got)
		assert.Error(t, err)
	})

	t.Run("InvalidateSummary", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)

		mock.ExpectDel(consts.SummaryCacheKey).SetVal(1)

		assert.NoError(t, adapter.InvalidateSummary(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
