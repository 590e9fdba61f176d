package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryKey_UsesUTCDay(t *testing.T) {
	kl := time.FixedZone("MYT", 8*60*60)
	at := time.Date(2026, 3, 15, 2, 0, 0, 0, kl)

	assert.Equal(t, "sales:daily:c1:2026-03-14", SummaryKey("c1", at))
}

func TestSummaryStore_Add(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	key := SummaryKey("c1", at)

	t.Run("first delivery increments", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewSummaryStore(rdb)

		mock.ExpectSetNX(seenKeyPrefix+"tx1", 1, seenTTL).SetVal(true)
		mock.ExpectTxPipeline()
		mock.ExpectHIncrBy(key, "count", 1).SetVal(1)
		mock.ExpectHIncrBy(key, "amount", 1199).SetVal(1199)
		mock.ExpectExpire(key, summaryTTL).SetVal(true)
		mock.ExpectTxPipelineExec()

		added, err := store.Add(context.Background(), "c1", "tx1", at, 1199)
		require.NoError(t, err)
		assert.True(t, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redelivery is skipped", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewSummaryStore(rdb)

		mock.ExpectSetNX(seenKeyPrefix+"tx1", 1, seenTTL).SetVal(false)

		added, err := store.Add(context.Background(), "c1", "tx1", at, 1199)
		require.NoError(t, err)
		assert.False(t, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSummaryStore_Get(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("existing day", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewSummaryStore(rdb)

		mock.ExpectHGetAll(SummaryKey("c1", day)).SetVal(map[string]string{"count": "3", "amount": "4500"})

		count, amount, err := store.Get(context.Background(), "c1", day)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.Equal(t, int64(4500), amount)
	})

	t.Run("no sales", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewSummaryStore(rdb)

		mock.ExpectHGetAll(SummaryKey("c1", day)).SetVal(map[string]string{})

		count, amount, err := store.Get(context.Background(), "c1", day)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Zero(t, amount)
	})
}
