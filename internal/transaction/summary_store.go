package transaction

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DateLayout = "2006-01-02"

	summaryKeyPrefix = "sales:daily:"
	seenKeyPrefix    = "sales:seen:"
	summaryTTL       = 400 * 24 * time.Hour
	seenTTL          = 7 * 24 * time.Hour
)

// SummaryKey is the Redis hash holding one company's totals for the UTC day
// of at.
func SummaryKey(companyID string, at time.Time) string {
	return summaryKeyPrefix + companyID + ":" + at.UTC().Format(DateLayout)
}

//go:generate mockgen -source=summary_store.go -destination=mock/summary_store_mock.go -package=mock

// SummaryStore keeps daily sales counters per company.
type SummaryStore interface {
	// Add counts one transaction. It reports false when transactionID was
	// already counted, so redelivered events are not summed twice.
	Add(ctx context.Context, companyID, transactionID string, at time.Time, amount int64) (bool, error)
	Get(ctx context.Context, companyID string, day time.Time) (count, amount int64, err error)
}

type redisSummaryStore struct {
	rdb redis.Cmdable
}

func NewSummaryStore(rdb redis.Cmdable) SummaryStore {
	return &redisSummaryStore{rdb: rdb}
}

func (s *redisSummaryStore) Add(ctx context.Context, companyID, transactionID string, at time.Time, amount int64) (bool, error) {
	fresh, err := s.rdb.SetNX(ctx, seenKeyPrefix+transactionID, 1, seenTTL).Result()
	if err != nil {
		return false, err
	}
	if !fresh {
		return false, nil
	}

	key := SummaryKey(companyID, at)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "count", 1)
		pipe.HIncrBy(ctx, key, "amount", amount)
		pipe.Expire(ctx, key, summaryTTL)
		return nil
	})
	if err != nil {
		// let a redelivery count it
		s.rdb.Del(ctx, seenKeyPrefix+transactionID)
		return false, err
	}
	return true, nil
}

func (s *redisSummaryStore) Get(ctx context.Context, companyID string, day time.Time) (int64, int64, error) {
	fields, err := s.rdb.HGetAll(ctx, SummaryKey(companyID, day)).Result()
	if err != nil {
		return 0, 0, err
	}

	count, _ := strconv.ParseInt(fields["count"], 10, 64)
	amount, _ := strconv.ParseInt(fields["amount"], 10, 64)
	return count, amount, nil
}
