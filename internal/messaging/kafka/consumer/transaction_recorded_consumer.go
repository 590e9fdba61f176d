package consumer

import (
	"context"
	"encoding/json"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/events"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/transaction"

	"go.uber.org/zap"
)

// ConsumeTransactionRecorded folds transaction_recorded events into the
// daily sales counters until ctx is cancelled. A message is committed once
// counted. A failed count is retried on the same message, so no later offset
// is committed past it.
func ConsumeTransactionRecorded(
	ctx context.Context,
	reader MessageReader,
	store transaction.SummaryStore,
	logger *zap.Logger,
	cfg RetryConfig,
) {
	log := logger.Named("kafka.consumer.transaction_recorded")
	log.Info("transaction recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("transaction recorded consumer stopped")
				return
			}
			log.Error("fetch transaction recorded message failed", zap.Error(err))
			continue
		}

		var event events.TransactionRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.EventType != events.TransactionRecorded {
			log.Error("skipping undecodable transaction event",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		var added bool
		err = retry(ctx, cfg, func(attempt int) error {
			var addErr error
			added, addErr = store.Add(ctx, event.CompanyID, event.TransactionID, event.OccurredAt, event.Amount)
			if addErr != nil {
				log.Error("update sales summary failed",
					zap.String("transaction_id", event.TransactionID),
					zap.String("company_id", event.CompanyID),
					zap.Int("attempt", attempt),
					zap.Error(addErr),
				)
			}
			return addErr
		})
		if err != nil {
			log.Info("transaction recorded consumer stopped",
				zap.Int64("uncommitted_offset", msg.Offset),
			)
			return
		}
		if !added {
			log.Warn("transaction already counted, skipping",
				zap.String("transaction_id", event.TransactionID),
				zap.String("company_id", event.CompanyID),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit transaction recorded message failed", zap.Error(err))
			continue
		}

		log.Debug("sales summary updated",
			zap.String("request_id", event.RequestID),
			zap.String("transaction_id", event.TransactionID),
			zap.String("number", event.Number),
		)
	}
}
