package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// OutboxEvent is written in the same database transaction as the change it
// describes and relayed to Kafka later by the worker.
type OutboxEvent struct {
	ID            string     `db:"id" gorm:"type:uuid;primaryKey"`
	RequestID     string     `db:"request_id" gorm:"type:varchar(64)"`
	AggregateType string     `db:"aggregate_type" gorm:"type:varchar(50);not null"`
	AggregateID   string     `db:"aggregate_id" gorm:"type:uuid;not null"`
	EventType     string     `db:"event_type" gorm:"type:varchar(100);not null"`
	Topic         string     `db:"topic" gorm:"type:varchar(150);not null"`
	Payload       []byte     `db:"payload" gorm:"type:jsonb;not null"`
	Status        string     `db:"status" gorm:"type:varchar(20);not null;index:idx_outbox_status_created,priority:1"`
	RetryCount    int        `db:"retry_count" gorm:"not null;default:0"`
	NextRetryAt   *time.Time `db:"next_retry_at"`
	ErrorMessage  *string    `db:"error_message" gorm:"type:varchar(500)" json:"-"`
	ProcessedAt   *time.Time `db:"processed_at" json:"-"`
	CreatedAt     time.Time  `db:"created_at" gorm:"not null;default:now();index:idx_outbox_status_created,priority:2"`
	UpdatedAt     time.Time  `db:"updated_at" gorm:"not null;default:now()"`
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}

// NewOutboxEvent builds a pending event with a JSON payload.
func NewOutboxEvent(requestID, aggregateType, aggregateID, eventType, topic string, payload any) (OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       data,
		Status:        OutboxStatusPending,
	}, nil
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

// OutboxRepository writes through gorm so that Create joins the caller's
// transaction, and reads/marks through sqlx for the relay.
type OutboxRepository interface {
	WithTx(tx *gorm.DB) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	db *gorm.DB
	rx *sqlx.DB
}

func NewOutboxRepository(db *gorm.DB, rx *sqlx.DB) OutboxRepository {
	return &outboxRepository{db: db, rx: rx}
}

func (r *outboxRepository) WithTx(tx *gorm.DB) OutboxRepository {
	return &outboxRepository{db: tx, rx: r.rx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit("NextRetryAt", "ErrorMessage", "ProcessedAt").Create(&event).Error
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	query := `
SELECT
	id::text AS id,
	request_id,
	aggregate_type,
	aggregate_id::text AS aggregate_id,
	event_type,
	topic,
	payload,
	status,
	retry_count,
	COALESCE(next_retry_at, created_at) AS next_retry_at,
	created_at,
	updated_at
FROM outbox_events
WHERE status IN ($1, $2)
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $3
`

	events := make([]OutboxEvent, 0, limit)
	if err := r.rx.SelectContext(ctx, &events, query, OutboxStatusPending, OutboxStatusFailed, limit); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	query := `
UPDATE outbox_events
SET
	status = $2,
	processed_at = NOW(),
	error_message = NULL,
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.rx.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `
UPDATE outbox_events
SET
	status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1
`
	_, err := r.rx.ExecContext(ctx, query, id, OutboxStatusFailed, reason)
	return err
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
