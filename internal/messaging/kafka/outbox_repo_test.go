package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("req-1", "product", "4b0d2b4e-6a7f-4c55-9b8e-3f7f1b3a2c10", "product_created", "pos.topic", map[string]string{"name": "Burger"})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"name":"Burger"}`, string(event.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(event))
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}

	tests := []struct {
		name   string
		mutate func(e *kafka.OutboxEvent)
	}{
		{"missing id", func(e *kafka.OutboxEvent) { e.ID = "" }},
		{"missing topic", func(e *kafka.OutboxEvent) { e.Topic = "" }},
		{"missing payload", func(e *kafka.OutboxEvent) { e.Payload = nil }},
		{"unknown status", func(e *kafka.OutboxEvent) { e.Status = "queued" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.Error(t, kafka.ValidateOutboxEvent(e))
		})
	}
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	repo := kafka.NewOutboxRepository(nil, nil)

	err := repo.Create(context.Background(), kafka.OutboxEvent{ID: "1"})

	assert.EqualError(t, err, "outbox topic is required")
}

func TestOutboxRepository_ListPending(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := kafka.NewOutboxRepository(nil, sqlx.NewDb(sqlDB, "sqlmock"))

	payload, _ := json.Marshal(map[string]int{"amount": 1199})
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic",
		"payload", "status", "retry_count", "next_retry_at", "created_at", "updated_at",
	}).AddRow("e-1", "req-1", "transaction", "t-1", "transaction_recorded", "pos.sales", payload, "pending", 0, now, now, now)

	mock.ExpectQuery(`FROM outbox_events`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "transaction_recorded", events[0].EventType)
	assert.Equal(t, payload, events[0].Payload)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := kafka.NewOutboxRepository(nil, sqlx.NewDb(sqlDB, "sqlmock"))

	mock.ExpectExec(`UPDATE outbox_events`).
		WithArgs("e-1", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "e-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
