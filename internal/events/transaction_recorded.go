package events

import "time"

const TransactionRecordedTopic = "pos.sales.transaction.recorded.v1"

const TransactionRecorded = "transaction_recorded"

// TransactionRecordedEvent carries the amount in minor currency units.
type TransactionRecordedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	TransactionID string    `json:"transaction_id"`
	Number        string    `json:"number"`
	CompanyID     string    `json:"company_id"`
	ProductID     string    `json:"product_id"`
	PaymentTypeID uint      `json:"payment_type_id"`
	Amount        int64     `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Topics lists every topic the services publish to.
func Topics() []string {
	return []string{ProductLifecycleTopic, TransactionRecordedTopic}
}
