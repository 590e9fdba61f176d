package events

import "time"

const ProductLifecycleTopic = "pos.catalog.product.lifecycle.v1"

const (
	ProductCreated = "product_created"
	ProductUpdated = "product_updated"
	ProductDeleted = "product_deleted"
)

type ProductLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ProductID  string    `json:"product_id"`
	CompanyID  string    `json:"company_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
