package counter

import (
	"time"

	"github.com/google/uuid"
)

// CompanyCounter holds the last number handed out per company and type.
type CompanyCounter struct {
	CompanyID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CounterType string    `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (CompanyCounter) TableName() string {
	return "company_counters"
}
