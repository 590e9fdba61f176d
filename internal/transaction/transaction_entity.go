package transaction

import (
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/product"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Transaction is an append-only sale. Amount is the caller's total in minor
// units and SelectedOptions is the option snapshot at sale time; neither is
// recomputed from the catalog.
type Transaction struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number          string            `gorm:"type:varchar(30);not null;uniqueIndex:uq_transactions_company_number,priority:2"`
	CompanyID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_transactions_company_number,priority:1;index:idx_transactions_company_created,priority:1"`
	ProductID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	PaymentTypeID   uint              `gorm:"not null"`
	Amount          int64             `gorm:"not null"`
	SelectedOptions datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedBy       *uuid.UUID        `gorm:"type:uuid"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;index:idx_transactions_company_created,priority:2"`

	Product     *product.Product `gorm:"foreignKey:ProductID"`
	PaymentType *PaymentType     `gorm:"foreignKey:PaymentTypeID"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type PaymentType struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PaymentType) TableName() string {
	return "payment_types"
}

// DefaultPaymentTypes are seeded at startup when missing.
var DefaultPaymentTypes = []string{"CASH", "TOUCH_N_GO", "CREDIT_CARD", "DEBIT_CARD", "GRAB_PAY"}
