package product

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusDraft    Status = "DRAFT"
	StatusArchived Status = "ARCHIVED"
)

// Product prices are stored in minor currency units. Products, option
// groups and option values are only ever soft deleted so that recorded
// transactions keep their references.
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Category    string         `gorm:"type:varchar(255)"`
	Description string         `gorm:"type:text"`
	Price       int64          `gorm:"not null;check:chk_products_price_positive,price > 0"`
	Image       *string        `gorm:"type:varchar(500)"`
	Status      Status         `gorm:"type:varchar(20);not null;default:DRAFT"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid"`
	UpdatedBy   *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	OptionGroups []OptionGroup `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}

type OptionGroup struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Position  int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Values []OptionValue `gorm:"foreignKey:GroupID"`
}

func (OptionGroup) TableName() string {
	return "product_option_groups"
}

// OptionValue is one choice of a group. Exactly one active value per active
// group has IsDefault set.
type OptionValue struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GroupID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Label       string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:varchar(255)"`
	Price       int64          `gorm:"not null;default:0;check:chk_option_values_price_non_negative,price >= 0"`
	IsDefault   bool           `gorm:"not null;default:false"`
	Position    int            `gorm:"not null;default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (OptionValue) TableName() string {
	return "product_option_values"
}
