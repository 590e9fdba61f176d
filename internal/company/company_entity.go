package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant. National id and both registration numbers are
// globally unique when present.
type Company struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string     `gorm:"type:varchar(150);not null"`
	OwnerFullName     string     `gorm:"type:varchar(150);not null"`
	OwnerNationalID   string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_companies_owner_national_id"`
	OwnerBirthDate    time.Time  `gorm:"type:date;not null"`
	PhoneNumber       string     `gorm:"type:varchar(20);not null"`
	AddressLine1      string     `gorm:"type:varchar(255);not null"`
	AddressLine2      *string    `gorm:"type:varchar(255)"`
	City              string     `gorm:"type:varchar(100);not null"`
	State             string     `gorm:"type:varchar(100);not null"`
	PostalCode        string     `gorm:"type:varchar(10);not null"`
	Country           string     `gorm:"type:varchar(100);not null"`
	BusinessRegNumber string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_companies_business_reg_number"`
	TaxRegNumber      *string    `gorm:"type:varchar(50);uniqueIndex:uq_companies_tax_reg_number"`
	SubscriptionID    *uuid.UUID `gorm:"type:uuid"`
	SubscriptionEndAt *time.Time
	LastLoginIP       *string `gorm:"type:varchar(45)"`
	LastLoginAt       *time.Time
	CreatedBy         *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"not null;default:now()"`
	UpdatedAt         time.Time  `gorm:"not null;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}
