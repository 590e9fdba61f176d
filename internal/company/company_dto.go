package company

import "time"

type CompanyResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	OwnerFullName     string     `json:"owner_full_name"`
	OwnerNationalID   string     `json:"owner_national_id"`
	OwnerBirthDate    string     `json:"owner_birth_date"`
	PhoneNumber       string     `json:"phone_number"`
	AddressLine1      string     `json:"address_line1"`
	AddressLine2      *string    `json:"address_line2,omitempty"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	PostalCode        string     `json:"postal_code"`
	Country           string     `json:"country"`
	BusinessRegNumber string     `json:"business_reg_number"`
	TaxRegNumber      *string    `json:"tax_reg_number,omitempty"`
	SubscriptionEndAt *time.Time `json:"subscription_end_at,omitempty"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// UpdateCompanyRequest only touches supplied fields. Identity and
// registration numbers are not editable here.
type UpdateCompanyRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=150"`
	PhoneNumber  *string `json:"phone_number"`
	AddressLine1 *string `json:"address_line1" binding:"omitempty,min=1,max=255"`
	AddressLine2 *string `json:"address_line2" binding:"omitempty,max=255"`
	City         *string `json:"city" binding:"omitempty,min=1,max=100"`
	State        *string `json:"state" binding:"omitempty,min=1,max=100"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country" binding:"omitempty,min=1,max=100"`
}
