package transaction

import "github.com/shopspring/decimal"

// RecordTransactionRequest stores Amount verbatim. SelectedOptions is usually
// the snapshot returned by a product quote.
type RecordTransactionRequest struct {
	ProductID       string          `json:"product_id" binding:"required,uuid"`
	PaymentTypeID   uint            `json:"payment_type_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	SelectedOptions map[string]any  `json:"selected_options"`
}

type PaymentTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	CompanyID       string          `json:"company_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	PaymentTypeID   uint            `json:"payment_type_id"`
	PaymentType     string          `json:"payment_type,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	SelectedOptions map[string]any  `json:"selected_options"`
	CreatedAt       string          `json:"created_at"`
}

type SummaryResponse struct {
	CompanyID   string          `json:"company_id"`
	Date        string          `json:"date"`
	Count       int64           `json:"count"`
	Amount      decimal.Decimal `json:"amount"`
	AmountMinor int64           `json:"amount_minor"`
}
