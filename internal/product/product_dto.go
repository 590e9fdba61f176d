package product

import "github.com/shopspring/decimal"

// OptionRequest is one option of a group on the wire. Price is a decimal
// amount in display units.
type OptionRequest struct {
	Option string          `json:"option"`
	Desc   *string         `json:"desc"`
	Price  decimal.Decimal `json:"price"`
}

// OptionGroupRequest lists a group's options in order. Default is the index
// of the option selected when the buyer picks nothing.
type OptionGroupRequest struct {
	Name    string          `json:"name"`
	Default int             `json:"default"`
	Options []OptionRequest `json:"options"`
}

type CreateProductRequest struct {
	Name         string               `json:"name" binding:"required,max=255"`
	Category     string               `json:"category" binding:"max=255"`
	Description  string               `json:"description"`
	Price        decimal.Decimal      `json:"price"`
	Status       string               `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT ARCHIVED"`
	OptionGroups []OptionGroupRequest `json:"option_groups"`
}

// UpdateProductRequest changes only the fields that are present. A present
// OptionGroups replaces the whole option tree.
type UpdateProductRequest struct {
	Name         *string               `json:"name" binding:"omitempty,min=1,max=255"`
	Category     *string               `json:"category" binding:"omitempty,max=255"`
	Description  *string               `json:"description"`
	Price        *decimal.Decimal      `json:"price"`
	Status       *string               `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DRAFT ARCHIVED"`
	OptionGroups *[]OptionGroupRequest `json:"option_groups"`
}

// QuoteRequest maps group name to option label. Groups left out use their
// default option.
type QuoteRequest struct {
	Selections map[string]string `json:"selections"`
}

type OptionValueResponse struct {
	ID      string          `json:"id"`
	Option  string          `json:"option"`
	Desc    string          `json:"desc,omitempty"`
	Price   decimal.Decimal `json:"price"`
	Default bool            `json:"default"`
}

type OptionGroupResponse struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Default int                   `json:"default"`
	Options []OptionValueResponse `json:"options"`
}

type ProductResponse struct {
	ID           string                `json:"id"`
	CompanyID    string                `json:"company_id"`
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	Description  string                `json:"description"`
	Price        decimal.Decimal       `json:"price"`
	Image        *string               `json:"image"`
	Status       string                `json:"status"`
	OptionGroups []OptionGroupResponse `json:"option_groups"`
	IsOwner      bool                  `json:"is_owner"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

type QuoteLine struct {
	Group  string          `json:"group"`
	Option string          `json:"option"`
	Price  decimal.Decimal `json:"price"`
}

// QuoteResponse is the price a buyer pays for one configuration. Snapshot
// is the selected-options document a transaction stores.
type QuoteResponse struct {
	ProductID  string          `json:"product_id"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Lines      []QuoteLine     `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	TotalMinor int64           `json:"total_minor"`
	Snapshot   map[string]any  `json:"snapshot"`
}
