package auth

// RegisterRequest onboards a company together with its first user.
// Format rules beyond presence are checked by the service so that the first
// failing rule is reported.
type RegisterRequest struct {
	Email             string  `json:"email" binding:"required"`
	Username          string  `json:"username" binding:"required"`
	Password          string  `json:"password" binding:"required,max=128"`
	CompanyName       string  `json:"company_name" binding:"required,max=150"`
	OwnerFullName     string  `json:"owner_full_name" binding:"required,max=150"`
	OwnerNationalID   string  `json:"owner_national_id" binding:"required"`
	OwnerBirthDate    string  `json:"owner_birth_date" binding:"required"`
	PhoneNumber       string  `json:"phone_number" binding:"required"`
	AddressLine1      string  `json:"address_line1" binding:"required"`
	AddressLine2      *string `json:"address_line2"`
	City              string  `json:"city" binding:"required"`
	State             string  `json:"state" binding:"required"`
	PostalCode        string  `json:"postal_code" binding:"required"`
	Country           string  `json:"country" binding:"required"`
	BusinessRegNumber string  `json:"business_reg_number" binding:"required"`
	TaxRegNumber      *string `json:"tax_reg_number"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

type AuthResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	UserTypeID  int     `json:"user_type_id"`
	Role        string  `json:"role"`
	CompanyID   *string `json:"company_id"`
	CompanyName string  `json:"company_name,omitempty"`
}

type TokenResponse struct {
	User        AuthResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
}

type RegisterResponse struct {
	CompanyID   string       `json:"company_id"`
	CompanyName string       `json:"company_name"`
	User        AuthResponse `json:"user"`
}
