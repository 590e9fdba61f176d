package domain

import "github.com/google/uuid"

// Caller is the principal resolved from a bearer token for one request.
type Caller struct {
	UserID    uuid.UUID
	Username  string
	Email     string
	CompanyID *uuid.UUID
	Role      Role
}

func (c *Caller) HasCompany() bool {
	return c != nil && c.CompanyID != nil
}

// BelongsTo reports whether the caller is scoped to companyID.
func (c *Caller) BelongsTo(companyID uuid.UUID) bool {
	return c.HasCompany() && *c.CompanyID == companyID
}
