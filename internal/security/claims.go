package security

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	securityerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/security/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the caller payload carried by an access token.
type AccessClaims struct {
	Subject    uuid.UUID
	Username   string
	Email      string
	CompanyID  *uuid.UUID
	UserTypeID domain.Role
}

// Map renders the claims for Issue. A missing company is encoded as null.
func (c AccessClaims) Map() map[string]any {
	var companyID any
	if c.CompanyID != nil {
		companyID = c.CompanyID.String()
	}
	return map[string]any{
		"sub":          c.Subject.String(),
		"username":     c.Username,
		"email":        c.Email,
		"company_id":   companyID,
		"user_type_id": int(c.UserTypeID),
	}
}

// ParseAccessClaims reads the caller payload out of verified claims.
func ParseAccessClaims(claims jwt.MapClaims) (AccessClaims, error) {
	var out AccessClaims

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return out, securityerrors.ErrMissingClaim("sub")
	}
	out.Subject, err = uuid.Parse(sub)
	if err != nil {
		return out, securityerrors.ErrInvalidToken
	}

	out.Username, _ = claims["username"].(string)
	out.Email, _ = claims["email"].(string)

	if raw, ok := claims["company_id"].(string); ok && raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			return out, securityerrors.ErrInvalidToken
		}
		out.CompanyID = &companyID
	}

	// JSON numbers decode as float64.
	switch v := claims["user_type_id"].(type) {
	case float64:
		out.UserTypeID = domain.Role(int(v))
	case int:
		out.UserTypeID = domain.Role(v)
	}

	return out, nil
}
