package tenant

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotOwner = apperror.Authorization("You do not have access to this company's resources")

// Scope restricts a query to rows owned by companyID.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// CallerScope scopes to the caller's company. Callers without a company
// (superadmin) see every tenant.
func CallerScope(caller *domain.Caller) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if caller.HasCompany() {
			return db.Where("company_id = ?", *caller.CompanyID)
		}
		return db
	}
}

// EnsureOwner fails with an authorization error unless the caller belongs
// to companyID.
func EnsureOwner(caller *domain.Caller, companyID uuid.UUID) error {
	if !caller.BelongsTo(companyID) {
		return ErrNotOwner
	}
	return nil
}
