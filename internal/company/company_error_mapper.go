package company

import (
	"errors"

	companyerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_companies_owner_national_id":
			return companyerrors.ErrNationalIDExists
		case "uq_companies_business_reg_number":
			return companyerrors.ErrBusinessRegNumberExists
		case "uq_companies_tax_reg_number":
			return companyerrors.ErrTaxRegNumberExists
		}
	}

	return err
}
