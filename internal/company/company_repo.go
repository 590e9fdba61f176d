package company

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	ExistsByBusinessRegNumber(ctx context.Context, number string) (bool, error)
	ExistsByTaxRegNumber(ctx context.Context, number string) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string, at time.Time) error
	Update(ctx context.Context, company *Company) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, company *Company) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(company).Error)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var company Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &company, nil
}

func (r *repository) exists(ctx context.Context, column, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Company{}).
		Where(column+" = ?", value).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	return r.exists(ctx, "owner_national_id", nationalID)
}

func (r *repository) ExistsByBusinessRegNumber(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, "business_reg_number", number)
}

func (r *repository) ExistsByTaxRegNumber(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, "tax_reg_number", number)
}

func (r *repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_login_ip": ip,
			"last_login_at": at,
		}).Error
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return mapRepositoryError(r.db.WithContext(ctx).Save(company).Error)
}
