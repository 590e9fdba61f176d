package transaction

import (
	"context"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/company"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/product"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=transaction_repo.go -destination=mock/transaction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Transaction) error
	FindAll(ctx context.Context, caller *domain.Caller) ([]Transaction, error)
	CompanyExists(ctx context.Context, companyID uuid.UUID) (bool, error)
	ProductExists(ctx context.Context, companyID, productID uuid.UUID) (bool, error)
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

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Omit("Product", "PaymentType").Create(t).Error
}

// FindAll lists newest first. The product is preloaded even when it has
// since been soft deleted, so history keeps its names.
func (r *repository) FindAll(ctx context.Context, caller *domain.Caller) ([]Transaction, error) {
	var list []Transaction
	err := r.db.WithContext(ctx).
		Scopes(tenant.CallerScope(caller)).
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Preload("PaymentType").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) CompanyExists(ctx context.Context, companyID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&company.Company{}).Where("id = ?", companyID).Count(&n).Error
	return n > 0, err
}

// ProductExists only sees active products of companyID.
func (r *repository) ProductExists(ctx context.Context, companyID, productID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&product.Product{}).
		Where("id = ? AND company_id = ?", productID, companyID).
		Count(&n).Error
	return n > 0, err
}
