package transaction

import (
	"context"
	"errors"

	transactionerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/transaction/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_type_repo.go -destination=mock/payment_type_repo_mock.go -package=mock
type PaymentTypeRepository interface {
	WithTx(tx *gorm.DB) PaymentTypeRepository
	FindActive(ctx context.Context, id uint) (*PaymentType, error)
	List(ctx context.Context) ([]PaymentType, error)
	Seed(ctx context.Context, names []string) error
}

type paymentTypeRepository struct {
	db *gorm.DB
}

func NewPaymentTypeRepository(db *gorm.DB) PaymentTypeRepository {
	return &paymentTypeRepository{db: db}
}

func (r *paymentTypeRepository) WithTx(tx *gorm.DB) PaymentTypeRepository {
	return &paymentTypeRepository{db: tx}
}

func (r *paymentTypeRepository) FindActive(ctx context.Context, id uint) (*PaymentType, error) {
	var pt PaymentType
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&pt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, transactionerrors.ErrPaymentTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *paymentTypeRepository) List(ctx context.Context) ([]PaymentType, error) {
	var list []PaymentType
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&list).Error
	return list, err
}

// Seed inserts the named payment types that do not exist yet.
func (r *paymentTypeRepository) Seed(ctx context.Context, names []string) error {
	for _, name := range names {
		pt := PaymentType{Name: name, IsActive: true}
		if err := r.db.WithContext(ctx).Where(PaymentType{Name: name}).FirstOrCreate(&pt).Error; err != nil {
			return err
		}
	}
	return nil
}
