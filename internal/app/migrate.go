package app

import (
	"context"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/category"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/company"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/product"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/counter"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/transaction"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/user"

	"gorm.io/gorm"
)

// migrate creates the schema and seeds reference data. Both steps are
// idempotent, so every API instance runs them on start.
func migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&company.Company{},
		&user.User{},
		&category.Category{},
		&product.Product{},
		&product.OptionGroup{},
		&product.OptionValue{},
		&transaction.PaymentType{},
		&transaction.Transaction{},
		&counter.CompanyCounter{},
		&kafka.OutboxEvent{},
	)
	if err != nil {
		return err
	}

	return transaction.NewPaymentTypeRepository(db).Seed(ctx, transaction.DefaultPaymentTypes)
}
