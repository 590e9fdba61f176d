package product

import (
	"context"
	"errors"

	producterrors "github.com/TheLeeJungYan/EINV-POS-API/internal/product/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=product_repo.go -destination=mock/product_repo_mock.go -package=mock

// Repository reads only active rows; gorm's DeletedAt filter is the single
// place that predicate lives.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Product) error
	CreateGroups(ctx context.Context, groups []OptionGroup) error
	CreateValues(ctx context.Context, values []OptionValue) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, companyID *uuid.UUID) ([]Product, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	UpdateGroup(ctx context.Context, id uuid.UUID, fields map[string]any) error
	UpdateValue(ctx context.Context, id uuid.UUID, fields map[string]any) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SoftDeleteGroups(ctx context.Context, ids []uuid.UUID) error
	SoftDeleteValues(ctx context.Context, ids []uuid.UUID) error
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

// Create inserts the product row only. Groups and values go through
// CreateGroups and CreateValues.
func (r *repository) Create(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *repository) CreateGroups(ctx context.Context, groups []OptionGroup) error {
	if len(groups) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&groups).Error
}

func (r *repository) CreateValues(ctx context.Context, values []OptionValue) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&values).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindForUpdate locks the product row until the surrounding transaction
// ends, serialising option tree edits on the same product.
func (r *repository) FindForUpdate(ctx context.Context, id uuid.UUID) (*Product, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *repository) find(db *gorm.DB, id uuid.UUID) (*Product, error) {
	var p Product
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, mapRepositoryError(err)
	}

	groups, err := r.loadTree(db.Session(&gorm.Session{NewDB: true}), []uuid.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	p.OptionGroups = groups[p.ID]
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context, companyID *uuid.UUID) ([]Product, error) {
	db := r.db.WithContext(ctx)
	if companyID != nil {
		db = db.Where("company_id = ?", *companyID)
	}

	var products []Product
	if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	groups, err := r.loadTree(r.db.WithContext(ctx), ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].OptionGroups = groups[products[i].ID]
	}
	return products, nil
}

// loadTree fetches the active groups of productIDs with their active values,
// both in submitted order.
func (r *repository) loadTree(db *gorm.DB, productIDs []uuid.UUID) (map[uuid.UUID][]OptionGroup, error) {
	var groups []OptionGroup
	err := db.
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("product_id IN ?", productIDs).
		Order("position").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]OptionGroup, len(productIDs))
	for _, g := range groups {
		out[g.ProductID] = append(out[g.ProductID], g)
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return producterrors.ErrProductNotFound
	}
	return nil
}

func (r *repository) UpdateGroup(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&OptionGroup{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repository) UpdateValue(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&OptionValue{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return producterrors.ErrProductNotFound
	}
	return nil
}

func (r *repository) SoftDeleteGroups(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&OptionGroup{}, "id IN ?", ids).Error
}

func (r *repository) SoftDeleteValues(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&OptionValue{}, "id IN ?", ids).Error
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return producterrors.ErrProductNotFound
	}
	return err
}
