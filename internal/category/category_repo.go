package category

import (
	"context"
	"errors"

	categoryerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/category/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=category_repo.go -destination=mock/category_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Category) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(c).Error)
}

func (r *repository) FindAll(ctx context.Context) ([]Category, error) {
	var list []Category
	err := r.db.WithContext(ctx).Order("name").Find(&list).Error
	return list, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Category, error) {
	var c Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Category) error {
	return mapRepositoryError(r.db.WithContext(ctx).Save(c).Error)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return categoryerrors.ErrCategoryNotFound
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return categoryerrors.ErrCategoryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_categories_name" {
		return categoryerrors.ErrCategoryExists
	}

	return err
}
