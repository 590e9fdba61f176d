package category

import (
	"context"
	"strings"
	"time"

	categoryerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/category/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=category_service.go -destination=mock/category_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	GetAll(ctx context.Context) ([]CategoryResponse, error)
	GetByID(ctx context.Context, id string) (CategoryResponse, error)
	Update(ctx context.Context, id string, req UpdateCategoryRequest) (CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("category.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("category.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CategoryResponse{}, categoryerrors.ErrEmptyName
	}

	c := &Category{
		ID:   uuid.New(),
		Name: name,
		Icon: req.Icon,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return CategoryResponse{}, err
	}

	s.logger.Info("category created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("category_id", c.ID.String()),
		zap.String("name", c.Name),
	)
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CategoryResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CategoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CategoryResponse{}, categoryerrors.ErrInvalidCategoryID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCategoryRequest) (CategoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CategoryResponse{}, categoryerrors.ErrInvalidCategoryID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return CategoryResponse{}, categoryerrors.ErrEmptyName
		}
		c.Name = name
	}
	if req.Icon != nil {
		c.Icon = req.Icon
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return CategoryResponse{}, err
	}
	return mapToResponse(*c), nil
}

// Delete is a soft delete; products keep their category text.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return categoryerrors.ErrInvalidCategoryID
	}
	return s.repo.Delete(ctx, id)
}

func mapToResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(list []Category) []CategoryResponse {
	res := make([]CategoryResponse, len(list))
	for i, c := range list {
		res[i] = mapToResponse(c)
	}
	return res
}
