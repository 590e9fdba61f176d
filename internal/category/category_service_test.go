package category_test

import (
	"context"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/category"
	categoryerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/category/errors"
	categoryMock "github.com/TheLeeJungYan/EINV-POS-API/internal/category/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := categoryMock.NewMockRepository(ctrl)
	svc := category.NewService(repo)

	t.Run("trims and stores", func(t *testing.T) {
		icon := "burger.svg"
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *category.Category) error {
			assert.Equal(t, "Food", c.Name)
			assert.NotEqual(t, uuid.Nil, c.ID)
			return nil
		})

		res, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "  Food ", Icon: &icon})
		require.NoError(t, err)
		assert.Equal(t, "Food", res.Name)
		assert.Equal(t, &icon, res.Icon)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(categoryerrors.ErrCategoryExists)

		_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Food"})
		assert.ErrorIs(t, err, categoryerrors.ErrCategoryExists)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "   "})
		assert.ErrorIs(t, err, categoryerrors.ErrEmptyName)
	})
}

func TestCategoryService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := categoryMock.NewMockRepository(ctrl)
	svc := category.NewService(repo)

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&category.Category{ID: id, Name: "Food"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *category.Category) error {
		assert.Equal(t, "Drinks", c.Name)
		return nil
	})

	name := "Drinks"
	res, err := svc.Update(context.Background(), id.String(), category.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", res.Name)
}

func TestCategoryService_InvalidID(t *testing.T) {
	svc := category.NewService(categoryMock.NewMockRepository(gomock.NewController(t)))

	_, err := svc.GetByID(context.Background(), "abc")
	assert.ErrorIs(t, err, categoryerrors.ErrInvalidCategoryID)

	err = svc.Delete(context.Background(), "abc")
	assert.ErrorIs(t, err, categoryerrors.ErrInvalidCategoryID)
}

func TestCategoryService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := categoryMock.NewMockRepository(ctrl)
	svc := category.NewService(repo)

	repo.EXPECT().FindAll(gomock.Any()).Return([]category.Category{{ID: uuid.New(), Name: "Drinks"}, {ID: uuid.New(), Name: "Food"}}, nil)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Drinks", res[0].Name)
}
