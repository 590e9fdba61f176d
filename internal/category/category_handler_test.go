package category_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/category"
	categoryerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/category/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCategoryService struct {
	CreateFn func(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error)
	GetAllFn func(ctx context.Context) ([]category.CategoryResponse, error)
}

func (f *fakeCategoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeCategoryService) GetAll(ctx context.Context) ([]category.CategoryResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeCategoryService) GetByID(ctx context.Context, id string) (category.CategoryResponse, error) {
	return category.CategoryResponse{}, categoryerrors.ErrCategoryNotFound
}
func (f *fakeCategoryService) Update(ctx context.Context, id string, req category.UpdateCategoryRequest) (category.CategoryResponse, error) {
	return category.CategoryResponse{}, categoryerrors.ErrCategoryNotFound
}
func (f *fakeCategoryService) Delete(ctx context.Context, id string) error {
	return categoryerrors.ErrCategoryNotFound
}

func TestCategoryHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		h := category.NewHandler(&fakeCategoryService{
			CreateFn: func(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
				return category.CategoryResponse{ID: "1", Name: req.Name}, nil
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Food"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h := category.NewHandler(&fakeCategoryService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		h := category.NewHandler(&fakeCategoryService{
			CreateFn: func(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
				return category.CategoryResponse{}, categoryerrors.ErrCategoryExists
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Food"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCategoryHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := category.NewHandler(&fakeCategoryService{
		GetAllFn: func(ctx context.Context) ([]category.CategoryResponse, error) {
			return []category.CategoryResponse{{ID: "1", Name: "Food"}}, nil
		},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/categories", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Food"`)
}

func TestCategoryHandler_Delete_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := category.NewHandler(&fakeCategoryService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/categories/x", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
