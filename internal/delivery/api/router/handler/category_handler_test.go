package handler

import (
	"net/http"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	mockUsecase "store/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCategoryHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockCategoryUsecase) {
	categoryUC := mockUsecase.NewMockCategoryUsecase(t)
	h := NewCategoryHandler(categoryUC)

	e := newTestEcho()
	e.GET("/api/categories/:id", h.GetCategory)
	e.POST("/api/categories", h.CreateCategory)
	e.PUT("/api/categories/:id", h.UpdateCategory)
	e.DELETE("/api/categories/:id", h.DeleteCategory)

	return e, categoryUC
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	e, categoryUC := createTestCategoryHandler(t)

	categoryUC.EXPECT().GetCategory(mock.Anything, int64(3)).Return(&entity.Category{
		ID:       3,
		Name:     "books",
		Products: []*entity.Product{{ID: 1, Name: "Book", Price: 20, Category: "books"}},
	}, nil)

	rec := serve(e, http.MethodGet, "/api/categories/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"books"`)
	assert.Contains(t, rec.Body.String(), `"products":[{"id":1`)
}

func TestCategoryHandler_GetCategory_NotFound(t *testing.T) {
	e, categoryUC := createTestCategoryHandler(t)

	categoryUC.EXPECT().GetCategory(mock.Anything, int64(9)).Return(nil, domainerrors.ErrCategoryNotFound)

	rec := serve(e, http.MethodGet, "/api/categories/9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	e, categoryUC := createTestCategoryHandler(t)

	categoryUC.EXPECT().CreateCategory(mock.Anything, "garden").Return(&entity.Category{ID: 4, Name: "garden"}, nil)

	rec := serve(e, http.MethodPost, "/api/categories", `{"name":"garden"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":4`)
}

func TestCategoryHandler_CreateCategory_BlankName(t *testing.T) {
	e, _ := createTestCategoryHandler(t)

	rec := serve(e, http.MethodPost, "/api/categories", `{"name":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"name": "notblank"}, decodeError(t, rec).Details)
}

func TestCategoryHandler_UpdateCategory_InvalidID(t *testing.T) {
	e, _ := createTestCategoryHandler(t)

	rec := serve(e, http.MethodPut, "/api/categories/abc", `{"name":"garden"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	e, categoryUC := createTestCategoryHandler(t)

	categoryUC.EXPECT().DeleteCategory(mock.Anything, int64(4)).Return(nil)

	rec := serve(e, http.MethodDelete, "/api/categories/4", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
