package handler

import (
	"net/http"

	"store/internal/delivery/api/response"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler holds dependencies for category-related handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

func NewCategoryHandler(categoryUC usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

type CategoryRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryUC.GetCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
