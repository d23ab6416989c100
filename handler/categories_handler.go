package handler

import (
	"errors"
	"fmt"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct {
	CategoryService *usecase.CategoryService
}

func NewCategoriesHandler(categoryService *usecase.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{CategoryService: categoryService}
}

// ListCategories returns all of the user's categories, unpaginated: the
// list is expected to stay small.
func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	userID := c.GetString("user_id")

	categories, err := h.CategoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "failed to list categories")
		return
	}

	utils.Success(c, dto.ToCategoryResponses(categories))
}

func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	category, err := h.CategoryService.CreateCategory(c.Request.Context(), userID, req.Name, req.Color)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateCategory) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "failed to create category")
		return
	}

	utils.Created(c, dto.ToCategoryResponse(category, 0))
}

func (h *CategoriesHandler) SeedDefaults(c *gin.Context) {
	userID := c.GetString("user_id")

	created, err := h.CategoryService.SeedDefaults(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "failed to seed default categories")
		return
	}

	responses := make([]dto.CategoryResponse, len(created))
	for i, category := range created {
		responses[i] = dto.ToCategoryResponse(category, 0)
	}

	utils.Success(c, dto.SeedDefaultsResponse{
		Message: fmt.Sprintf("Created %d default categories", len(created)),
		Created: responses,
	})
}

func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	userID := c.GetString("user_id")
	categoryID := c.Param("id")

	err := h.CategoryService.DeleteCategory(c.Request.Context(), categoryID, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.NotFound(c, "category not found")
			return
		}
		utils.InternalError(c, "failed to delete category")
		return
	}

	utils.NoContent(c)
}
