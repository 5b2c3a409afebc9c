package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// List godoc
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /category [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// Get godoc
// @Summary Get a category by id
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /category/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	category, err := c.categoryService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Create godoc
// @Summary Create a category
// @Tags Category
// @Accept json
// @Produce json
// @Param category body dto.CategoryCreateRequest true "Category"
// @Success 200 {object} dto.CategoryResponse
// @Failure 409 {object} dto.ErrorResponse "Name already exists"
// @Router /category [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	category, err := c.categoryService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Update godoc
// @Summary Replace a category's fields
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body dto.CategoryCreateRequest true "Category"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /category/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CategoryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	category, err := c.categoryService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /category/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.categoryService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
