package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/service"
)

type LikeController struct {
	likeService service.LikeService
}

func NewLikeController(likeService service.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// List godoc
// @Summary List likes
// @Tags Like
// @Produce json
// @Success 200 {array} dto.LikeResponse
// @Router /like [get]
func (c *LikeController) List(ctx *gin.Context) {
	likes, err := c.likeService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, likes)
}

// Get godoc
// @Summary Get a like by id
// @Tags Like
// @Produce json
// @Param id path int true "Like ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /like/{id} [get]
func (c *LikeController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	like, err := c.likeService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, like)
}

// Create godoc
// @Summary Create a like, optionally attached to one parent
// @Tags Like
// @Accept json
// @Produce json
// @Param like body dto.LikeCreateRequest true "Like"
// @Success 200 {object} dto.LikeResponse
// @Failure 400 {object} dto.ErrorResponse "More than one parent reference"
// @Router /like [post]
func (c *LikeController) Create(ctx *gin.Context) {
	var req dto.LikeCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	like, err := c.likeService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, like)
}

// Delete godoc
// @Summary Delete a like
// @Tags Like
// @Produce json
// @Param id path int true "Like ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /like/{id} [delete]
func (c *LikeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.likeService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
