package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/service"
)

type CommentController struct {
	commentService service.CommentService
}

func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// List godoc
// @Summary List comments
// @Tags Comment
// @Produce json
// @Success 200 {array} dto.CommentResponse
// @Router /comment [get]
func (c *CommentController) List(ctx *gin.Context) {
	comments, err := c.commentService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// Get godoc
// @Summary Get a comment by id
// @Tags Comment
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /comment/{id} [get]
func (c *CommentController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	comment, err := c.commentService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// Create godoc
// @Summary Create a comment, optionally attached to one parent
// @Tags Comment
// @Accept json
// @Produce json
// @Param comment body dto.CommentCreateRequest true "Comment"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse "More than one parent reference"
// @Router /comment [post]
func (c *CommentController) Create(ctx *gin.Context) {
	var req dto.CommentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	comment, err := c.commentService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// Update godoc
// @Summary Replace a comment's fields
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body dto.CommentCreateRequest true "Comment"
// @Success 200 {object} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /comment/{id} [put]
func (c *CommentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CommentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	comment, err := c.commentService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// Delete godoc
// @Summary Delete a comment
// @Tags Comment
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /comment/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.commentService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
