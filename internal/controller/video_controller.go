package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/service"
)

type VideoController struct {
	videoService service.VideoService
}

func NewVideoController(videoService service.VideoService) *VideoController {
	return &VideoController{videoService: videoService}
}

// List godoc
// @Summary List video lessons
// @Tags Videos
// @Produce json
// @Success 200 {array} dto.VideoResponse
// @Router /videos [get]
func (c *VideoController) List(ctx *gin.Context) {
	videos, err := c.videoService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

// Get godoc
// @Summary Get a video by id
// @Tags Videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} dto.VideoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /videos/{id} [get]
func (c *VideoController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	video, err := c.videoService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}

// Create godoc
// @Summary Add a video lesson
// @Tags Videos
// @Accept json
// @Produce json
// @Param video body dto.VideoCreateRequest true "Video"
// @Success 200 {object} dto.VideoResponse
// @Router /videos [post]
func (c *VideoController) Create(ctx *gin.Context) {
	var req dto.VideoCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	video, err := c.videoService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}

// Update godoc
// @Summary Replace a video's fields
// @Tags Videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param video body dto.VideoCreateRequest true "Video"
// @Success 200 {object} dto.VideoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /videos/{id} [put]
func (c *VideoController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.VideoCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	video, err := c.videoService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}

// Delete godoc
// @Summary Delete a video
// @Tags Videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /videos/{id} [delete]
func (c *VideoController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.videoService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}

// AddComment godoc
// @Summary Comment on a video
// @Tags Videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param comment body dto.VideoCommentRequest true "Comment"
// @Success 200 {object} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse "Video not found"
// @Router /videos/{id}/comment [post]
func (c *VideoController) AddComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.VideoCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	comment, err := c.videoService.AddComment(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// Like godoc
// @Summary Increment a video's like counter
// @Tags Videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} dto.VideoLikeResponse
// @Failure 404 {object} dto.ErrorResponse "Video not found"
// @Router /videos/{id}/like [post]
func (c *VideoController) Like(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	result, err := c.videoService.Like(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
