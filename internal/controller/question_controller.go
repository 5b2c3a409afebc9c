package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/middleware"
	"github.com/melisbekov/pdd-api/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// List godoc
// @Summary List questions with optional filters
// @Tags Questions
// @Produce json
// @Param category query int false "Category ID filter"
// @Param difficulty query string false "Difficulty filter" Enums(easy, medium, advanced)
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} dto.QuestionResponse
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	var filter dto.QuestionFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters", Details: []string{err.Error()}})
		return
	}
	questions, err := c.questionService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary Get a question by id
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	question, err := c.questionService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Create godoc
// @Summary Create a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req dto.QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Update godoc
// @Summary Replace a question's fields
// @Tags Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Delete godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}

// ToggleFavorite godoc
// @Summary Toggle a question in the caller's favorites
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Security BearerAuth
// @Success 200 {object} dto.FavoriteToggleResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/favorite [post]
func (c *QuestionController) ToggleFavorite(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID := ctx.GetUint(middleware.UserIDKey)
	if userID == 0 {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
		return
	}

	result, err := c.questionService.ToggleFavorite(id, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
