package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/service"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// ListByQuestion godoc
// @Summary List answer options for a question
// @Tags AnswerOptions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {array} dto.AnswerOptionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /answers/{id} [get]
func (c *AnswerController) ListByQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	options, err := c.answerService.ListByQuestion(questionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, options)
}

// Create godoc
// @Summary Add an answer option to a question
// @Tags AnswerOptions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param answer body dto.AnswerOptionCreateRequest true "Answer option"
// @Success 200 {object} dto.AnswerOptionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /answers/{id} [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AnswerOptionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	option, err := c.answerService.Create(questionID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, option)
}

// Update godoc
// @Summary Replace an answer option
// @Tags AnswerOptions
// @Accept json
// @Produce json
// @Param id path int true "Answer option ID"
// @Param answer body dto.AnswerOptionCreateRequest true "Answer option"
// @Success 200 {object} dto.AnswerOptionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /answers/{id} [put]
func (c *AnswerController) Update(ctx *gin.Context) {
	answerID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AnswerOptionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	option, err := c.answerService.Update(answerID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, option)
}

// Delete godoc
// @Summary Delete an answer option
// @Tags AnswerOptions
// @Produce json
// @Param id path int true "Answer option ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /answers/{id} [delete]
func (c *AnswerController) Delete(ctx *gin.Context) {
	answerID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.answerService.Delete(answerID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
