package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/service"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// List godoc
// @Summary List exams
// @Tags Exam
// @Produce json
// @Success 200 {array} dto.ExamResponse
// @Router /exam [get]
func (c *ExamController) List(ctx *gin.Context) {
	exams, err := c.examService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// Get godoc
// @Summary Get an exam by id
// @Tags Exam
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam/{id} [get]
func (c *ExamController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	exam, err := c.examService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// Create godoc
// @Summary Start an exam
// @Tags Exam
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateRequest true "Exam"
// @Success 200 {object} dto.ExamResponse
// @Router /exam [post]
func (c *ExamController) Create(ctx *gin.Context) {
	var req dto.ExamCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	exam, err := c.examService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// Update godoc
// @Summary Replace an exam's fields
// @Tags Exam
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param exam body dto.ExamCreateRequest true "Exam"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam/{id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ExamCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	exam, err := c.examService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// Delete godoc
// @Summary Delete an exam
// @Tags Exam
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam/{id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.examService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
