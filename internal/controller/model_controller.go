package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/service"
	"github.com/rs/zerolog/log"
)

type ModelController struct {
	predictionService service.PredictionService
}

func NewModelController(predictionService service.PredictionService) *ModelController {
	return &ModelController{predictionService: predictionService}
}

// Predict godoc
// @Summary Classify an uploaded traffic-sign photo
// @Description Runs one forward pass through the sign classifier and returns the top class with its confidence.
// @Tags Model
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to classify"
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse "Empty or undecodable image"
// @Failure 500 {object} dto.ErrorResponse
// @Router /model/predict [post]
func (c *ModelController) Predict(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	result, err := c.predictionService.Predict(data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListPredictions godoc
// @Summary List past classifications
// @Tags Model
// @Produce json
// @Success 200 {array} dto.PredictionRecordResponse
// @Router /model/predictions [get]
func (c *ModelController) ListPredictions(ctx *gin.Context) {
	records, err := c.predictionService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}
