package controller

import (
	"errors"
	"net/http"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

type TrainController struct {
	TrainUsecase domain.TrainUsecase
}

func NewTrainController(uc domain.TrainUsecase) *TrainController {
	return &TrainController{TrainUsecase: uc}
}

// Train runs a full retrain synchronously and answers with the run summary.
// A rejected concurrent run leaves the current model untouched.
func (c *TrainController) Train(ctx *gin.Context) {
	summary, err := c.TrainUsecase.Train(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrTrainingInProgress) {
			ErrorResponse(ctx, http.StatusConflict, "TRAINING_IN_PROGRESS", "a training run is already active")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, "TRAIN_FAILED", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
