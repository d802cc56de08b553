package route

import (
	"github.com/fionaabad/AniMatch/api/controller"
	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

func NewTrainRouter(uc domain.TrainUsecase, group *gin.RouterGroup) {
	tc := controller.NewTrainController(uc)
	group.POST("/train", tc.Train)
}
