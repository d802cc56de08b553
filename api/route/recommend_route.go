package route

import (
	"github.com/fionaabad/AniMatch/api/controller"
	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

func NewRecommendRouter(uc domain.RecommendUsecase, group *gin.RouterGroup) {
	rc := controller.NewRecommendController(uc)
	group.POST("/recommendations", rc.Recommend)
}
