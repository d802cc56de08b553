package route

import (
	"github.com/fionaabad/AniMatch/api/controller"
	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

func NewCatalogRouter(uc domain.RecommendUsecase, group *gin.RouterGroup) {
	cc := controller.NewCatalogController(uc)
	group.GET("/exists-anime/:id", cc.Exists)
	group.GET("/resolve-anime", cc.Resolve)
}
