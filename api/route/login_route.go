package route

import (
	"time"

	"github.com/fionaabad/AniMatch/api/controller"
	"github.com/fionaabad/AniMatch/bootstrap"
	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/mongo"
	"github.com/fionaabad/AniMatch/repository"
	"github.com/fionaabad/AniMatch/usecase"
	"github.com/gin-gonic/gin"
)

func NewLoginRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	lc := controller.NewLoginController(
		usecase.NewLoginUsecase(ur, env.AccessTokenSecret, env.AccessTokenExpiryHour, timeout),
	)
	group.POST("/login", lc.Login)
}
