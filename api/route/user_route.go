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

func NewUserRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	uc := controller.NewUserController(usecase.NewUserListUsecase(ur, timeout))
	group.GET("/users", uc.ListUsers)
}
