package route

import (
	"net/http"
	"time"

	"github.com/fionaabad/AniMatch/api/middleware"
	"github.com/fionaabad/AniMatch/bootstrap"
	"github.com/fionaabad/AniMatch/mongo"
	"github.com/fionaabad/AniMatch/recommender"
	"github.com/fionaabad/AniMatch/repository"
	"github.com/fionaabad/AniMatch/usecase"
	"github.com/gin-gonic/gin"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	// The rating source, artifact store and model cache are shared between
	// the train path and the serve path: a finished train swaps the cache
	// snapshot that recommend reads.
	source := repository.NewCSVRatingRepository(env.DataDir)
	artifacts := repository.NewFileArtifactRepository(env.ModelsDir)
	cache := usecase.NewModelCache()

	recommendUsecase := usecase.NewRecommendUsecase(source, artifacts, cache, timeout)
	trainUsecase := usecase.NewTrainUsecase(source, artifacts, cache,
		recommender.FilterOptions{
			MinRatingsItem:    env.MinRatingsItem,
			MinRatingsUser:    env.MinRatingsUser,
			PowerUserQuantile: 0.99,
		},
		recommender.BuildOptions{
			MinPeriods: env.MinPeriodsCorr,
			Workers:    env.TrainWorkers,
		},
	)

	publicRouter := gin.Group("")
	publicRouter.GET("/health", healthCheck)
	NewSignupRouter(env, timeout, db, publicRouter)
	NewLoginRouter(env, timeout, db, publicRouter)
	NewCatalogRouter(recommendUsecase, publicRouter)

	protectedRouter := gin.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewRecommendRouter(recommendUsecase, protectedRouter)

	adminRouter := gin.Group("/admin")
	adminRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret), middleware.AdminOnly())
	NewTrainRouter(trainUsecase, adminRouter)
	NewUserRouter(env, timeout, db, adminRouter)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
