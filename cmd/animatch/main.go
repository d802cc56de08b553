package main

import (
	"log"
	"time"

	"github.com/fionaabad/AniMatch/api/route"
	"github.com/fionaabad/AniMatch/bootstrap"
	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/mongo"
	"github.com/gin-gonic/gin"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.DBName)
	mongo.EnsureUserIndexes(db, domain.CollectionUser)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()
	route.Setup(env, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal(err)
	}
}
