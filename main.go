package main

import (
	"log"
	"net/http"
	"time"

	Config "rwa-adapter/config"
	"rwa-adapter/database"
	"rwa-adapter/migration"
	"rwa-adapter/routes"
	"rwa-adapter/tasks"
	"rwa-adapter/utility/cache"
	"rwa-adapter/utility/logger"

	"github.com/gorilla/mux"
	validation "gopkg.in/go-playground/validator.v9"
)

func main() {
	config := Config.Data{}
	config.Init("")

	router := mux.NewRouter()
	validator := validation.New()

	Database := &database.Database{
		Config: config,
	}
	migration.RunDbMigrations(config)

	Database.LoadDBInstance()
	defer Database.CloseDBInstance()
	Database.RunDbMigrations()
	Database.DBSeeder()

	purgeInterval := time.Duration(config.PurgeCacheInterval) * time.Second
	cacheDuration := time.Duration(config.ExpireCacheDuration) * time.Second
	memoryCache := cache.Initialize(cacheDuration, purgeInterval)

	routes.Register(router, validator, config, Database.DB, memoryCache)

	baseRepository := database.BaseRepository{Database: *Database}
	marketRepository := database.MarketRepository{BaseRepository: baseRepository}
	tasks.ExecuteRefreshCronJob(memoryCache, config, &marketRepository)

	serviceAddress := ":" + config.AppPort
	logger.Info("Server started and listening on port %s", config.AppPort)
	log.Fatal(http.ListenAndServe(serviceAddress, router))
}
