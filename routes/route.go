package routes

import (
	"net/http"
	"sync"
	"time"

	"rwa-adapter/controllers"
	"rwa-adapter/database"
	"rwa-adapter/middlewares"
	"rwa-adapter/utility/cache"
	"rwa-adapter/utility/logger"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	httpSwagger "github.com/swaggo/http-swagger"
	validation "gopkg.in/go-playground/validator.v9"

	Config "rwa-adapter/config"
)

var (
	once sync.Once
)

// Register ... Adds router handle to general handler function
func Register(router *mux.Router, validator *validation.Validate, config Config.Data, db *gorm.DB, memoryCache *cache.Memory) {

	once.Do(func() {
		DB := database.Database{Config: config, DB: db}
		baseRepository := database.BaseRepository{Database: DB}
		marketRepository := database.MarketRepository{BaseRepository: baseRepository}

		controller := controllers.NewController(memoryCache, config, validator, &baseRepository)
		assetController := controllers.NewAssetController(memoryCache, config, validator, &marketRepository)
		portfolioController := controllers.NewPortfolioController(memoryCache, config, validator, &marketRepository)
		poolController := controllers.NewPoolController(memoryCache, config, validator, &marketRepository)
		marketplaceController := controllers.NewMarketplaceController(memoryCache, config, validator, &marketRepository)

		apiRouter := router.PathPrefix("").Subrouter()
		router.PathPrefix("/swagger").Handler(httpSwagger.WrapHandler)

		// General Routes
		apiRouter.HandleFunc("/ping", controller.Ping).Methods(http.MethodGet)

		var requestTimeout = time.Duration(config.RequestTimeout) * time.Second

		// Pledged Asset Routes
		apiRouter.HandleFunc("/assets/pledge", middlewares.NewMiddleware(config, assetController.PledgeAsset).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
		apiRouter.HandleFunc("/assets/{assetId}/tokenize", middlewares.NewMiddleware(config, assetController.TokenizeAsset).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
		apiRouter.HandleFunc("/users/{userId}/assets", middlewares.NewMiddleware(config, assetController.GetUserAssets).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)

		// Portfolio Routes
		apiRouter.HandleFunc("/users/{userId}/portfolio", middlewares.NewMiddleware(config, portfolioController.GetPortfolio).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/users/{userId}/dashboard", middlewares.NewMiddleware(config, portfolioController.GetDashboard).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)

		// Liquidity Pool Routes
		apiRouter.HandleFunc("/pools", middlewares.NewMiddleware(config, poolController.GetLiquidityPools).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/pools/{poolId}/metrics", middlewares.NewMiddleware(config, poolController.GetPoolMetrics).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/pools/{poolId}/liquidity", middlewares.NewMiddleware(config, poolController.AddLiquidity).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)

		// Marketplace Routes
		apiRouter.HandleFunc("/marketplace/listings", middlewares.NewMiddleware(config, marketplaceController.GetListings).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/marketplace/listings", middlewares.NewMiddleware(config, marketplaceController.CreateListing).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)

	})

	logger.Info("App routes registered successfully!")
}
