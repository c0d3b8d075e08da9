package controllers

import (
	"encoding/json"
	"net/http"

	"rwa-adapter/config"
	"rwa-adapter/database"
	"rwa-adapter/utility/cache"
	"rwa-adapter/utility/logger"
	"rwa-adapter/utility/response"

	validation "gopkg.in/go-playground/validator.v9"
)

//Controller : Controller struct
type Controller struct {
	Cache      *cache.Memory
	Config     config.Data
	Validator  *validation.Validate
	Repository database.IRepository
}

//AssetController : Pledged asset controller struct
type AssetController struct {
	Cache      *cache.Memory
	Config     config.Data
	Validator  *validation.Validate
	Repository database.IMarketRepository
}

//PortfolioController : Portfolio read model controller struct
type PortfolioController struct {
	Cache      *cache.Memory
	Config     config.Data
	Validator  *validation.Validate
	Repository database.IMarketRepository
}

//PoolController : Liquidity pool controller struct
type PoolController struct {
	Cache      *cache.Memory
	Config     config.Data
	Validator  *validation.Validate
	Repository database.IMarketRepository
}

//MarketplaceController : Marketplace listing controller struct
type MarketplaceController struct {
	Cache      *cache.Memory
	Config     config.Data
	Validator  *validation.Validate
	Repository database.IMarketRepository
}

// NewController ... Create a new base controller instance
func NewController(memoryCache *cache.Memory, configData config.Data, validator *validation.Validate, repository database.IRepository) *Controller {
	return &Controller{Cache: memoryCache, Config: configData, Validator: validator, Repository: repository}
}

// NewAssetController ... Create a new pledged asset controller instance
func NewAssetController(memoryCache *cache.Memory, configData config.Data, validator *validation.Validate, repository database.IMarketRepository) *AssetController {
	return &AssetController{Cache: memoryCache, Config: configData, Validator: validator, Repository: repository}
}

// NewPortfolioController ... Create a new portfolio controller instance
func NewPortfolioController(memoryCache *cache.Memory, configData config.Data, validator *validation.Validate, repository database.IMarketRepository) *PortfolioController {
	return &PortfolioController{Cache: memoryCache, Config: configData, Validator: validator, Repository: repository}
}

// NewPoolController ... Create a new pool controller instance
func NewPoolController(memoryCache *cache.Memory, configData config.Data, validator *validation.Validate, repository database.IMarketRepository) *PoolController {
	return &PoolController{Cache: memoryCache, Config: configData, Validator: validator, Repository: repository}
}

// NewMarketplaceController ... Create a new marketplace controller instance
func NewMarketplaceController(memoryCache *cache.Memory, configData config.Data, validator *validation.Validate, repository database.IMarketRepository) *MarketplaceController {
	return &MarketplaceController{Cache: memoryCache, Config: configData, Validator: validator, Repository: repository}
}

//Ping : Ping function
func (controller *Controller) Ping(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()

	logger.Info("Ping request successful! Server is up and listening")

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(apiResponse.PlainSuccess("SUCCESS", "Ping request successful! Server is up and listening"))
}

// ValidateRequest ... Runs struct validation and maps failures to field messages
func ValidateRequest(validator *validation.Validate, requestData interface{}) []map[string]string {
	validationErrors := []map[string]string{}
	if err := validator.Struct(requestData); err != nil {
		for _, fieldErr := range err.(validation.ValidationErrors) {
			validationErrors = append(validationErrors, map[string]string{
				"field":   fieldErr.Field(),
				"message": fieldErr.Tag(),
			})
		}
	}
	return validationErrors
}

// ReturnError ... Logs and writes an error response for a failed request
func ReturnError(responseWriter http.ResponseWriter, action string, httpCode int, err error, responseBody interface{}) {
	logger.Error("Outgoing response to %s request : %s", action, err)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(httpCode)
	json.NewEncoder(responseWriter).Encode(responseBody)
}
