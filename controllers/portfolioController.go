package controllers

import (
	"encoding/json"
	"net/http"

	"rwa-adapter/model"
	"rwa-adapter/services"
	"rwa-adapter/utility/constants"
	"rwa-adapter/utility/errorcode"
	"rwa-adapter/utility/logger"
	"rwa-adapter/utility/response"

	"github.com/gorilla/mux"
	uuid "github.com/satori/go.uuid"
)

// GetPortfolio ... Returns the aggregate valuation of a user's holdings
func (controller *PortfolioController) GetPortfolio(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()

	routeParams := mux.Vars(requestReader)
	userID, err := uuid.FromString(routeParams["userId"])
	if err != nil {
		ReturnError(responseWriter, "GetPortfolio", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	logger.Info("Incoming request details for GetPortfolio : userID : %v", userID)

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	valuation := CalculationService.CalculatePortfolioValue(userID)
	if !valuation.Degraded {
		CalculationService.Snapshots.Record(constants.ENTITY_PORTFOLIO, userID, valuation.TotalValue)
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, valuation))
}

// GetDashboard ... Returns the headline numbers and recent activity for a user
func (controller *PortfolioController) GetDashboard(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()

	routeParams := mux.Vars(requestReader)
	userID, err := uuid.FromString(routeParams["userId"])
	if err != nil {
		ReturnError(responseWriter, "GetDashboard", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	logger.Info("Incoming request details for GetDashboard : userID : %v", userID)

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	valuation := CalculationService.CalculatePortfolioValue(userID)

	assets := []model.UserAsset{}
	if err := controller.Repository.FetchByFieldName(&model.UserAsset{UserID: userID}, &assets); err != nil {
		ReturnError(responseWriter, "GetDashboard", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	activities := []model.Activity{}
	if err := controller.Repository.FetchRecentActivities(userID, 10, &activities); err != nil {
		ReturnError(responseWriter, "GetDashboard", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	stats := model.DashboardStats{
		TotalValue:       valuation.TotalValue,
		Change24h:        valuation.Change24h,
		ChangeAmount:     valuation.ChangeAmount,
		AssetCount:       len(assets),
		RecentActivities: activities,
		Degraded:         valuation.Degraded,
	}
	for _, entry := range valuation.AssetBreakdown {
		switch entry.AssetType {
		case constants.BREAKDOWN_TOKEN_HOLDINGS:
			stats.TokenHoldings = entry.Value
		case constants.BREAKDOWN_LIQUIDITY:
			stats.LiquidityValue = entry.Value
		}
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, stats))
}
