package controllers

import (
	"encoding/json"
	"net/http"

	"rwa-adapter/model"
	"rwa-adapter/services"
	"rwa-adapter/utility/appError"
	"rwa-adapter/utility/constants"
	"rwa-adapter/utility/errorcode"
	"rwa-adapter/utility/logger"
	"rwa-adapter/utility/response"

	"github.com/gorilla/mux"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

// GetLiquidityPools ... Returns all active pools, optionally annotated with the
// requesting user's share when a userId query parameter is supplied
func (controller *PoolController) GetLiquidityPools(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()

	userID := uuid.Nil
	if userParam := requestReader.URL.Query().Get("userId"); userParam != "" {
		id, err := uuid.FromString(userParam)
		if err != nil {
			ReturnError(responseWriter, "GetLiquidityPools", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
			return
		}
		userID = id
	}
	logger.Info("Incoming request details for GetLiquidityPools : userID : %v", userID)

	pools := []model.LiquidityPool{}
	if err := controller.Repository.FetchActivePools(&pools); err != nil {
		ReturnError(responseWriter, "GetLiquidityPools", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	poolViews := []model.PoolView{}
	for _, pool := range pools {
		view := model.PoolView{LiquidityPool: pool}
		metrics, err := CalculationService.CalculateLiquidityMetrics(pool.ID, userID)
		if err == nil && !metrics.Degraded {
			view.TotalLiquidity = metrics.TotalLiquidity
			view.APR = metrics.APR
			view.Volume24h = metrics.Volume24h
			view.Fees24h = metrics.Fees24h
			view.UserLiquidity = metrics.UserLiquidity
			view.UserFees24h = metrics.UserFees24h
		}
		poolViews = append(poolViews, view)
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, poolViews))
}

// GetPoolMetrics ... Returns the derived metrics for one pool, scoped to a user
// when a userId query parameter is supplied
func (controller *PoolController) GetPoolMetrics(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()

	routeParams := mux.Vars(requestReader)
	poolID, err := uuid.FromString(routeParams["poolId"])
	if err != nil {
		ReturnError(responseWriter, "GetPoolMetrics", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	userID := uuid.Nil
	if userParam := requestReader.URL.Query().Get("userId"); userParam != "" {
		id, err := uuid.FromString(userParam)
		if err != nil {
			ReturnError(responseWriter, "GetPoolMetrics", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
			return
		}
		userID = id
	}
	logger.Info("Incoming request details for GetPoolMetrics : poolID : %v, userID : %v", poolID, userID)

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	metrics, err := CalculationService.CalculateLiquidityMetrics(poolID, userID)
	if err != nil {
		if appError.IsNotFound(err) {
			ReturnError(responseWriter, "GetPoolMetrics", http.StatusNotFound, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.POOL_NOT_FOUND))
			return
		}
		ReturnError(responseWriter, "GetPoolMetrics", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, metrics))
}

// AddLiquidity ... Records a liquidity contribution to a pool and returns the
// pool's recomputed metrics
func (controller *PoolController) AddLiquidity(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()
	requestData := model.AddLiquidityRequest{}

	routeParams := mux.Vars(requestReader)
	poolID, err := uuid.FromString(routeParams["poolId"])
	if err != nil {
		ReturnError(responseWriter, "AddLiquidity", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}

	json.NewDecoder(requestReader.Body).Decode(&requestData)
	logger.Info("Incoming request details for AddLiquidity : poolID : %v, %+v", poolID, requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "AddLiquidity", http.StatusBadRequest, appError.Err{ErrType: errorcode.INPUT_ERR_CODE},
			apiResponse.ValidateError(errorcode.INPUT_ERR_CODE, errorcode.VALIDATION_ERR, validationErr))
		return
	}
	userID, err := uuid.FromString(requestData.UserID)
	if err != nil {
		ReturnError(responseWriter, "AddLiquidity", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	amountValue, err := decimal.NewFromString(requestData.Amount)
	if err != nil || !amountValue.IsPositive() {
		ReturnError(responseWriter, "AddLiquidity", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, "amount must be a positive number"))
		return
	}
	amount, _ := amountValue.Float64()

	pool := model.LiquidityPool{}
	if err := controller.Repository.GetByFieldName(&model.LiquidityPool{BaseModel: model.BaseModel{ID: poolID}}, &pool); err != nil {
		if appError.IsNotFound(err) {
			ReturnError(responseWriter, "AddLiquidity", http.StatusNotFound, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.POOL_NOT_FOUND))
			return
		}
		ReturnError(responseWriter, "AddLiquidity", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	position := model.LiquidityPosition{
		UserID:   userID,
		PoolID:   poolID,
		Amount:   amount,
		LpTokens: amount,
	}
	if err := controller.Repository.Create(&position); err != nil {
		ReturnError(responseWriter, "AddLiquidity", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	deposit := model.Transaction{
		UserID:            userID,
		TransactionType:   model.TransactionType.LIQUIDITY_ADD,
		TransactionStatus: model.TransactionStatus.COMPLETED,
		PoolID:            poolID,
		Amount:            amount,
		TotalValue:        amount,
	}
	if err := controller.Repository.Create(&deposit); err != nil {
		logger.Error("Error recording liquidity deposit for pool %v : %s", poolID, err)
	}
	activity := model.Activity{
		UserID:       userID,
		ActivityType: constants.ACTIVITY_ADD_LIQUIDITY,
		Description:  "Added liquidity to " + pool.Name,
		Amount:       amount,
		Status:       model.TransactionStatus.COMPLETED,
	}
	if err := controller.Repository.Create(&activity); err != nil {
		logger.Error("Error recording liquidity activity for user %v : %s", userID, err)
	}

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	metrics, err := CalculationService.CalculateLiquidityMetrics(poolID, userID)
	if err != nil {
		ReturnError(responseWriter, "AddLiquidity", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	logger.Info("Outgoing response to AddLiquidity request %+v", metrics)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusCreated)
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, metrics))
}
