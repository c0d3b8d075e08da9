package controllers

import (
	"encoding/json"
	"net/http"
	"time"

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

// PledgeAsset ... Creates a pledged asset record awaiting review
func (controller *AssetController) PledgeAsset(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()
	requestData := model.PledgeAssetRequest{}

	json.NewDecoder(requestReader.Body).Decode(&requestData)
	logger.Info("Incoming request details for PledgeAsset : %+v", requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "PledgeAsset", http.StatusBadRequest, appError.Err{ErrType: errorcode.INPUT_ERR_CODE},
			apiResponse.ValidateError(errorcode.INPUT_ERR_CODE, errorcode.VALIDATION_ERR, validationErr))
		return
	}

	userID, err := uuid.FromString(requestData.UserID)
	if err != nil {
		ReturnError(responseWriter, "PledgeAsset", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	estimatedValue, err := decimal.NewFromString(requestData.EstimatedValue)
	if err != nil || estimatedValue.IsNegative() {
		ReturnError(responseWriter, "PledgeAsset", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, "estimatedValue must be a non-negative number"))
		return
	}
	estimated, _ := estimatedValue.Float64()

	asset := model.UserAsset{
		UserID:         userID,
		AssetType:      requestData.AssetType,
		Description:    requestData.Description,
		Location:       requestData.Location,
		Size:           requestData.Size,
		PropertyType:   requestData.PropertyType,
		YearBuilt:      requestData.YearBuilt,
		Quantity:       requestData.Quantity,
		EstimatedValue: estimated,
		CurrentValue:   estimated,
		Status:         model.AssetStatus.UNDER_REVIEW,
		SubmittedAt:    time.Now(),
	}
	if err := controller.Repository.Create(&asset); err != nil {
		ReturnError(responseWriter, "PledgeAsset", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}
	controller.logActivity(userID, constants.ACTIVITY_PLEDGE, "Pledged "+asset.AssetType+" asset for review", estimated)

	logger.Info("Outgoing response to PledgeAsset request %+v", asset)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusCreated)
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, asset))
}

// TokenizeAsset ... Mints the token record representing an approved asset
func (controller *AssetController) TokenizeAsset(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()
	requestData := model.TokenizeAssetRequest{}

	routeParams := mux.Vars(requestReader)
	assetID, err := uuid.FromString(routeParams["assetId"])
	if err != nil {
		ReturnError(responseWriter, "TokenizeAsset", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}

	json.NewDecoder(requestReader.Body).Decode(&requestData)
	logger.Info("Incoming request details for TokenizeAsset : assetID : %v, %+v", assetID, requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "TokenizeAsset", http.StatusBadRequest, appError.Err{ErrType: errorcode.INPUT_ERR_CODE},
			apiResponse.ValidateError(errorcode.INPUT_ERR_CODE, errorcode.VALIDATION_ERR, validationErr))
		return
	}

	asset := model.UserAsset{}
	if err := controller.Repository.GetByFieldName(&model.UserAsset{BaseModel: model.BaseModel{ID: assetID}}, &asset); err != nil {
		if appError.IsNotFound(err) {
			ReturnError(responseWriter, "TokenizeAsset", http.StatusNotFound, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.ASSET_NOT_FOUND))
			return
		}
		ReturnError(responseWriter, "TokenizeAsset", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}
	if asset.Status == model.AssetStatus.TOKENIZED {
		ReturnError(responseWriter, "TokenizeAsset", http.StatusConflict, appError.Err{ErrType: errorcode.INPUT_ERR_CODE},
			apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.ASSET_TOKENIZED))
		return
	}
	if asset.Status != model.AssetStatus.APPROVED {
		ReturnError(responseWriter, "TokenizeAsset", http.StatusBadRequest, appError.Err{ErrType: errorcode.INPUT_ERR_CODE},
			apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.ASSET_NOT_APPROVED))
		return
	}

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	assetValue := CalculationService.GetAssetCurrentValue(asset)
	initialPrice := CalculationService.Oracle.CalculateTokenPrice(assetValue, requestData.TotalSupply, 1.0)

	token := model.Token{
		AssetID:       assetID,
		TokenName:     requestData.TokenName,
		TokenSymbol:   requestData.TokenSymbol,
		TotalSupply:   requestData.TotalSupply,
		PricePerToken: initialPrice,
		Fractional:    requestData.Fractional,
		TokenType:     requestData.TokenType,
	}
	if err := controller.Repository.Create(&token); err != nil {
		ReturnError(responseWriter, "TokenizeAsset", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}
	if err := controller.Repository.Update(&model.UserAsset{BaseModel: model.BaseModel{ID: assetID}},
		map[string]interface{}{"status": model.AssetStatus.TOKENIZED, "token_id": token.ID}); err != nil {
		ReturnError(responseWriter, "TokenizeAsset", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}
	mint := model.Transaction{
		UserID:            asset.UserID,
		TransactionType:   model.TransactionType.MINT,
		TransactionStatus: model.TransactionStatus.COMPLETED,
		TokenID:           token.ID,
		Amount:            requestData.TotalSupply,
		Price:             initialPrice,
		TotalValue:        assetValue,
	}
	if err := controller.Repository.Create(&mint); err != nil {
		logger.Error("Error recording mint transaction for token %v : %s", token.ID, err)
	}
	controller.logActivity(asset.UserID, constants.ACTIVITY_TOKENIZE, "Minted "+token.TokenSymbol+" for "+asset.AssetType+" asset", assetValue)

	logger.Info("Outgoing response to TokenizeAsset request %+v", token)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusCreated)
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, token))
}

// GetUserAssets ... Returns all pledged assets for a user with live current values
func (controller *AssetController) GetUserAssets(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()

	routeParams := mux.Vars(requestReader)
	userID, err := uuid.FromString(routeParams["userId"])
	if err != nil {
		ReturnError(responseWriter, "GetUserAssets", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	logger.Info("Incoming request details for GetUserAssets : userID : %v", userID)

	assets := []model.UserAsset{}
	if err := controller.Repository.FetchByFieldName(&model.UserAsset{UserID: userID}, &assets); err != nil {
		ReturnError(responseWriter, "GetUserAssets", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	for i := range assets {
		if assets[i].Status == model.AssetStatus.APPROVED || assets[i].Status == model.AssetStatus.TOKENIZED {
			assets[i].CurrentValue = CalculationService.GetAssetCurrentValue(assets[i])
		}
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, assets))
}

func (controller *AssetController) logActivity(userID uuid.UUID, activityType string, description string, amount float64) {
	activity := model.Activity{
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		Amount:       amount,
		Status:       model.TransactionStatus.COMPLETED,
	}
	if err := controller.Repository.Create(&activity); err != nil {
		logger.Error("Error recording %s activity for user %v : %s", activityType, userID, err)
	}
}
