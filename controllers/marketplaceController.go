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

	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

// GetListings ... Returns active marketplace listings annotated with live pricing
func (controller *MarketplaceController) GetListings(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()

	listings := []model.MarketplaceListing{}
	if err := controller.Repository.FetchByFieldName(&model.MarketplaceListing{Status: model.ListingStatus.ACTIVE}, &listings); err != nil {
		ReturnError(responseWriter, "GetListings", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	CalculationService := services.NewCalculationService(controller.Cache, controller.Config, controller.Repository)
	listingViews := []model.ListingView{}
	for _, listing := range listings {
		view := model.ListingView{MarketplaceListing: listing}

		token := model.Token{}
		if err := controller.Repository.GetByFieldName(&model.Token{BaseModel: model.BaseModel{ID: listing.TokenID}}, &token); err != nil {
			logger.Warning("Listing %v references missing token %v : %s", listing.ID, listing.TokenID, err)
			listingViews = append(listingViews, view)
			continue
		}
		view.TokenName = token.TokenName
		view.TokenSymbol = token.TokenSymbol

		currentPrice := CalculationService.CalculateMarketPrice(token.ID)
		view.CurrentPrice = currentPrice
		view.Change24h, _ = CalculationService.Snapshots.ChangeOver24h(constants.ENTITY_TOKEN, token.ID, currentPrice)

		asset := model.UserAsset{}
		if err := controller.Repository.GetByFieldName(&model.UserAsset{BaseModel: model.BaseModel{ID: token.AssetID}}, &asset); err == nil && token.TotalSupply > 0 {
			view.Nav = CalculationService.GetAssetCurrentValue(asset) / token.TotalSupply
		}

		since := time.Now().Add(-24 * time.Hour)
		trades := []model.Transaction{}
		if err := controller.Repository.FetchRecentTokenTrades(token.ID, since, -1, &trades); err == nil {
			for _, trade := range trades {
				view.Liquidity += trade.TotalValue
			}
		}

		listingViews = append(listingViews, view)
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, listingViews))
}

// CreateListing ... Places token units for sale on the marketplace
func (controller *MarketplaceController) CreateListing(responseWriter http.ResponseWriter, requestReader *http.Request) {
	apiResponse := response.New()
	requestData := model.CreateListingRequest{}

	json.NewDecoder(requestReader.Body).Decode(&requestData)
	logger.Info("Incoming request details for CreateListing : %+v", requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "CreateListing", http.StatusBadRequest, appError.Err{ErrType: errorcode.INPUT_ERR_CODE},
			apiResponse.ValidateError(errorcode.INPUT_ERR_CODE, errorcode.VALIDATION_ERR, validationErr))
		return
	}

	tokenID, err := uuid.FromString(requestData.TokenID)
	if err != nil {
		ReturnError(responseWriter, "CreateListing", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	sellerID, err := uuid.FromString(requestData.SellerID)
	if err != nil {
		ReturnError(responseWriter, "CreateListing", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.UUID_CAST_ERR))
		return
	}
	amountValue, err := decimal.NewFromString(requestData.Amount)
	if err != nil || !amountValue.IsPositive() {
		ReturnError(responseWriter, "CreateListing", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, "amount must be a positive number"))
		return
	}
	priceValue, err := decimal.NewFromString(requestData.PricePerToken)
	if err != nil || !priceValue.IsPositive() {
		ReturnError(responseWriter, "CreateListing", http.StatusBadRequest, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, "pricePerToken must be a positive number"))
		return
	}

	token := model.Token{}
	if err := controller.Repository.GetByFieldName(&model.Token{BaseModel: model.BaseModel{ID: tokenID}}, &token); err != nil {
		if appError.IsNotFound(err) {
			ReturnError(responseWriter, "CreateListing", http.StatusNotFound, err, apiResponse.PlainError(errorcode.INPUT_ERR_CODE, errorcode.TOKEN_NOT_FOUND))
			return
		}
		ReturnError(responseWriter, "CreateListing", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	amount, _ := amountValue.Float64()
	pricePerToken, _ := priceValue.Float64()

	listing := model.MarketplaceListing{
		TokenID:       tokenID,
		SellerID:      sellerID,
		Amount:        amount,
		PricePerToken: pricePerToken,
		TotalPrice:    amount * pricePerToken,
		Status:        model.ListingStatus.ACTIVE,
	}
	if err := controller.Repository.Create(&listing); err != nil {
		ReturnError(responseWriter, "CreateListing", http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
		return
	}

	activity := model.Activity{
		UserID:       sellerID,
		ActivityType: constants.ACTIVITY_LISTING,
		Description:  "Listed " + token.TokenSymbol + " on the marketplace",
		Amount:       listing.TotalPrice,
		Status:       model.TransactionStatus.COMPLETED,
	}
	if err := controller.Repository.Create(&activity); err != nil {
		logger.Error("Error recording listing activity for user %v : %s", sellerID, err)
	}

	logger.Info("Outgoing response to CreateListing request %+v", listing)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusCreated)
	json.NewEncoder(responseWriter).Encode(apiResponse.Successful("SUCCESS", errorcode.SUCCESS, listing))
}
