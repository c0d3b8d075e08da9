package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"rwa-adapter/controllers"
	"rwa-adapter/model"

	"github.com/gorilla/mux"
	validation "gopkg.in/go-playground/validator.v9"
)

func (s *Suite) TestPingEndpoint() {
	request, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusOK, recorder.Code)
}

func (s *Suite) TestPledgeAssetEndpoint() {
	requestBody := []byte(fmt.Sprintf(`{
		"userId" : "%s",
		"assetType" : "Real Estate",
		"description" : "Villa on Palm Jumeirah",
		"estimatedValue" : "2500000",
		"location" : "Dubai",
		"size" : 3500,
		"propertyType" : "residential",
		"yearBuilt" : 2020
	}`, testUserId2))
	request, _ := http.NewRequest(http.MethodPost, "/assets/pledge", bytes.NewBuffer(requestBody))
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusCreated, recorder.Code)

	pledged := model.UserAsset{}
	s.Require().NoError(s.DB.Where("user_id = ?", testUserId2).First(&pledged).Error)
	s.Require().Equal(model.AssetStatus.UNDER_REVIEW, pledged.Status)
	s.Require().InDelta(2500000, pledged.EstimatedValue, 1e-6)

	activities := []model.Activity{}
	s.Require().NoError(s.DB.Where("user_id = ?", testUserId2).Find(&activities).Error)
	s.Require().NotEmpty(activities)
}

func (s *Suite) TestPledgeAssetEndpointRejectsBadValue() {
	requestBody := []byte(fmt.Sprintf(`{
		"userId" : "%s",
		"assetType" : "Real Estate",
		"description" : "Villa on Palm Jumeirah",
		"estimatedValue" : "not-a-number"
	}`, testUserId2))
	request, _ := http.NewRequest(http.MethodPost, "/assets/pledge", bytes.NewBuffer(requestBody))
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusBadRequest, recorder.Code)
}

func (s *Suite) TestTokenizeAssetEndpointRequiresApproval() {
	pledged := model.UserAsset{
		UserID:         testUserId2,
		AssetType:      "Real Estate",
		Description:    "Unreviewed warehouse",
		Location:       "London",
		Size:           2000,
		PropertyType:   "industrial",
		EstimatedValue: 900000,
		Status:         model.AssetStatus.UNDER_REVIEW,
	}
	s.Require().NoError(s.DB.Create(&pledged).Error)

	requestBody := []byte(`{"tokenName" : "London Warehouse", "tokenSymbol" : "LWH", "totalSupply" : 1000}`)
	request, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/assets/%s/tokenize", pledged.ID), bytes.NewBuffer(requestBody))
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusBadRequest, recorder.Code)
}

func (s *Suite) TestTokenizeAssetEndpoint() {
	requestBody := []byte(`{"tokenName" : "Gold Vault Share", "tokenSymbol" : "GVS", "totalSupply" : 2000}`)
	request, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/assets/%s/tokenize", testGoldAsset.ID), bytes.NewBuffer(requestBody))
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusCreated, recorder.Code)

	tokenized := model.UserAsset{}
	s.Require().NoError(s.DB.Where("id = ?", testGoldAsset.ID).First(&tokenized).Error)
	s.Require().Equal(model.AssetStatus.TOKENIZED, tokenized.Status)

	minted := model.Token{}
	s.Require().NoError(s.DB.Where("asset_id = ?", testGoldAsset.ID).First(&minted).Error)
	// 20000 gold value spread over 2000 units at neutral demand
	s.Require().InDelta(10, minted.PricePerToken, 1e-6)

	// tokenizing the same asset again conflicts
	retryRequest, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/assets/%s/tokenize", testGoldAsset.ID), bytes.NewBuffer(requestBody))
	retryRecorder := httptest.NewRecorder()
	s.Router.ServeHTTP(retryRecorder, retryRequest)
	s.Require().Equal(http.StatusConflict, retryRecorder.Code)
}

func (s *Suite) TestGetPortfolioEndpoint() {
	request, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/portfolio", testUserId1), nil)
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusOK, recorder.Code)

	responseBody := struct {
		Data model.PortfolioValuation `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &responseBody))
	s.Require().InDelta(3908000, responseBody.Data.TotalValue, 1e-6)
	s.Require().False(responseBody.Data.Degraded)
}

func (s *Suite) TestGetPortfolioEndpointSkipsSnapshotWhenDegraded() {
	failingRepository := &mockMarketRepository{Err: errors.New("connection refused")}
	portfolioController := controllers.NewPortfolioController(testCache, s.Config, validation.New(), failingRepository)

	router := mux.NewRouter()
	router.HandleFunc("/users/{userId}/portfolio", portfolioController.GetPortfolio).Methods(http.MethodGet)

	request, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/portfolio", testUserId1), nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusOK, recorder.Code)

	responseBody := struct {
		Data model.PortfolioValuation `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &responseBody))
	s.Require().True(responseBody.Data.Degraded)
	// both valuation attempts hit the repository, but no snapshot write followed them
	s.Require().Equal(2, failingRepository.Calls)
}

func (s *Suite) TestGetDashboardEndpoint() {
	request, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/dashboard", testUserId1), nil)
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusOK, recorder.Code)

	responseBody := struct {
		Data model.DashboardStats `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &responseBody))
	s.Require().Equal(2, responseBody.Data.AssetCount)
	s.Require().InDelta(3908000, responseBody.Data.TotalValue, 1e-6)
}

func (s *Suite) TestAddLiquidityEndpoint() {
	requestBody := []byte(fmt.Sprintf(`{"userId" : "%s", "amount" : "2500"}`, testUserId1))
	request, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/pools/%s/liquidity", testStablePool.ID), bytes.NewBuffer(requestBody))
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusCreated, recorder.Code)

	responseBody := struct {
		Data model.LiquidityMetrics `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &responseBody))
	s.Require().InDelta(2500, responseBody.Data.TotalLiquidity, 1e-6)
	s.Require().InDelta(2500, responseBody.Data.UserLiquidity, 1e-6)

	deposits := []model.Transaction{}
	s.Require().NoError(s.DB.Where("pool_id = ? AND transaction_type = ?",
		testStablePool.ID, model.TransactionType.LIQUIDITY_ADD).Find(&deposits).Error)
	s.Require().Len(deposits, 1)
}

func (s *Suite) TestAddLiquidityEndpointPoolNotFound() {
	requestBody := []byte(fmt.Sprintf(`{"userId" : "%s", "amount" : "2500"}`, testUserId1))
	request, _ := http.NewRequest(http.MethodPost, "/pools/11f5aa57-5b86-4bcd-8eed-1a8ad1b14350/liquidity", bytes.NewBuffer(requestBody))
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusNotFound, recorder.Code)
}

func (s *Suite) TestCreateAndGetListingsEndpoints() {
	requestBody := []byte(fmt.Sprintf(`{
		"tokenId" : "%s",
		"sellerId" : "%s",
		"amount" : "50",
		"pricePerToken" : "120"
	}`, testToken.ID, testUserId1))
	request, _ := http.NewRequest(http.MethodPost, "/marketplace/listings", bytes.NewBuffer(requestBody))
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusCreated, recorder.Code)

	listRequest, _ := http.NewRequest(http.MethodGet, "/marketplace/listings", nil)
	listRecorder := httptest.NewRecorder()
	s.Router.ServeHTTP(listRecorder, listRequest)
	s.Require().Equal(http.StatusOK, listRecorder.Code)

	responseBody := struct {
		Data []model.ListingView `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(listRecorder.Body.Bytes(), &responseBody))
	s.Require().Len(responseBody.Data, 1)
	s.Require().Equal("DMT", responseBody.Data[0].TokenSymbol)
	s.Require().InDelta(6000, responseBody.Data[0].TotalPrice, 1e-6)
	// no trade history yet, so the quoted price is the stored base price
	s.Require().Equal(testToken.PricePerToken, responseBody.Data[0].CurrentPrice)
}

func (s *Suite) TestGetLiquidityPoolsEndpoint() {
	request, _ := http.NewRequest(http.MethodGet, "/pools", nil)
	recorder := httptest.NewRecorder()

	s.Router.ServeHTTP(recorder, request)
	s.Require().Equal(http.StatusOK, recorder.Code)

	responseBody := struct {
		Data []model.PoolView `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &responseBody))
	s.Require().Len(responseBody.Data, 2)
}
