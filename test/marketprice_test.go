package test

import (
	"rwa-adapter/model"
	"rwa-adapter/services"

	uuid "github.com/satori/go.uuid"
)

func (s *Suite) createTokenTrade(price float64, amount float64) {
	trade := model.Transaction{
		UserID:            testUserId2,
		TransactionType:   model.TransactionType.BUY,
		TransactionStatus: model.TransactionStatus.COMPLETED,
		TokenID:           testToken.ID,
		Amount:            amount,
		Price:             price,
		TotalValue:        price * amount,
	}
	s.Require().NoError(s.DB.Create(&trade).Error)
}

func (s *Suite) createActiveListing(amount float64) {
	listing := model.MarketplaceListing{
		TokenID:       testToken.ID,
		SellerID:      testUserId2,
		Amount:        amount,
		PricePerToken: 100,
		TotalPrice:    100 * amount,
		Status:        model.ListingStatus.ACTIVE,
	}
	s.Require().NoError(s.DB.Create(&listing).Error)
}

func (s *Suite) TestMarketPriceMissingTokenReturnsOne() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	missingTokenID := uuid.NewV4()
	s.Require().Equal(1.0, CalculationService.CalculateMarketPrice(missingTokenID))
}

func (s *Suite) TestMarketPriceNoTradesReturnsBasePrice() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	price := CalculationService.CalculateMarketPrice(testToken.ID)
	s.Require().Equal(testToken.PricePerToken, price)

	// recomputing without new trades does not drift
	s.Require().Equal(price, CalculationService.CalculateMarketPrice(testToken.ID))
}

func (s *Suite) TestMarketPriceVolumeWeightedAverage() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	s.createTokenTrade(10, 100)
	s.createTokenTrade(20, 300)
	s.createActiveListing(5000)

	// (10*100 + 20*300) / 400 = 17.5, no supply adjustment at 5000 listed units
	s.Require().InDelta(17.5, CalculationService.CalculateMarketPrice(testToken.ID), 1e-6)
}

func (s *Suite) TestMarketPriceScarcityPremium() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	s.createTokenTrade(10, 100)
	s.createActiveListing(99)

	s.Require().InDelta(10*1.1, CalculationService.CalculateMarketPrice(testToken.ID), 1e-6)
}

func (s *Suite) TestMarketPriceNoPremiumAtScarcityBoundary() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	s.createTokenTrade(10, 100)
	s.createActiveListing(100)

	s.Require().InDelta(10, CalculationService.CalculateMarketPrice(testToken.ID), 1e-6)
}

func (s *Suite) TestMarketPriceSaturationDiscount() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	s.createTokenTrade(10, 100)
	s.createActiveListing(10001)

	s.Require().InDelta(10*0.95, CalculationService.CalculateMarketPrice(testToken.ID), 1e-6)
}

func (s *Suite) TestMarketPriceIgnoresCancelledListings() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	s.createTokenTrade(10, 100)
	listing := model.MarketplaceListing{
		TokenID:       testToken.ID,
		SellerID:      testUserId2,
		Amount:        20000,
		PricePerToken: 100,
		Status:        model.ListingStatus.CANCELLED,
	}
	s.Require().NoError(s.DB.Create(&listing).Error)

	// only the empty active book counts, so the scarcity premium applies
	s.Require().InDelta(10*1.1, CalculationService.CalculateMarketPrice(testToken.ID), 1e-6)
}
