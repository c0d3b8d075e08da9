package test

import (
	"time"

	"rwa-adapter/model"
	"rwa-adapter/services"
)

func (s *Suite) TestRealEstateValueDubaiCommercial() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	value := OracleService.CalculateRealEstateValue(model.RealEstateValuationRequest{
		Location:     "Dubai",
		Size:         5000,
		PropertyType: "commercial",
	})

	// 600 $/sqft * 1.2 commercial * 1.08 trend * 5000 sqft
	s.Require().InDelta(3888000, value, 1e-6)
}

func (s *Suite) TestRealEstateValueUnknownLocationUsesDefaults() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	value := OracleService.CalculateRealEstateValue(model.RealEstateValuationRequest{
		Location:     "Lagos",
		Size:         1000,
		PropertyType: "warehouse",
	})

	s.Require().InDelta(500000, value, 1e-6)
}

func (s *Suite) TestRealEstateValueAgeDepreciationIsFloored() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)
	OracleService.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	mildlyAged := OracleService.CalculateRealEstateValue(model.RealEstateValuationRequest{
		Location:     "Dubai",
		Size:         1000,
		PropertyType: "residential",
		YearBuilt:    2016,
	})
	// 10 years old, 10% depreciation
	s.Require().InDelta(600*0.9*1.08*1000, mildlyAged, 1e-6)

	heavilyAged := OracleService.CalculateRealEstateValue(model.RealEstateValuationRequest{
		Location:     "Dubai",
		Size:         1000,
		PropertyType: "residential",
		YearBuilt:    1950,
	})
	// 76 years old, depreciation floored at 30%
	s.Require().InDelta(600*0.7*1.08*1000, heavilyAged, 1e-6)
}

func (s *Suite) TestTokenPriceZeroSupply() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	s.Require().Equal(0.0, OracleService.CalculateTokenPrice(1000000, 0, 1.0))
	s.Require().Equal(0.0, OracleService.CalculateTokenPrice(1000000, -5, 1.0))
}

func (s *Suite) TestTokenPriceDemandMultiplierIsClamped() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	basePrice := 1000000.0 / 1000

	s.Require().InDelta(basePrice*2.0, OracleService.CalculateTokenPrice(1000000, 1000, 9.5), 1e-6)
	s.Require().InDelta(basePrice*0.5, OracleService.CalculateTokenPrice(1000000, 1000, 0.01), 1e-6)
	s.Require().InDelta(basePrice*1.3, OracleService.CalculateTokenPrice(1000000, 1000, 1.3), 1e-6)
}

func (s *Suite) TestPoolAPRZeroLiquidity() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	s.Require().Equal(0.0, OracleService.CalculatePoolAPR(0, 50000, 0.003, 1.0))
}

func (s *Suite) TestPoolAPRFormula() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	// 50000 * 0.003 * 365 / 100000 * 100 = 54.75
	s.Require().InDelta(54.75, OracleService.CalculatePoolAPR(100000, 50000, 0.003, 1.0), 1e-6)
	s.Require().InDelta(54.75*0.9, OracleService.CalculatePoolAPR(100000, 50000, 0.003, 0.9), 1e-6)
}

func (s *Suite) TestCommodityPriceFallsBackWhenFeedUnreachable() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	quote := OracleService.GetCommodityPrice("Gold")
	s.Require().Equal(2000.0, quote.Price)

	unknown := OracleService.GetCommodityPrice("unobtainium")
	s.Require().Equal(0.0, unknown.Price)
}

func (s *Suite) TestCryptoPriceFallsBackWhenFeedUnreachable() {
	OracleService := services.NewPriceOracleService(testCache, s.Config, &testMarketRepository)

	quote := OracleService.GetCryptoPrice("btc")
	s.Require().Equal(45000.0, quote.Price)
}
