package test

import (
	"errors"
	"time"

	"rwa-adapter/model"
	"rwa-adapter/services"
	"rwa-adapter/utility/appError"
	"rwa-adapter/utility/constants"

	uuid "github.com/satori/go.uuid"
)

func (s *Suite) TestPortfolioValueAggregatesSeededAssets() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	valuation := CalculationService.CalculatePortfolioValue(testUserId1)

	// 3888000 real estate + 20000 gold at the fallback spot price
	s.Require().False(valuation.Degraded)
	s.Require().InDelta(3908000, valuation.TotalValue, 1e-6)
	s.Require().Len(valuation.AssetBreakdown, 2)

	percentageSum := 0.0
	for _, entry := range valuation.AssetBreakdown {
		percentageSum += entry.Percentage
	}
	s.Require().InDelta(100, percentageSum, 1e-6)

	// breakdown is ordered by value, largest first
	s.Require().Equal(constants.ASSET_TYPE_REAL_ESTATE, valuation.AssetBreakdown[0].AssetType)
	s.Require().InDelta(3888000, valuation.AssetBreakdown[0].Value, 1e-6)
	s.Require().Equal(constants.ASSET_TYPE_GOLD, valuation.AssetBreakdown[1].AssetType)
	s.Require().InDelta(20000, valuation.AssetBreakdown[1].Value, 1e-6)
}

func (s *Suite) TestPortfolioValueIncludesLiquidityAndTokenHoldings() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	position := model.LiquidityPosition{UserID: testUserId1, PoolID: testStablePool.ID, Amount: 10000}
	s.Require().NoError(s.DB.Create(&position).Error)

	purchase := model.Transaction{
		UserID:            testUserId1,
		TransactionType:   model.TransactionType.BUY,
		TransactionStatus: model.TransactionStatus.COMPLETED,
		TokenID:           testToken.ID,
		Amount:            50,
		Price:             100,
		TotalValue:        5000,
	}
	s.Require().NoError(s.DB.Create(&purchase).Error)

	valuation := CalculationService.CalculatePortfolioValue(testUserId1)

	s.Require().False(valuation.Degraded)
	s.Require().Len(valuation.AssetBreakdown, 4)

	byType := map[string]model.AssetBreakdownEntry{}
	for _, entry := range valuation.AssetBreakdown {
		byType[entry.AssetType] = entry
	}
	s.Require().InDelta(10000, byType[constants.BREAKDOWN_LIQUIDITY].Value, 1e-6)
	// 50 units at a 100 VWAP with the scarcity premium applied
	s.Require().InDelta(50*100*1.1, byType[constants.BREAKDOWN_TOKEN_HOLDINGS].Value, 1e-6)

	percentageSum := 0.0
	for _, entry := range valuation.AssetBreakdown {
		percentageSum += entry.Percentage
	}
	s.Require().InDelta(100, percentageSum, 1e-6)
}

func (s *Suite) TestPortfolioValueEmptyUser() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	valuation := CalculationService.CalculatePortfolioValue(testUserId2)

	s.Require().False(valuation.Degraded)
	s.Require().Equal(0.0, valuation.TotalValue)
	s.Require().Empty(valuation.AssetBreakdown)
	s.Require().Equal(0.0, valuation.Change24h)
}

func (s *Suite) TestPortfolioChange24hComesFromSnapshotHistory() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	snapshot := model.PriceSnapshot{
		EntityType: constants.ENTITY_PORTFOLIO,
		EntityID:   testUserId1,
		Value:      3908000 / 1.1,
		RecordedAt: time.Now().Add(-25 * time.Hour),
	}
	s.Require().NoError(s.DB.Create(&snapshot).Error)

	valuation := CalculationService.CalculatePortfolioValue(testUserId1)

	s.Require().InDelta(10, valuation.Change24h, 1e-6)
	s.Require().InDelta(3908000-3908000/1.1, valuation.ChangeAmount, 1e-6)
}

func (s *Suite) TestPortfolioValueDegradesAfterRetry() {
	failingRepository := &mockMarketRepository{Err: errors.New("connection refused")}
	CalculationService := services.NewCalculationService(testCache, s.Config, failingRepository)

	valuation := CalculationService.CalculatePortfolioValue(testUserId1)

	s.Require().True(valuation.Degraded)
	s.Require().Equal(0.0, valuation.TotalValue)
	s.Require().NotNil(valuation.AssetBreakdown)
	s.Require().Empty(valuation.AssetBreakdown)
	// the computation was attempted twice before degrading
	s.Require().Equal(2, failingRepository.Calls)
}

func (s *Suite) TestLiquidityMetricsPoolNotFound() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	missingPoolID := uuid.NewV4()
	_, err := CalculationService.CalculateLiquidityMetrics(missingPoolID, uuid.Nil)

	s.Require().Error(err)
	s.Require().True(appError.IsNotFound(err))
}

func (s *Suite) TestLiquidityMetricsEmptyPool() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	metrics, err := CalculationService.CalculateLiquidityMetrics(testMajorPool.ID, uuid.Nil)

	s.Require().NoError(err)
	s.Require().False(metrics.Degraded)
	s.Require().Equal(0.0, metrics.TotalLiquidity)
	s.Require().Equal(0.0, metrics.APR)
	s.Require().Equal(0.0, metrics.Fees24h)
}

func (s *Suite) TestLiquidityMetricsComputesAndPersists() {
	CalculationService := services.NewCalculationService(testCache, s.Config, &testMarketRepository)

	positions := []model.LiquidityPosition{
		{UserID: testUserId1, PoolID: testStablePool.ID, Amount: 600},
		{UserID: testUserId2, PoolID: testStablePool.ID, Amount: 400},
	}
	for i := range positions {
		s.Require().NoError(s.DB.Create(&positions[i]).Error)
	}
	trades := []model.Transaction{
		{UserID: testUserId1, TransactionType: model.TransactionType.BUY, TransactionStatus: model.TransactionStatus.COMPLETED, PoolID: testStablePool.ID, Amount: 500, TotalValue: 500},
		{UserID: testUserId2, TransactionType: model.TransactionType.SELL, TransactionStatus: model.TransactionStatus.COMPLETED, PoolID: testStablePool.ID, Amount: 500, TotalValue: 500},
	}
	for i := range trades {
		s.Require().NoError(s.DB.Create(&trades[i]).Error)
	}

	metrics, err := CalculationService.CalculateLiquidityMetrics(testStablePool.ID, testUserId1)

	s.Require().NoError(err)
	s.Require().False(metrics.Degraded)
	s.Require().InDelta(1000, metrics.TotalLiquidity, 1e-6)
	s.Require().InDelta(600, metrics.UserLiquidity, 1e-6)
	s.Require().InDelta(1000, metrics.Volume24h, 1e-6)
	s.Require().InDelta(3, metrics.Fees24h, 1e-6)
	s.Require().InDelta(1.8, metrics.UserFees24h, 1e-6)
	// stable pair carries the 0.9 risk factor: 1000 * 0.003 * 365 / 1000 * 100 * 0.9
	s.Require().InDelta(98.55, metrics.APR, 1e-6)

	persisted := model.LiquidityPool{}
	s.Require().NoError(s.DB.Where("id = ?", testStablePool.ID).First(&persisted).Error)
	s.Require().InDelta(1000, persisted.TotalLiquidity, 1e-6)
	s.Require().InDelta(98.55, persisted.APR, 1e-6)
	s.Require().InDelta(1000, persisted.Volume24h, 1e-6)
}

func (s *Suite) TestLiquidityMetricsDegradesOnTransientFailure() {
	failingRepository := &mockMarketRepository{
		Err:     errors.New("connection refused"),
		PoolRow: &model.LiquidityPool{Name: "USDC/USDT Stable Pool", FeeRate: 0.003},
	}
	CalculationService := services.NewCalculationService(testCache, s.Config, failingRepository)

	metrics, err := CalculationService.CalculateLiquidityMetrics(testStablePool.ID, uuid.Nil)

	s.Require().NoError(err)
	s.Require().True(metrics.Degraded)
	s.Require().Equal(0.0, metrics.TotalLiquidity)
}
