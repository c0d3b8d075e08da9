package test

import (
	"rwa-adapter/model"
	"rwa-adapter/tasks"
	"rwa-adapter/utility/constants"
)

func (s *Suite) TestRefreshSweepPersistsAssetValues() {
	tasks.RefreshAllMetrics(testCache, s.Config, &testMarketRepository)

	refreshed := model.UserAsset{}
	s.Require().NoError(s.DB.Where("id = ?", testRealEstateAsset.ID).First(&refreshed).Error)
	s.Require().InDelta(3888000, refreshed.CurrentValue, 1e-6)

	refreshedGold := model.UserAsset{}
	s.Require().NoError(s.DB.Where("id = ?", testGoldAsset.ID).First(&refreshedGold).Error)
	s.Require().InDelta(20000, refreshedGold.CurrentValue, 1e-6)
}

func (s *Suite) TestRefreshSweepRecordsSnapshots() {
	tasks.RefreshAllMetrics(testCache, s.Config, &testMarketRepository)

	tokenSnapshots := []model.PriceSnapshot{}
	s.Require().NoError(s.DB.Where("entity_type = ? AND entity_id = ?",
		constants.ENTITY_TOKEN, testToken.ID).Find(&tokenSnapshots).Error)
	s.Require().NotEmpty(tokenSnapshots)
	s.Require().InDelta(testToken.PricePerToken, tokenSnapshots[0].Value, 1e-6)

	poolSnapshots := []model.PriceSnapshot{}
	s.Require().NoError(s.DB.Where("entity_type = ?", constants.ENTITY_POOL).Find(&poolSnapshots).Error)
	s.Require().Len(poolSnapshots, 2)
}

func (s *Suite) TestRefreshSweepUpdatesPoolMetrics() {
	position := model.LiquidityPosition{UserID: testUserId1, PoolID: testMajorPool.ID, Amount: 1000}
	s.Require().NoError(s.DB.Create(&position).Error)
	trade := model.Transaction{
		UserID:            testUserId1,
		TransactionType:   model.TransactionType.BUY,
		TransactionStatus: model.TransactionStatus.COMPLETED,
		PoolID:            testMajorPool.ID,
		Amount:            2000,
		TotalValue:        2000,
	}
	s.Require().NoError(s.DB.Create(&trade).Error)

	tasks.RefreshAllMetrics(testCache, s.Config, &testMarketRepository)

	refreshed := model.LiquidityPool{}
	s.Require().NoError(s.DB.Where("id = ?", testMajorPool.ID).First(&refreshed).Error)
	s.Require().InDelta(1000, refreshed.TotalLiquidity, 1e-6)
	s.Require().InDelta(2000, refreshed.Volume24h, 1e-6)
	// BTC/ETH pair carries the 1.1 risk factor: 2000 * 0.003 * 365 / 1000 * 100 * 1.1
	s.Require().InDelta(240.9, refreshed.APR, 1e-6)
}
