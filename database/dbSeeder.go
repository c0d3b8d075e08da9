package database

import (
	"rwa-adapter/model"
	"rwa-adapter/utility/logger"
)

// DBSeeder .. This seeds the default liquidity pools into the database
func (database *Database) DBSeeder() {

	pools := []model.LiquidityPool{
		{Name: "USDC/USDT", TokenA: "USDC", TokenB: "USDT", FeeRate: 0.003, IsActive: true},
		{Name: "BTC/ETH", TokenA: "BTC", TokenB: "ETH", FeeRate: 0.003, IsActive: true},
		{Name: "GOLD/USDC", TokenA: "GOLD", TokenB: "USDC", FeeRate: 0.003, IsActive: true},
	}

	for _, pool := range pools {
		if err := database.DB.FirstOrCreate(&pool, model.LiquidityPool{Name: pool.Name}).Error; err != nil {
			logger.Error("Error with creating pool record %s : %s", pool.Name, err)
		}
	}
	logger.Info("Default liquidity pools seeded successfully")
}
