package database

import (
	"rwa-adapter/model"
)

// RunDbMigrations ... This creates corresponding tables for models on the db and watches them for field additions
func (database *Database) RunDbMigrations() {
	database.DB.AutoMigrate(&model.UserAsset{}, &model.Token{}, &model.Transaction{}, &model.LiquidityPool{},
		&model.LiquidityPosition{}, &model.MarketplaceListing{}, &model.Activity{}, &model.PriceSnapshot{})
	database.DB.Model(&model.Token{}).AddForeignKey("asset_id", "user_assets(id)", "CASCADE", "CASCADE")
	database.DB.Model(&model.LiquidityPosition{}).AddForeignKey("pool_id", "liquidity_pools(id)", "CASCADE", "CASCADE")
}
