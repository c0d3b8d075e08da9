package test

import (
	"rwa-adapter/model"
)

func (s *Suite) TestMigrationCreatesAllTables() {
	tables := []interface{}{
		&model.UserAsset{},
		&model.Token{},
		&model.Transaction{},
		&model.LiquidityPool{},
		&model.LiquidityPosition{},
		&model.MarketplaceListing{},
		&model.Activity{},
		&model.PriceSnapshot{},
	}
	for _, table := range tables {
		s.Require().True(s.DB.HasTable(table))
	}
}
