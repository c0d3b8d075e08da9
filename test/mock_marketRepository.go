package test

import (
	"time"

	"rwa-adapter/model"

	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
)

// mockMarketRepository ... Failing repository double for exercising the retry
// and degradation paths. Every call returns Err and increments Calls, except
// pool lookups which succeed when PoolRow is set.
type mockMarketRepository struct {
	Err     error
	PoolRow *model.LiquidityPool
	Calls   int
}

func (repo *mockMarketRepository) Get(id interface{}, out interface{}) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) GetByFieldName(field interface{}, out interface{}) error {
	repo.Calls++
	if pool, ok := out.(*model.LiquidityPool); ok && repo.PoolRow != nil {
		*pool = *repo.PoolRow
		return nil
	}
	return repo.Err
}

func (repo *mockMarketRepository) FetchByFieldName(field interface{}, out interface{}) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) Fetch(out interface{}) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) Create(record interface{}) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) Update(id interface{}, record interface{}) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) FindOrCreate(checkExistOrUpdate interface{}, record interface{}) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) UpdateOrCreate(checkExistOrUpdate interface{}, record interface{}, update interface{}) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) Db() *gorm.DB {
	return nil
}

func (repo *mockMarketRepository) FetchApprovedAssetsForUser(userID uuid.UUID, assets *[]model.UserAsset) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) FetchPositionsForUser(userID uuid.UUID, positions *[]model.LiquidityPosition) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) FetchPositionsForPool(poolID uuid.UUID, positions *[]model.LiquidityPosition) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) FetchCompletedBuyTransactions(userID uuid.UUID, transactions *[]model.Transaction) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) FetchRecentTokenTrades(tokenID uuid.UUID, since time.Time, limit int, transactions *[]model.Transaction) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) FetchPoolTransactionsFromDate(poolID uuid.UUID, since time.Time, transactions *[]model.Transaction) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) SumActiveListingSupply(tokenID uuid.UUID) (float64, error) {
	repo.Calls++
	return 0, repo.Err
}

func (repo *mockMarketRepository) FetchActivePools(pools *[]model.LiquidityPool) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) GetLatestSnapshotBefore(entityType string, entityID uuid.UUID, cutoff time.Time, snapshot *model.PriceSnapshot) error {
	repo.Calls++
	return repo.Err
}

func (repo *mockMarketRepository) FetchRecentActivities(userID uuid.UUID, limit int, activities *[]model.Activity) error {
	repo.Calls++
	return repo.Err
}
