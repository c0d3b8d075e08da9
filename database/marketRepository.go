package database

import (
	"time"

	"rwa-adapter/model"
	"rwa-adapter/utility/logger"

	uuid "github.com/satori/go.uuid"
)

// IMarketRepository ... Interface definition for market data repository
type IMarketRepository interface {
	IRepository
	FetchApprovedAssetsForUser(userID uuid.UUID, assets *[]model.UserAsset) error
	FetchPositionsForUser(userID uuid.UUID, positions *[]model.LiquidityPosition) error
	FetchPositionsForPool(poolID uuid.UUID, positions *[]model.LiquidityPosition) error
	FetchCompletedBuyTransactions(userID uuid.UUID, transactions *[]model.Transaction) error
	FetchRecentTokenTrades(tokenID uuid.UUID, since time.Time, limit int, transactions *[]model.Transaction) error
	FetchPoolTransactionsFromDate(poolID uuid.UUID, since time.Time, transactions *[]model.Transaction) error
	SumActiveListingSupply(tokenID uuid.UUID) (float64, error)
	FetchActivePools(pools *[]model.LiquidityPool) error
	GetLatestSnapshotBefore(entityType string, entityID uuid.UUID, cutoff time.Time, snapshot *model.PriceSnapshot) error
	FetchRecentActivities(userID uuid.UUID, limit int, activities *[]model.Activity) error
}

// MarketRepository ... Repository over the rows the valuation engine reads
type MarketRepository struct {
	BaseRepository
}

// FetchApprovedAssetsForUser ... Retrieves a user's approved and tokenized pledged assets
func (repo *MarketRepository) FetchApprovedAssetsForUser(userID uuid.UUID, assets *[]model.UserAsset) error {
	if err := repo.DB.Where("user_id = ? AND status IN (?)", userID,
		[]string{model.AssetStatus.APPROVED, model.AssetStatus.TOKENIZED}).Find(assets).Error; err != nil {
		logger.Error("Error with repository FetchApprovedAssetsForUser : %s", err)
		return repoError(err)
	}
	return nil
}

// FetchPositionsForUser ... Retrieves all liquidity positions held by a user
func (repo *MarketRepository) FetchPositionsForUser(userID uuid.UUID, positions *[]model.LiquidityPosition) error {
	if err := repo.DB.Where(model.LiquidityPosition{UserID: userID}).Find(positions).Error; err != nil {
		logger.Error("Error with repository FetchPositionsForUser : %s", err)
		return repoError(err)
	}
	return nil
}

// FetchPositionsForPool ... Retrieves all positions contributed to a pool
func (repo *MarketRepository) FetchPositionsForPool(poolID uuid.UUID, positions *[]model.LiquidityPosition) error {
	if err := repo.DB.Where(model.LiquidityPosition{PoolID: poolID}).Find(positions).Error; err != nil {
		logger.Error("Error with repository FetchPositionsForPool : %s", err)
		return repoError(err)
	}
	return nil
}

// FetchCompletedBuyTransactions ... Retrieves a user's completed token purchases
func (repo *MarketRepository) FetchCompletedBuyTransactions(userID uuid.UUID, transactions *[]model.Transaction) error {
	if err := repo.DB.Where(model.Transaction{
		UserID:            userID,
		TransactionType:   model.TransactionType.BUY,
		TransactionStatus: model.TransactionStatus.COMPLETED,
	}).Find(transactions).Error; err != nil {
		logger.Error("Error with repository FetchCompletedBuyTransactions : %s", err)
		return repoError(err)
	}
	return nil
}

// FetchRecentTokenTrades ... Retrieves the most recent completed trades for a token
// within a window. A non-positive limit fetches the whole window.
func (repo *MarketRepository) FetchRecentTokenTrades(tokenID uuid.UUID, since time.Time, limit int, transactions *[]model.Transaction) error {
	query := repo.DB.Where("token_id = ? AND transaction_status = ? AND created_at > ?",
		tokenID, model.TransactionStatus.COMPLETED, since).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(transactions).Error; err != nil {
		logger.Error("Error with repository FetchRecentTokenTrades : %s", err)
		return repoError(err)
	}
	return nil
}

// FetchPoolTransactionsFromDate ... Retrieves completed transactions recorded against a pool since a date
func (repo *MarketRepository) FetchPoolTransactionsFromDate(poolID uuid.UUID, since time.Time, transactions *[]model.Transaction) error {
	if err := repo.DB.Where("pool_id = ? AND transaction_status = ? AND created_at > ?",
		poolID, model.TransactionStatus.COMPLETED, since).Find(transactions).Error; err != nil {
		logger.Error("Error with repository FetchPoolTransactionsFromDate : %s", err)
		return repoError(err)
	}
	return nil
}

// SumActiveListingSupply ... Sums the token units currently listed for sale
func (repo *MarketRepository) SumActiveListingSupply(tokenID uuid.UUID) (float64, error) {
	type result struct{ Total float64 }
	row := result{}
	if err := repo.DB.Model(&model.MarketplaceListing{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("token_id = ? AND status = ?", tokenID, model.ListingStatus.ACTIVE).
		Scan(&row).Error; err != nil {
		logger.Error("Error with repository SumActiveListingSupply : %s", err)
		return 0, repoError(err)
	}
	return row.Total, nil
}

// FetchActivePools ... Retrieves all active liquidity pools
func (repo *MarketRepository) FetchActivePools(pools *[]model.LiquidityPool) error {
	if err := repo.DB.Where(model.LiquidityPool{IsActive: true}).Find(pools).Error; err != nil {
		logger.Error("Error with repository FetchActivePools : %s", err)
		return repoError(err)
	}
	return nil
}

// GetLatestSnapshotBefore ... Retrieves the newest snapshot for an entity recorded at or before a cutoff
func (repo *MarketRepository) GetLatestSnapshotBefore(entityType string, entityID uuid.UUID, cutoff time.Time, snapshot *model.PriceSnapshot) error {
	if err := repo.DB.Where("entity_type = ? AND entity_id = ? AND recorded_at <= ?",
		entityType, entityID, cutoff).
		Order("recorded_at desc").First(snapshot).Error; err != nil {
		return repoError(err)
	}
	return nil
}

// FetchRecentActivities ... Retrieves a user's newest activity log rows
func (repo *MarketRepository) FetchRecentActivities(userID uuid.UUID, limit int, activities *[]model.Activity) error {
	if err := repo.DB.Where(model.Activity{UserID: userID}).
		Order("created_at desc").Limit(limit).Find(activities).Error; err != nil {
		logger.Error("Error with repository FetchRecentActivities : %s", err)
		return repoError(err)
	}
	return nil
}
