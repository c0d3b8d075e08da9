package services

import (
	"math"
	"sort"
	"strings"
	"time"

	Config "rwa-adapter/config"
	"rwa-adapter/database"
	"rwa-adapter/model"
	"rwa-adapter/utility/appError"
	"rwa-adapter/utility/cache"
	"rwa-adapter/utility/constants"
	"rwa-adapter/utility/logger"

	uuid "github.com/satori/go.uuid"
)

//CalculationService object. Aggregates raw rows into portfolio valuations,
//liquidity pool metrics and weighted token market prices.
type CalculationService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Repository database.IMarketRepository
	Oracle     *PriceOracleService
	Snapshots  *SnapshotService
	Now        func() time.Time
}

func NewCalculationService(memoryCache *cache.Memory, config Config.Data, repository database.IMarketRepository) *CalculationService {
	baseService := CalculationService{
		Cache:      memoryCache,
		Config:     config,
		Repository: repository,
		Oracle:     NewPriceOracleService(memoryCache, config, repository),
		Snapshots:  NewSnapshotService(config, repository),
		Now:        time.Now,
	}
	return &baseService
}

// CalculatePortfolioValue ... Values a user's holdings across approved assets,
// liquidity positions and token purchases. Transient failures are retried once,
// then degrade to a zero-valued result flagged Degraded so callers can tell a
// failed computation from a genuinely empty portfolio.
func (service *CalculationService) CalculatePortfolioValue(userID uuid.UUID) model.PortfolioValuation {
	valuation, err := service.computePortfolioValue(userID)
	if err == nil {
		return valuation
	}
	logger.Warning("Portfolio valuation for %v failed, retrying once : %s", userID, err)

	valuation, err = service.computePortfolioValue(userID)
	if err == nil {
		return valuation
	}
	logger.Error("Portfolio valuation for %v failed after retry : %s", userID, err)
	return model.PortfolioValuation{AssetBreakdown: []model.AssetBreakdownEntry{}, Degraded: true}
}

func (service *CalculationService) computePortfolioValue(userID uuid.UUID) (model.PortfolioValuation, error) {
	type bucket struct {
		value float64
		count int
	}
	breakdown := map[string]*bucket{}
	order := []string{}
	totalValue := 0.0

	accumulate := func(assetType string, value float64, count int) {
		entry, ok := breakdown[assetType]
		if !ok {
			entry = &bucket{}
			breakdown[assetType] = entry
			order = append(order, assetType)
		}
		entry.value += value
		entry.count += count
		totalValue += value
	}

	assets := []model.UserAsset{}
	if err := service.Repository.FetchApprovedAssetsForUser(userID, &assets); err != nil {
		return model.PortfolioValuation{}, err
	}
	for _, asset := range assets {
		accumulate(asset.AssetType, service.GetAssetCurrentValue(asset), 1)
	}

	positions := []model.LiquidityPosition{}
	if err := service.Repository.FetchPositionsForUser(userID, &positions); err != nil {
		return model.PortfolioValuation{}, err
	}
	for _, position := range positions {
		accumulate(constants.BREAKDOWN_LIQUIDITY, position.Amount, 1)
	}

	purchases := []model.Transaction{}
	if err := service.Repository.FetchCompletedBuyTransactions(userID, &purchases); err != nil {
		return model.PortfolioValuation{}, err
	}
	holdings := map[uuid.UUID]float64{}
	for _, purchase := range purchases {
		holdings[purchase.TokenID] += purchase.Amount
	}
	holdingsValue := 0.0
	for tokenID, amount := range holdings {
		holdingsValue += amount * service.CalculateMarketPrice(tokenID)
	}
	if len(holdings) > 0 {
		accumulate(constants.BREAKDOWN_TOKEN_HOLDINGS, holdingsValue, len(holdings))
	}

	entries := []model.AssetBreakdownEntry{}
	for _, assetType := range order {
		entry := breakdown[assetType]
		percentage := 0.0
		if totalValue > 0 {
			percentage = entry.value / totalValue * 100
		}
		entries = append(entries, model.AssetBreakdownEntry{
			AssetType:  assetType,
			Value:      entry.value,
			Count:      entry.count,
			Percentage: percentage,
		})
	}
	if totalValue == 0 {
		entries = []model.AssetBreakdownEntry{}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })

	change24h, changeAmount := service.Snapshots.ChangeOver24h(constants.ENTITY_PORTFOLIO, userID, totalValue)

	return model.PortfolioValuation{
		TotalValue:     totalValue,
		Change24h:      change24h,
		ChangeAmount:   changeAmount,
		AssetBreakdown: entries,
	}, nil
}

// GetAssetCurrentValue ... Current value of a single pledged asset. Real estate
// is valued by the oracle formula, gold by commodity spot price times quantity,
// anything else keeps its stored estimate.
func (service *CalculationService) GetAssetCurrentValue(asset model.UserAsset) float64 {
	switch asset.AssetType {
	case constants.ASSET_TYPE_REAL_ESTATE:
		return service.Oracle.CalculateRealEstateValue(model.RealEstateValuationRequest{
			Location:     asset.Location,
			Size:         asset.Size,
			PropertyType: asset.PropertyType,
			YearBuilt:    asset.YearBuilt,
		})
	case constants.ASSET_TYPE_GOLD:
		quote := service.Oracle.GetCommodityPrice(constants.COMMODITY_GOLD)
		return quote.Price * asset.Quantity
	default:
		return asset.EstimatedValue
	}
}

// CalculateLiquidityMetrics ... Derived metrics for one pool, optionally scoped
// to a user's share. A missing pool propagates as a not-found error; transient
// failures are retried once and then degrade to zero metrics without an error.
// Persists the recomputed pool fields as a side effect.
func (service *CalculationService) CalculateLiquidityMetrics(poolID uuid.UUID, userID uuid.UUID) (model.LiquidityMetrics, error) {
	metrics, err := service.computeLiquidityMetrics(poolID, userID)
	if err == nil {
		return metrics, nil
	}
	if appError.IsNotFound(err) {
		return model.LiquidityMetrics{}, err
	}
	logger.Warning("Liquidity metrics for pool %v failed, retrying once : %s", poolID, err)

	metrics, err = service.computeLiquidityMetrics(poolID, userID)
	if err == nil {
		return metrics, nil
	}
	if appError.IsNotFound(err) {
		return model.LiquidityMetrics{}, err
	}
	logger.Error("Liquidity metrics for pool %v failed after retry : %s", poolID, err)
	return model.LiquidityMetrics{Degraded: true}, nil
}

func (service *CalculationService) computeLiquidityMetrics(poolID uuid.UUID, userID uuid.UUID) (model.LiquidityMetrics, error) {
	pool := model.LiquidityPool{}
	if err := service.Repository.GetByFieldName(&model.LiquidityPool{BaseModel: model.BaseModel{ID: poolID}}, &pool); err != nil {
		return model.LiquidityMetrics{}, err
	}

	positions := []model.LiquidityPosition{}
	if err := service.Repository.FetchPositionsForPool(poolID, &positions); err != nil {
		return model.LiquidityMetrics{}, err
	}

	totalLiquidity := 0.0
	userLiquidity := 0.0
	for _, position := range positions {
		totalLiquidity += position.Amount
		if userID != uuid.Nil && position.UserID == userID {
			userLiquidity += position.Amount
		}
	}

	since := service.Now().Add(-24 * time.Hour)
	transactions := []model.Transaction{}
	if err := service.Repository.FetchPoolTransactionsFromDate(poolID, since, &transactions); err != nil {
		return model.LiquidityMetrics{}, err
	}
	volume24h := 0.0
	for _, transaction := range transactions {
		volume24h += transaction.TotalValue
	}

	feeRate := pool.FeeRate
	if feeRate == 0 {
		feeRate = constants.DEFAULT_POOL_FEE_RATE
	}

	apr := service.Oracle.CalculatePoolAPR(totalLiquidity, volume24h, feeRate, poolRiskFor(pool.Name))
	fees24h := volume24h * feeRate
	userFees24h := 0.0
	if totalLiquidity > 0 {
		userFees24h = fees24h * (userLiquidity / totalLiquidity)
	}

	service.Oracle.UpdatePoolMetrics(model.PoolMetricsUpdate{
		PoolID:         poolID,
		TotalLiquidity: totalLiquidity,
		APR:            apr,
		Volume24h:      volume24h,
		Fees24h:        fees24h,
	})

	return model.LiquidityMetrics{
		TotalLiquidity: totalLiquidity,
		UserLiquidity:  userLiquidity,
		APR:            apr,
		Volume24h:      volume24h,
		Fees24h:        fees24h,
		UserFees24h:    userFees24h,
	}, nil
}

func poolRiskFor(poolName string) float64 {
	name := strings.ToUpper(poolName)
	if strings.Contains(name, "USDC") || strings.Contains(name, "USDT") {
		return constants.POOL_RISK_STABLE
	}
	if strings.Contains(name, "BTC") || strings.Contains(name, "ETH") {
		return constants.POOL_RISK_MAJOR
	}
	return constants.POOL_RISK_STANDARD
}

// CalculateMarketPrice ... Volume-weighted average of recent trades with a
// supply adjustment from active listings. Falls back to the stored base price
// with no trade history, and to 1 on any failure.
func (service *CalculationService) CalculateMarketPrice(tokenID uuid.UUID) float64 {
	token := model.Token{}
	if err := service.Repository.GetByFieldName(&model.Token{BaseModel: model.BaseModel{ID: tokenID}}, &token); err != nil {
		logger.Warning("Market price lookup failed, token %v missing : %s", tokenID, err)
		return 1
	}

	since := service.Now().AddDate(0, 0, -constants.MARKET_PRICE_WINDOW_DAYS)
	trades := []model.Transaction{}
	if err := service.Repository.FetchRecentTokenTrades(tokenID, since, constants.MARKET_PRICE_TRADE_LIMIT, &trades); err != nil {
		return 1
	}
	if len(trades) == 0 {
		return token.PricePerToken
	}

	weightedSum := 0.0
	totalAmount := 0.0
	for _, trade := range trades {
		weightedSum += trade.Price * trade.Amount
		totalAmount += trade.Amount
	}
	if totalAmount == 0 {
		return token.PricePerToken
	}
	price := weightedSum / totalAmount

	listedSupply, err := service.Repository.SumActiveListingSupply(tokenID)
	if err != nil {
		return 1
	}
	if listedSupply < constants.SCARCE_SUPPLY_UNITS {
		price *= constants.SCARCITY_PREMIUM
	} else if listedSupply > constants.SATURATED_SUPPLY_UNITS {
		price *= constants.SATURATION_DISCOUNT
	}

	if math.IsNaN(price) || price < 0 {
		return token.PricePerToken
	}
	return price
}
