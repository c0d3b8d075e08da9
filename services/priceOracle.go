package services

import (
	"math"
	"strings"
	"time"

	Config "rwa-adapter/config"
	"rwa-adapter/database"
	"rwa-adapter/model"
	"rwa-adapter/utility/cache"
	"rwa-adapter/utility/constants"
	"rwa-adapter/utility/logger"

	uuid "github.com/satori/go.uuid"
)

// Static fallback tables. Used whenever the external price feed is unreachable
// so the oracle never surfaces an error to callers.
var (
	commodityFallbackPrices = map[string]float64{
		constants.COMMODITY_GOLD:   2000,
		constants.COMMODITY_SILVER: 24,
		constants.COMMODITY_OIL:    80,
		constants.COMMODITY_COPPER: 4,
	}

	cryptoFallbackPrices = map[string]float64{
		"BTC":  45000,
		"ETH":  2500,
		"USDC": 1,
		"USDT": 1,
	}

	// USD per square foot by location
	realEstateBasePrices = map[string]float64{
		"Dubai":     600,
		"New York":  800,
		"London":    700,
		"Singapore": 650,
	}
	defaultPricePerSqft = 500.0

	propertyTypeMultipliers = map[string]float64{
		"residential": 1.0,
		"commercial":  1.2,
		"industrial":  0.8,
	}

	locationTrendMultipliers = map[string]float64{
		"Dubai":     1.08,
		"New York":  1.05,
		"London":    1.03,
		"Singapore": 1.06,
	}
)

//PriceOracleService object
type PriceOracleService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Repository database.IRepository
	MarketData *MarketDataService
	Now        func() time.Time
}

func NewPriceOracleService(memoryCache *cache.Memory, config Config.Data, repository database.IRepository) *PriceOracleService {
	baseService := PriceOracleService{
		Cache:      memoryCache,
		Config:     config,
		Repository: repository,
		MarketData: NewMarketDataService(config),
		Now:        time.Now,
	}
	return &baseService
}

// GetCommodityPrice ... Returns the current quote for a commodity. Served from the
// TTL cache when fresh, the external feed on a miss, and the static fallback table
// when the feed fails. Never returns an error.
func (service *PriceOracleService) GetCommodityPrice(commodity string) model.CommodityQuote {
	name := strings.ToLower(commodity)
	cacheKey := constants.CACHE_KEY_COMMODITY + name

	if cached := service.Cache.Get(cacheKey); cached != nil {
		if quote, ok := cached.(model.CommodityQuote); ok {
			return quote
		}
	}

	quote, err := service.MarketData.GetTickerPrice(name)
	if err != nil {
		logger.Warning("Price feed lookup failed for commodity %s, using fallback price : %s", name, err)
		return service.fallbackQuote(commodityFallbackPrices, name)
	}

	service.Cache.Set(cacheKey, quote, true)
	return quote
}

// GetCryptoPrice ... Same contract as GetCommodityPrice for crypto symbols
func (service *PriceOracleService) GetCryptoPrice(symbol string) model.CommodityQuote {
	upperSymbol := strings.ToUpper(symbol)
	cacheKey := constants.CACHE_KEY_CRYPTO + upperSymbol

	if cached := service.Cache.Get(cacheKey); cached != nil {
		if quote, ok := cached.(model.CommodityQuote); ok {
			return quote
		}
	}

	quote, err := service.MarketData.GetTickerPrice(symbol)
	if err != nil {
		logger.Warning("Price feed lookup failed for crypto %s, using fallback price : %s", upperSymbol, err)
		return service.fallbackQuote(cryptoFallbackPrices, upperSymbol)
	}

	service.Cache.Set(cacheKey, quote, true)
	return quote
}

func (service *PriceOracleService) fallbackQuote(table map[string]float64, key string) model.CommodityQuote {
	price, ok := table[key]
	if !ok {
		price = 0
	}
	return model.CommodityQuote{
		Price:       price,
		LastUpdated: service.Now(),
	}
}

// CalculateRealEstateValue ... Deterministic valuation from the static location tables:
// $/sqft base, property type multiplier, linear age depreciation floored at 30%,
// and the location market trend multiplier.
func (service *PriceOracleService) CalculateRealEstateValue(request model.RealEstateValuationRequest) float64 {
	pricePerSqft, ok := realEstateBasePrices[request.Location]
	if !ok {
		pricePerSqft = defaultPricePerSqft
	}

	typeMultiplier, ok := propertyTypeMultipliers[strings.ToLower(request.PropertyType)]
	if !ok {
		typeMultiplier = 1.0
	}

	ageMultiplier := 1.0
	if request.YearBuilt > 0 {
		age := service.Now().Year() - request.YearBuilt
		if age > 0 {
			ageMultiplier = math.Max(constants.MAX_AGE_DEPRECIATION, 1-float64(age)*constants.AGE_DEPRECIATION_RATE)
		}
	}

	trendMultiplier, ok := locationTrendMultipliers[request.Location]
	if !ok {
		trendMultiplier = 1.0
	}

	return pricePerSqft * typeMultiplier * ageMultiplier * trendMultiplier * request.Size
}

// CalculateTokenPrice ... Asset value spread over supply, scaled by clamped demand
func (service *PriceOracleService) CalculateTokenPrice(assetValue float64, totalSupply float64, demandMultiplier float64) float64 {
	if totalSupply <= 0 {
		return 0
	}
	demand := math.Min(math.Max(demandMultiplier, constants.MIN_DEMAND_MULTIPLIER), constants.MAX_DEMAND_MULTIPLIER)
	return (assetValue / totalSupply) * demand
}

// CalculatePoolAPR ... Annualizes trailing 24h fee revenue against pool liquidity.
// Defined as exactly 0 for an empty pool.
func (service *PriceOracleService) CalculatePoolAPR(totalLiquidity float64, volume24h float64, feeRate float64, poolRisk float64) float64 {
	if totalLiquidity == 0 {
		return 0
	}
	annualFees := volume24h * feeRate * 365
	return annualFees / totalLiquidity * 100 * poolRisk
}

// UpdateAssetPricing ... Persists a recomputed asset value. Best effort: failures
// and invalid values are logged, never propagated.
func (service *PriceOracleService) UpdateAssetPricing(assetID uuid.UUID, newValue float64) {
	if math.IsNaN(newValue) || newValue < 0 {
		logger.Warning("Skipping asset pricing update for %v, computed value %v is invalid", assetID, newValue)
		return
	}
	if err := service.Repository.Update(&model.UserAsset{BaseModel: model.BaseModel{ID: assetID}},
		map[string]interface{}{"current_value": newValue}); err != nil {
		logger.Error("Error persisting current value for asset %v : %s", assetID, err)
	}
}

// UpdateTokenPrice ... Persists a recomputed token market price, same contract as UpdateAssetPricing
func (service *PriceOracleService) UpdateTokenPrice(tokenID uuid.UUID, newPrice float64) {
	if math.IsNaN(newPrice) || newPrice < 0 {
		logger.Warning("Skipping token price update for %v, computed price %v is invalid", tokenID, newPrice)
		return
	}
	if err := service.Repository.Update(&model.Token{BaseModel: model.BaseModel{ID: tokenID}},
		map[string]interface{}{"price_per_token": newPrice}); err != nil {
		logger.Error("Error persisting price for token %v : %s", tokenID, err)
	}
}

// UpdatePoolMetrics ... Persists derived pool fields. Map update so zero values are written.
func (service *PriceOracleService) UpdatePoolMetrics(update model.PoolMetricsUpdate) {
	if math.IsNaN(update.APR) || update.APR < 0 {
		logger.Warning("Skipping pool metrics update for %v, computed APR %v is invalid", update.PoolID, update.APR)
		return
	}
	if err := service.Repository.Update(&model.LiquidityPool{BaseModel: model.BaseModel{ID: update.PoolID}},
		map[string]interface{}{
			"total_liquidity": update.TotalLiquidity,
			"apr":             update.APR,
			"volume24h":       update.Volume24h,
			"fees24h":         update.Fees24h,
		}); err != nil {
		logger.Error("Error persisting metrics for pool %v : %s", update.PoolID, err)
	}
}
