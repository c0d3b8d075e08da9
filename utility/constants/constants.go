package constants

const (
	ASSET_TYPE_REAL_ESTATE = "Real Estate"
	ASSET_TYPE_GOLD        = "Gold"
	ASSET_TYPE_ART         = "Art"

	BREAKDOWN_LIQUIDITY      = "Liquidity"
	BREAKDOWN_TOKEN_HOLDINGS = "Token Holdings"

	COMMODITY_GOLD   = "gold"
	COMMODITY_SILVER = "silver"
	COMMODITY_OIL    = "oil"
	COMMODITY_COPPER = "copper"

	CACHE_KEY_COMMODITY = "commodity_"
	CACHE_KEY_CRYPTO    = "crypto_"

	// Snapshot entity types
	ENTITY_PORTFOLIO = "Portfolio"
	ENTITY_TOKEN     = "Token"
	ENTITY_POOL      = "Pool"

	DEFAULT_POOL_FEE_RATE = 0.003

	// Pool risk multipliers keyed off the pool name
	POOL_RISK_STABLE   = 0.9
	POOL_RISK_MAJOR    = 1.1
	POOL_RISK_STANDARD = 1.0

	// Market price trade window
	MARKET_PRICE_TRADE_LIMIT = 20
	MARKET_PRICE_WINDOW_DAYS = 7

	// Supply adjustment thresholds on active listings
	SCARCE_SUPPLY_UNITS    = 100
	SATURATED_SUPPLY_UNITS = 10000
	SCARCITY_PREMIUM       = 1.1
	SATURATION_DISCOUNT    = 0.95

	// Real estate valuation bounds
	MAX_AGE_DEPRECIATION  = 0.7
	AGE_DEPRECIATION_RATE = 0.01

	MIN_DEMAND_MULTIPLIER = 0.5
	MAX_DEMAND_MULTIPLIER = 2.0

	ACTIVITY_PLEDGE        = "asset_pledge"
	ACTIVITY_TOKENIZE      = "token_mint"
	ACTIVITY_LISTING       = "marketplace_listing"
	ACTIVITY_ADD_LIQUIDITY = "liquidity_add"
)
