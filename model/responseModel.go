package model

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

// CommodityQuote ... Oracle quote for a commodity or crypto symbol
type CommodityQuote struct {
	Price       float64   `json:"price"`
	Change24h   float64   `json:"change24h"`
	Volume24h   float64   `json:"volume24h"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// RealEstateValuationRequest ... Inputs to the real estate valuation formula
type RealEstateValuationRequest struct {
	Location     string
	Size         float64
	PropertyType string
	YearBuilt    int
}

// AssetBreakdownEntry ... Per-asset-type slice of a portfolio valuation
type AssetBreakdownEntry struct {
	AssetType  string  `json:"type"`
	Value      float64 `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PortfolioValuation ... Aggregate valuation of a user's holdings
type PortfolioValuation struct {
	TotalValue     float64               `json:"totalValue"`
	Change24h      float64               `json:"change24h"`
	ChangeAmount   float64               `json:"changeAmount"`
	AssetBreakdown []AssetBreakdownEntry `json:"assetBreakdown"`
	Degraded       bool                  `json:"degraded,omitempty"`
}

// LiquidityMetrics ... Derived metrics for a liquidity pool
type LiquidityMetrics struct {
	TotalLiquidity float64 `json:"totalLiquidity"`
	UserLiquidity  float64 `json:"userLiquidity"`
	APR            float64 `json:"apr"`
	Volume24h      float64 `json:"volume24h"`
	Fees24h        float64 `json:"fees24h"`
	UserFees24h    float64 `json:"userFees24h"`
	Degraded       bool    `json:"degraded,omitempty"`
}

// PoolView ... Pool row shaped for the pool list endpoint
type PoolView struct {
	LiquidityPool
	UserLiquidity float64 `json:"userLiquidity"`
	UserFees24h   float64 `json:"userFees24h"`
}

// ListingView ... Marketplace listing annotated with live pricing
type ListingView struct {
	MarketplaceListing
	TokenName    string  `json:"tokenName"`
	TokenSymbol  string  `json:"tokenSymbol"`
	CurrentPrice float64 `json:"currentPrice"`
	Change24h    float64 `json:"change24h"`
	Nav          float64 `json:"nav"`
	Liquidity    float64 `json:"liquidity"`
}

// DashboardStats ... Headline numbers for the user dashboard
type DashboardStats struct {
	TotalValue       float64    `json:"totalValue"`
	Change24h        float64    `json:"change24h"`
	ChangeAmount     float64    `json:"changeAmount"`
	AssetCount       int        `json:"assetCount"`
	TokenHoldings    float64    `json:"tokenHoldings"`
	LiquidityValue   float64    `json:"liquidityValue"`
	RecentActivities []Activity `json:"recentActivities"`
	Degraded         bool       `json:"degraded,omitempty"`
}

// PoolMetricsUpdate ... Derived pool fields persisted by the oracle
type PoolMetricsUpdate struct {
	PoolID         uuid.UUID
	TotalLiquidity float64
	APR            float64
	Volume24h      float64
	Fees24h        float64
}
