package model

// LiquidityPool ... Pooled balance users trade against, earning fee share
type LiquidityPool struct {
	BaseModel
	Name           string  `gorm:"not null;unique_index" json:"name"`
	TokenA         string  `gorm:"not null" json:"tokenA"`
	TokenB         string  `gorm:"not null" json:"tokenB"`
	TotalLiquidity float64 `json:"totalLiquidity"`
	APR            float64 `json:"apr"`
	Volume24h      float64 `json:"volume24h"`
	Fees24h        float64 `json:"fees24h"`
	FeeRate        float64 `gorm:"not null;default:0.003" json:"feeRate"`
	IsActive       bool    `gorm:"default:true" json:"isActive"`
}
