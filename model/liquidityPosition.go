package model

import (
	uuid "github.com/satori/go.uuid"
)

// LiquidityPosition ... A user's contributed share of a liquidity pool
type LiquidityPosition struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:VARCHAR(36);not null;index:idx_liquidity_positions_user_id" json:"userId"`
	PoolID     uuid.UUID `gorm:"type:VARCHAR(36);not null;index:idx_liquidity_positions_pool_id" json:"poolId"`
	Amount     float64   `gorm:"not null" json:"amount"`
	LpTokens   float64   `json:"lpTokens"`
	EntryPrice float64   `json:"entryPrice"`
}
