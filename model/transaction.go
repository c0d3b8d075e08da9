package model

import (
	uuid "github.com/satori/go.uuid"
)

// TxnType ...
type TxnType struct{ BUY, SELL, MINT, TRANSFER, LIQUIDITY_ADD, LIQUIDITY_REMOVE string }

// TxnStatus ...
type TxnStatus struct{ PENDING, COMPLETED, FAILED string }

var (
	TransactionType = TxnType{
		BUY:              "Buy",
		SELL:             "Sell",
		MINT:             "Mint",
		TRANSFER:         "Transfer",
		LIQUIDITY_ADD:    "LiquidityAdd",
		LIQUIDITY_REMOVE: "LiquidityRemove",
	}
	TransactionStatus = TxnStatus{
		PENDING:   "Pending",
		COMPLETED: "Completed",
		FAILED:    "Failed",
	}
)

// Transaction ... Trade history row, read-only input to weighted pricing
type Transaction struct {
	BaseModel
	UserID            uuid.UUID `gorm:"type:VARCHAR(36);not null;index:idx_transactions_user_id" json:"userId"`
	TransactionType   string    `gorm:"not null" json:"transactionType"`
	TransactionStatus string    `gorm:"not null;default:'Pending'" json:"transactionStatus"`
	TokenID           uuid.UUID `gorm:"type:VARCHAR(36);index:idx_transactions_token_id" json:"tokenId,omitempty"`
	PoolID            uuid.UUID `gorm:"type:VARCHAR(36);index:idx_transactions_pool_id" json:"poolId,omitempty"`
	Amount            float64   `gorm:"not null" json:"amount"`
	Price             float64   `json:"price"`
	TotalValue        float64   `json:"totalValue"`
	BlockchainTxHash  string    `json:"blockchainTxHash,omitempty"`
}
