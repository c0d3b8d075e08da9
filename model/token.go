package model

import (
	uuid "github.com/satori/go.uuid"
)

// Token ... Fungible unit representing fractional ownership of an approved asset
type Token struct {
	BaseModel
	AssetID         uuid.UUID `gorm:"type:VARCHAR(36);not null;unique_index" json:"assetId"`
	TokenName       string    `gorm:"not null" json:"tokenName"`
	TokenSymbol     string    `gorm:"not null" json:"tokenSymbol"`
	TotalSupply     float64   `gorm:"not null" json:"totalSupply"`
	PricePerToken   float64   `json:"pricePerToken"`
	Decimal         int       `gorm:"column:decimals;not null;default:18" json:"decimals"`
	Fractional      bool      `gorm:"default:true" json:"fractional"`
	TokenType       string    `json:"tokenType"`
	ContractAddress string    `json:"contractAddress,omitempty"`
}
