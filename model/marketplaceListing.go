package model

import (
	uuid "github.com/satori/go.uuid"
)

// ListingStatusType ...
type ListingStatusType struct{ ACTIVE, SOLD, CANCELLED string }

var ListingStatus = ListingStatusType{
	ACTIVE:    "Active",
	SOLD:      "Sold",
	CANCELLED: "Cancelled",
}

// MarketplaceListing ... Supply-side input to the price adjustment logic
type MarketplaceListing struct {
	BaseModel
	TokenID       uuid.UUID `gorm:"type:VARCHAR(36);not null;index:idx_marketplace_listings_token_id" json:"tokenId"`
	SellerID      uuid.UUID `gorm:"type:VARCHAR(36);not null" json:"sellerId"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PricePerToken float64   `gorm:"not null" json:"pricePerToken"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `gorm:"not null;default:'Active'" json:"status"`
}
