package model

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

// AssetStatusType ...
type AssetStatusType struct{ UNDER_REVIEW, APPROVED, REJECTED, TOKENIZED string }

var AssetStatus = AssetStatusType{
	UNDER_REVIEW: "UnderReview",
	APPROVED:     "Approved",
	REJECTED:     "Rejected",
	TOKENIZED:    "Tokenized",
}

// UserAsset ... A physical asset pledged by a user for tokenization
type UserAsset struct {
	BaseModel
	UserID          uuid.UUID  `gorm:"type:VARCHAR(36);not null;index:idx_user_assets_user_id" json:"userId"`
	AssetType       string     `gorm:"not null" json:"assetType"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Size            float64    `json:"size"`
	PropertyType    string     `json:"propertyType"`
	YearBuilt       int        `json:"yearBuilt"`
	Quantity        float64    `json:"quantity"`
	EstimatedValue  float64    `gorm:"not null" json:"estimatedValue"`
	CurrentValue    float64    `json:"currentValue"`
	Status          string     `gorm:"not null;default:'UnderReview'" json:"status"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	TokenID         uuid.UUID  `gorm:"type:VARCHAR(36)" json:"tokenId,omitempty"`
	ContractAddress string     `json:"contractAddress,omitempty"`
}
