package model

// PledgeAssetRequest ... Incoming request definition for asset pledge
type PledgeAssetRequest struct {
	UserID         string  `json:"userId" validate:"required,uuid4"`
	AssetType      string  `json:"assetType" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	EstimatedValue string  `json:"estimatedValue" validate:"required"`
	Location       string  `json:"location"`
	Size           float64 `json:"size"`
	PropertyType   string  `json:"propertyType"`
	YearBuilt      int     `json:"yearBuilt"`
	Quantity       float64 `json:"quantity"`
}

// TokenizeAssetRequest ... Incoming request definition for token mint
type TokenizeAssetRequest struct {
	TokenName   string  `json:"tokenName" validate:"required"`
	TokenSymbol string  `json:"tokenSymbol" validate:"required,max=10"`
	TotalSupply float64 `json:"totalSupply" validate:"required,gt=0"`
	Fractional  bool    `json:"fractional"`
	TokenType   string  `json:"tokenType"`
}

// CreateListingRequest ... Incoming request definition for marketplace listing
type CreateListingRequest struct {
	TokenID       string `json:"tokenId" validate:"required,uuid4"`
	SellerID      string `json:"sellerId" validate:"required,uuid4"`
	Amount        string `json:"amount" validate:"required"`
	PricePerToken string `json:"pricePerToken" validate:"required"`
}

// AddLiquidityRequest ... Incoming request definition for liquidity provision
type AddLiquidityRequest struct {
	UserID string `json:"userId" validate:"required,uuid4"`
	Amount string `json:"amount" validate:"required"`
}
