package errorcode

const (
	RECORD_NOT_FOUND = "RECORD_NOT_FOUND"
	SERVER_ERR_CODE  = "SYSTEM_ERR"
	INPUT_ERR_CODE   = "INPUT_ERR"
)

var (
	SUCCESS            = "Request Proccessed Successfully"
	INPUT_ERR          = "Invalid Input Supplied. See documentation"
	SYSTEM_ERR         = "Request Could Not Be Proccessed. Server encountered an error"
	VALIDATION_ERR     = "Validation Failed For Some Fields"
	UUID_CAST_ERR      = "Cannot cast Id, ensure to be passing a valid id"
	POOL_NOT_FOUND     = "Liquidity pool not found"
	TOKEN_NOT_FOUND    = "Token not found"
	ASSET_NOT_FOUND    = "Asset not found"
	ASSET_NOT_APPROVED = "Asset is not approved for tokenization"
	ASSET_TOKENIZED    = "Asset has already been tokenized"
	SQL_404            = "record not found"
)
