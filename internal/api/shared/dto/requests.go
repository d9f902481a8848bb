package dto

// NormalizeDIDRequest is the body of POST /api/v1/dids/normalize
type NormalizeDIDRequest struct {
	DID string `json:"did" binding:"required"`
}

// ValidateDIDAddressRequest is the body of POST /api/v1/dids/address/validate
type ValidateDIDAddressRequest struct {
	DID     string `json:"did" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// NormalizeAccountRequest is the body of POST /api/v1/accounts/normalize
type NormalizeAccountRequest struct {
	Account string `json:"account" binding:"required"`
}

// BatchNormalizeAccountsRequest is the body of POST /api/v1/accounts/normalize/batch
type BatchNormalizeAccountsRequest struct {
	Accounts []string `json:"accounts" binding:"required"`
}

// VerifyBindingRequest is the body of POST /api/v1/bindings/verify
type VerifyBindingRequest struct {
	DID       string `json:"did" binding:"required"`
	Account   string `json:"account" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// ListChainsQuery holds query parameters for GET /api/v1/chains
type ListChainsQuery struct {
	Query string `form:"q"`
	Limit int    `form:"limit,default=20"`
}
