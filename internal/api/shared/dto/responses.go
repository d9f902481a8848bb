package dto

import (
	"time"

	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/registry"
)

// DIDResponse describes a normalized DID and its derived identifiers
type DIDResponse struct {
	DID        string `json:"did"`
	Method     string `json:"method"`
	Identifier string `json:"identifier"`
	Hash       string `json:"hash"`
	Address    string `json:"address"`
}

// ValidateDIDAddressResponse is the result of a DID address check
type ValidateDIDAddressResponse struct {
	Valid bool `json:"valid"`
}

// AccountResponse is the normalization result for one CAIP-10 account
type AccountResponse struct {
	Input      string          `json:"input"`
	Valid      bool            `json:"valid"`
	Normalized string          `json:"normalized,omitempty"`
	Parsed     *caip10.Account `json:"parsed,omitempty"`
	Error      string          `json:"error,omitempty"`
	Kind       string          `json:"kind,omitempty"`
}

// BatchNormalizeAccountsResponse holds results in request order
type BatchNormalizeAccountsResponse struct {
	Results []AccountResponse `json:"results"`
	Valid   int               `json:"valid"`
	Invalid int               `json:"invalid"`
}

// ChainResponse describes a registry chain
type ChainResponse struct {
	Chain     string `json:"chain"`
	Namespace string `json:"namespace"`
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Testnet   bool   `json:"testnet"`
}

// ChainListResponse is a list of chains
type ChainListResponse struct {
	Chains []ChainResponse `json:"chains"`
	Total  int             `json:"total"`
}

// VerifyBindingResponse describes a verified DID-account binding
type VerifyBindingResponse struct {
	Verified   bool       `json:"verified"`
	BindingID  string     `json:"binding_id,omitempty"`
	DID        string     `json:"did,omitempty"`
	DIDHash    string     `json:"did_hash,omitempty"`
	DIDAddress string     `json:"did_address,omitempty"`
	Account    string     `json:"account"`
	IssuedAt   *time.Time `json:"issued_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// MapAccountResult converts a normalization result
func MapAccountResult(input string, result caip10.Result) AccountResponse {
	return AccountResponse{
		Input:      input,
		Valid:      result.Valid,
		Normalized: result.Normalized,
		Parsed:     result.Parsed,
		Error:      result.Error,
		Kind:       string(result.Kind),
	}
}

// MapChainInfo converts a registry chain entry
func MapChainInfo(info registry.ChainInfo) ChainResponse {
	return ChainResponse{
		Chain:     string(info.Chain),
		Namespace: string(info.Namespace()),
		Reference: info.Reference(),
		Name:      info.Name,
		Testnet:   info.Testnet,
	}
}

// MapChainList converts registry chain entries
func MapChainList(infos []registry.ChainInfo) ChainListResponse {
	chains := make([]ChainResponse, 0, len(infos))
	for _, info := range infos {
		chains = append(chains, MapChainInfo(info))
	}
	return ChainListResponse{Chains: chains, Total: len(chains)}
}
