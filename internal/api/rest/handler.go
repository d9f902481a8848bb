package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-identity/internal/api/shared/dto"
	"github.com/feral-file/ff-identity/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// NormalizeDID normalizes a DID and returns its hash and address
	// POST /api/v1/dids/normalize
	NormalizeDID(c *gin.Context)

	// ValidateDIDAddress checks a DID address against a DID
	// POST /api/v1/dids/address/validate
	ValidateDIDAddress(c *gin.Context)

	// NormalizeAccount normalizes a CAIP-10 account; invalid input is a 422 carrying the result
	// POST /api/v1/accounts/normalize
	NormalizeAccount(c *gin.Context)

	// NormalizeAccounts normalizes many CAIP-10 accounts; results are in request order
	// POST /api/v1/accounts/normalize/batch
	NormalizeAccounts(c *gin.Context)

	// ListChains lists or searches the chain registry
	// GET /api/v1/chains?q=<query>&limit=<limit>
	ListChains(c *gin.Context)

	// GetChain retrieves a chain by CAIP-2 id
	// GET /api/v1/chains/:chain
	GetChain(c *gin.Context)

	// VerifyBinding verifies an ownership proof binding a DID to an account (requires authentication)
	// POST /api/v1/bindings/verify
	VerifyBinding(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) NormalizeDID(c *gin.Context) {
	var req dto.NormalizeDIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.NormalizeDID(c.Request.Context(), req.DID)
	if err != nil {
		respondError(c, err, "Failed to normalize DID")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ValidateDIDAddress(c *gin.Context) {
	var req dto.ValidateDIDAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	c.JSON(http.StatusOK, h.executor.ValidateDIDAddress(c.Request.Context(), req.DID, req.Address))
}

func (h *handler) NormalizeAccount(c *gin.Context) {
	var req dto.NormalizeAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp := h.executor.NormalizeAccount(c.Request.Context(), req.Account)
	if !resp.Valid {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) NormalizeAccounts(c *gin.Context) {
	var req dto.BatchNormalizeAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.NormalizeAccounts(c.Request.Context(), req.Accounts)
	if err != nil {
		respondError(c, err, "Failed to normalize accounts")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListChains(c *gin.Context) {
	var query dto.ListChainsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListChains(c.Request.Context(), query.Query, query.Limit)
	if err != nil {
		respondError(c, err, "Failed to list chains")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetChain(c *gin.Context) {
	chain := c.Param("chain")
	if chain == "" {
		respondBadRequest(c, "Chain is required")
		return
	}

	resp, err := h.executor.GetChain(c.Request.Context(), chain)
	if err != nil {
		respondError(c, err, "Failed to get chain")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) VerifyBinding(c *gin.Context) {
	var req dto.VerifyBindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.VerifyBinding(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to verify binding")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-identity-api",
	})
}
