package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-identity/internal/api/middleware"
	"github.com/feral-file/ff-identity/internal/api/rest"
	"github.com/feral-file/ff-identity/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-identity/internal/api/shared/errors"
	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/mocks"
)

const testAPIKey = "test-key"

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	require.NoError(t, err)

	router := gin.New()
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	rest.SetupRoutes(router, rest.NewHandler(exec), auth, metricsHandler)
	return router, exec
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHandler_HealthAndMetrics(t *testing.T) {
	router, _ := newRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"ff-identity-api"}`, rec.Body.String())

	rec = doRequest(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestHandler_NormalizeDID(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockAPIExecutor)
		expectedStatus int
		expectedCode   apierrors.ErrorCode
	}{
		{
			name: "success",
			body: `{"did":"Example.com"}`,
			setupMocks: func(exec *mocks.MockAPIExecutor) {
				exec.EXPECT().
					NormalizeDID(gomock.Any(), "Example.com").
					Return(&dto.DIDResponse{DID: "did:web:example.com", Method: "web"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing did",
			body:           `{}`,
			setupMocks:     func(exec *mocks.MockAPIExecutor) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"did":`,
			setupMocks:     func(exec *mocks.MockAPIExecutor) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeBadRequest,
		},
		{
			name: "executor validation error",
			body: `{"did":"did:pkh:eip155:1"}`,
			setupMocks: func(exec *mocks.MockAPIExecutor) {
				exec.EXPECT().
					NormalizeDID(gomock.Any(), gomock.Any()).
					Return(nil, apierrors.NewValidationError("invalid DID"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   apierrors.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := newRouter(t)
			tt.setupMocks(exec)

			rec := doRequest(router, http.MethodPost, "/api/v1/dids/normalize", tt.body, nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestHandler_ValidateDIDAddress(t *testing.T) {
	router, exec := newRouter(t)
	exec.EXPECT().
		ValidateDIDAddress(gomock.Any(), "did:web:example.com", "0x173a347faed486bb69081ef673c6e52c03f57f3e").
		Return(&dto.ValidateDIDAddressResponse{Valid: true})

	rec := doRequest(router, http.MethodPost, "/api/v1/dids/address/validate",
		`{"did":"did:web:example.com","address":"0x173a347faed486bb69081ef673c6e52c03f57f3e"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true}`, rec.Body.String())
}

func TestHandler_NormalizeAccount(t *testing.T) {
	t.Run("valid account", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			NormalizeAccount(gomock.Any(), "sui:mainnet:0x1").
			Return(&dto.AccountResponse{
				Input:      "sui:mainnet:0x1",
				Valid:      true,
				Normalized: "sui:mainnet:0x0000000000000000000000000000000000000000000000000000000000000001",
				Parsed: &caip10.Account{
					Namespace: "sui",
					Reference: "mainnet",
					Address:   "0x0000000000000000000000000000000000000000000000000000000000000001",
				},
			})

		rec := doRequest(router, http.MethodPost, "/api/v1/accounts/normalize", `{"account":"sui:mainnet:0x1"}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AccountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "sui", resp.Parsed.Namespace)
	})

	t.Run("invalid account is 422 with the result", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			NormalizeAccount(gomock.Any(), "foo").
			Return(&dto.AccountResponse{
				Input: "foo",
				Error: "Invalid CAIP-10 format. Expected namespace:reference:address",
				Kind:  "parse",
			})

		rec := doRequest(router, http.MethodPost, "/api/v1/accounts/normalize", `{"account":"foo"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"parse"`)
	})
}

func TestHandler_NormalizeAccounts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			NormalizeAccounts(gomock.Any(), []string{"a", "b"}).
			Return(&dto.BatchNormalizeAccountsResponse{
				Results: []dto.AccountResponse{{Input: "a"}, {Input: "b"}},
				Invalid: 2,
			}, nil)

		rec := doRequest(router, http.MethodPost, "/api/v1/accounts/normalize/batch", `{"accounts":["a","b"]}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("too many accounts", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			NormalizeAccounts(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewValidationError("at most 1 accounts per request"))

		rec := doRequest(router, http.MethodPost, "/api/v1/accounts/normalize/batch", `{"accounts":["a","b"]}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandler_Chains(t *testing.T) {
	t.Run("list with query", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			ListChains(gomock.Any(), "base", 5).
			Return(&dto.ChainListResponse{Chains: []dto.ChainResponse{{Chain: "eip155:8453"}}, Total: 1}, nil)

		rec := doRequest(router, http.MethodGet, "/api/v1/chains?q=base&limit=5", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list uses default limit", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			ListChains(gomock.Any(), "", 20).
			Return(&dto.ChainListResponse{}, nil)

		rec := doRequest(router, http.MethodGet, "/api/v1/chains", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(router, http.MethodGet, "/api/v1/chains?limit=abc", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("get chain", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			GetChain(gomock.Any(), "eip155:1").
			Return(&dto.ChainResponse{Chain: "eip155:1", Name: "Ethereum"}, nil)

		rec := doRequest(router, http.MethodGet, "/api/v1/chains/eip155:1", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Ethereum"`)
	})

	t.Run("chain not found", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			GetChain(gomock.Any(), "eip155:999").
			Return(nil, apierrors.NewNotFoundError("Chain not found"))

		rec := doRequest(router, http.MethodGet, "/api/v1/chains/eip155:999", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, rec).Code)
	})
}

func TestHandler_VerifyBinding(t *testing.T) {
	body := `{"did":"did:web:example.com","account":"eip155:1:0xabcdef1234567890123456789012345678901234","message":"m","signature":"0x00"}`
	authorized := map[string]string{"Authorization": "ApiKey " + testAPIKey}

	t.Run("requires authentication", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/v1/bindings/verify", body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verified", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			VerifyBinding(gomock.Any(), dto.VerifyBindingRequest{
				DID:       "did:web:example.com",
				Account:   "eip155:1:0xabcdef1234567890123456789012345678901234",
				Message:   "m",
				Signature: "0x00",
			}).
			Return(&dto.VerifyBindingResponse{Verified: true, BindingID: "0xid"}, nil)

		rec := doRequest(router, http.MethodPost, "/api/v1/bindings/verify", body, authorized)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"binding_id":"0xid"`)
	})

	t.Run("denied account", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			VerifyBinding(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewForbiddenError("Account is denied"))

		rec := doRequest(router, http.MethodPost, "/api/v1/bindings/verify", body, authorized)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing signature", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/v1/bindings/verify", `{"did":"x","account":"y","message":"m"}`, authorized)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		router, exec := newRouter(t)
		exec.EXPECT().
			VerifyBinding(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		rec := doRequest(router, http.MethodPost, "/api/v1/bindings/verify", body, authorized)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apierrors.ErrCodeInternalError, decodeError(t, rec).Code)
	})
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	require.NoError(t, err)

	router := gin.New()
	rest.SetupRoutes(router, handler, auth, nil)

	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	handler.EXPECT().HealthCheck(gomock.Any()).Do(ok)
	handler.EXPECT().NormalizeDID(gomock.Any()).Do(ok)
	handler.EXPECT().ValidateDIDAddress(gomock.Any()).Do(ok)
	handler.EXPECT().NormalizeAccount(gomock.Any()).Do(ok)
	handler.EXPECT().NormalizeAccounts(gomock.Any()).Do(ok)
	handler.EXPECT().ListChains(gomock.Any()).Do(ok)
	handler.EXPECT().GetChain(gomock.Any()).Do(ok)
	handler.EXPECT().VerifyBinding(gomock.Any()).Do(ok)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/api/v1/dids/normalize"},
		{http.MethodPost, "/api/v1/dids/address/validate"},
		{http.MethodPost, "/api/v1/accounts/normalize"},
		{http.MethodPost, "/api/v1/accounts/normalize/batch"},
		{http.MethodGet, "/api/v1/chains"},
		{http.MethodGet, "/api/v1/chains/eip155:1"},
	}
	for _, r := range routes {
		rec := doRequest(router, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code, "%s %s", r.method, r.path)
	}

	// no metrics handler, no route
	rec := doRequest(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// binding verification is gated by the API key
	rec = doRequest(router, http.MethodPost, "/api/v1/bindings/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/v1/bindings/verify", "", map[string]string{"Authorization": "ApiKey " + testAPIKey})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
