package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-identity/internal/api/middleware"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestNewAuthenticator(t *testing.T) {
	_, publicPEM := generateKey(t)

	_, err := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: publicPEM})
	assert.NoError(t, err)

	_, err = middleware.NewAuthenticator(middleware.AuthConfig{})
	assert.NoError(t, err)

	_, err = middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestAuthenticator_Authenticate(t *testing.T) {
	key, publicPEM := generateKey(t)
	otherKey, _ := generateKey(t)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: publicPEM,
		APIKeys:      []string{"key1", "", "key2"},
	})
	require.NoError(t, err)

	valid := signToken(t, key, jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.SigningMethodRS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	notYetValid := signToken(t, key, jwt.SigningMethodRS256, jwt.RegisteredClaims{
		NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	wrongKey := signToken(t, otherKey, jwt.SigningMethodRS256, jwt.RegisteredClaims{})
	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name            string
		header          string
		expectedSuccess bool
		expectedType    string
		expectedSubject string
	}{
		{name: "valid jwt", header: "Bearer " + valid, expectedSuccess: true, expectedType: "jwt", expectedSubject: "user-1"},
		{name: "scheme is case-insensitive", header: "bearer " + valid, expectedSuccess: true, expectedType: "jwt", expectedSubject: "user-1"},
		{name: "expired jwt", header: "Bearer " + expired},
		{name: "jwt not yet valid", header: "Bearer " + notYetValid},
		{name: "jwt signed by another key", header: "Bearer " + wrongKey},
		{name: "hmac jwt", header: "Bearer " + hmac},
		{name: "valid api key", header: "ApiKey key2", expectedSuccess: true, expectedType: "apikey"},
		{name: "unknown api key", header: "ApiKey key3"},
		{name: "empty api key", header: "ApiKey "},
		{name: "missing header", header: ""},
		{name: "no scheme", header: "key1"},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := auth.Authenticate(tt.header)
			assert.Equal(t, tt.expectedSuccess, result.Success)
			if !tt.expectedSuccess {
				assert.Error(t, result.Error)
				return
			}
			assert.NoError(t, result.Error)
			assert.Equal(t, tt.expectedType, result.AuthType)
			assert.Equal(t, tt.expectedSubject, result.AuthSubject)
		})
	}
}

func TestAuthenticator_NothingConfigured(t *testing.T) {
	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{})
	require.NoError(t, err)

	assert.False(t, auth.Authenticate("ApiKey anything").Success)
	assert.False(t, auth.Authenticate("Bearer a.b.c").Success)
}

func TestAuth_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", middleware.Auth(auth), func(c *gin.Context) {
		authType, _ := c.Get(middleware.AUTH_TYPE_KEY)
		c.JSON(http.StatusOK, gin.H{"auth_type": authType})
	})

	t.Run("authorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "ApiKey secret")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"auth_type":"apikey"}`, rec.Body.String())
	})

	t.Run("unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "ApiKey wrong")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
	})
}
