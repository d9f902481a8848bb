package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-identity/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator, metricsHandler http.Handler) {
	// Health and metrics (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := router.Group("/api/v1")
	{
		// DID endpoints (public)
		v1.POST("/dids/normalize", handler.NormalizeDID)
		v1.POST("/dids/address/validate", handler.ValidateDIDAddress)

		// CAIP-10 account endpoints (public)
		v1.POST("/accounts/normalize", handler.NormalizeAccount)
		v1.POST("/accounts/normalize/batch", handler.NormalizeAccounts)

		// Chain registry (public read access)
		v1.GET("/chains", handler.ListChains)
		v1.GET("/chains/:chain", handler.GetChain)

		// Binding verification (requires authentication)
		v1.POST("/bindings/verify", middleware.Auth(auth), handler.VerifyBinding)
	}
}
