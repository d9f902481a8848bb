package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-identity/internal/adapter"
	"github.com/feral-file/ff-identity/internal/api/middleware"
	"github.com/feral-file/ff-identity/internal/api/server"
	"github.com/feral-file/ff-identity/internal/api/shared/executor"
	"github.com/feral-file/ff-identity/internal/binding"
	"github.com/feral-file/ff-identity/internal/config"
	"github.com/feral-file/ff-identity/internal/logger"
	"github.com/feral-file/ff-identity/internal/metrics"
	"github.com/feral-file/ff-identity/internal/ratelimit"
	"github.com/feral-file/ff-identity/internal/registry"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ff-identity-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Identity API")

	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()

	// Chain registry: built-in chains, optionally extended from file
	chainRegistry, err := registry.LoadChains(registry.NewChainRegistryLoader(fs, jsonAdapter), cfg.Registry.ChainsPath)
	if err != nil {
		logger.Fatal("Failed to load chain registry",
			zap.Error(err),
			zap.String("path", cfg.Registry.ChainsPath))
	}
	if cfg.Registry.ChainsPath != "" {
		logger.InfoCtx(ctx, "Loaded chain registry", zap.String("path", cfg.Registry.ChainsPath))
	}

	denylist, err := registry.LoadDenylist(registry.NewDenylistRegistryLoader(fs, jsonAdapter), cfg.Registry.DenylistPath)
	if err != nil {
		logger.Fatal("Failed to load denylist",
			zap.Error(err),
			zap.String("path", cfg.Registry.DenylistPath))
	}
	if cfg.Registry.DenylistPath != "" {
		logger.InfoCtx(ctx, "Loaded denylist", zap.String("path", cfg.Registry.DenylistPath))
	} else {
		logger.WarnCtx(ctx, "Denylist path not configured, all accounts will be allowed")
	}

	m := metrics.New()
	binder := binding.NewBinder(adapter.NewJCS(), jsonAdapter, adapter.NewClock(), binding.NewVerifier())
	exec := executor.NewExecutor(executor.Config{
		WorkerPoolSize: cfg.Worker.WorkerPoolSize,
		MaxBatchItems:  cfg.Batch.MaxItems,
	}, chainRegistry, denylist, binder, m)

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		var redisClient adapter.RedisClient
		if cfg.RateLimit.RedisURL != "" {
			redisClient, err = adapter.NewRedisClient(cfg.RateLimit.RedisURL)
			if err != nil {
				logger.Fatal("Failed to create Redis client", zap.Error(err))
			}
			pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
			if err := redisClient.Ping(pingCtx); err != nil {
				logger.WarnCtx(ctx, "Redis unavailable, rate limiting will use local buckets until it recovers", zap.Error(err))
			}
			pingCancel()
		}

		limiter, err = ratelimit.New(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			IdleTTL:           time.Duration(cfg.RateLimit.IdleTTL) * time.Second,
			KeyPrefix:         cfg.RateLimit.KeyPrefix,
		}, adapter.NewClock(), redisClient)
		if err != nil {
			logger.Fatal("Failed to create rate limiter", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Rate limiting enabled",
			zap.Int("requests_per_second", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
			zap.Bool("distributed", redisClient != nil))
	}

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimiter: limiter,
	}, exec, m)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// ctx is canceled at this point
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
