package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RegistryConfig holds paths to registry files. Empty paths use built-in data.
type RegistryConfig struct {
	ChainsPath   string `mapstructure:"chains_path"`
	DenylistPath string `mapstructure:"denylist_path"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
}

// BatchConfig holds batch endpoint limits
type BatchConfig struct {
	MaxItems int `mapstructure:"max_items"`
}

// RateLimitConfig holds per-client API rate limiting configuration.
// An empty RedisURL keeps the buckets in process.
type RateLimitConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	Burst             int    `mapstructure:"burst"`
	IdleTTL           int    `mapstructure:"idle_ttl"` // in seconds
	RedisURL          string `mapstructure:"redis_url"`
	KeyPrefix         string `mapstructure:"key_prefix"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Registry   RegistryConfig  `mapstructure:"registry"`
	Worker     WorkerConfig    `mapstructure:"worker"`
	Batch      BatchConfig     `mapstructure:"batch"`
	RateLimit  RateLimitConfig `mapstructure:"ratelimit"`
}

// CLIConfig holds configuration for didctl
type CLIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Registry   RegistryConfig `mapstructure:"registry"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("batch.max_items", 100)
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_second", 20)
	v.SetDefault("ratelimit.burst", 40)
	v.SetDefault("ratelimit.idle_ttl", 600)
	v.SetDefault("ratelimit.key_prefix", "ff:identity:limiter:")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Worker.WorkerPoolSize <= 0 {
		return nil, errors.New("worker.pool_size must be positive")
	}
	if config.Batch.MaxItems <= 0 {
		return nil, errors.New("batch.max_items must be positive")
	}
	if config.RateLimit.Enabled && config.RateLimit.RequestsPerSecond <= 0 {
		return nil, errors.New("ratelimit.requests_per_second must be positive")
	}

	return &config, nil
}

// LoadCLIConfig loads configuration for didctl
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("didctl", configFile, envPath)

	v.SetDefault("debug", false)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config CLIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// readConfig reads the config file; a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// configureViper creates a viper instance for service
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_IDENTITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars binds every key so env vars reach Unmarshal when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Registry
		"registry.chains_path",
		"registry.denylist_path",
		// Worker
		"worker.pool_size",
		"batch.max_items",
		// Rate limit
		"ratelimit.enabled",
		"ratelimit.requests_per_second",
		"ratelimit.burst",
		"ratelimit.idle_ttl",
		"ratelimit.redis_url",
		"ratelimit.key_prefix",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
