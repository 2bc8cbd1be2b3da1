package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"credit-scoring/internal/pkg/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-level config
type ServerConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// ArtifactsConfig locates the fitted encoder and the trained model. Both are
// read-only files loaded once per process.
type ArtifactsConfig struct {
	EncoderPath string `yaml:"encoder_path"`
	ModelPath   string `yaml:"model_path"`
}

// CacheConfig controls the optional score memoization cache. Scoring works
// without it; it only avoids recomputing identical sanitized records.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	TTLSeconds int  `yaml:"ttl_seconds"`
}

// Redis connection config
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Logging   LogConfig       `yaml:"logging"`
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {

	// server config defaults
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", cfg.Server.Port)
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	cfg.Server.GinMode = GetEnvOrDefaultAsString("GIN_MODE", cfg.Server.GinMode)
	if cfg.Server.GinMode == "" {
		cfg.Server.GinMode = "release"
	}

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", cfg.Logging.LogLevel)
	if cfg.Logging.LogLevel == "" {
		cfg.Logging.LogLevel = "info"
	}

	// artifact config defaults
	cfg.Artifacts.EncoderPath = GetEnvOrDefaultAsString("ARTIFACTS_ENCODER_PATH", cfg.Artifacts.EncoderPath)
	if cfg.Artifacts.EncoderPath == "" {
		cfg.Artifacts.EncoderPath = "artifacts/dict_vectorizer.json"
	}
	cfg.Artifacts.ModelPath = GetEnvOrDefaultAsString("ARTIFACTS_MODEL_PATH", cfg.Artifacts.ModelPath)
	if cfg.Artifacts.ModelPath == "" {
		cfg.Artifacts.ModelPath = "artifacts/xgb_credit_risk.model"
	}

	// cache config defaults
	cfg.Cache.Enabled = GetEnvOrDefaultAsInt("CACHE_ENABLED", boolToInt(cfg.Cache.Enabled)) == 1
	cfg.Cache.TTLSeconds = GetEnvOrDefaultAsInt("CACHE_TTL_SECONDS", cfg.Cache.TTLSeconds)
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}

	// Redis config defaults
	cfg.Redis.Addr = GetEnvOrDefaultAsString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = GetEnvOrDefaultAsString("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvOrDefaultAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.EnableTLS = GetEnvOrDefaultAsInt("REDIS_ENABLE_TLS", boolToInt(cfg.Redis.EnableTLS)) == 1
	cfg.Redis.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("REDIS_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.Redis.CertContent = GetEnvOrDefaultAsString("REDIS_TLS_CERT", cfg.Redis.CertContent)

	return cfg

}

// LoadFromConfigFilePath loads and parses config file into AppConfig
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {

	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Error("Failed to read config file", err, slog.String("path", configPath))
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to unmarshal config", err)
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaultCfg := assignDefaultConfigValues(&cfg)

	if err := validateConfig(defaultCfg); err != nil {
		logger.Error("Config validation failed", err)
		return nil, err
	}

	logger.Info("Configuration loaded successfully", slog.String("path", configPath))

	return defaultCfg, nil
}

func validateConfig(cfg *AppConfig) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	switch cfg.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.gin_mode must be one of debug, release or test, got %q", cfg.Server.GinMode)
	}

	switch strings.ToLower(cfg.Logging.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn or error, got %q", cfg.Logging.LogLevel)
	}

	if cfg.Artifacts.EncoderPath == "" {
		return fmt.Errorf("artifacts.encoder_path must not be empty")
	}
	if cfg.Artifacts.ModelPath == "" {
		return fmt.Errorf("artifacts.model_path must not be empty")
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.TTLSeconds < 1 || cfg.Cache.TTLSeconds > 86400 {
			return fmt.Errorf("cache.ttl_seconds must be between 1 and 86400, got %d", cfg.Cache.TTLSeconds)
		}
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr must not be empty when the cache is enabled")
		}
	}

	return nil
}

// GetEnvOrDefaultAsInt returns the value of the given env variable
// as an int or the default value if not set or invalid.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return defaultVal
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// LoadFromConfig resolves the config file path from the environment and
// loads it. A .env file in the working directory is applied first when
// present.
func LoadFromConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")

	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	return cfg, nil
}
