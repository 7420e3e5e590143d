package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"

	StorageBackendFS  = "fs"
	StorageBackendGCS = "gcs"

	DatasetSourceJSON     = "json"
	DatasetSourceDatabase = "database"

	EmbeddingProviderHashing = "hashing"
	EmbeddingProviderGemini  = "gemini"

	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"

	minAdminSecretLength = 32
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	LLM       LLMConfig       `yaml:"llm"`
	Database  DatabaseConfig  `yaml:"database"`
	Security  SecurityConfig  `yaml:"security"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
	Cache     CacheConfig     `yaml:"cache"`
}

type ServerConfig struct {
	Port             string        `yaml:"port"`
	Host             string        `yaml:"host"`
	Environment      string        `yaml:"environment"`
	Version          string        `yaml:"version"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
	CORSAllowOrigins []string      `yaml:"cors_allow_origins"`
}

// StorageConfig selects where index snapshots are persisted
type StorageConfig struct {
	Backend         string        `yaml:"backend"`
	Dir             string        `yaml:"dir"`
	Bucket          string        `yaml:"bucket"`
	Prefix          string        `yaml:"prefix"`
	CredentialsFile string        `yaml:"credentials_file"`
	Watch           bool          `yaml:"watch"`
	WatchDebounce   time.Duration `yaml:"watch_debounce"`
}

// DatasetConfig selects where transactions are read from when building the index
type DatasetConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
}

type EmbeddingConfig struct {
	Provider  string        `yaml:"provider"`
	Dimension int           `yaml:"dimension"`
	Model     string        `yaml:"model"`
	Workers   int           `yaml:"workers"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

type LLMConfig struct {
	APIKey          string        `yaml:"api_key"`
	Model           string        `yaml:"model"`
	MaxTransactions int           `yaml:"max_transactions"`
	ContextSize     int           `yaml:"context_size"`
	Temperature     float64       `yaml:"temperature"`
	Timeout         time.Duration `yaml:"timeout"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	SQLitePath      string        `yaml:"sqlite_path"`
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

type SecurityConfig struct {
	RateLimitPerSecond int           `yaml:"rate_limit_per_second"`
	RateLimitBurst     int           `yaml:"rate_limit_burst"`
	AdminJWTSecret     string        `yaml:"admin_jwt_secret"`
	JWTIssuer          string        `yaml:"jwt_issuer"`
	AdminTokenTTL      time.Duration `yaml:"admin_token_ttl"`
}

// GeneratorConfig controls the synthetic dataset generator
type GeneratorConfig struct {
	Users      int   `yaml:"users"`
	MinPerUser int   `yaml:"min_per_user"`
	MaxPerUser int   `yaml:"max_per_user"`
	Seed       int64 `yaml:"seed"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CacheConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// Load builds the configuration from the environment. A .env file is picked
// up by the godotenv autoloader in main before this runs.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8000"),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:    getEnv("APP_ENV", EnvDevelopment),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Backend:         getEnv("STORAGE_BACKEND", StorageBackendFS),
			Dir:             getEnv("INDEX_DIR", "data/index"),
			Bucket:          getEnv("GCS_BUCKET", ""),
			Prefix:          getEnv("GCS_PREFIX", "index"),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			Watch:           getBoolEnv("INDEX_WATCH", true),
			WatchDebounce:   getDurationEnv("INDEX_WATCH_DEBOUNCE", 500*time.Millisecond),
		},
		Dataset: DatasetConfig{
			Source: getEnv("DATASET_SOURCE", DatasetSourceJSON),
			Path:   getEnv("DATASET_PATH", "data/transactions.json"),
		},
		Embedding: EmbeddingConfig{
			Provider:  getEnv("EMBEDDING_PROVIDER", EmbeddingProviderHashing),
			Dimension: getIntEnv("EMBEDDING_DIM", 384),
			Model:     getEnv("EMBEDDING_MODEL", "text-embedding-004"),
			Workers:   getIntEnv("EMBED_WORKERS", 8),
			CacheTTL:  getDurationEnv("EMBEDDING_CACHE_TTL", 10*time.Minute),
		},
		LLM: LLMConfig{
			APIKey:          getEnv("GOOGLE_API_KEY", ""),
			Model:           getEnv("LLM_MODEL", "gemini-1.5-flash"),
			MaxTransactions: getIntEnv("LLM_MAX_TRANSACTIONS", 50),
			ContextSize:     getIntEnv("LLM_CONTEXT_SIZE", 30),
			Temperature:     getFloatEnv("LLM_TEMPERATURE", 0.3),
			Timeout:         getDurationEnv("LLM_TIMEOUT", 45*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DatabaseDriverSQLite),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "data/transactions.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finassist"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "finassist"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			AdminJWTSecret:     getEnv("ADMIN_JWT_SECRET", ""),
			JWTIssuer:          getEnv("JWT_ISSUER", "financial-assistant"),
			AdminTokenTTL:      getDurationEnv("ADMIN_TOKEN_TTL", time.Hour),
		},
		Generator: GeneratorConfig{
			Users:      getIntEnv("GENERATOR_USERS", 3),
			MinPerUser: getIntEnv("GENERATOR_MIN_PER_USER", 100),
			MaxPerUser: getIntEnv("GENERATOR_MAX_PER_USER", 200),
			Seed:       getInt64Env("GENERATOR_SEED", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", ""),
		},
		Cache: CacheConfig{
			TTL:             getDurationEnv("CACHE_TTL", 5*time.Minute),
			CleanupInterval: getDurationEnv("CACHE_CLEANUP_INTERVAL", 10*time.Minute),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	secret, err := config.loadAdminSecret()
	if err != nil {
		return nil, err
	}
	config.Security.AdminJWTSecret = secret

	return config, nil
}

// LoadFile overlays a YAML file on top of cfg. ${VAR} references in the file
// are expanded from the environment before parsing.
func LoadFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return nil
}

// Validate validates every section of the configuration
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{
		&c.Server,
		&c.Storage,
		&c.Dataset,
		&c.Embedding,
		&c.LLM,
		&c.Database,
		&c.Security,
		&c.Generator,
		&c.Log,
		&c.Cache,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	if c.Embedding.Provider == EmbeddingProviderGemini && c.LLM.APIKey == "" {
		return errors.New("embedding: provider gemini requires GOOGLE_API_KEY")
	}
	if c.IsProduction() && len(c.Security.AdminJWTSecret) < minAdminSecretLength {
		return fmt.Errorf("security: admin JWT secret must be at least %d characters in production", minAdminSecretLength)
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.Environment, validation.Required, validation.In(EnvDevelopment, EnvProduction, EnvTesting)),
		validation.Field(&c.ReadTimeout, validation.Required),
		validation.Field(&c.WriteTimeout, validation.Required),
		validation.Field(&c.RequestTimeout, validation.Required, validation.Min(time.Second)),
	)
}

func (c *StorageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required, validation.In(StorageBackendFS, StorageBackendGCS)),
		validation.Field(&c.Dir, validation.When(c.Backend == StorageBackendFS, validation.Required)),
		validation.Field(&c.Bucket, validation.When(c.Backend == StorageBackendGCS, validation.Required)),
		validation.Field(&c.WatchDebounce, validation.Min(time.Duration(0))),
	)
}

func (c *DatasetConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Source, validation.Required, validation.In(DatasetSourceJSON, DatasetSourceDatabase)),
		validation.Field(&c.Path, validation.When(c.Source == DatasetSourceJSON, validation.Required)),
	)
}

func (c *EmbeddingConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Provider, validation.Required, validation.In(EmbeddingProviderHashing, EmbeddingProviderGemini)),
		validation.Field(&c.Dimension, validation.Required, validation.Min(8), validation.Max(4096)),
		validation.Field(&c.Model, validation.When(c.Provider == EmbeddingProviderGemini, validation.Required)),
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(256)),
		validation.Field(&c.CacheTTL, validation.Min(time.Duration(0))),
	)
}

func (c *LLMConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.MaxTransactions, validation.Required, validation.Min(1), validation.Max(500)),
		validation.Field(&c.ContextSize, validation.Required, validation.Min(1), validation.Max(200)),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&c.Timeout, validation.Required),
	)
}

func (c *DatabaseConfig) Validate() error {
	postgres := c.Driver == DatabaseDriverPostgres
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(DatabaseDriverSQLite, DatabaseDriverPostgres)),
		validation.Field(&c.SQLitePath, validation.When(c.Driver == DatabaseDriverSQLite, validation.Required)),
		validation.Field(&c.Host, validation.When(postgres, validation.Required)),
		validation.Field(&c.Port, validation.When(postgres, validation.Required)),
		validation.Field(&c.User, validation.When(postgres, validation.Required)),
		validation.Field(&c.Name, validation.When(postgres, validation.Required)),
		validation.Field(&c.MaxConnections, validation.Min(1)),
		validation.Field(&c.MaxIdleConns, validation.Min(0)),
	)
}

func (c *SecurityConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RateLimitPerSecond, validation.Required, validation.Min(1)),
		validation.Field(&c.RateLimitBurst, validation.Required, validation.Min(1)),
		validation.Field(&c.JWTIssuer, validation.Required),
		validation.Field(&c.AdminTokenTTL, validation.Required, validation.Min(time.Minute)),
	)
}

func (c *GeneratorConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Users, validation.Required, validation.Min(1)),
		validation.Field(&c.MinPerUser, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxPerUser, validation.Required, validation.Min(c.MinPerUser)),
	)
}

func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.In("text", "json")),
	)
}

func (c *CacheConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TTL, validation.Required),
		validation.Field(&c.CleanupInterval, validation.Required),
	)
}

// DSN returns the Postgres connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Address returns the listen address of the HTTP server
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == EnvTesting
}

// LLMEnabled reports whether an API key for the LLM provider is configured
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}

// LogFormat returns the configured log format, defaulting to JSON in production
func (c *Config) LogFormat() string {
	if c.Log.Format != "" {
		return c.Log.Format
	}
	if c.IsProduction() {
		return "json"
	}
	return "text"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// loadAdminSecret returns the HMAC secret for admin tokens.
// Priority order:
// 1. ADMIN_JWT_SECRET when set (all environments)
// 2. production without a secret fails
// 3. development/testing generate a random secret for the process lifetime
func (c *Config) loadAdminSecret() (string, error) {
	if c.Security.AdminJWTSecret != "" {
		return c.Security.AdminJWTSecret, nil
	}

	if c.IsProduction() {
		return "", errors.New("ADMIN_JWT_SECRET environment variable must be set in production environments")
	}

	slog.Warn("ADMIN_JWT_SECRET not set, generating a random secret (admin tokens will not survive restarts)")
	return GenerateSecret()
}

// GenerateSecret returns a random hex-encoded 256-bit secret
func GenerateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
