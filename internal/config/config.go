package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/partnerdesk/partner-api/internal/secrets"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Store modes select the active persistence backend for the whole process
const (
	StoreModePostgres = "postgres"
	StoreModeFile     = "file"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Archive  ArchiveConfig
	Secrets  SecretsConfig
	Logging  LoggingConfig
	Jobs     JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

// StoreConfig selects the persistence backend. The choice is made once at
// startup; the service never switches backends mid-process.
type StoreConfig struct {
	// Mode is "postgres" (relational backend) or "file" (JSON document)
	Mode string
	// FilePath is the JSON document location for file mode
	FilePath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// ArchiveConfig controls snapshot archiving of the JSON store document
type ArchiveConfig struct {
	// Mode is "local" or "azure"
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment",
	// "vault", or "auto" (environment in development, vault otherwise)
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

// JobsConfig controls the background maintenance jobs
type JobsConfig struct {
	DenormSyncEnabled  bool
	DenormSyncSchedule string
	SnapshotEnabled    bool
	SnapshotSchedule   string
}

// ConnectionString builds the PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// Validate rejects configurations the process cannot start with
func (c *Config) Validate() error {
	switch c.Store.Mode {
	case StoreModePostgres, StoreModeFile:
	default:
		return fmt.Errorf("unsupported store mode: %q", c.Store.Mode)
	}
	if c.Store.Mode == StoreModeFile && c.Store.FilePath == "" {
		return fmt.Errorf("store.filePath is required in file mode")
	}
	return nil
}

// Load loads configuration from file and environment variables.
// Secrets are not resolved; use LoadWithSecrets for that.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from the
// configured source. In development (or when secrets.source is
// "environment") secrets come from env vars; in staging/production the
// database password and archive connection string come from Azure Key Vault.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault || !isValidEnv {
		logger.Info("using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
			zap.Bool("use_key_vault", useKeyVault),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	logger.Info("loading secrets from Azure Key Vault",
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	if host, err := provider.GetSecretOrEnv(ctx, "POSTGRES-MAIN-HOST", "DATABASE_HOST"); err == nil && host != "" {
		cfg.Database.Host = host
	}
	if user, err := provider.GetSecretOrEnv(ctx, "POSTGRES-MAIN-USER", "DATABASE_USER"); err == nil && user != "" {
		cfg.Database.User = user
	}
	if password, err := provider.GetSecretOrEnv(ctx, "POSTGRES-MAIN-PASSWORD", "DATABASE_PASSWORD"); err == nil && password != "" {
		cfg.Database.Password = password
	}
	if sslMode := os.Getenv("DATABASE_SSLMODE"); sslMode != "" {
		cfg.Database.SSLMode = sslMode
	}
	if connStr, err := provider.GetSecretOrEnv(ctx, "archive-connection-string", "ARCHIVE_CLOUDCONNECTIONSTRING"); err == nil && connStr != "" {
		cfg.Archive.CloudConnectionString = connStr
	}

	logger.Info("secrets loaded from vault successfully")
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Partner Registry API")
	v.SetDefault("app.environment", "development")

	// Store defaults: the file backend serves when no database is configured
	v.SetDefault("store.mode", StoreModeFile)
	v.SetDefault("store.filePath", "./data/register.json")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "partner_registry")
	v.SetDefault("database.user", "registry_user")
	v.SetDefault("database.password", "registry_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	// Archive defaults
	v.SetDefault("archive.mode", "local")
	v.SetDefault("archive.localBasePath", "./data/snapshots")
	v.SetDefault("archive.cloudContainer", "register-snapshots")

	// Secrets defaults
	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300) // 5 minutes

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Job defaults
	v.SetDefault("jobs.denormSyncEnabled", true)
	v.SetDefault("jobs.denormSyncSchedule", "@every 6h")
	v.SetDefault("jobs.snapshotEnabled", false)
	v.SetDefault("jobs.snapshotSchedule", "@daily")
}
