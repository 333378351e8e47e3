package config_test

import (
	"testing"

	"github.com/partnerdesk/partner-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreModeFile, cfg.Store.Mode)
	assert.Equal(t, "./data/register.json", cfg.Store.FilePath)
	assert.Equal(t, "partner_registry", cfg.Database.Name)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "local", cfg.Archive.Mode)
	assert.Equal(t, "@every 6h", cfg.Jobs.DenormSyncSchedule)
	assert.True(t, cfg.Jobs.DenormSyncEnabled)
	assert.False(t, cfg.Jobs.SnapshotEnabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STORE_MODE", "postgres")
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreModePostgres, cfg.Store.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestConfig_ValidateStoreMode(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Mode: "redis"}}
	assert.Error(t, cfg.Validate())

	cfg.Store.Mode = config.StoreModePostgres
	assert.NoError(t, cfg.Validate())

	cfg.Store.Mode = config.StoreModeFile
	assert.Error(t, cfg.Validate(), "file mode without a path must be rejected")

	cfg.Store.FilePath = "./data/register.json"
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "registry_user",
		Password: "secret",
		Name:     "partner_registry",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=registry_user password=secret dbname=partner_registry sslmode=disable",
		cfg.ConnectionString())
}
