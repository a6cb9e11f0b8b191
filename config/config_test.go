package config_test

import (
	"testing"

	"choreboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "choreboard", cfg.App.Name)
	assert.Equal(t, 60, cfg.JWT.AccessExpireMin)
	assert.Equal(t, "schema_migrations", cfg.DB.Postgres.MigrationTable)
	assert.Equal(t, "disable", cfg.DB.Postgres.Write.SSLMode)
}

func TestLoadNested(t *testing.T) {
	t.Setenv("SERVER_ENV", "development")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db.internal")
	t.Setenv("APP_API_KEY", "internal-key")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, "internal-key", cfg.App.APIKey)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORS.AllowedOrigins)
}

func TestLoadRequiresSecretsInProduction(t *testing.T) {
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrMissingJWTSecret)

	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")

	_, err = config.Load()
	assert.NoError(t, err)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("SERVER_ENV", "development")
	t.Setenv("JWT_ACCESS_EXPIRE_MIN", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}
