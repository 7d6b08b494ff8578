package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL(), "el token vive 24 horas por defecto")
	assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "America/Sao_Paulo", cfg.Analytics.Timezone)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_SinSecret_FallaArranque(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), config.ErrMissingJWTSecret)
}

func TestLoad_PortDesdeVariablePORT(t *testing.T) {
	t.Setenv("PORT", "4100")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 4100, cfg.HTTP.Port)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "0.0.0.0:4100", cfg.HTTP.Addr())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "resto", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/resto?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", db.ConnectionString())
}
