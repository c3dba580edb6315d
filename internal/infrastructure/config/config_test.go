package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "novelhub-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "novelhub", cfg.Database.DBName)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "novelhub", cfg.JWT.Issuer)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "local", cfg.Content.Backend)
	assert.Equal(t, "files", cfg.Content.LocalDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NOVELHUB_APP_PORT", "9090")
	t.Setenv("NOVELHUB_DATABASE_PASSWORD", "sekret")
	t.Setenv("NOVELHUB_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sekret", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownContentBackend(t *testing.T) {
	t.Setenv("NOVELHUB_CONTENT_BACKEND", "ftp")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content.backend")
}

func TestLoadS3BackendRequiresBucket(t *testing.T) {
	t.Setenv("NOVELHUB_CONTENT_BACKEND", "s3")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")

	t.Setenv("NOVELHUB_CONTENT_S3_BUCKET", "chapters")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "chapters", cfg.Content.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.Content.S3.Region)
}

func TestLoadProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("NOVELHUB_APP_ENV", "production")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "reader",
		Password: "pw",
		DBName:   "novelhub",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=reader password=pw dbname=novelhub sslmode=disable",
		cfg.DSN())
	assert.Equal(t,
		"postgres://reader:pw@db.internal:5433/novelhub?sslmode=disable",
		cfg.URL())
}
