package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stockholdings/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseSettings = `
service:
  port: "9000"
  requestTimeout: 5s
databases:
  sql:
    host: db.local
    port: "5432"
    username: app
    password: secret
    database: stocks
auth:
  jwtSecret: base-secret
`

const testingSettings = `
databases:
  sql:
    database: stocks_test
auth:
  jwtSecret: testing-secret
`

func writeSettings(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "settings")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "appsettings.yaml"), []byte(baseSettings), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "appsettings.TESTING.yaml"), []byte(testingSettings), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeSettings(t)

	cfg, err := config.LoadConfig(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Service.Port)
	assert.Equal(t, 5*time.Second, cfg.Service.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Service.ReadTimeout)
	assert.Equal(t, "stocks", cfg.Databases.SQL.Database)
	assert.Equal(t, "base-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, int32(10), cfg.Databases.SQL.MaxConns)
	assert.Equal(t, []string{"*"}, cfg.Service.AllowedOrigins)
}

func TestLoadConfigMergesEnvironmentFile(t *testing.T) {
	dir := writeSettings(t)

	cfg, err := config.LoadConfig(dir, "TESTING")
	require.NoError(t, err)

	assert.Equal(t, "stocks_test", cfg.Databases.SQL.Database)
	assert.Equal(t, "db.local", cfg.Databases.SQL.Host)
	assert.Equal(t, "testing-secret", cfg.Auth.JWTSecret)
}

func TestLoadConfigUnknownEnvironmentKeepsBase(t *testing.T) {
	dir := writeSettings(t)

	cfg, err := config.LoadConfig(dir, "STAGING")
	require.NoError(t, err)
	assert.Equal(t, "stocks", cfg.Databases.SQL.Database)
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	dir := writeSettings(t)
	t.Setenv("AUTH_JWTSECRET", "from-env")
	t.Setenv("DATABASES_SQL_CONNECTION_STRING", "postgres://u:p@h:1/db")

	cfg, err := config.LoadConfig(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres://u:p@h:1/db", cfg.Databases.SQL.DSN())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(t.TempDir(), "")
	assert.Error(t, err)
}

func TestSQLConfigDSN(t *testing.T) {
	c := config.SQLConfig{Host: "h", Port: "5432", Username: "u", Password: "p", Database: "d"}
	assert.Equal(t, "host=h user=u password=p dbname=d port=5432 sslmode=disable", c.DSN())
}
