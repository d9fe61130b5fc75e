package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/paging-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	// keep a developer's .env out of the test
	t.Chdir(dir)
	return path
}

func clearSecrets(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"APP_POSTGRES_USER", "APP_POSTGRES_PASSWORD", "APP_POSTGRES_DB",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(name, "")
	}
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: paging-service
  version: 0.1.0
  env: test
  port: 18080

logger:
  level: info
  format: json
  output_target: stdout
  time_format: rfc3339

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5

paging:
  default_size: 25
  max_size: 50
`
	path := writeTempConfig(t, yaml)
	clearSecrets(t)
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, "stdout", cfg.Logger.OutputTarget)
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, int32(1), cfg.Postgres.MinConns)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 25, cfg.Paging.DefaultSize)
	assert.Equal(t, 50, cfg.Paging.MaxSize)
}

func TestConfigLoad_FallbackSecretNames(t *testing.T) {
	path := writeTempConfig(t, "app:\n  port: 9000\n")
	clearSecrets(t)
	t.Setenv("POSTGRES_USER", "compose")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "items")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "compose", cfg.Postgres.User)
	assert.Equal(t, "secret", cfg.Postgres.Password)
	assert.Equal(t, "items", cfg.Postgres.DBName)
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	path := writeTempConfig(t, "app:\n  port: 18080\npostgres:\n  host: localhost\n")
	clearSecrets(t)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestConfigLoad_MemoryDriverNeedsNoSecrets(t *testing.T) {
	path := writeTempConfig(t, "storage:\n  driver: memory\n")
	clearSecrets(t)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 20, cfg.Paging.DefaultSize)
	assert.Equal(t, 100, cfg.Paging.MaxSize)
	assert.Equal(t, 1000, cfg.Paging.MaxEnumeratedPages)
}

func TestConfigLoad_EnvOverridesPaging(t *testing.T) {
	path := writeTempConfig(t, "storage:\n  driver: memory\n")
	clearSecrets(t)
	t.Setenv("APP_PAGING_MAX_SIZE", "60")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Paging.MaxSize)
}

func TestConfigLoad_InvalidPaging(t *testing.T) {
	path := writeTempConfig(t, "storage:\n  driver: memory\npaging:\n  default_size: 80\n  max_size: 40\n")
	clearSecrets(t)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestConfigLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
