package config

import (
	"os"
	"testing"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustLoad itself calls log.Fatal and flag.Parse, so the tests exercise
// the cleanenv layer it delegates to.

func TestDefaults(t *testing.T) {
	// Clear every tagged env var so ambient shell state (NO_COLOR is a
	// common one) cannot leak into the assertions. t.Setenv registers
	// the restore; Unsetenv leaves the var absent for the test body.
	for _, key := range []string{"ENV", "NO_COLOR", "STORAGE_TYPE", "USERS_PATH", "SQLITE_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var cfg Config
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, BackendJSONFile, cfg.Storage.Type)
	assert.Equal(t, "users.json", cfg.Storage.UsersPath)
	assert.Equal(t, "users.db", cfg.Storage.SQLitePath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("NO_COLOR", "true")
	t.Setenv("STORAGE_TYPE", "sqlite")
	t.Setenv("USERS_PATH", "/data/export.json")
	t.Setenv("SQLITE_PATH", "/data/export.db")

	var cfg Config
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Equal(t, "prod", cfg.Env)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, BackendSQLite, cfg.Storage.Type)
	assert.Equal(t, "/data/export.json", cfg.Storage.UsersPath)
	assert.Equal(t, "/data/export.db", cfg.Storage.SQLitePath)
}
