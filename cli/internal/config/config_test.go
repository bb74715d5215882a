package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	prev := AppFs
	fs := afero.NewMemMapFs()
	AppFs = fs
	t.Cleanup(func() { AppFs = prev })
	return fs
}

// unsetEnv clears keys for the duration of the test, including values the
// loader sets from .env files.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	useMemFs(t)
	unsetEnv(t, "SQLTYPES_BACKEND", "SQLTYPES_DATABASE_URL", "DATABASE_URL", "SQLTYPES_PG_DRIVER")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Backend)
	assert.Equal(t, "pgx", cfg.PgDriver)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.File)
}

func TestLoadConfigFile(t *testing.T) {
	fs := useMemFs(t)
	unsetEnv(t, "SQLTYPES_BACKEND", "SQLTYPES_DATABASE_URL", "DATABASE_URL", "SQLTYPES_PG_DRIVER")

	wd, err := os.Getwd()
	require.NoError(t, err)
	path := filepath.Join(wd, ".sqltypes.yaml")
	require.NoError(t, afero.WriteFile(fs, path, []byte(`backend: mysql
database_url: mysql://root@localhost/app
connect_timeout: 3s
`), 0644))

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Backend)
	assert.Equal(t, "mysql://root@localhost/app", cfg.DatabaseURL)
	assert.Equal(t, 3*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, path, cfg.File)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	fs := useMemFs(t)
	unsetEnv(t, "SQLTYPES_DATABASE_URL", "DATABASE_URL")
	t.Setenv("SQLTYPES_BACKEND", "sqlite")

	require.NoError(t, afero.WriteFile(fs, "/etc/sqltypes.yaml", []byte("backend: mysql\n"), 0644))

	cfg, err := LoadConfig(viper.New(), "/etc/sqltypes.yaml")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
}

func TestLoadConfigDotenv(t *testing.T) {
	fs := useMemFs(t)
	unsetEnv(t, "SQLTYPES_DATABASE_URL", "DATABASE_URL", "SQLTYPES_BACKEND")

	require.NoError(t, afero.WriteFile(fs, ".env", []byte("DATABASE_URL=postgres://env/db\nSQLTYPES_BACKEND=mysql\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, ".env.local", []byte("SQLTYPES_BACKEND=postgres\n"), 0644))

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.Backend, ".env.local should win over .env")
}

func TestLoadConfigErrors(t *testing.T) {
	useMemFs(t)
	unsetEnv(t, "SQLTYPES_PG_DRIVER")

	_, err := LoadConfig(viper.New(), "/missing.yaml")
	assert.Error(t, err)

	t.Setenv("SQLTYPES_PG_DRIVER", "odbc")
	_, err = LoadConfig(viper.New(), "")
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	fs := useMemFs(t)

	path, err := SaveConfig(viper.New(), &Config{
		Backend:        "postgres",
		PgDriver:       "pgx",
		ConnectTimeout: 5 * time.Second,
		LogFormat:      "json",
	})
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "sqltypes", ".sqltypes.yaml"), path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: postgres")
	assert.Contains(t, string(data), "log_format: json")
}
