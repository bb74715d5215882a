package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	Backend        string
	DatabaseURL    string
	PgDriver       string
	ConnectTimeout time.Duration
	Debug          bool
	LogFormat      string
	// File is the config file that was read, empty when none was found.
	File string
}

// LoadConfig loads configuration from flags bound to v, SQLTYPES_* environment
// variables, .env files and .sqltypes.yaml. An explicit configFile must exist.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	v.SetFs(AppFs)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".sqltypes")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "sqltypes"))
	}

	// Set environment variable prefix
	v.SetEnvPrefix("SQLTYPES")
	v.AutomaticEnv()
	if err := v.BindEnv("database_url", "SQLTYPES_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("pg_driver", "pgx")
	v.SetDefault("connect_timeout", 10*time.Second)
	v.SetDefault("log_format", "text")

	// .env.local has higher priority than .env; neither overrides the real environment
	local, err := readDotenv(".env.local")
	if err != nil {
		return nil, err
	}
	base, err := readDotenv(".env")
	if err != nil {
		return nil, err
	}
	for _, env := range []map[string]string{local, base} {
		for k, val := range env {
			if _, ok := os.LookupEnv(k); !ok {
				os.Setenv(k, val)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Backend:        v.GetString("backend"),
		DatabaseURL:    v.GetString("database_url"),
		PgDriver:       v.GetString("pg_driver"),
		ConnectTimeout: v.GetDuration("connect_timeout"),
		Debug:          v.GetBool("debug"),
		LogFormat:      v.GetString("log_format"),
		File:           v.ConfigFileUsed(),
	}

	switch cfg.PgDriver {
	case "pgx", "postgres":
	default:
		return nil, fmt.Errorf("pg_driver must be \"pgx\" or \"postgres\", got %q", cfg.PgDriver)
	}

	return cfg, nil
}

func readDotenv(name string) (map[string]string, error) {
	f, err := AppFs.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return env, nil
}

// SaveConfig saves configuration to file
func SaveConfig(v *viper.Viper, cfg *Config) (string, error) {
	v.SetFs(AppFs)
	v.Set("backend", cfg.Backend)
	v.Set("pg_driver", cfg.PgDriver)
	v.Set("connect_timeout", cfg.ConnectTimeout.String())
	v.Set("log_format", cfg.LogFormat)

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(home, ".config", "sqltypes")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return "", err
	}

	configFile := filepath.Join(configPath, ".sqltypes.yaml")
	return configFile, v.WriteConfigAs(configFile)
}
