package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/config"
	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
	"github.com/satishbabariya/prisma-go-geometry/cli/internal/version"
	"github.com/satishbabariya/prisma-go-geometry/internal/debug"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sqltypes",
	Short: "Inspect and verify SQL type tags",
	Long: `sqltypes lists the SQL type tags compiled into this binary and checks
them against a live database.

Each backend (postgres, mysql, sqlite) contributes its own catalog. A tag
such as Point carries the PostgreSQL OIDs 600 and 1017 and maps to BLOB on
MySQL.`,
	Version:           version.Get().Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .sqltypes.yaml in . or $HOME)")
	flags.StringP("backend", "b", "", "backend to use (postgres, mysql, sqlite)")
	flags.String("url", "", "database URL (default is $DATABASE_URL)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-format", "text", "log format (text or json)")

	_ = viper.BindPFlag("backend", flags.Lookup("backend"))
	_ = viper.BindPFlag("database_url", flags.Lookup("url"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("log_format", flags.Lookup("log-format"))
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	debug.Init(cfg.Debug, cfg.LogFormat)
	if cfg.File != "" {
		debug.Debug("loaded config", "file", cfg.File)
	}
	return nil
}

// Execute is the main entry point for the CLI
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		return err
	}
	return nil
}
