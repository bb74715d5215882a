package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/config"
	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the user config file",
	Long: `Write the backend, driver, timeout and log format in effect to
~/.config/sqltypes/.sqltypes.yaml so later runs pick them up.

The database URL is never written; keep it in DATABASE_URL or .env.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if cfg.Backend != "" {
		b, err := registry.Backend(cfg.Backend)
		if err != nil {
			return err
		}
		cfg.Backend = b.Name()
	}

	path, err := config.SaveConfig(viper.New(), cfg)
	if err != nil {
		return err
	}
	ui.PrintSuccess("Wrote %s", path)
	return nil
}
