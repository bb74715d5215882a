package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
	"github.com/satishbabariya/prisma-go-geometry/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

var versionShort bool

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	if versionShort {
		fmt.Fprintln(ui.Out, info.Version)
		return nil
	}

	fmt.Fprintln(ui.Out, info.FullString())
	fmt.Fprintf(ui.Out, "Backends: %v\n", registry.Backends())

	v, err := info.Semver()
	if err != nil {
		ui.PrintWarning("Unreleased build (%s)", info.Version)
		return nil
	}
	if v.Prerelease() != "" {
		ui.PrintWarning("Pre-release build %s", v)
	}
	return nil
}
