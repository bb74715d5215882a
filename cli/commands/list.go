package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the type tags of the enabled backends",
	Long: `List every type tag of the enabled backends with its protocol codes
and the column type used in DDL.

Codes are OIDs on postgres and column type bytes on mysql. sqlite has none.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	names, err := backends()
	if err != nil {
		return err
	}

	rows := [][]string{}
	for _, name := range names {
		entries, err := registry.Entries(name)
		if err != nil {
			return err
		}
		for _, e := range entries {
			rows = append(rows, []string{
				e.Backend,
				e.Name,
				fmt.Sprint(e.Type),
				formatCode(e, e.Code),
				formatCode(e, e.ArrayCode),
				e.DDL,
				notes(e),
			})
		}
	}

	if err := ui.PrintTable([]string{"Backend", "Type", "Tag", "Code", "Array", "DDL", "Notes"}, rows); err != nil {
		return err
	}
	ui.PrintInfo("%d type(s) across %d backend(s)", len(rows), len(names))
	return nil
}
