package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <declaration>",
	Short: "Resolve a column type declaration",
	Long: `Parse a column type declaration as written in DDL and resolve it
against the enabled backends.

Array declarations use the array code: "point[]" and "_point" both resolve
to OID 1017 on postgres.`,
	Example: `  sqltypes resolve "point[]"
  sqltypes resolve -b postgres "timestamp(3) with time zone"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	// Unquoted declarations arrive split on spaces.
	decl := strings.Join(args, " ")

	names, err := backends()
	if err != nil {
		return err
	}

	rows := [][]string{}
	var lastErr error
	for _, name := range names {
		col, err := registry.Resolve(name, decl)
		if err != nil {
			lastErr = err
			rows = append(rows, []string{name, "-", "-", "-", "-", err.Error()})
			continue
		}
		rows = append(rows, []string{
			name,
			col.String(),
			fmt.Sprint(col.Entry.Type),
			fmt.Sprint(col.Dims),
			formatCode(col.Entry, col.Code()),
			notes(col.Entry),
		})
	}

	if err := ui.PrintTable([]string{"Backend", "Column", "Tag", "Dims", "Code", "Notes"}, rows); err != nil {
		return err
	}
	// Fail only when no backend understands the declaration.
	for _, r := range rows {
		if r[1] != "-" {
			return nil
		}
	}
	return lastErr
}
