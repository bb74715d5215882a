package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

var describeCmd = &cobra.Command{
	Use:   "describe <type>",
	Short: "Show how a type maps onto each enabled backend",
	Long: `Show how a type maps onto each enabled backend.

The type is looked up by SQL name or alias, e.g. "point" or
"timestamp with time zone".`,
	Example: `  sqltypes describe point
  sqltypes describe --backend mysql "int unsigned"`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	names, err := backends()
	if err != nil {
		return err
	}

	var found []sqltypes.Entry
	for _, name := range names {
		e, err := registry.Lookup(name, args[0])
		if errors.Is(err, sqltypes.ErrUnknownType) {
			continue
		}
		if err != nil {
			return err
		}
		found = append(found, e)
	}
	if len(found) == 0 {
		return fmt.Errorf("%q: %w in %s", args[0], sqltypes.ErrUnknownType, strings.Join(names, ", "))
	}

	return ui.PrintMarkdown(describeMarkdown(args[0], found))
}

func describeMarkdown(name string, entries []sqltypes.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	b.WriteString("| Backend | Tag | Code | Array | DDL | Driver name | Notes |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s | `%s` | %s | %s |\n",
			e.Backend, e.Type, formatCode(e, e.Code), formatCode(e, e.ArrayCode),
			e.DDL, e.DriverName, notes(e))
	}

	for _, e := range entries {
		var lines []string
		if len(e.Aliases) > 0 {
			lines = append(lines, "Also known as "+strings.Join(quoteAll(e.Aliases), ", ")+".")
		}
		if e.Doc != "" {
			lines = append(lines, e.Doc)
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", e.Backend, strings.Join(lines, "\n\n"))
	}
	return b.String()
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = "`" + s + "`"
	}
	return out
}
