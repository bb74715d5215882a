package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
	"github.com/satishbabariya/prisma-go-geometry/datatypes"
	"github.com/satishbabariya/prisma-go-geometry/internal/verify"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [point]",
	Short: "Store a point in a scratch table and read it back",
	Long: `Create a scratch table with a point column, insert one row and read the
point back.

postgres uses its native point type, through pgx by default or lib/pq with
pg_driver: postgres. mysql and sqlite store the point in a BLOB.`,
	Example: `  sqltypes roundtrip -b sqlite --url sqlite://scratch.db --x 1.5 --y -2
  sqltypes roundtrip -b postgres "(3.1,9.4)"`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoundtrip,
}

var roundtripX, roundtripY float64

func init() {
	roundtripCmd.Flags().Float64Var(&roundtripX, "x", 3.1, "X coordinate")
	roundtripCmd.Flags().Float64Var(&roundtripY, "y", 9.4, "Y coordinate")

	rootCmd.AddCommand(roundtripCmd)
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	backend, err := selectBackend()
	if err != nil {
		return err
	}
	opts, err := verifyOptions(backend)
	if err != nil {
		return err
	}
	entry, err := registry.LookupTag(backend, sqltypes.Point{})
	if err != nil {
		return err
	}

	want := datatypes.PgPoint{X: roundtripX, Y: roundtripY}
	if len(args) == 1 {
		if want, err = datatypes.ParsePoint(args[0]); err != nil {
			return err
		}
	}
	got, err := verify.RoundTrip(cmd.Context(), opts, want)
	if err != nil {
		return err
	}

	if got != want {
		ui.PrintError("Wrote %s but read back %s", want, got)
		return errRoundtripMismatch
	}
	if entry.Fallback {
		ui.PrintWarning("%s has no point type; the value was stored as %s", backend, entry.DDL)
	}
	ui.PrintSuccess("Wrote %s to a %s column and read back %s", want, entry.DDL, got)
	return nil
}
