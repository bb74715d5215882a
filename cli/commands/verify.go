package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-go-geometry/cli/internal/ui"
	"github.com/satishbabariya/prisma-go-geometry/cli/internal/watch"
	"github.com/satishbabariya/prisma-go-geometry/internal/debug"
	"github.com/satishbabariya/prisma-go-geometry/internal/verify"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the declared type codes against a database",
	Long: `Check the declared type codes of a backend against a live database.

On postgres every OID and array OID is compared with pg_type. On mysql and
sqlite a scratch table is created with one column per type and the column
types reported by the driver are compared with the declared ones.

Mismatches are reported and make the command fail. Nothing is corrected.`,
	Example: `  sqltypes verify --backend postgres --url postgres://localhost/app
  sqltypes verify --watch`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

var verifyWatch bool

func init() {
	verifyCmd.Flags().BoolVarP(&verifyWatch, "watch", "w", false, "Re-run when the config file changes")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	backend, err := selectBackend()
	if err != nil {
		return err
	}
	opts, err := verifyOptions(backend)
	if err != nil {
		return err
	}

	if !verifyWatch {
		return verifyOnce(cmd.Context(), opts)
	}

	if cfg.File == "" {
		return errors.New("--watch needs a config file; create .sqltypes.yaml or pass --config")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.NewWatcher(cfg.File, watch.DefaultDebounce, func() error {
		if err := loadConfig(cmd, args); err != nil {
			return err
		}
		if cfg.Backend != "" {
			b, err := registry.Backend(cfg.Backend)
			if err != nil {
				return err
			}
			backend = b.Name()
		}
		opts, err := verifyOptions(backend)
		if err != nil {
			return err
		}
		return verifyOnce(ctx, opts)
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	ui.PrintInfo("Watching %s for changes. Press Ctrl+C to stop.", cfg.File)
	for {
		select {
		case <-ctx.Done():
			return w.Stop()
		case err := <-w.Errors:
			ui.PrintError("%v", err)
		}
	}
}

func verifyOnce(ctx context.Context, opts verify.Options) error {
	spinner, err := ui.PrintSpinner(fmt.Sprintf("Checking %s types...", opts.Backend))
	if err != nil {
		debug.Debug("spinner unavailable", "error", err)
	}
	report, err := verify.Catalog(ctx, opts)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return err
	}

	if err := printReport(report); err != nil {
		return err
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d type(s) disagree with the %s catalog",
			len(failed), len(report.Results), report.Backend)
	}
	ui.PrintSuccess("All %d types match the %s catalog", len(report.Results), report.Backend)
	return nil
}

func printReport(report *verify.Report) error {
	title := report.Backend
	if report.Server != "" {
		title += " " + report.Server
	}
	ui.PrintSection(title)

	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		rows = append(rows, []string{
			res.Entry.Name,
			declared(res.Entry),
			found(res),
			ui.Status(res.Status.String()),
		})
	}
	return ui.PrintTable([]string{"Type", "Declared", "Found", "Status"}, rows)
}

func declared(e sqltypes.Entry) string {
	if e.Backend == "postgres" {
		return fmt.Sprintf("%d/%d", e.Code, e.ArrayCode)
	}
	return e.DriverName
}

func found(res verify.Result) string {
	switch {
	case res.Status == verify.StatusMissing:
		return "-"
	case res.Entry.Backend == "postgres":
		return fmt.Sprintf("%d/%d", res.Got, res.GotArray)
	}
	return res.GotName
}
