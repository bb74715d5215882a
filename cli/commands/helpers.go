package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/satishbabariya/prisma-go-geometry/internal/verify"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

var registry = sqltypes.Default

// interactive reports whether prompts can be shown. Tests turn it off.
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// backends returns the backends a command covers: the configured one, or all
// enabled backends when none is configured.
func backends() ([]string, error) {
	if cfg.Backend == "" {
		names := registry.Backends()
		if len(names) == 0 {
			return nil, errors.New("no backends are compiled into this binary")
		}
		return names, nil
	}
	b, err := registry.Backend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	return []string{b.Name()}, nil
}

// selectBackend returns the single backend a database command runs against.
// With several enabled and none configured it asks on a terminal.
func selectBackend() (string, error) {
	if cfg.Backend != "" {
		b, err := registry.Backend(cfg.Backend)
		if err != nil {
			return "", err
		}
		return b.Name(), nil
	}

	names := registry.Backends()
	switch {
	case len(names) == 0:
		return "", errors.New("no backends are compiled into this binary")
	case len(names) == 1:
		return names[0], nil
	case !interactive():
		return "", fmt.Errorf("several backends are enabled (%v); choose one with --backend", names)
	}

	var choice string
	prompt := &survey.Select{
		Message: "Which database do you want to use?",
		Options: names,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func verifyOptions(backend string) (verify.Options, error) {
	if cfg.DatabaseURL == "" {
		return verify.Options{}, errors.New("no database URL; set DATABASE_URL or pass --url")
	}
	return verify.Options{
		Backend:        backend,
		URL:            cfg.DatabaseURL,
		PgDriver:       cfg.PgDriver,
		ConnectTimeout: cfg.ConnectTimeout,
		Registry:       registry,
	}, nil
}

func formatCode(e sqltypes.Entry, code uint32) string {
	if code == 0 {
		return "-"
	}
	if e.Backend == "mysql" {
		return fmt.Sprintf("0x%02x", code)
	}
	return strconv.FormatUint(uint64(code), 10)
}

func notes(e sqltypes.Entry) string {
	switch {
	case e.Fallback:
		return "fallback"
	case e.Unsigned:
		return "unsigned"
	}
	return ""
}

var errRoundtripMismatch = errors.New("point changed in the round trip")
