package verify

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"

	"github.com/satishbabariya/prisma-go-geometry/datatypes"
	"github.com/satishbabariya/prisma-go-geometry/internal/debug"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

// Options selects the database a check runs against.
type Options struct {
	Backend string
	URL     string
	// PgDriver is "pgx" (default) or "postgres" for lib/pq. It only affects
	// the round trip; the catalog check always uses pgx.
	PgDriver       string
	ConnectTimeout time.Duration
	Registry       *sqltypes.Registry
}

func (o Options) registry() *sqltypes.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return sqltypes.Default
}

func (o Options) connectCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.ConnectTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.ConnectTimeout)
}

// backendName resolves aliases such as "postgresql" to the registered name.
func (o Options) backendName() (string, error) {
	b, err := o.registry().Backend(o.Backend)
	if err != nil {
		return "", err
	}
	return b.Name(), nil
}

// Catalog verifies every entry of the selected backend.
func Catalog(ctx context.Context, o Options) (*Report, error) {
	name, err := o.backendName()
	if err != nil {
		return nil, err
	}
	entries, err := o.registry().Entries(name)
	if err != nil {
		return nil, err
	}
	debug.Debug("verifying catalog", "backend", name, "entries", len(entries))

	if name == "postgres" {
		conn, err := o.connectPgx(ctx)
		if err != nil {
			return nil, err
		}
		defer conn.Close(context.Background())
		return Postgres(ctx, conn, entries)
	}

	db, err := o.openSQL(ctx, name)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return DriverTypes(ctx, db, name, entries)
}

// RoundTrip writes p to a point column on the selected backend and reads it
// back.
func RoundTrip(ctx context.Context, o Options, p datatypes.PgPoint) (datatypes.PgPoint, error) {
	name, err := o.backendName()
	if err != nil {
		return datatypes.PgPoint{}, err
	}
	entry, err := o.registry().LookupTag(name, sqltypes.Point{})
	if err != nil {
		return datatypes.PgPoint{}, err
	}

	if name == "postgres" && o.PgDriver != "postgres" {
		conn, err := o.connectPgx(ctx)
		if err != nil {
			return datatypes.PgPoint{}, err
		}
		defer conn.Close(context.Background())
		return RoundTripPointPgx(ctx, conn, entry, p)
	}

	db, err := o.openSQL(ctx, name)
	if err != nil {
		return datatypes.PgPoint{}, err
	}
	defer db.Close()
	return RoundTripPoint(ctx, db, entry, p)
}

func (o Options) connectPgx(ctx context.Context) (*pgx.Conn, error) {
	cctx, cancel := o.connectCtx(ctx)
	defer cancel()
	conn, err := pgx.Connect(cctx, o.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return conn, nil
}

func (o Options) openSQL(ctx context.Context, backend string) (*sql.DB, error) {
	driver, dsn, err := DriverDSN(backend, o.URL)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", backend, err)
	}

	cctx, cancel := o.connectCtx(ctx)
	defer cancel()
	if err := db.PingContext(cctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// DriverDSN returns the database/sql driver name and data source name for a
// backend and a URL. MySQL accepts a mysql:// URL or a native DSN; SQLite a
// sqlite:// URL, a file: URI or a path.
func DriverDSN(backend, rawURL string) (driver, dsn string, err error) {
	switch backend {
	case "postgres":
		return "postgres", rawURL, nil
	case "mysql":
		if !strings.HasPrefix(rawURL, "mysql://") {
			return "mysql", rawURL, nil
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", "", fmt.Errorf("parsing mysql url: %w", err)
		}
		cfg := mysqldriver.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = u.Host
		if u.Port() == "" {
			cfg.Addr = u.Hostname() + ":3306"
		}
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
		cfg.ParseTime = true
		return "mysql", cfg.FormatDSN(), nil
	case "sqlite":
		return "sqlite3", strings.TrimPrefix(rawURL, "sqlite://"), nil
	default:
		return "", "", fmt.Errorf("no database/sql driver for backend %q", backend)
	}
}
