package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/hashicorp/go-version"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/satishbabariya/prisma-go-geometry/internal/debug"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

// PgConn is the subset of a pgx connection or pool the checks use.
type PgConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pg_type.typarray appeared in 8.3; older servers only have the "_name" row.
var typarraySince = version.Must(version.NewVersion("8.3"))

type pgTypeRow struct {
	Name     string `db:"typname"`
	OID      uint32 `db:"oid"`
	ArrayOID uint32 `db:"typarray"`
}

const pgTypeQuery = `SELECT t.typname, t.oid, %s AS typarray
FROM pg_catalog.pg_type t
JOIN pg_catalog.pg_namespace n ON n.oid = t.typnamespace
WHERE n.nspname = 'pg_catalog' AND t.typname = ANY($1)`

// ServerVersion returns the PostgreSQL server version.
func ServerVersion(ctx context.Context, conn PgConn) (*version.Version, error) {
	var raw string
	if err := conn.QueryRow(ctx, "SHOW server_version").Scan(&raw); err != nil {
		return nil, fmt.Errorf("reading server version: %w", err)
	}
	// Packaged builds append a description: "16.2 (Debian 16.2-1.pgdg120+2)".
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, errors.New("empty server version")
	}
	v, err := version.NewVersion(fields[0])
	if err != nil {
		return nil, fmt.Errorf("parsing server version %q: %w", raw, err)
	}
	return v, nil
}

// Postgres compares each entry's OID and array OID with pg_type.
func Postgres(ctx context.Context, conn PgConn, entries []sqltypes.Entry) (*Report, error) {
	v, err := ServerVersion(ctx, conn)
	if err != nil {
		return nil, err
	}
	legacy := v.LessThan(typarraySince)
	debug.Debug("checking pg_type", "server", v.String(), "entries", len(entries), "legacy", legacy)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		if legacy && e.HasArray() {
			names = append(names, "_"+e.Name)
		}
	}

	arrayCol := "t.typarray"
	if legacy {
		arrayCol = "0::oid"
	}
	var rows []pgTypeRow
	if err := pgxscan.Select(ctx, conn, &rows, fmt.Sprintf(pgTypeQuery, arrayCol), names); err != nil {
		return nil, fmt.Errorf("querying pg_type: %w", err)
	}

	found := make(map[string]pgTypeRow, len(rows))
	for _, r := range rows {
		found[r.Name] = r
	}

	report := &Report{Backend: "postgres", Server: v.String()}
	for _, e := range entries {
		res := Result{Entry: e, Status: StatusMissing}
		row, ok := found[e.Name]
		if ok {
			res.Got = row.OID
			res.GotArray = row.ArrayOID
			res.GotName = row.Name
			if legacy {
				res.GotArray = found["_"+e.Name].OID
			}
			res.Status = StatusOK
			if res.Got != e.Code || res.GotArray != e.ArrayCode {
				res.Status = StatusMismatch
			}
		}
		if res.Status != StatusOK {
			debug.Warn("pg_type disagrees with catalog", "type", e.Name,
				"want", e.Code, "got", res.Got, "want_array", e.ArrayCode, "got_array", res.GotArray)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}
