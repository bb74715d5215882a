package verify

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/satishbabariya/prisma-go-geometry/internal/debug"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

const verifyTable = "sqltypes_verify"

// DriverTypes declares one column per entry in a temporary table and compares
// the type name the driver reports with the entry's DriverName. It is the
// check for backends without numeric identifiers in a queryable catalog
// (MySQL, SQLite).
func DriverTypes(ctx context.Context, db *sql.DB, backend string, entries []sqltypes.Entry) (*Report, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	cols := make([]string, len(entries))
	for i, e := range entries {
		cols[i] = fmt.Sprintf("c%d %s", i, e.DDL)
	}
	ddl := fmt.Sprintf("CREATE TEMPORARY TABLE %s (%s)", verifyTable, strings.Join(cols, ", "))
	debug.Debug("creating verification table", "backend", backend, "ddl", ddl)
	if _, err := conn.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("creating %s: %w", verifyTable, err)
	}
	defer dropTable(conn, verifyTable)

	query, args, err := squirrel.Select("*").From(verifyTable).Where("1 = 0").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", verifyTable, err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("reading column types: %w", err)
	}

	report := &Report{Backend: backend}
	for i, e := range entries {
		res := Result{Entry: e, Status: StatusMissing}
		if i < len(types) {
			res.GotName = types[i].DatabaseTypeName()
			res.Status = StatusOK
			if !strings.EqualFold(res.GotName, e.DriverName) {
				res.Status = StatusMismatch
				debug.Warn("driver type disagrees with catalog", "type", e.Name, "want", e.DriverName, "got", res.GotName)
			}
		}
		report.Results = append(report.Results, res)
	}
	return report, rows.Err()
}

func dropTable(conn *sql.Conn, table string) {
	if _, err := conn.ExecContext(context.Background(), "DROP TABLE IF EXISTS "+table); err != nil {
		debug.Warn("dropping temporary table", "table", table, "error", err)
	}
}
