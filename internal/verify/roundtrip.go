package verify

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/satishbabariya/prisma-go-geometry/datatypes"
	"github.com/satishbabariya/prisma-go-geometry/internal/debug"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

const itemsTable = "sqltypes_items"

func itemsDDL(e sqltypes.Entry) string {
	return fmt.Sprintf(
		"CREATE TEMPORARY TABLE %s (id INTEGER NOT NULL PRIMARY KEY, name VARCHAR(64) NOT NULL, location %s NOT NULL)",
		itemsTable, e.DDL)
}

func statements(e sqltypes.Entry) squirrel.StatementBuilderType {
	if e.Backend == "postgres" {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// pointArg returns the value written for p in a column of entry e.
func pointArg(e sqltypes.Entry, p datatypes.PgPoint) any {
	if e.Fallback {
		return datatypes.BlobPoint(p)
	}
	return p
}

func roundTripQueries(e sqltypes.Entry, p datatypes.PgPoint) (insert string, insertArgs []any, sel string, selArgs []any, err error) {
	b := statements(e)
	insert, insertArgs, err = b.Insert(itemsTable).
		Columns("id", "name", "location").
		Values(1, "Shiny Thing", pointArg(e, p)).
		ToSql()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("building insert query: %w", err)
	}
	sel, selArgs, err = b.Select("location").
		From(itemsTable).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("building select query: %w", err)
	}
	return insert, insertArgs, sel, selArgs, nil
}

// RoundTripPoint writes p to a temporary column declared as entry e and
// returns the value read back, through database/sql.
func RoundTripPoint(ctx context.Context, db *sql.DB, e sqltypes.Entry, p datatypes.PgPoint) (datatypes.PgPoint, error) {
	insert, insertArgs, sel, selArgs, err := roundTripQueries(e, p)
	if err != nil {
		return datatypes.PgPoint{}, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return datatypes.PgPoint{}, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	debug.Debug("round trip", "backend", e.Backend, "type", e.Name, "ddl", e.DDL, "point", p.String())
	if _, err := conn.ExecContext(ctx, itemsDDL(e)); err != nil {
		return datatypes.PgPoint{}, fmt.Errorf("creating %s: %w", itemsTable, err)
	}
	defer dropTable(conn, itemsTable)

	if _, err := conn.ExecContext(ctx, insert, insertArgs...); err != nil {
		return datatypes.PgPoint{}, fmt.Errorf("inserting point: %w", err)
	}

	row := conn.QueryRowContext(ctx, sel, selArgs...)
	if e.Fallback {
		var out datatypes.BlobPoint
		if err := row.Scan(&out); err != nil {
			return datatypes.PgPoint{}, fmt.Errorf("reading point: %w", err)
		}
		return datatypes.PgPoint(out), nil
	}
	var out datatypes.PgPoint
	if err := row.Scan(&out); err != nil {
		return datatypes.PgPoint{}, fmt.Errorf("reading point: %w", err)
	}
	return out, nil
}

// RoundTripPointPgx is RoundTripPoint over a pgx connection, where the point
// travels in binary format through the pgtype point codec. conn must be a
// single connection so the temporary table stays visible.
func RoundTripPointPgx(ctx context.Context, conn PgConn, e sqltypes.Entry, p datatypes.PgPoint) (datatypes.PgPoint, error) {
	insert, insertArgs, sel, selArgs, err := roundTripQueries(e, p)
	if err != nil {
		return datatypes.PgPoint{}, err
	}

	if _, err := conn.Exec(ctx, itemsDDL(e)); err != nil {
		return datatypes.PgPoint{}, fmt.Errorf("creating %s: %w", itemsTable, err)
	}
	defer func() {
		if _, err := conn.Exec(context.Background(), "DROP TABLE IF EXISTS "+itemsTable); err != nil {
			debug.Warn("dropping temporary table", "table", itemsTable, "error", err)
		}
	}()

	if _, err := conn.Exec(ctx, insert, insertArgs...); err != nil {
		return datatypes.PgPoint{}, fmt.Errorf("inserting point: %w", err)
	}

	var out datatypes.PgPoint
	if err := conn.QueryRow(ctx, sel, selArgs...).Scan(&out); err != nil {
		return datatypes.PgPoint{}, fmt.Errorf("reading point: %w", err)
	}
	return out, nil
}
