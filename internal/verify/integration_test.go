package verify

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/satishbabariya/prisma-go-geometry/datatypes"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes/mysql"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes/pg"
)

// createTestDatabase starts a PostgreSQL container. Set SQLTYPES_TESTCONTAINERS=1
// to run the tests that need one.
func createTestDatabase(ctx context.Context, t *testing.T) (string, func()) {
	if testing.Short() || os.Getenv("SQLTYPES_TESTCONTAINERS") == "" {
		t.Skip("set SQLTYPES_TESTCONTAINERS=1 to run against a PostgreSQL container")
	}

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("sqltypes"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cleanup := func() {
		terminateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pgContainer.Terminate(terminateCtx); err != nil {
			t.Logf("Warning: failed to terminate container: %s", err)
		}
	}
	return connStr, cleanup
}

func TestPostgresLive(t *testing.T) {
	ctx := context.Background()
	connStr, cleanup := createTestDatabase(ctx, t)
	defer cleanup()

	entries, err := sqltypes.Default.Entries(pg.Name)
	require.NoError(t, err)
	point, err := sqltypes.Lookup(pg.Name, "point")
	require.NoError(t, err)
	p := datatypes.PgPoint{X: 3.1, Y: 9.4}

	t.Run("Should match every OID in pg_type", func(t *testing.T) {
		conn, err := pgx.Connect(ctx, connStr)
		require.NoError(t, err)
		defer conn.Close(ctx)

		report, err := Postgres(ctx, conn, entries)
		require.NoError(t, err)
		for _, res := range report.Failed() {
			t.Errorf("%s: want %d/%d, got %d/%d (%s)", res.Entry.Name,
				res.Entry.Code, res.Entry.ArrayCode, res.Got, res.GotArray, res.Status)
		}
	})

	t.Run("Should round trip a point through pgx", func(t *testing.T) {
		conn, err := pgx.Connect(ctx, connStr)
		require.NoError(t, err)
		defer conn.Close(ctx)

		got, err := RoundTripPointPgx(ctx, conn, point, p)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("Should round trip a point through lib/pq", func(t *testing.T) {
		db, err := sql.Open("postgres", connStr)
		require.NoError(t, err)
		defer db.Close()

		got, err := RoundTripPoint(ctx, db, point, p)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("Should use the array OID for point[] columns", func(t *testing.T) {
		conn, err := pgx.Connect(ctx, connStr)
		require.NoError(t, err)
		defer conn.Close(ctx)

		col, err := sqltypes.Resolve(pg.Name, "point[]")
		require.NoError(t, err)

		var oid uint32
		require.NoError(t, conn.QueryRow(ctx, "SELECT 'point[]'::regtype::oid").Scan(&oid))
		assert.Equal(t, oid, col.Code())
		assert.NotEqual(t, point.Code, col.Code())
	})
}

func TestMySQLLive(t *testing.T) {
	dsn := os.Getenv("SQLTYPES_MYSQL_DSN")
	if testing.Short() || dsn == "" {
		t.Skip("set SQLTYPES_MYSQL_DSN to run against MySQL")
	}
	ctx := context.Background()

	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer db.Close()

	entries, err := sqltypes.Default.Entries(mysql.Name)
	require.NoError(t, err)

	report, err := DriverTypes(ctx, db, mysql.Name, entries)
	require.NoError(t, err)
	assert.True(t, report.OK(), "%+v", report.Failed())

	point, err := sqltypes.Lookup(mysql.Name, "point")
	require.NoError(t, err)
	got, err := RoundTripPoint(ctx, db, point, datatypes.PgPoint{X: 3.1, Y: 9.4})
	require.NoError(t, err)
	assert.Equal(t, datatypes.PgPoint{X: 3.1, Y: 9.4}, got)
}
