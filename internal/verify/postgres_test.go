package verify

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/prisma-go-geometry/datatypes"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes/pg"
)

func pgEntries(t *testing.T, names ...string) []sqltypes.Entry {
	t.Helper()
	r, err := sqltypes.Compose(pg.Backend())
	require.NoError(t, err)
	out := make([]sqltypes.Entry, 0, len(names))
	for _, n := range names {
		e, err := r.Lookup(pg.Name, n)
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func TestServerVersion(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery("SHOW server_version").
		WillReturnRows(pgxmock.NewRows([]string{"server_version"}).AddRow("16.2 (Debian 16.2-1.pgdg120+2)"))

	v, err := ServerVersion(context.Background(), mock)
	require.NoError(t, err)
	assert.Equal(t, "16.2.0", v.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCatalog(t *testing.T) {
	t.Run("Should report matching identifiers", func(t *testing.T) {
		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		mock.ExpectQuery("SHOW server_version").
			WillReturnRows(pgxmock.NewRows([]string{"server_version"}).AddRow("16.2"))
		mock.ExpectQuery(regexp.QuoteMeta("t.typarray AS typarray")).
			WithArgs(pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"typname", "oid", "typarray"}).
				AddRow("point", uint32(600), uint32(1017)).
				AddRow("jsonb", uint32(3802), uint32(3807)))

		report, err := Postgres(context.Background(), mock, pgEntries(t, "point", "jsonb"))
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, "16.2.0", report.Server)
		require.Len(t, report.Results, 2)
		assert.Equal(t, uint32(1017), report.Results[0].GotArray)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should flag mismatched and missing types", func(t *testing.T) {
		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		mock.ExpectQuery("SHOW server_version").
			WillReturnRows(pgxmock.NewRows([]string{"server_version"}).AddRow("15.4"))
		mock.ExpectQuery("FROM pg_catalog.pg_type").
			WithArgs(pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"typname", "oid", "typarray"}).
				AddRow("point", uint32(600), uint32(1016)))

		report, err := Postgres(context.Background(), mock, pgEntries(t, "point", "uuid"))
		require.NoError(t, err)
		assert.False(t, report.OK())

		failed := report.Failed()
		require.Len(t, failed, 2)
		assert.Equal(t, StatusMismatch, failed[0].Status)
		assert.Equal(t, uint32(1016), failed[0].GotArray)
		assert.Equal(t, StatusMissing, failed[1].Status)
		assert.Equal(t, "uuid", failed[1].Entry.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should read array OIDs from underscore rows before 8.3", func(t *testing.T) {
		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		mock.ExpectQuery("SHOW server_version").
			WillReturnRows(pgxmock.NewRows([]string{"server_version"}).AddRow("8.2.23"))
		mock.ExpectQuery(regexp.QuoteMeta("0::oid AS typarray")).
			WithArgs([]string{"point", "_point"}).
			WillReturnRows(pgxmock.NewRows([]string{"typname", "oid", "typarray"}).
				AddRow("point", uint32(600), uint32(0)).
				AddRow("_point", uint32(1017), uint32(0)))

		report, err := Postgres(context.Background(), mock, pgEntries(t, "point"))
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoundTripPointPgx(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	p := datatypes.PgPoint{X: 3.1, Y: 9.4}
	mock.ExpectExec("CREATE TEMPORARY TABLE sqltypes_items .* location point NOT NULL").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sqltypes_items (id,name,location) VALUES ($1,$2,$3)")).
		WithArgs(1, "Shiny Thing", p).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT location FROM sqltypes_items WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"location"}).AddRow(p))
	mock.ExpectExec("DROP TABLE IF EXISTS sqltypes_items").
		WillReturnResult(pgxmock.NewResult("DROP TABLE", 0))

	got, err := RoundTripPointPgx(context.Background(), mock, pgEntries(t, "point")[0], p)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
