package mysql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes/mysql"
)

func TestPointFallsBackToBlob(t *testing.T) {
	r, err := sqltypes.Compose(mysql.Backend())
	require.NoError(t, err)

	e, err := r.Lookup(mysql.Name, "point")
	require.NoError(t, err)
	assert.True(t, e.Fallback)
	assert.Equal(t, uint32(mysql.TypeBlob), e.Code)
	assert.Equal(t, "BLOB", e.DDL)
	assert.False(t, e.HasArray())

	_, err = r.Resolve(mysql.Name, "point[]")
	assert.ErrorIs(t, err, sqltypes.ErrArrayUnsupported)
}

func TestProtocol(t *testing.T) {
	tests := []struct {
		typ      sqltypes.MysqlType
		code     byte
		unsigned bool
	}{
		{sqltypes.MysqlTiny, 0x01, false},
		{sqltypes.MysqlUnsignedTiny, 0x01, true},
		{sqltypes.MysqlUnsignedLong, 0x03, true},
		{sqltypes.MysqlLongLong, 0x08, false},
		{sqltypes.MysqlNumeric, 0xf6, false},
		{sqltypes.MysqlDateTime, 0x0c, false},
		{sqltypes.MysqlString, 0xfe, false},
		{sqltypes.MysqlBlob, 0xfc, false},
		{sqltypes.MysqlEnum, 0xf7, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			code, unsigned := mysql.Protocol(tt.typ)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.unsigned, unsigned)
		})
	}

	code, _ := mysql.Protocol(sqltypes.MysqlType(99))
	assert.Equal(t, mysql.TypeNull, code)
}

func TestUnsignedResolve(t *testing.T) {
	r, err := sqltypes.Compose(mysql.Backend())
	require.NoError(t, err)

	col, err := r.Resolve("mariadb", "INT UNSIGNED")
	require.NoError(t, err)
	assert.True(t, col.Entry.Unsigned)
	assert.Equal(t, uint32(mysql.TypeLong), col.Code())
	assert.True(t, sqltypes.SameType(mysql.UnsignedInteger{}, col.Entry.Type))

	col, err = r.Resolve(mysql.Name, "integer unsigned")
	require.NoError(t, err)
	assert.Equal(t, "int unsigned", col.Entry.Name)
}

func TestNoPostgresTagsLeak(t *testing.T) {
	r, err := sqltypes.Compose(mysql.Backend())
	require.NoError(t, err)

	for _, name := range []string{"jsonb", "uuid", "int4range", "timestamptz"} {
		_, err := r.Lookup(mysql.Name, name)
		assert.ErrorIs(t, err, sqltypes.ErrUnknownType, name)
	}
	_, err = r.Lookup("postgres", "point")
	assert.ErrorIs(t, err, sqltypes.ErrBackendNotEnabled)

	// This test binary never imports sqltypes/pg.
	assert.False(t, sqltypes.Enabled("postgres"))
	assert.True(t, sqltypes.Enabled(mysql.Name))
}
