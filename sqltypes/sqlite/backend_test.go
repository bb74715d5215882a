package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
	"github.com/satishbabariya/prisma-go-geometry/sqltypes/sqlite"
)

func TestPointIsBlob(t *testing.T) {
	e, err := sqltypes.Lookup("sqlite3", "point")
	require.NoError(t, err)
	assert.Equal(t, sqlite.Name, e.Backend)
	assert.Equal(t, "BLOB", e.DDL)
	assert.True(t, e.Fallback)
	assert.Zero(t, e.Code)

	_, err = sqltypes.Resolve(sqlite.Name, "_point")
	assert.ErrorIs(t, err, sqltypes.ErrArrayUnsupported)
}

func TestOnlySqliteEnabled(t *testing.T) {
	assert.Equal(t, []string{sqlite.Name}, sqltypes.Default.Backends())
}
