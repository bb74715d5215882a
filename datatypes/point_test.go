package datatypes

import (
	"database/sql"
	"database/sql/driver"
	"math"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ sql.Scanner         = (*PgPoint)(nil)
	_ driver.Valuer       = PgPoint{}
	_ pgtype.PointScanner = (*PgPoint)(nil)
	_ pgtype.PointValuer  = PgPoint{}
	_ sql.Scanner         = (*BlobPoint)(nil)
	_ driver.Valuer       = BlobPoint{}
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input string
		want  PgPoint
	}{
		{"(3.1,9.4)", PgPoint{3.1, 9.4}},
		{" ( -1.5 , 2 ) ", PgPoint{-1.5, 2}},
		{"0,0", PgPoint{0, 0}},
		{"(1e+300,-1e-300)", PgPoint{1e300, -1e-300}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePoint(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "(1,2", "(1;2)", "(x,2)", "(1,y)"} {
		_, err := ParsePoint(bad)
		assert.ErrorIs(t, err, ErrInvalidPoint, bad)
	}
}

func TestPointText(t *testing.T) {
	p := PgPoint{X: 3.1, Y: 9.4}
	assert.Equal(t, "(3.1,9.4)", p.String())

	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "(3.1,9.4)", v)

	var got PgPoint
	require.NoError(t, got.Scan([]byte("(3.1,9.4)")))
	assert.Equal(t, p, got)

	assert.ErrorIs(t, got.Scan(nil), ErrNullPoint)
	assert.Error(t, got.Scan(42))
}

func TestPointBinary(t *testing.T) {
	p := PgPoint{X: 3.1, Y: 9.4}
	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, PointSize)
	// 3.1 as float8 is 0x4008cccccccccccd.
	assert.Equal(t, []byte{0x40, 0x08, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcd}, data[:8])

	var got PgPoint
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, p, got)

	assert.ErrorIs(t, got.UnmarshalBinary(data[:8]), ErrInvalidPoint)

	inf := PgPoint{X: math.Inf(1), Y: math.Inf(-1)}
	data, err = inf.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, inf, got)
}

func TestPointPgtype(t *testing.T) {
	p := PgPoint{X: 3.1, Y: 9.4}
	pv, err := p.PointValue()
	require.NoError(t, err)
	assert.True(t, pv.Valid)
	assert.Equal(t, pgtype.Vec2{X: 3.1, Y: 9.4}, pv.P)

	var got PgPoint
	require.NoError(t, got.ScanPoint(pv))
	assert.Equal(t, p, got)
	assert.ErrorIs(t, got.ScanPoint(pgtype.Point{}), ErrNullPoint)
}

func TestBlobPoint(t *testing.T) {
	p := BlobPoint{X: 3.1, Y: 9.4}
	v, err := p.Value()
	require.NoError(t, err)
	raw, ok := v.([]byte)
	require.True(t, ok)
	assert.Len(t, raw, PointSize)

	var got BlobPoint
	require.NoError(t, got.Scan(raw))
	assert.Equal(t, p, got)
	assert.Equal(t, "(3.1,9.4)", got.String())

	assert.ErrorIs(t, got.Scan([]byte("(3.1,9.4)")), ErrInvalidPoint)
	assert.ErrorIs(t, got.Scan(nil), ErrNullPoint)
}
