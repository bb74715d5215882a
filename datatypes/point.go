// Package datatypes holds the Go values read from and written to columns
// tagged with the types in package sqltypes.
package datatypes

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// PointSize is the length of a point in binary form.
const PointSize = 16

var (
	// ErrInvalidPoint is returned when a point cannot be decoded.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrNullPoint is returned when scanning NULL into a point.
	ErrNullPoint = errors.New("cannot scan NULL into point")
)

// PgPoint is a value of the sqltypes.Point SQL type.
type PgPoint struct {
	X float64
	Y float64
}

// ParsePoint parses the PostgreSQL text form "(x,y)". The parentheses are
// optional, as they are in PostgreSQL input.
func ParsePoint(s string) (PgPoint, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return PgPoint{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
		}
		s = s[1 : len(s)-1]
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return PgPoint{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return PgPoint{}, fmt.Errorf("%w: x: %v", ErrInvalidPoint, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return PgPoint{}, fmt.Errorf("%w: y: %v", ErrInvalidPoint, err)
	}
	return PgPoint{X: x, Y: y}, nil
}

// String returns the PostgreSQL text form with the shortest exact digits.
func (p PgPoint) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// MarshalBinary encodes p as PostgreSQL sends it in binary format: x then y,
// each a big-endian IEEE 754 float8.
func (p PgPoint) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PointSize)
	binary.BigEndian.PutUint64(buf[:8], math.Float64bits(p.X))
	binary.BigEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
	return buf, nil
}

// UnmarshalBinary decodes the binary form.
func (p *PgPoint) UnmarshalBinary(data []byte) error {
	if len(data) != PointSize {
		return fmt.Errorf("%w: binary point is %d bytes, want %d", ErrInvalidPoint, len(data), PointSize)
	}
	p.X = math.Float64frombits(binary.BigEndian.Uint64(data[:8]))
	p.Y = math.Float64frombits(binary.BigEndian.Uint64(data[8:]))
	return nil
}

// Value implements driver.Valuer. The text form is accepted by PostgreSQL
// for a point parameter through any driver.
func (p PgPoint) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner for the text form.
func (p *PgPoint) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return ErrNullPoint
	case string:
		return p.scanText(v)
	case []byte:
		return p.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into point", src)
	}
}

func (p *PgPoint) scanText(s string) error {
	parsed, err := ParsePoint(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PointValue implements pgtype.PointValuer so pgx encodes p with the point
// codec (OID 600) in binary format.
func (p PgPoint) PointValue() (pgtype.Point, error) {
	return pgtype.Point{P: pgtype.Vec2{X: p.X, Y: p.Y}, Valid: true}, nil
}

// ScanPoint implements pgtype.PointScanner.
func (p *PgPoint) ScanPoint(v pgtype.Point) error {
	if !v.Valid {
		return ErrNullPoint
	}
	p.X, p.Y = v.P.X, v.P.Y
	return nil
}

// BlobPoint is a point stored in a generic binary column, which is how
// sqltypes.Point is represented on MySQL and SQLite. The column holds the
// PostgreSQL binary form.
type BlobPoint PgPoint

// Value implements driver.Valuer.
func (p BlobPoint) Value() (driver.Value, error) {
	return PgPoint(p).MarshalBinary()
}

// Scan implements sql.Scanner.
func (p *BlobPoint) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return ErrNullPoint
	case []byte:
		return (*PgPoint)(p).UnmarshalBinary(v)
	case string:
		return (*PgPoint)(p).UnmarshalBinary([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into point", src)
	}
}

func (p BlobPoint) String() string {
	return PgPoint(p).String()
}
