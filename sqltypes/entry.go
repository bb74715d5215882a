package sqltypes

import (
	"strconv"
	"strings"
)

// Entry is a type tag as registered in one backend's catalog.
type Entry struct {
	// Backend is the name of the owning backend.
	Backend string
	// Name is the canonical SQL name. For PostgreSQL it is the pg_type.typname.
	Name    string
	Aliases []string
	Type    SQLType

	// Code is the protocol identifier of the scalar form: the OID on
	// PostgreSQL, the column type byte on MySQL. SQLite has none.
	Code uint32
	// ArrayCode is the identifier of the array form, zero when there is none.
	ArrayCode uint32
	Unsigned  bool

	// DDL is the column type used in CREATE TABLE.
	DDL string
	// DriverName is what database/sql reports as ColumnType.DatabaseTypeName.
	DriverName string

	// Fallback is set when the backend has no native equivalent and the tag is
	// mapped to its generic binary type instead.
	Fallback bool
	Doc      string
}

// HasArray reports whether the entry has an array form.
func (e Entry) HasArray() bool {
	return e.ArrayCode != 0
}

func (e Entry) names() []string {
	out := make([]string, 0, 1+len(e.Aliases))
	out = append(out, normalizeName(e.Name))
	for _, a := range e.Aliases {
		out = append(out, normalizeName(a))
	}
	return out
}

// Column is a resolved column type declaration.
type Column struct {
	Entry Entry
	// Dims is the number of array dimensions, zero for a scalar column.
	Dims int
	// Args holds the type modifiers, e.g. precision and scale.
	Args []int
}

// IsArray reports whether the column holds arrays.
func (c Column) IsArray() bool {
	return c.Dims > 0
}

// Code returns the protocol identifier used for values of this column.
func (c Column) Code() uint32 {
	if c.IsArray() {
		return c.Entry.ArrayCode
	}
	return c.Entry.Code
}

func (c Column) String() string {
	var b strings.Builder
	b.WriteString(c.Entry.Name)
	if len(c.Args) > 0 {
		b.WriteByte('(')
		for i, a := range c.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(a))
		}
		b.WriteByte(')')
	}
	for i := 0; i < c.Dims; i++ {
		b.WriteString("[]")
	}
	return b.String()
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
