package sqltypes

import (
	"reflect"
)

// SQLType is implemented by every type tag.
type SQLType interface {
	// SQLTypeName returns the canonical lower-case SQL name of the type.
	SQLTypeName() string
}

// PgTyped is implemented by tags that PostgreSQL can encode and decode.
type PgTyped interface {
	SQLType
	PgMetadata() PgMetadata
}

// MysqlTyped is implemented by tags with a MySQL representation.
type MysqlTyped interface {
	SQLType
	MysqlType() MysqlType
}

// SqliteTyped is implemented by tags with a SQLite representation.
type SqliteTyped interface {
	SQLType
	SqliteType() SqliteType
}

// QueryID returns the identity used to decide whether two uses of a tag refer
// to the same SQL type while building a query. Tags are compared nominally.
func QueryID(t SQLType) reflect.Type {
	return reflect.TypeOf(t)
}

// SameType reports whether a and b are the same tag.
func SameType(a, b SQLType) bool {
	return QueryID(a) == QueryID(b)
}

// Array is the PostgreSQL array form of T. Its scalar OID is T's array OID.
type Array[T PgTyped] struct{}

// SQLTypeName implements SQLType.
func (Array[T]) SQLTypeName() string {
	var t T
	return t.SQLTypeName() + "[]"
}

// PgMetadata implements PgTyped. Arrays of arrays share the element array
// OID in PostgreSQL, so there is no separate array form.
func (Array[T]) PgMetadata() PgMetadata {
	var t T
	if _, nested := any(t).(arrayTag); nested {
		return PgMetadata{OID: t.PgMetadata().OID}
	}
	return PgMetadata{OID: t.PgMetadata().ArrayOID}
}

func (Array[T]) isArray() {}

type arrayTag interface{ isArray() }

func (a Array[T]) String() string {
	var t T
	return "Array<" + tagString(t) + ">"
}

// Nullable marks a column of type T that accepts NULL.
type Nullable[T SQLType] struct{}

// SQLTypeName implements SQLType.
func (Nullable[T]) SQLTypeName() string {
	var t T
	return t.SQLTypeName()
}

// Inner returns the wrapped tag.
func (Nullable[T]) Inner() SQLType {
	var t T
	return t
}

func (n Nullable[T]) String() string {
	return "Nullable<" + tagString(n.Inner()) + ">"
}

// Unwrap strips every Nullable wrapper from t.
func Unwrap(t SQLType) SQLType {
	for {
		n, ok := t.(interface{ Inner() SQLType })
		if !ok {
			return t
		}
		t = n.Inner()
	}
}

// PgMetadataOf returns the PostgreSQL metadata of t, looking through Nullable.
func PgMetadataOf(t SQLType) (PgMetadata, bool) {
	pt, ok := Unwrap(t).(PgTyped)
	if !ok {
		return PgMetadata{}, false
	}
	return pt.PgMetadata(), true
}

// MysqlTypeOf returns the MySQL type of t, looking through Nullable.
func MysqlTypeOf(t SQLType) (MysqlType, bool) {
	mt, ok := Unwrap(t).(MysqlTyped)
	if !ok {
		return 0, false
	}
	return mt.MysqlType(), true
}

// SqliteTypeOf returns the SQLite type of t, looking through Nullable.
func SqliteTypeOf(t SQLType) (SqliteType, bool) {
	st, ok := Unwrap(t).(SqliteTyped)
	if !ok {
		return 0, false
	}
	return st.SqliteType(), true
}

func tagString(t SQLType) string {
	if s, ok := t.(interface{ String() string }); ok {
		return s.String()
	}
	return reflect.TypeOf(t).Name()
}
