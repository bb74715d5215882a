package sqltypes

import "fmt"

// PgMetadata holds the OIDs PostgreSQL assigns to a type in pg_type.
type PgMetadata struct {
	OID      uint32
	ArrayOID uint32
}

// HasArray reports whether the type has an array form.
func (m PgMetadata) HasArray() bool {
	return m.ArrayOID != 0
}

// MysqlType represents the MySQL type a tag is sent as.
type MysqlType int

const (
	MysqlTiny MysqlType = iota
	MysqlUnsignedTiny
	MysqlShort
	MysqlUnsignedShort
	MysqlLong
	MysqlUnsignedLong
	MysqlLongLong
	MysqlUnsignedLongLong
	MysqlFloat
	MysqlDouble
	MysqlNumeric
	MysqlTime
	MysqlDate
	MysqlDateTime
	MysqlTimestamp
	MysqlString
	MysqlBlob
	MysqlBit
	MysqlSet
	MysqlEnum
)

var mysqlTypeNames = [...]string{
	MysqlTiny:             "Tiny",
	MysqlUnsignedTiny:     "UnsignedTiny",
	MysqlShort:            "Short",
	MysqlUnsignedShort:    "UnsignedShort",
	MysqlLong:             "Long",
	MysqlUnsignedLong:     "UnsignedLong",
	MysqlLongLong:         "LongLong",
	MysqlUnsignedLongLong: "UnsignedLongLong",
	MysqlFloat:            "Float",
	MysqlDouble:           "Double",
	MysqlNumeric:          "Numeric",
	MysqlTime:             "Time",
	MysqlDate:             "Date",
	MysqlDateTime:         "DateTime",
	MysqlTimestamp:        "Timestamp",
	MysqlString:           "String",
	MysqlBlob:             "Blob",
	MysqlBit:              "Bit",
	MysqlSet:              "Set",
	MysqlEnum:             "Enum",
}

// String returns the string representation of the MySQL type.
func (t MysqlType) String() string {
	if t >= 0 && int(t) < len(mysqlTypeNames) {
		return mysqlTypeNames[t]
	}
	return fmt.Sprintf("MysqlType(%d)", int(t))
}

// Unsigned reports whether values are sent with the unsigned flag.
func (t MysqlType) Unsigned() bool {
	switch t {
	case MysqlUnsignedTiny, MysqlUnsignedShort, MysqlUnsignedLong, MysqlUnsignedLongLong:
		return true
	}
	return false
}

// SqliteType is the SQLite storage class a tag is bound as.
type SqliteType int

const (
	SqliteBinary SqliteType = iota
	SqliteText
	SqliteFloat
	SqliteDouble
	SqliteSmallInt
	SqliteInteger
	SqliteLong
)

// String returns the string representation of the SQLite type.
func (t SqliteType) String() string {
	switch t {
	case SqliteBinary:
		return "Binary"
	case SqliteText:
		return "Text"
	case SqliteFloat:
		return "Float"
	case SqliteDouble:
		return "Double"
	case SqliteSmallInt:
		return "SmallInt"
	case SqliteInteger:
		return "Integer"
	case SqliteLong:
		return "Long"
	default:
		return fmt.Sprintf("SqliteType(%d)", int(t))
	}
}

// Affinity returns the column type SQLite stores values of t with.
func (t SqliteType) Affinity() string {
	switch t {
	case SqliteBinary:
		return "BLOB"
	case SqliteText:
		return "TEXT"
	case SqliteFloat, SqliteDouble:
		return "REAL"
	default:
		return "INTEGER"
	}
}
