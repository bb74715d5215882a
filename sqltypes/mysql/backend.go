// Package mysql provides the MySQL type tags and catalog.
//
// MySQL has no array types, so no entry has an array form. Core tags without
// a native MySQL type (Point) are mapped to BLOB and flagged as Fallback.
package mysql

import (
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

// Name is the backend name the catalog is registered under.
const Name = "mysql"

// TinyInt is a signed 8 bit integer.
type TinyInt struct{}

func (TinyInt) SQLTypeName() string           { return "tinyint" }
func (TinyInt) MysqlType() sqltypes.MysqlType { return sqltypes.MysqlTiny }
func (TinyInt) String() string                { return "TinyInt" }

// UnsignedTinyInt is an unsigned 8 bit integer.
type UnsignedTinyInt struct{}

func (UnsignedTinyInt) SQLTypeName() string           { return "tinyint unsigned" }
func (UnsignedTinyInt) MysqlType() sqltypes.MysqlType { return sqltypes.MysqlUnsignedTiny }
func (UnsignedTinyInt) String() string                { return "Unsigned<TinyInt>" }

// UnsignedSmallInt is an unsigned 16 bit integer.
type UnsignedSmallInt struct{}

func (UnsignedSmallInt) SQLTypeName() string           { return "smallint unsigned" }
func (UnsignedSmallInt) MysqlType() sqltypes.MysqlType { return sqltypes.MysqlUnsignedShort }
func (UnsignedSmallInt) String() string                { return "Unsigned<SmallInt>" }

// UnsignedInteger is an unsigned 32 bit integer.
type UnsignedInteger struct{}

func (UnsignedInteger) SQLTypeName() string           { return "int unsigned" }
func (UnsignedInteger) MysqlType() sqltypes.MysqlType { return sqltypes.MysqlUnsignedLong }
func (UnsignedInteger) String() string                { return "Unsigned<Integer>" }

// UnsignedBigInt is an unsigned 64 bit integer.
type UnsignedBigInt struct{}

func (UnsignedBigInt) SQLTypeName() string           { return "bigint unsigned" }
func (UnsignedBigInt) MysqlType() sqltypes.MysqlType { return sqltypes.MysqlUnsignedLongLong }
func (UnsignedBigInt) String() string                { return "Unsigned<BigInt>" }

// Datetime is MySQL's DATETIME, which unlike TIMESTAMP is not converted to UTC.
type Datetime struct{}

func (Datetime) SQLTypeName() string           { return "datetime" }
func (Datetime) MysqlType() sqltypes.MysqlType { return sqltypes.MysqlDateTime }
func (Datetime) String() string                { return "Datetime" }

type backend struct{}

// Backend returns the MySQL backend.
func Backend() sqltypes.Backend {
	return backend{}
}

func (backend) Name() string { return Name }

func (backend) IsProvider(name string) bool {
	return name == "mysql" || name == "mariadb"
}

func (backend) Entries() []sqltypes.Entry {
	var out []sqltypes.Entry
	for _, t := range sqltypes.Tags() {
		if mt, ok := t.(sqltypes.MysqlTyped); ok {
			e := entry(mt)
			// Core tags without a native MySQL type are bound as BLOB.
			e.Fallback = mt.MysqlType() == sqltypes.MysqlBlob
			out = append(out, e)
		}
	}
	return append(out,
		entry(TinyInt{}),
		entry(UnsignedTinyInt{}),
		entry(UnsignedSmallInt{}),
		entry(UnsignedInteger{}, "integer unsigned"),
		entry(UnsignedBigInt{}),
		entry(Datetime{}),
	)
}

func entry(t sqltypes.MysqlTyped, aliases ...string) sqltypes.Entry {
	mt := t.MysqlType()
	w := wireTypes[mt]
	return sqltypes.Entry{
		Backend:    Name,
		Name:       t.SQLTypeName(),
		Aliases:    aliases,
		Type:       t,
		Code:       uint32(w.code),
		Unsigned:   mt.Unsigned(),
		DDL:        w.ddl,
		DriverName: w.driverName,
		Doc:        "Sent as " + mt.String() + ".",
	}
}

func init() {
	sqltypes.Register(backend{})
}
