package pg

import "github.com/satishbabariya/prisma-go-geometry/sqltypes"

// Oid is the PostgreSQL object identifier type.
type Oid struct{}

func (Oid) SQLTypeName() string { return "oid" }
func (Oid) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 26, ArrayOID: 1028}
}
func (Oid) String() string { return "Oid" }

// Timestamptz is a timestamp with time zone.
type Timestamptz struct{}

func (Timestamptz) SQLTypeName() string { return "timestamptz" }
func (Timestamptz) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 1184, ArrayOID: 1185}
}
func (Timestamptz) String() string { return "Timestamptz" }

// Money is the PostgreSQL currency type.
type Money struct{}

func (Money) SQLTypeName() string { return "money" }
func (Money) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 790, ArrayOID: 791}
}
func (Money) String() string { return "Money" }

// MacAddr is a six byte MAC address.
type MacAddr struct{}

func (MacAddr) SQLTypeName() string { return "macaddr" }
func (MacAddr) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 829, ArrayOID: 1040}
}
func (MacAddr) String() string { return "MacAddr" }

// Inet is an IPv4 or IPv6 host address with optional netmask.
type Inet struct{}

func (Inet) SQLTypeName() string { return "inet" }
func (Inet) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 869, ArrayOID: 1041}
}
func (Inet) String() string { return "Inet" }

// Cidr is an IPv4 or IPv6 network.
type Cidr struct{}

func (Cidr) SQLTypeName() string { return "cidr" }
func (Cidr) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 650, ArrayOID: 651}
}
func (Cidr) String() string { return "Cidr" }

// Uuid is the PostgreSQL UUID type.
type Uuid struct{}

func (Uuid) SQLTypeName() string { return "uuid" }
func (Uuid) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 2950, ArrayOID: 2951}
}
func (Uuid) String() string { return "Uuid" }

// Json is textual JSON.
type Json struct{}

func (Json) SQLTypeName() string { return "json" }
func (Json) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 114, ArrayOID: 199}
}
func (Json) String() string { return "Json" }

// Jsonb is decomposed binary JSON.
type Jsonb struct{}

func (Jsonb) SQLTypeName() string { return "jsonb" }
func (Jsonb) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 3802, ArrayOID: 3807}
}
func (Jsonb) String() string { return "Jsonb" }

// Record is an anonymous composite, as returned by ROW(...).
type Record struct{}

func (Record) SQLTypeName() string { return "record" }
func (Record) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 2249, ArrayOID: 2287}
}
func (Record) String() string { return "Record" }

// Int4range is a range of integer.
type Int4range struct{}

func (Int4range) SQLTypeName() string { return "int4range" }
func (Int4range) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 3904, ArrayOID: 3905}
}
func (Int4range) String() string { return "Int4range" }

// Int8range is a range of bigint.
type Int8range struct{}

func (Int8range) SQLTypeName() string { return "int8range" }
func (Int8range) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 3926, ArrayOID: 3927}
}
func (Int8range) String() string { return "Int8range" }

// Numrange is a range of numeric.
type Numrange struct{}

func (Numrange) SQLTypeName() string { return "numrange" }
func (Numrange) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 3906, ArrayOID: 3907}
}
func (Numrange) String() string { return "Numrange" }

// Tsrange is a range of timestamp without time zone.
type Tsrange struct{}

func (Tsrange) SQLTypeName() string { return "tsrange" }
func (Tsrange) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 3908, ArrayOID: 3909}
}
func (Tsrange) String() string { return "Tsrange" }

// Tstzrange is a range of timestamp with time zone.
type Tstzrange struct{}

func (Tstzrange) SQLTypeName() string { return "tstzrange" }
func (Tstzrange) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 3910, ArrayOID: 3911}
}
func (Tstzrange) String() string { return "Tstzrange" }

// Daterange is a range of date.
type Daterange struct{}

func (Daterange) SQLTypeName() string { return "daterange" }
func (Daterange) PgMetadata() sqltypes.PgMetadata {
	return sqltypes.PgMetadata{OID: 3912, ArrayOID: 3913}
}
func (Daterange) String() string { return "Daterange" }
