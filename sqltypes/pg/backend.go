// Package pg provides the PostgreSQL type tags and catalog.
//
// Importing the package registers the catalog with sqltypes.Default.
package pg

import (
	"strings"

	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

// Name is the backend name the catalog is registered under.
const Name = "postgres"

type backend struct{}

// Backend returns the PostgreSQL backend, for explicit composition with
// sqltypes.Compose.
func Backend() sqltypes.Backend {
	return backend{}
}

func (backend) Name() string { return Name }

func (backend) IsProvider(name string) bool {
	switch name {
	case "postgres", "postgresql", "pg", "pgx":
		return true
	}
	return false
}

// Entries returns the core tags PostgreSQL supports followed by the
// PostgreSQL-specific ones.
func (backend) Entries() []sqltypes.Entry {
	var out []sqltypes.Entry
	for _, t := range sqltypes.Tags() {
		if pt, ok := t.(sqltypes.PgTyped); ok {
			out = append(out, entry(pt, docFor(pt)))
		}
	}
	return append(out,
		entry(Oid{}, "Object identifier."),
		entry(Timestamptz{}, "Timestamp with time zone.", "timestamp with time zone"),
		entry(Money{}, "Currency amount."),
		entry(MacAddr{}, "MAC address."),
		entry(Inet{}, "IPv4 or IPv6 host address."),
		entry(Cidr{}, "IPv4 or IPv6 network."),
		entry(Uuid{}, "Universally unique identifier."),
		entry(Json{}, "Textual JSON."),
		entry(Jsonb{}, "Binary JSON."),
		entry(Record{}, "Anonymous composite."),
		entry(Int4range{}, "Range of integer."),
		entry(Int8range{}, "Range of bigint."),
		entry(Numrange{}, "Range of numeric."),
		entry(Tsrange{}, "Range of timestamp without time zone."),
		entry(Tstzrange{}, "Range of timestamp with time zone."),
		entry(Daterange{}, "Range of date."),
	)
}

func entry(t sqltypes.PgTyped, doc string, aliases ...string) sqltypes.Entry {
	meta := t.PgMetadata()
	return sqltypes.Entry{
		Backend:    Name,
		Name:       t.SQLTypeName(),
		Aliases:    aliases,
		Type:       t,
		Code:       meta.OID,
		ArrayCode:  meta.ArrayOID,
		DDL:        t.SQLTypeName(),
		DriverName: strings.ToUpper(t.SQLTypeName()),
		Doc:        doc,
	}
}

func docFor(t sqltypes.SQLType) string {
	switch t.(type) {
	case sqltypes.Point:
		return "Geometric point (x,y). Read and written as datatypes.PgPoint."
	}
	return ""
}

func init() {
	sqltypes.Register(backend{})
}
