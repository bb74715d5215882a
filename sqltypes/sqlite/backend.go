// Package sqlite provides the SQLite catalog.
//
// SQLite has no type identifiers on the wire; entries carry the storage class
// a tag is bound as and the column type used to declare it.
package sqlite

import (
	"github.com/satishbabariya/prisma-go-geometry/sqltypes"
)

// Name is the backend name the catalog is registered under.
const Name = "sqlite"

type backend struct{}

// Backend returns the SQLite backend.
func Backend() sqltypes.Backend {
	return backend{}
}

func (backend) Name() string { return Name }

func (backend) IsProvider(name string) bool {
	return name == "sqlite" || name == "sqlite3"
}

func (backend) Entries() []sqltypes.Entry {
	var out []sqltypes.Entry
	for _, t := range sqltypes.Tags() {
		st, ok := t.(sqltypes.SqliteTyped)
		if !ok {
			continue
		}
		class := st.SqliteType()
		out = append(out, sqltypes.Entry{
			Backend:    Name,
			Name:       st.SQLTypeName(),
			Type:       st,
			DDL:        class.Affinity(),
			DriverName: class.Affinity(),
			Fallback:   class == sqltypes.SqliteBinary,
			Doc:        "Bound as " + class.String() + ".",
		})
	}
	return out
}

func init() {
	sqltypes.Register(backend{})
}
