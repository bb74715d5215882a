// Package sqltypes defines marker types which represent a SQL data type.
//
// The types in this package are only used as markers for a column's SQL type.
// They should never be used as fields of your structs. For the Go values that
// can be read from or written to a column of a given type, see the datatypes
// package.
//
// Backend specific types live in their own packages (sqltypes/pg,
// sqltypes/mysql, sqltypes/sqlite). Importing one of them registers its
// catalog with Default, the same way database/sql drivers register
// themselves:
//
//	import _ "github.com/satishbabariya/prisma-go-geometry/sqltypes/pg"
//
//	col, err := sqltypes.Resolve("postgres", "point[]")
//	// col.Code() == 1017
//
// A backend that was not imported has no names in this namespace, and lookups
// against it fail with ErrBackendNotEnabled.
package sqltypes
