package sqltypes

// Point is the PostgreSQL point type, a pair of float8 coordinates.
//
// See https://www.postgresql.org/docs/current/datatype-geometric.html.
//
// Values are read and written as datatypes.PgPoint. MySQL and SQLite have no
// point type; there a Point column is a plain binary column (Blob / Binary)
// holding the PostgreSQL binary form, read and written as datatypes.BlobPoint.
// The fallback is intentional and is not upgraded to MySQL's GEOMETRY.
//
//	location -> sqltypes.Point
//
//	INSERT INTO items (name, location) VALUES ('Shiny Thing', datatypes.PgPoint{X: 3.1, Y: 9.4})
//	RETURNING location  -- (3.1,9.4)
type Point struct{}

// SQLTypeName implements SQLType.
func (Point) SQLTypeName() string { return "point" }

// PgMetadata implements PgTyped.
func (Point) PgMetadata() PgMetadata {
	return PgMetadata{OID: 600, ArrayOID: 1017}
}

// MysqlType implements MysqlTyped.
func (Point) MysqlType() MysqlType { return MysqlBlob }

// SqliteType implements SqliteTyped.
func (Point) SqliteType() SqliteType { return SqliteBinary }

func (Point) String() string { return "Point" }

// Tags returns the tags declared by this package, in declaration order.
// Backend packages build their catalogs from the ones they can represent.
func Tags() []SQLType {
	return []SQLType{Point{}}
}
