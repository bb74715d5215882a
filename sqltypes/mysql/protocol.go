package mysql

import "github.com/satishbabariya/prisma-go-geometry/sqltypes"

// Column type codes of the MySQL client/server protocol.
const (
	TypeDecimal    byte = 0x00
	TypeTiny       byte = 0x01
	TypeShort      byte = 0x02
	TypeLong       byte = 0x03
	TypeFloat      byte = 0x04
	TypeDouble     byte = 0x05
	TypeNull       byte = 0x06
	TypeTimestamp  byte = 0x07
	TypeLongLong   byte = 0x08
	TypeInt24      byte = 0x09
	TypeDate       byte = 0x0a
	TypeTime       byte = 0x0b
	TypeDateTime   byte = 0x0c
	TypeYear       byte = 0x0d
	TypeNewDate    byte = 0x0e
	TypeVarchar    byte = 0x0f
	TypeBit        byte = 0x10
	TypeJSON       byte = 0xf5
	TypeNewDecimal byte = 0xf6
	TypeEnum       byte = 0xf7
	TypeSet        byte = 0xf8
	TypeTinyBlob   byte = 0xf9
	TypeMediumBlob byte = 0xfa
	TypeLongBlob   byte = 0xfb
	TypeBlob       byte = 0xfc
	TypeVarString  byte = 0xfd
	TypeString     byte = 0xfe
	TypeGeometry   byte = 0xff
)

type wireType struct {
	code byte
	// ddl is the column type used in CREATE TABLE, driverName the type name
	// go-sql-driver/mysql reports for such a column.
	ddl        string
	driverName string
}

var wireTypes = map[sqltypes.MysqlType]wireType{
	sqltypes.MysqlTiny:             {TypeTiny, "TINYINT", "TINYINT"},
	sqltypes.MysqlUnsignedTiny:     {TypeTiny, "TINYINT UNSIGNED", "UNSIGNED TINYINT"},
	sqltypes.MysqlShort:            {TypeShort, "SMALLINT", "SMALLINT"},
	sqltypes.MysqlUnsignedShort:    {TypeShort, "SMALLINT UNSIGNED", "UNSIGNED SMALLINT"},
	sqltypes.MysqlLong:             {TypeLong, "INT", "INT"},
	sqltypes.MysqlUnsignedLong:     {TypeLong, "INT UNSIGNED", "UNSIGNED INT"},
	sqltypes.MysqlLongLong:         {TypeLongLong, "BIGINT", "BIGINT"},
	sqltypes.MysqlUnsignedLongLong: {TypeLongLong, "BIGINT UNSIGNED", "UNSIGNED BIGINT"},
	sqltypes.MysqlFloat:            {TypeFloat, "FLOAT", "FLOAT"},
	sqltypes.MysqlDouble:           {TypeDouble, "DOUBLE", "DOUBLE"},
	sqltypes.MysqlNumeric:          {TypeNewDecimal, "DECIMAL(65,30)", "DECIMAL"},
	sqltypes.MysqlTime:             {TypeTime, "TIME", "TIME"},
	sqltypes.MysqlDate:             {TypeDate, "DATE", "DATE"},
	sqltypes.MysqlDateTime:         {TypeDateTime, "DATETIME", "DATETIME"},
	sqltypes.MysqlTimestamp:        {TypeTimestamp, "TIMESTAMP NULL", "TIMESTAMP"},
	sqltypes.MysqlString:           {TypeString, "CHAR(255)", "CHAR"},
	sqltypes.MysqlBlob:             {TypeBlob, "BLOB", "BLOB"},
	sqltypes.MysqlBit:              {TypeBit, "BIT(64)", "BIT"},
	sqltypes.MysqlSet:              {TypeSet, "SET('')", "SET"},
	sqltypes.MysqlEnum:             {TypeEnum, "ENUM('')", "ENUM"},
}

// Protocol returns the column type code t is sent with and whether the
// unsigned flag is set.
func Protocol(t sqltypes.MysqlType) (code byte, unsigned bool) {
	w, ok := wireTypes[t]
	if !ok {
		return TypeNull, false
	}
	return w.code, t.Unsigned()
}
