package main

import (
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/satishbabariya/prisma-go-geometry/cli/commands"
	_ "github.com/satishbabariya/prisma-go-geometry/sqltypes/mysql"
	_ "github.com/satishbabariya/prisma-go-geometry/sqltypes/pg"
	_ "github.com/satishbabariya/prisma-go-geometry/sqltypes/sqlite"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
