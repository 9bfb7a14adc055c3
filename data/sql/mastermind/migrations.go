package mastermind

import (
	"embed"

	pkgsql "github.com/klwxsrx/mastermind/pkg/sql"
)

var Migrations = pkgsql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
