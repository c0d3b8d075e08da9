package migration

import (
	"context"
	"database/sql"
	"fmt"

	Config "rwa-adapter/config"
	"rwa-adapter/utility/logger"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose"
)

// RunDbMigrations ... Applies the versioned schema migrations up to the latest version
func RunDbMigrations(config Config.Data) {
	DBConnectionString := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", config.DBUser, config.DBPassword, config.DBHost, config.DBName)

	db, err := sql.Open("mysql", DBConnectionString)
	if err != nil {
		logger.Error("Error creating db connection for migration : %s", err.Error())
	}
	defer db.Close()
	ctx := context.Background()
	err = db.PingContext(ctx)
	if err != nil {
		logger.Error("Database connection interrupted : %s", err.Error())
	}

	// Migrate up to the latest version
	goose.SetDialect("mysql")
	err = goose.Up(db, config.DBMigrationPath)
	if err != nil {
		logger.Error("Error with DB Migration : %s", err.Error())
	}
}
