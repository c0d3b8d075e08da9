package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250312100344, Down20250312100344)
}

func Up20250312100344(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS activities (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		user_id VARCHAR(36) NOT NULL,
		activity_type VARCHAR(100) NOT NULL,
		description VARCHAR(255),
		amount DOUBLE,
		status VARCHAR(100),

		PRIMARY KEY (id),
		INDEX idx_activities_user_id (user_id)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250312100344(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS activities;")
	if err != nil {
		return err
	}
	return nil
}
