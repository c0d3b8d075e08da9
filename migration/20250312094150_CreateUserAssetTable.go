package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250312094150, Down20250312094150)
}

func Up20250312094150(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS user_assets (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		user_id VARCHAR(36) NOT NULL,
		asset_type VARCHAR(255) NOT NULL,
		description TEXT,
		location VARCHAR(255),
		size DOUBLE,
		property_type VARCHAR(255),
		year_built INT,
		quantity DOUBLE,
		estimated_value DOUBLE NOT NULL,
		current_value DOUBLE,
		status VARCHAR(100) NOT NULL DEFAULT 'UnderReview',
		rejection_reason VARCHAR(255),
		submitted_at TIMESTAMP NULL,
		reviewed_at TIMESTAMP NULL,
		approved_at TIMESTAMP NULL,
		token_id VARCHAR(36),
		contract_address VARCHAR(255),

		PRIMARY KEY (id),
		INDEX idx_user_assets_user_id (user_id),
		INDEX status (status)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250312094150(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS user_assets;")
	if err != nil {
		return err
	}
	return nil
}
