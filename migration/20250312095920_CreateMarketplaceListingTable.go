package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250312095920, Down20250312095920)
}

func Up20250312095920(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS marketplace_listings (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		token_id VARCHAR(36) NOT NULL,
		seller_id VARCHAR(36) NOT NULL,
		amount DOUBLE NOT NULL,
		price_per_token DOUBLE NOT NULL,
		total_price DOUBLE,
		status VARCHAR(100) NOT NULL DEFAULT 'Active',

		PRIMARY KEY (id),
		INDEX idx_marketplace_listings_token_id (token_id),
		INDEX status (status)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250312095920(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS marketplace_listings;")
	if err != nil {
		return err
	}
	return nil
}
