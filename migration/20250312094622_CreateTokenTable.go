package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250312094622, Down20250312094622)
}

func Up20250312094622(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS tokens (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		asset_id VARCHAR(36) NOT NULL,
		token_name VARCHAR(255) NOT NULL,
		token_symbol VARCHAR(10) NOT NULL,
		total_supply DOUBLE NOT NULL,
		price_per_token DOUBLE,
		decimals INT NOT NULL DEFAULT 18,
		fractional TINYINT(1) DEFAULT 1,
		token_type VARCHAR(100),
		contract_address VARCHAR(255),

		PRIMARY KEY (id),
		UNIQUE INDEX asset_id (asset_id)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250312094622(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS tokens;")
	if err != nil {
		return err
	}
	return nil
}
