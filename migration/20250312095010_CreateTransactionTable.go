package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250312095010, Down20250312095010)
}

func Up20250312095010(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		user_id VARCHAR(36) NOT NULL,
		transaction_type VARCHAR(100) NOT NULL,
		transaction_status VARCHAR(100) NOT NULL DEFAULT 'Pending',
		token_id VARCHAR(36),
		amount DOUBLE NOT NULL,
		price DOUBLE,
		total_value DOUBLE,
		blockchain_tx_hash VARCHAR(255),

		PRIMARY KEY (id),
		INDEX idx_transactions_user_id (user_id),
		INDEX idx_transactions_token_id (token_id),
		INDEX transaction_status (transaction_status)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250312095010(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS transactions;")
	if err != nil {
		return err
	}
	return nil
}
