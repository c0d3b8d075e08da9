package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250703152218, Down20250703152218)
}

func Up20250703152218(tx *sql.Tx) error {
	_, err := tx.Exec("ALTER TABLE transactions ADD pool_id VARCHAR(36), ADD INDEX idx_transactions_pool_id (pool_id);")
	if err != nil {
		return err
	}
	return nil
}

func Down20250703152218(tx *sql.Tx) error {
	_, err := tx.Exec("ALTER TABLE transactions DROP COLUMN pool_id;")
	if err != nil {
		return err
	}
	return nil
}
