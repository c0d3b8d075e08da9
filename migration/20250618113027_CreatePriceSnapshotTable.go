package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250618113027, Down20250618113027)
}

func Up20250618113027(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS price_snapshots (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		entity_type VARCHAR(100) NOT NULL,
		entity_id VARCHAR(36) NOT NULL,
		value DOUBLE NOT NULL,
		recorded_at TIMESTAMP NOT NULL,

		PRIMARY KEY (id),
		INDEX idx_price_snapshots_entity (entity_type, entity_id),
		INDEX idx_price_snapshots_recorded_at (recorded_at)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250618113027(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS price_snapshots;")
	if err != nil {
		return err
	}
	return nil
}
