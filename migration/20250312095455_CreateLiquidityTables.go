package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250312095455, Down20250312095455)
}

func Up20250312095455(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS liquidity_pools (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		name VARCHAR(255) NOT NULL,
		token_a VARCHAR(100) NOT NULL,
		token_b VARCHAR(100) NOT NULL,
		total_liquidity DOUBLE,
		apr DOUBLE,
		volume24h DOUBLE,
		fees24h DOUBLE,
		fee_rate DOUBLE NOT NULL DEFAULT 0.003,
		is_active TINYINT(1) DEFAULT 1,

		PRIMARY KEY (id),
		UNIQUE INDEX name (name)
	);`)
	if err != nil {
		return err
	}
	_, err = tx.Exec(`CREATE TABLE IF NOT EXISTS liquidity_positions (
		id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NULL,
		updated_at TIMESTAMP NULL,
		deleted_at TIMESTAMP NULL,
		user_id VARCHAR(36) NOT NULL,
		pool_id VARCHAR(36) NOT NULL,
		amount DOUBLE NOT NULL,
		lp_tokens DOUBLE,
		entry_price DOUBLE,

		PRIMARY KEY (id),
		INDEX idx_liquidity_positions_user_id (user_id),
		INDEX idx_liquidity_positions_pool_id (pool_id)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250312095455(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS liquidity_positions;")
	if err != nil {
		return err
	}
	_, err = tx.Exec("DROP TABLE IF EXISTS liquidity_pools;")
	if err != nil {
		return err
	}
	return nil
}
