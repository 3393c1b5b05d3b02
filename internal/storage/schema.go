package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const schemaVersion = 1

// Migrate brings the schema up to schemaVersion. Safe to run on every open.
func Migrate(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		);`); err != nil {
			return fmt.Errorf("migrate version table: %w", err)
		}

		var ver int
		err := tx.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&ver)
		if err == sql.ErrNoRows {
			ver = 0
		} else if err != nil {
			return fmt.Errorf("migrate read version: %w", err)
		}
		if ver >= schemaVersion {
			return nil
		}

		stmts := []string{
			// Values are JSON documents; see the repos for the per-key shapes.
			`CREATE TABLE IF NOT EXISTS kv (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);`,
			`DELETE FROM schema_version;`,
			`INSERT INTO schema_version (version) VALUES (1);`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
