package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating audit_logs table...")

			_, err := db.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS audit_logs (
					id BIGSERIAL PRIMARY KEY,
					timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					username VARCHAR(100) NOT NULL,
					action VARCHAR(50) NOT NULL,
					details TEXT
				);
				CREATE INDEX IF NOT EXISTS idx_audit_logs_timestamp ON audit_logs(timestamp DESC);
			`)
			if err != nil {
				return fmt.Errorf("failed to create audit_logs table: %w", err)
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping audit_logs table...")
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS audit_logs;`)
			return err
		},
	)
}
