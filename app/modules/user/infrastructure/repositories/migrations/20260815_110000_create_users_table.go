package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating users table...")

			return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				if _, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS users (
						id BIGSERIAL PRIMARY KEY,
						username VARCHAR(100) NOT NULL UNIQUE,
						hashed_password VARCHAR(200) NOT NULL,
						role VARCHAR(20) NOT NULL DEFAULT 'player',
						must_change_password BOOLEAN NOT NULL DEFAULT FALSE,
						created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
					);
				`); err != nil {
					return fmt.Errorf("failed to create users table: %w", err)
				}

				// Bootstrap admin. The generated password must be changed on
				// first login.
				hash, err := bcrypt.GenerateFromPassword([]byte("change-me-now"), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("failed to hash bootstrap password: %w", err)
				}
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO users (username, hashed_password, role, must_change_password)
					VALUES ('admin', ?, 'admin', TRUE)
					ON CONFLICT (username) DO NOTHING;
				`, string(hash)); err != nil {
					return fmt.Errorf("failed to seed admin user: %w", err)
				}

				return nil
			})
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping users table...")
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS users;`)
			return err
		},
	)
}
