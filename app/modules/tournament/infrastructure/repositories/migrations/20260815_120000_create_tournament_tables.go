package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating tournament tables...")

			return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				if _, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS tournaments (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(100) NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'pending',
						winner_user_id BIGINT REFERENCES users(id),
						start_time TIMESTAMPTZ,
						end_time TIMESTAMPTZ,
						created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments(status);
				`); err != nil {
					return fmt.Errorf("failed to create tournaments table: %w", err)
				}

				if _, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS tournament_participants (
						id BIGSERIAL PRIMARY KEY,
						tournament_id BIGINT NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						user_id BIGINT REFERENCES users(id),
						ai_name VARCHAR(100),
						character_id VARCHAR(50) NOT NULL
					);
					CREATE INDEX IF NOT EXISTS idx_tournament_participants_tournament_id
						ON tournament_participants(tournament_id);
				`); err != nil {
					return fmt.Errorf("failed to create tournament_participants table: %w", err)
				}

				if _, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS tournament_matches (
						id BIGSERIAL PRIMARY KEY,
						tournament_id BIGINT NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
						round INT NOT NULL,
						match_index INT NOT NULL,
						player1_id BIGINT REFERENCES tournament_participants(id),
						player2_id BIGINT REFERENCES tournament_participants(id),
						winner_id BIGINT REFERENCES tournament_participants(id),
						status VARCHAR(20) NOT NULL DEFAULT 'pending',
						UNIQUE (tournament_id, round, match_index)
					);
					CREATE INDEX IF NOT EXISTS idx_tournament_matches_tournament_round
						ON tournament_matches(tournament_id, round);
				`); err != nil {
					return fmt.Errorf("failed to create tournament_matches table: %w", err)
				}

				return nil
			})
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping tournament tables...")
			_, err := db.ExecContext(ctx, `
				DROP TABLE IF EXISTS tournament_matches;
				DROP TABLE IF EXISTS tournament_participants;
				DROP TABLE IF EXISTS tournaments;
			`)
			return err
		},
	)
}
