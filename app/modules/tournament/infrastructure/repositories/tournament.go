package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new tournament repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create persists a new tournament.
func (r *Impl) Create(ctx context.Context, db bun.IDB, tournament *Tournament) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(tournament).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

// GetByID retrieves a tournament without relations.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Tournament, error) {
	db = r.resolveDB(db)
	tournament := new(Tournament)
	err := db.NewSelect().
		Model(tournament).
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return tournament, nil
}

// GetWithParticipants retrieves a tournament with its participants and
// their users.
func (r *Impl) GetWithParticipants(ctx context.Context, db bun.IDB, id int64) (*Tournament, error) {
	db = r.resolveDB(db)
	tournament := new(Tournament)
	err := db.NewSelect().
		Model(tournament).
		Relation("Participants").
		Relation("Participants.User").
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tournament with participants: %w", err)
	}
	return tournament, nil
}

// GetWithBracket retrieves the fully populated aggregate.
func (r *Impl) GetWithBracket(ctx context.Context, db bun.IDB, id int64) (*Tournament, error) {
	db = r.resolveDB(db)
	tournament := new(Tournament)
	err := db.NewSelect().
		Model(tournament).
		Relation("Winner").
		Relation("Participants").
		Relation("Participants.User").
		Relation("Matches", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("round ASC", "match_index ASC")
		}).
		Relation("Matches.Player1").
		Relation("Matches.Player1.User").
		Relation("Matches.Player2").
		Relation("Matches.Player2.User").
		Relation("Matches.Winner").
		Relation("Matches.Winner.User").
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tournament with bracket: %w", err)
	}
	return tournament, nil
}

// ListOpen retrieves pending tournaments with their participants.
func (r *Impl) ListOpen(ctx context.Context, db bun.IDB) ([]*Tournament, error) {
	db = r.resolveDB(db)
	var tournaments []*Tournament
	err := db.NewSelect().
		Model(&tournaments).
		Relation("Participants").
		Relation("Participants.User").
		Where("t.status = ?", tournamentdomain.StatusPending).
		Order("t.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tournaments: %w", err)
	}
	return tournaments, nil
}

// Update persists tournament status, winner and timestamps.
func (r *Impl) Update(ctx context.Context, db bun.IDB, tournament *Tournament) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(tournament).
		Column("status", "winner_user_id", "start_time", "end_time").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tournament: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertParticipants bulk-inserts participants, scanning generated ids back
// into the models.
func (r *Impl) InsertParticipants(ctx context.Context, db bun.IDB, participants []*Participant) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(&participants).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert participants: %w", err)
	}
	return nil
}

// InsertMatches bulk-inserts matches.
func (r *Impl) InsertMatches(ctx context.Context, db bun.IDB, matches []*Match) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(&matches).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert matches: %w", err)
	}
	return nil
}

// GetMatch retrieves a match with both players, the winner and their users.
func (r *Impl) GetMatch(ctx context.Context, db bun.IDB, id int64) (*Match, error) {
	db = r.resolveDB(db)
	match := new(Match)
	err := db.NewSelect().
		Model(match).
		Relation("Player1").
		Relation("Player1.User").
		Relation("Player2").
		Relation("Player2.User").
		Relation("Winner").
		Relation("Winner.User").
		Where("tm.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// ListRoundMatches retrieves all matches of one round, ordered by index.
func (r *Impl) ListRoundMatches(ctx context.Context, db bun.IDB, tournamentID int64, round int) ([]*Match, error) {
	db = r.resolveDB(db)
	var matches []*Match
	err := db.NewSelect().
		Model(&matches).
		Where("tm.tournament_id = ?", tournamentID).
		Where("tm.round = ?", round).
		Order("tm.match_index ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list round matches: %w", err)
	}
	return matches, nil
}

// UpdateMatch persists a match's winner and status. The update only lands
// on a still-pending row; a concurrent simulation that already completed
// the match leaves zero rows affected and the loser gets
// ErrMatchAlreadyPlayed instead of overwriting the committed winner.
func (r *Impl) UpdateMatch(ctx context.Context, db bun.IDB, match *Match) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(match).
		Column("winner_id", "status").
		WherePK().
		Where("tm.status = ?", tournamentdomain.MatchPending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrMatchAlreadyPlayed
	}
	return nil
}

// Leaderboard returns completed tournaments with a human winner and both
// timestamps, fastest completions first.
func (r *Impl) Leaderboard(ctx context.Context, db bun.IDB, limit int) ([]LeaderboardEntry, error) {
	db = r.resolveDB(db)
	var entries []LeaderboardEntry
	err := db.NewSelect().
		Model((*Tournament)(nil)).
		ColumnExpr("t.name AS tournament_name").
		ColumnExpr("tu.username AS winner_name").
		ColumnExpr("EXTRACT(EPOCH FROM (t.end_time - t.start_time)) AS duration_seconds").
		ColumnExpr("t.end_time AS completed_at").
		Join("JOIN users AS tu ON tu.id = t.winner_user_id").
		Where("t.status = ?", tournamentdomain.StatusCompleted).
		Where("t.winner_user_id IS NOT NULL").
		Where("t.start_time IS NOT NULL").
		Where("t.end_time IS NOT NULL").
		OrderExpr("duration_seconds ASC").
		Limit(limit).
		Scan(ctx, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	return entries, nil
}

// LockTournament takes a transaction-scoped advisory lock keyed by the
// tournament id. It serializes the round-completion check-and-advance step
// per tournament; the lock releases at transaction end.
func (r *Impl) LockTournament(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	if _, err := db.ExecContext(ctx, "SELECT pg_advisory_xact_lock(?)", id); err != nil {
		return fmt.Errorf("failed to lock tournament: %w", err)
	}
	return nil
}
