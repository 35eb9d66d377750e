package tournamentdb

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when a tournament is not found.
	ErrNotFound = errors.New("tournament not found")
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchAlreadyPlayed is returned when an update targets a match that
	// is no longer pending.
	ErrMatchAlreadyPlayed = errors.New("match already played")
)

// Repository is the persistence surface of the tournament module. Every
// method accepts a bun.IDB so callers can thread a transaction; a nil db
// falls back to the repository's own connection.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, tournament *Tournament) error
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Tournament, error)
	GetWithParticipants(ctx context.Context, db bun.IDB, id int64) (*Tournament, error)
	// GetWithBracket loads the fully populated aggregate: participants with
	// their users, and matches with both players and the winner.
	GetWithBracket(ctx context.Context, db bun.IDB, id int64) (*Tournament, error)
	ListOpen(ctx context.Context, db bun.IDB) ([]*Tournament, error)
	Update(ctx context.Context, db bun.IDB, tournament *Tournament) error

	InsertParticipants(ctx context.Context, db bun.IDB, participants []*Participant) error
	InsertMatches(ctx context.Context, db bun.IDB, matches []*Match) error

	GetMatch(ctx context.Context, db bun.IDB, id int64) (*Match, error)
	ListRoundMatches(ctx context.Context, db bun.IDB, tournamentID int64, round int) ([]*Match, error)
	// UpdateMatch records a pending match's winner and status. A row that is
	// no longer pending is left untouched and reported as
	// ErrMatchAlreadyPlayed, so two simulations of the same match cannot
	// both commit a winner.
	UpdateMatch(ctx context.Context, db bun.IDB, match *Match) error

	Leaderboard(ctx context.Context, db bun.IDB, limit int) ([]LeaderboardEntry, error)

	// LockTournament takes a transaction-scoped advisory lock on the
	// tournament so the round-completion check-and-advance step runs
	// mutually exclusively per tournament.
	LockTournament(ctx context.Context, db bun.IDB, id int64) error
}
