package tournamentservice

import (
	"context"

	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// Service drives the sixteen-participant single-elimination tournaments.
type Service interface {
	// Create persists a new pending tournament with no participants.
	Create(ctx context.Context, user *userdomain.User, name string) (*TournamentView, error)
	// ListOpen returns pending tournaments with their participants.
	ListOpen(ctx context.Context) ([]*TournamentView, error)
	// Get returns the full bracket view of one tournament.
	Get(ctx context.Context, id int64) (*TournamentView, error)
	// Join seeds the bracket: the caller's character plus fifteen AI
	// characters, shuffled into eight first-round matches, atomically.
	Join(ctx context.Context, user *userdomain.User, tournamentID int64, characterID string) (*TournamentView, error)
	// SimulateMatch resolves one pending match and, when it closes its
	// round, advances the bracket or completes the tournament.
	SimulateMatch(ctx context.Context, user *userdomain.User, matchID int64) (*MatchView, error)
	// Leaderboard returns the fastest human-won completions.
	Leaderboard(ctx context.Context) ([]tournamentdb.LeaderboardEntry, error)
	// LeaderboardChart renders the leaderboard as a PNG bar chart.
	LeaderboardChart(ctx context.Context) ([]byte, error)
	// ExportLeaderboard renders the leaderboard as an xlsx workbook.
	ExportLeaderboard(ctx context.Context) ([]byte, error)
}
