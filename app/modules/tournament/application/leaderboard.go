package tournamentservice

import (
	"context"

	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
)

// Leaderboard returns completed tournaments with a human winner, fastest
// completions first, capped to the top twenty.
func (s *TournamentService) Leaderboard(ctx context.Context) ([]tournamentdb.LeaderboardEntry, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.Leaderboard")
	defer span.End()

	return s.repo.Leaderboard(ctx, nil, tournamentdomain.LeaderboardLimit)
}
