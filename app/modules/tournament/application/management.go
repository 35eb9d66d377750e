package tournamentservice

import (
	"context"
	"fmt"
	"log/slog"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// Create persists a new pending tournament with no participants.
func (s *TournamentService) Create(ctx context.Context, user *userdomain.User, name string) (*TournamentView, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.Create")
	defer span.End()

	tournament := &tournamentdb.Tournament{
		Name:   name,
		Status: tournamentdomain.StatusPending,
	}
	if err := s.repo.Create(ctx, nil, tournament); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "tournament created",
		slog.Int64("tournament_id", tournament.ID),
		slog.String("name", name),
	)
	s.auditor.Record(ctx, auditdomain.Entry{
		Username: user.Username,
		Action:   auditdomain.ActionCreateTournament,
		Details:  fmt.Sprintf("Tournament %q created", name),
	})

	return s.tournamentView(ctx, tournament), nil
}

// ListOpen returns pending tournaments with their participants.
func (s *TournamentService) ListOpen(ctx context.Context) ([]*TournamentView, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.ListOpen")
	defer span.End()

	tournaments, err := s.repo.ListOpen(ctx, nil)
	if err != nil {
		return nil, err
	}

	views := make([]*TournamentView, 0, len(tournaments))
	for _, t := range tournaments {
		views = append(views, s.tournamentView(ctx, t))
	}
	return views, nil
}

// Get returns the full bracket view of one tournament.
func (s *TournamentService) Get(ctx context.Context, id int64) (*TournamentView, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.Get")
	defer span.End()

	tournament, err := s.repo.GetWithBracket(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return s.tournamentView(ctx, tournament), nil
}
