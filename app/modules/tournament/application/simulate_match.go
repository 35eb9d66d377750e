package tournamentservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	battledomain "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/domain"
	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// SimulateMatch resolves one pending match and, if it closes its round,
// advances the bracket within the same transaction. Distinct matches of a
// round may be simulated concurrently; a per-tournament advisory lock,
// taken only after the match's own update, serializes the check-and-advance
// step so two finishers never both propagate the round.
func (s *TournamentService) SimulateMatch(ctx context.Context, user *userdomain.User, matchID int64) (*MatchView, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.SimulateMatch")
	defer span.End()

	var (
		match     *tournamentdb.Match
		winner    *tournamentdb.Participant
		simLog    []string
		completed *tournamentdb.Tournament
	)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		match, err = s.repo.GetMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if match.Status != tournamentdomain.MatchPending {
			return ErrMatchAlreadyPlayed
		}
		if match.Player1 == nil || match.Player2 == nil {
			return ErrMatchNotReady
		}

		winner, simLog, err = s.resolveMatch(ctx, match)
		if err != nil {
			return err
		}
		match.WinnerID = &winner.ID
		match.Winner = winner
		match.Status = tournamentdomain.MatchCompleted
		if err := s.repo.UpdateMatch(ctx, tx, match); err != nil {
			// The status guard on the update catches a concurrent
			// simulation that completed the match after our read.
			if errors.Is(err, tournamentdb.ErrMatchAlreadyPlayed) {
				return ErrMatchAlreadyPlayed
			}
			return err
		}

		if err := s.repo.LockTournament(ctx, tx, match.TournamentID); err != nil {
			return err
		}
		completed, err = s.advanceRound(ctx, tx, match, winner)
		return err
	})
	if err != nil {
		return nil, err
	}

	matchesSimulated.Inc()
	s.logger.InfoContext(ctx, "match simulated",
		slog.Int64("match_id", matchID),
		slog.Int64("tournament_id", match.TournamentID),
		slog.Int("round", match.Round),
		slog.String("winner", winner.DisplayName()),
	)
	if completed != nil {
		tournamentsCompleted.Inc()
		s.auditor.Record(ctx, auditdomain.Entry{
			Username: winner.DisplayName(),
			Action:   auditdomain.ActionTournamentWin,
			Details:  fmt.Sprintf("Tournament %q won by %s", completed.Name, winner.DisplayName()),
		})
	}

	view := s.matchView(ctx, match)
	view.Log = simLog
	return view, nil
}

// resolveMatch runs the instantaneous simulation between the match's two
// characters and maps the surviving character back to its participant.
func (s *TournamentService) resolveMatch(ctx context.Context, match *tournamentdb.Match) (*tournamentdb.Participant, []string, error) {
	c1, err := s.catalog.GetCharacter(ctx, match.Player1.CharacterID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve player1 character: %w", err)
	}
	c2, err := s.catalog.GetCharacter(ctx, match.Player2.CharacterID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve player2 character: %w", err)
	}

	survivor, simLog := battledomain.Simulate(s.rng, c1, c2)
	if survivor.ID == c1.ID {
		return match.Player1, simLog, nil
	}
	return match.Player2, simLog, nil
}

// advanceRound checks round completion and propagates. It must run under
// the tournament's advisory lock. Returns the tournament when the final
// round completed it, nil otherwise.
func (s *TournamentService) advanceRound(ctx context.Context, tx bun.Tx, match *tournamentdb.Match, winner *tournamentdb.Participant) (*tournamentdb.Tournament, error) {
	roundMatches, err := s.repo.ListRoundMatches(ctx, tx, match.TournamentID, match.Round)
	if err != nil {
		return nil, err
	}
	for _, m := range roundMatches {
		if m.Status != tournamentdomain.MatchCompleted {
			return nil, nil
		}
	}

	if match.Round == tournamentdomain.FinalRound {
		tournament, err := s.repo.GetByID(ctx, tx, match.TournamentID)
		if err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		tournament.Status = tournamentdomain.StatusCompleted
		tournament.EndTime = &now
		if winner.IsHuman() {
			tournament.WinnerUserID = winner.UserID
		}
		if err := s.repo.Update(ctx, tx, tournament); err != nil {
			return nil, err
		}
		return tournament, nil
	}

	next := make([]*tournamentdb.Match, 0, len(roundMatches)/2)
	for i := 0; i < len(roundMatches); i += 2 {
		next = append(next, &tournamentdb.Match{
			TournamentID: match.TournamentID,
			Round:        match.Round + 1,
			MatchIndex:   i / 2,
			Player1ID:    roundMatches[i].WinnerID,
			Player2ID:    roundMatches[i+1].WinnerID,
			Status:       tournamentdomain.MatchPending,
		})
	}
	if err := s.repo.InsertMatches(ctx, tx, next); err != nil {
		return nil, err
	}
	return nil, nil
}
