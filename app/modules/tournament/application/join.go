package tournamentservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// Join seeds the bracket for the joining user. The participant inserts, the
// eight first-round matches and the pending→active transition commit as one
// transaction; a failure anywhere leaves the tournament untouched.
func (s *TournamentService) Join(ctx context.Context, user *userdomain.User, tournamentID int64, characterID string) (*TournamentView, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.Join")
	defer span.End()

	character, err := s.catalog.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		tournament, err := s.repo.GetWithParticipants(ctx, tx, tournamentID)
		if err != nil {
			return err
		}
		if tournament.Status != tournamentdomain.StatusPending {
			return ErrTournamentNotPending
		}
		for _, p := range tournament.Participants {
			if p.UserID == nil {
				continue
			}
			if *p.UserID == user.ID {
				return ErrAlreadyJoined
			}
			return ErrHumanSlotTaken
		}

		participants, err := s.seedParticipants(ctx, tournamentID, user.ID, character)
		if err != nil {
			return err
		}
		if err := s.repo.InsertParticipants(ctx, tx, participants); err != nil {
			return err
		}

		matches := make([]*tournamentdb.Match, 0, tournamentdomain.FirstRoundMatches)
		for i := 0; i < tournamentdomain.FirstRoundMatches; i++ {
			matches = append(matches, &tournamentdb.Match{
				TournamentID: tournamentID,
				Round:        tournamentdomain.FirstRound,
				MatchIndex:   i,
				Player1ID:    &participants[2*i].ID,
				Player2ID:    &participants[2*i+1].ID,
				Status:       tournamentdomain.MatchPending,
			})
		}
		if err := s.repo.InsertMatches(ctx, tx, matches); err != nil {
			return err
		}

		now := time.Now().UTC()
		tournament.Status = tournamentdomain.StatusActive
		tournament.StartTime = &now
		return s.repo.Update(ctx, tx, tournament)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "tournament joined",
		slog.Int64("tournament_id", tournamentID),
		slog.Int64("user_id", user.ID),
		slog.String("character", characterID),
	)
	s.auditor.Record(ctx, auditdomain.Entry{
		Username: user.Username,
		Action:   auditdomain.ActionJoinTournament,
		Details:  fmt.Sprintf("Joined tournament %d as %s", tournamentID, character.Name),
	})

	return s.Get(ctx, tournamentID)
}

// seedParticipants builds the full sixteen-slot field: the human entrant
// plus fifteen AI characters sampled without replacement from the catalog
// (excluding the human's pick), shuffled uniformly.
func (s *TournamentService) seedParticipants(ctx context.Context, tournamentID, userID int64, pick catalogdomain.Character) ([]*tournamentdb.Participant, error) {
	var pool []catalogdomain.Character
	for _, c := range s.catalog.ListAll(ctx) {
		if c.ID != pick.ID {
			pool = append(pool, c)
		}
	}
	if len(pool) < tournamentdomain.AIParticipantCount {
		return nil, ErrInsufficientCharacters
	}
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	participants := make([]*tournamentdb.Participant, 0, tournamentdomain.MaxParticipants)
	participants = append(participants, &tournamentdb.Participant{
		TournamentID: tournamentID,
		UserID:       &userID,
		CharacterID:  pick.ID,
	})
	for _, c := range pool[:tournamentdomain.AIParticipantCount] {
		participants = append(participants, &tournamentdb.Participant{
			TournamentID: tournamentID,
			AIName:       "AI: " + c.Name,
			CharacterID:  c.ID,
		})
	}
	s.rng.Shuffle(len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})
	return participants, nil
}
