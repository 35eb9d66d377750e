package tournamentservice

import (
	"context"
	"time"

	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
)

// ParticipantView is one bracket slot's participant as rendered to clients.
type ParticipantView struct {
	ID            int64  `json:"id"`
	DisplayName   string `json:"display_name"`
	Human         bool   `json:"human"`
	CharacterID   string `json:"character_id"`
	CharacterName string `json:"character_name,omitempty"`
}

// MatchView is one bracket match. Player slots stay null until the previous
// round feeds its winners forward. Log carries the simulation transcript on
// the simulate response only; it is never persisted.
type MatchView struct {
	ID           int64                        `json:"id"`
	TournamentID int64                        `json:"tournament_id"`
	Round        int                          `json:"round"`
	MatchIndex   int                          `json:"match_index"`
	Player1      *ParticipantView             `json:"player1,omitempty"`
	Player2      *ParticipantView             `json:"player2,omitempty"`
	Winner       *ParticipantView             `json:"winner,omitempty"`
	Status       tournamentdomain.MatchStatus `json:"status"`
	Log          []string                     `json:"log,omitempty"`
}

// TournamentView is the bracket aggregate as rendered to clients.
type TournamentView struct {
	ID           int64                   `json:"id"`
	Name         string                  `json:"name"`
	Status       tournamentdomain.Status `json:"status"`
	WinnerName   string                  `json:"winner_name,omitempty"`
	StartTime    *time.Time              `json:"start_time,omitempty"`
	EndTime      *time.Time              `json:"end_time,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	Participants []*ParticipantView      `json:"participants,omitempty"`
	Matches      []*MatchView            `json:"matches,omitempty"`
}

func (s *TournamentService) participantView(ctx context.Context, p *tournamentdb.Participant) *ParticipantView {
	if p == nil {
		return nil
	}
	view := &ParticipantView{
		ID:          p.ID,
		DisplayName: p.DisplayName(),
		Human:       p.IsHuman(),
		CharacterID: p.CharacterID,
	}
	if character, err := s.catalog.GetCharacter(ctx, p.CharacterID); err == nil {
		view.CharacterName = character.Name
	}
	return view
}

func (s *TournamentService) matchView(ctx context.Context, m *tournamentdb.Match) *MatchView {
	return &MatchView{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		Round:        m.Round,
		MatchIndex:   m.MatchIndex,
		Player1:      s.participantView(ctx, m.Player1),
		Player2:      s.participantView(ctx, m.Player2),
		Winner:       s.participantView(ctx, m.Winner),
		Status:       m.Status,
	}
}

func (s *TournamentService) tournamentView(ctx context.Context, t *tournamentdb.Tournament) *TournamentView {
	view := &TournamentView{
		ID:        t.ID,
		Name:      t.Name,
		Status:    t.Status,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		CreatedAt: t.CreatedAt,
	}
	if t.Winner != nil {
		view.WinnerName = t.Winner.Username
	}
	for _, p := range t.Participants {
		view.Participants = append(view.Participants, s.participantView(ctx, p))
	}
	for _, m := range t.Matches {
		view.Matches = append(view.Matches, s.matchView(ctx, m))
	}
	return view
}
