package tournamentdb

import (
	"time"

	"github.com/uptrace/bun"

	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
)

// Tournament is the persisted tournament aggregate root.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:t"`

	ID           int64                   `bun:"id,pk,autoincrement"`
	Name         string                  `bun:"name,notnull"`
	Status       tournamentdomain.Status `bun:"status,notnull,default:'pending'"`
	WinnerUserID *int64                  `bun:"winner_user_id"`
	StartTime    *time.Time              `bun:"start_time,nullzero"`
	EndTime      *time.Time              `bun:"end_time,nullzero"`
	CreatedAt    time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Winner       *User          `bun:"rel:belongs-to,join:winner_user_id=id"`
	Participants []*Participant `bun:"rel:has-many,join:id=tournament_id"`
	Matches      []*Match       `bun:"rel:has-many,join:id=tournament_id"`
}

// Participant binds a character to either a user or an AI slot within one
// tournament.
type Participant struct {
	bun.BaseModel `bun:"table:tournament_participants,alias:tp"`

	ID           int64  `bun:"id,pk,autoincrement"`
	TournamentID int64  `bun:"tournament_id,notnull"`
	UserID       *int64 `bun:"user_id"`
	AIName       string `bun:"ai_name,nullzero"`
	CharacterID  string `bun:"character_id,notnull"`

	User *User `bun:"rel:belongs-to,join:user_id=id"`
}

// IsHuman reports whether the participant is controlled by a user.
func (p *Participant) IsHuman() bool {
	return p.UserID != nil
}

// DisplayName is the participant's user name, or the AI name for bot slots.
func (p *Participant) DisplayName() string {
	if p.User != nil {
		return p.User.Username
	}
	return p.AIName
}

// Match is one bracket slot. Player references stay null until the
// previous round feeds its winners forward.
type Match struct {
	bun.BaseModel `bun:"table:tournament_matches,alias:tm"`

	ID           int64                        `bun:"id,pk,autoincrement"`
	TournamentID int64                        `bun:"tournament_id,notnull"`
	Round        int                          `bun:"round,notnull"`
	MatchIndex   int                          `bun:"match_index,notnull"`
	Player1ID    *int64                       `bun:"player1_id"`
	Player2ID    *int64                       `bun:"player2_id"`
	WinnerID     *int64                       `bun:"winner_id"`
	Status       tournamentdomain.MatchStatus `bun:"status,notnull,default:'pending'"`

	Tournament *Tournament  `bun:"rel:belongs-to,join:tournament_id=id"`
	Player1    *Participant `bun:"rel:belongs-to,join:player1_id=id"`
	Player2    *Participant `bun:"rel:belongs-to,join:player2_id=id"`
	Winner     *Participant `bun:"rel:belongs-to,join:winner_id=id"`
}

// User is a read-only projection of the users table, enough to render
// participant and winner names. The user module owns the table itself.
type User struct {
	bun.BaseModel `bun:"table:users,alias:tu"`

	ID       int64  `bun:"id,pk"`
	Username string `bun:"username"`
}

// LeaderboardEntry is one leaderboard row: a completed tournament with a
// human winner, ranked by completion duration.
type LeaderboardEntry struct {
	TournamentName  string    `bun:"tournament_name" json:"tournament_name"`
	WinnerName      string    `bun:"winner_name" json:"winner_name"`
	DurationSeconds float64   `bun:"duration_seconds" json:"duration_seconds"`
	CompletedAt     time.Time `bun:"completed_at" json:"completed_at"`
}
