// Package tournamentdomain defines the bracket constants and lifecycle
// states of the single-elimination tournament.
package tournamentdomain

// Status is a tournament's lifecycle state. Transitions run strictly
// forward: pending → active → completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// MatchStatus is a match's lifecycle state.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchCompleted MatchStatus = "completed"
)

// Bracket geometry. A bracket holds sixteen participants playing four
// rounds of 8, 4, 2 and 1 matches.
const (
	MaxParticipants    = 16
	AIParticipantCount = 15
	FirstRound         = 1
	FinalRound         = 4
	FirstRoundMatches  = MaxParticipants / 2
)

// LeaderboardLimit caps the leaderboard to the twenty fastest completions.
const LeaderboardLimit = 20
