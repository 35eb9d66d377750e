// Package auditdomain defines the structured audit events emitted by
// mutating operations. Emitters publish explicit entries; nothing is
// derived from call-site reflection.
package auditdomain

import "context"

// TopicAuditEntry is the event bus topic audit entries are published on.
const TopicAuditEntry = "audit.entry"

// Audit actions.
const (
	ActionUserRegister     = "USER_REGISTER"
	ActionUserLogin        = "USER_LOGIN"
	ActionPasswordChange   = "PASSWORD_CHANGE"
	ActionPromoteUser      = "PROMOTE_USER"
	ActionCreateTournament = "CREATE_TOURNAMENT"
	ActionJoinTournament   = "JOIN_TOURNAMENT"
	ActionTournamentWin    = "TOURNAMENT_WIN"
	ActionBattleStart      = "BATTLE_START"
	ActionBattleEnd        = "BATTLE_END"
)

// Entry is one audit event.
type Entry struct {
	Username string `json:"username"`
	Action   string `json:"action"`
	Details  string `json:"details"`
}

// Recorder accepts audit entries from mutating operations. Recording is
// fire-and-forget: a failed write is logged by the implementation, never
// surfaced to the emitting request.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}
