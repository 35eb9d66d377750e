package tournamentservice

import "errors"

var (
	// ErrTournamentNotPending is returned when joining a tournament that has
	// already started or completed.
	ErrTournamentNotPending = errors.New("tournament is not open for joining")
	// ErrAlreadyJoined is returned when the caller already holds the human
	// slot of the tournament.
	ErrAlreadyJoined = errors.New("you already joined this tournament")
	// ErrHumanSlotTaken is returned when another user holds the human slot.
	ErrHumanSlotTaken = errors.New("tournament already has a human participant")
	// ErrInsufficientCharacters is returned when the catalog cannot fill the
	// fifteen AI slots with distinct characters.
	ErrInsufficientCharacters = errors.New("not enough distinct characters to seed the bracket")
	// ErrMatchAlreadyPlayed is returned when simulating a completed match.
	ErrMatchAlreadyPlayed = errors.New("match has already been played")
	// ErrMatchNotReady is returned when a match's player slots have not been
	// fed by the previous round yet.
	ErrMatchNotReady = errors.New("match players are not yet assigned")
)
