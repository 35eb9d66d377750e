package battleservice

import "errors"

var (
	// ErrForbidden is returned when a user acts on a battle they do not own.
	ErrForbidden = errors.New("battle belongs to another user")
	// ErrCharacterNotInWorld is returned when the chosen character does not
	// belong to the requested world.
	ErrCharacterNotInWorld = errors.New("character does not belong to this world")
	// ErrNoOpponentAvailable is returned when the world has no opposing
	// character left to fight.
	ErrNoOpponentAvailable = errors.New("no opponent available in this world")
)
