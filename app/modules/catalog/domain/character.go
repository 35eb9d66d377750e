// Package catalogdomain defines the read-only character catalog types.
package catalogdomain

import "errors"

var (
	// ErrCharacterNotFound is returned when a character id is unknown.
	ErrCharacterNotFound = errors.New("character not found")
	// ErrWorldNotFound is returned when a world id is unknown.
	ErrWorldNotFound = errors.New("world not found")
)

// Faction classifies a character as hero or villain.
type Faction string

const (
	FactionHero    Faction = "hero"
	FactionVillain Faction = "villain"
)

// Stats holds a character's combat statistics. Defense doubles as the
// hit-point pool when a battle starts.
type Stats struct {
	Damage       int `json:"damage"`
	Defense      int `json:"defense"`
	SpecialPower int `json:"special_power"`
}

// Character is an immutable catalog entry.
type Character struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Faction  Faction `json:"faction"`
	WorldID  int     `json:"world_id"`
	Stats    Stats   `json:"stats"`
	ImageURL string  `json:"image_url"`
}

// World is a selectable battle setting.
type World struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// WorldRoster groups a world's characters by faction, capped by the
// catalog to the first three of each.
type WorldRoster struct {
	Heroes   []Character `json:"heroes"`
	Villains []Character `json:"villains"`
}
