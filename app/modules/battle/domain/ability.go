// Package battledomain implements combat: ability resolution, the
// interactive battle state machine, and the instantaneous simulation used
// for tournament matches.
package battledomain

import (
	"errors"
	"fmt"

	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

// Ability is the closed set of combat actions.
type Ability int

const (
	AbilityNormal Ability = iota
	AbilitySpecial
)

// ErrUnknownAbility is returned by ParseAbility for unrecognized input.
var ErrUnknownAbility = errors.New("unknown ability")

// String returns the wire name of the ability.
func (a Ability) String() string {
	if a == AbilitySpecial {
		return "special"
	}
	return "normal"
}

// ParseAbility parses the wire name of an ability.
func ParseAbility(s string) (Ability, error) {
	switch s {
	case "normal":
		return AbilityNormal, nil
	case "special":
		return AbilitySpecial, nil
	default:
		return AbilityNormal, fmt.Errorf("%w: %q", ErrUnknownAbility, s)
	}
}

const (
	// dodgeChance is the probability any attack is fully evaded.
	dodgeChance = 0.25
	// Damage jitter range applied to the mitigated base power.
	jitterMin = 0.85
	jitterMax = 1.15
	// defenseDivisor converts defense into flat damage mitigation.
	defenseDivisor = 25
)

// ResolveAbility computes one combat action. On a dodge the damage is zero;
// otherwise the attacker's power (normal damage or special power) is reduced
// by defender.Defense/25, jittered by a uniform multiplier in
// [0.85, 1.15], truncated, and floored at 1.
func ResolveAbility(rng random.Source, attacker, defender catalogdomain.Character, ability Ability) (int, string) {
	if rng.Float64() < dodgeChance {
		if ability == AbilitySpecial {
			return 0, fmt.Sprintf("%s dodged the special attack!", defender.Name)
		}
		return 0, fmt.Sprintf("%s dodged the attack!", defender.Name)
	}

	power := attacker.Stats.Damage
	if ability == AbilitySpecial {
		power = attacker.Stats.SpecialPower
	}

	base := power - defender.Stats.Defense/defenseDivisor
	jitter := jitterMin + rng.Float64()*(jitterMax-jitterMin)
	damage := int(float64(base) * jitter)
	if damage < 1 {
		damage = 1
	}

	if ability == AbilitySpecial {
		return damage, fmt.Sprintf("%s uses their special ability against %s causing %d damage.", attacker.Name, defender.Name, damage)
	}
	return damage, fmt.Sprintf("%s attacks %s causing %d damage.", attacker.Name, defender.Name, damage)
}
