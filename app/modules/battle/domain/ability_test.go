package battledomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
)

func testCharacter(name string, damage, defense, special int) catalogdomain.Character {
	return catalogdomain.Character{
		ID:      name,
		Name:    name,
		Faction: catalogdomain.FactionHero,
		WorldID: 1,
		Stats:   catalogdomain.Stats{Damage: damage, Defense: defense, SpecialPower: special},
	}
}

func TestParseAbility(t *testing.T) {
	tests := []struct {
		input   string
		want    Ability
		wantErr bool
	}{
		{input: "normal", want: AbilityNormal},
		{input: "special", want: AbilitySpecial},
		{input: "ultimate", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAbility(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAbility)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAbility(t *testing.T) {
	attacker := testCharacter("attacker", 80, 700, 150)
	defender := testCharacter("defender", 75, 650, 140)

	tests := []struct {
		name       string
		rng        *scriptedSource
		ability    Ability
		wantDamage int
		wantMsg    string
	}{
		{
			name: "normal attack with pinned multiplier",
			// no dodge, jitter pinned to 1.0
			rng:        newScriptedSource(0.9, 0.5),
			ability:    AbilityNormal,
			wantDamage: 80 - 650/25, // 54
			wantMsg:    "attacker attacks defender causing 54 damage.",
		},
		{
			name:       "special attack with pinned multiplier",
			rng:        newScriptedSource(0.9, 0.5),
			ability:    AbilitySpecial,
			wantDamage: 150 - 650/25, // 124
			wantMsg:    "attacker uses their special ability against defender causing 124 damage.",
		},
		{
			name:       "dodge nullifies damage",
			rng:        newScriptedSource(0.1),
			ability:    AbilityNormal,
			wantDamage: 0,
			wantMsg:    "defender dodged the attack!",
		},
		{
			name:       "dodge on special",
			rng:        newScriptedSource(0.24),
			ability:    AbilitySpecial,
			wantDamage: 0,
			wantMsg:    "defender dodged the special attack!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			damage, msg := ResolveAbility(tt.rng, attacker, defender, tt.ability)
			assert.Equal(t, tt.wantDamage, damage)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestResolveAbilityFloorsDamageAtOne(t *testing.T) {
	weakling := testCharacter("weakling", 10, 40, 20)
	tank := testCharacter("tank", 80, 700, 150)

	// Mitigation (700/25 = 28) exceeds the attack power. Non-dodged hits
	// still deal 1.
	rng := newScriptedSource(0.9, 0.5)
	damage, _ := ResolveAbility(rng, weakling, tank, AbilityNormal)
	assert.Equal(t, 1, damage)
}
