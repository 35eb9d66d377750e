package battledomain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

func TestSimulateDeterministicUnderPinnedRandomness(t *testing.T) {
	// Spec worked example: defense doubles as the HP pool. With dodges and
	// special attacks suppressed and the multiplier pinned to 1.0, a deals
	// 80 - 650/25 = 54 per hit and b deals 75 - 700/25 = 47 per hit.
	a := testCharacter("a", 80, 700, 150)
	b := testCharacter("b", 75, 650, 140)

	// Cycle of three rolls per half-turn: special decision (no), dodge
	// check (no), jitter (pinned to 1.0).
	rng := newScriptedSource(0.9, 0.9, 0.5)

	winner, log := Simulate(rng, a, b)

	// b's 650 HP collapses after ceil(650/54) = 13 hits; a absorbs only 12
	// retaliations (564 damage), so a must win, deterministically.
	assert.Equal(t, "a", winner.ID)
	require.NotEmpty(t, log)
	assert.Equal(t, "The simulation between a and b begins!", log[0])
	assert.Equal(t, "a has won the battle!", log[len(log)-1])
	// 12 full turns of two actions, then a's killing blow and the win line.
	assert.Len(t, log, 1+12*2+2)
}

func TestSimulateAlwaysTerminatesWithOneWinner(t *testing.T) {
	a := testCharacter("a", 80, 700, 150)
	b := testCharacter("b", 75, 650, 140)

	for seed := uint64(0); seed < 100; seed++ {
		winner, log := Simulate(random.New(seed), a, b)
		assert.Contains(t, []string{"a", "b"}, winner.ID, "seed %d", seed)
		assert.GreaterOrEqual(t, len(log), 3, "seed %d", seed)
	}
}

func TestNewBattleInitialState(t *testing.T) {
	player := testCharacter("player", 80, 90, 150)
	opponent := testCharacter("opponent", 90, 70, 160)

	state := NewBattle("battle-1", 7, player, opponent)

	assert.Equal(t, "battle-1", state.ID)
	assert.Equal(t, int64(7), state.OwnerUserID)
	assert.Equal(t, 90, state.Player.HP)
	assert.Equal(t, 70, state.Opponent.HP)
	assert.True(t, state.Player.Human)
	assert.False(t, state.Opponent.Human)
	assert.False(t, state.Player.SpecialUsed)
	assert.False(t, state.Opponent.SpecialUsed)
	assert.False(t, state.Finished)
	assert.Equal(t, []string{"The battle between player and opponent begins!"}, state.Log)
}

func TestAdvanceRejectsFinishedBattle(t *testing.T) {
	state := NewBattle("b", 1, testCharacter("p", 80, 90, 150), testCharacter("o", 90, 70, 160))
	state.Finished = true

	err := state.Advance(newScriptedSource(0.9), AbilityNormal)
	assert.ErrorIs(t, err, ErrBattleFinished)
}

func TestAdvanceNoRetaliationAfterKillingBlow(t *testing.T) {
	state := NewBattle("b", 1, testCharacter("p", 80, 90, 150), testCharacter("o", 90, 70, 160))
	state.Opponent.HP = 1

	// Player: no dodge, pinned jitter. No further rolls may be consumed.
	err := state.Advance(newScriptedSource(0.9, 0.5), AbilityNormal)
	require.NoError(t, err)

	assert.True(t, state.Finished)
	assert.Equal(t, 0, state.Opponent.HP)
	assert.Equal(t, 90, state.Player.HP, "the AI must not retaliate after dying")
	assert.Equal(t, "p has won the battle!", state.Log[len(state.Log)-1])
}

func TestAdvanceDowngradesSpentSpecial(t *testing.T) {
	state := NewBattle("b", 1, testCharacter("p", 80, 90, 150), testCharacter("o", 90, 700, 160))
	state.Player.SpecialUsed = true

	// Player normal resolve, AI special decision (no), AI resolve.
	err := state.Advance(newScriptedSource(0.9, 0.5, 0.9, 0.9, 0.5), AbilitySpecial)
	require.NoError(t, err)

	assert.Contains(t, state.Log, "p already spent their special attack; attacking normally.")
	// Normal damage applied, not special: 80 - 700/25 = 52.
	assert.Equal(t, 700-52, state.Opponent.HP)
}

func TestAdvanceClampsHPAtZero(t *testing.T) {
	state := NewBattle("b", 1, testCharacter("p", 80, 90, 150), testCharacter("o", 90, 70, 160))
	state.Player.HP = 1
	state.Opponent.HP = 500

	// Player hits (no kill), AI uses special and lands it.
	err := state.Advance(newScriptedSource(0.9, 0.5, 0.1, 0.9, 0.5), AbilityNormal)
	require.NoError(t, err)

	assert.True(t, state.Finished)
	assert.Equal(t, 0, state.Player.HP)
}

func TestAdvanceFullBattleEndsExactlyOnce(t *testing.T) {
	rng := random.New(11)
	state := NewBattle("b", 1, testCharacter("p", 80, 90, 150), testCharacter("o", 90, 70, 160))

	for turns := 0; ; turns++ {
		require.Less(t, turns, 1000, "battle did not terminate")
		if state.Finished {
			break
		}
		require.NoError(t, state.Advance(rng, AbilityNormal))
		assert.GreaterOrEqual(t, state.Player.HP, 0)
		assert.GreaterOrEqual(t, state.Opponent.HP, 0)
	}

	err := state.Advance(rng, AbilityNormal)
	assert.ErrorIs(t, err, ErrBattleFinished)

	winLine := state.Log[len(state.Log)-1]
	assert.Contains(t, []string{
		fmt.Sprintf("%s has won the battle!", state.Player.Character.Name),
		fmt.Sprintf("%s has won the battle!", state.Opponent.Character.Name),
	}, winLine)
}
