package battleservice

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	battledomain "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/domain"
	battlestore "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/infrastructure/store"
	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

func testRoster() []catalogdomain.Character {
	return []catalogdomain.Character{
		{ID: "obi", Name: "Obi-Wan Kenobi", Faction: catalogdomain.FactionHero, WorldID: 1, Stats: catalogdomain.Stats{Damage: 80, Defense: 90, SpecialPower: 150}},
		{ID: "jango", Name: "Jango Fett", Faction: catalogdomain.FactionVillain, WorldID: 1, Stats: catalogdomain.Stats{Damage: 90, Defense: 70, SpecialPower: 160}},
		{ID: "taun", Name: "Taun We", Faction: catalogdomain.FactionVillain, WorldID: 1, Stats: catalogdomain.Stats{Damage: 30, Defense: 50, SpecialPower: 60}},
		{ID: "maul", Name: "Darth Maul", Faction: catalogdomain.FactionVillain, WorldID: 3, Stats: catalogdomain.Stats{Damage: 95, Defense: 75, SpecialPower: 175}},
	}
}

func newTestService(rng *scriptedSource) (*BattleService, *battlestore.InMemory, *FakeRecorder) {
	store := battlestore.NewInMemory()
	recorder := &FakeRecorder{}
	svc := NewBattleService(
		&FakeCatalog{Characters: testRoster()},
		store,
		rng,
		recorder,
		slog.Default(),
		noop.NewTracerProvider().Tracer("test"),
	)
	return svc, store, recorder
}

func TestStartBattle(t *testing.T) {
	user := &userdomain.User{ID: 1, Username: "rex"}

	tests := []struct {
		name        string
		worldID     int
		characterID string
		rng         *scriptedSource
		wantErr     error
		wantOpp     string
	}{
		{
			name:        "hero gets villain opponent from same world",
			worldID:     1,
			characterID: "obi",
			rng:         &scriptedSource{ints: []int{1}},
			wantOpp:     "taun",
		},
		{
			name:        "villain gets hero opponent",
			worldID:     1,
			characterID: "jango",
			rng:         &scriptedSource{ints: []int{0}},
			wantOpp:     "obi",
		},
		{
			name:        "unknown character",
			worldID:     1,
			characterID: "ahsoka",
			rng:         &scriptedSource{},
			wantErr:     catalogdomain.ErrCharacterNotFound,
		},
		{
			name:        "character from another world",
			worldID:     1,
			characterID: "maul",
			rng:         &scriptedSource{},
			wantErr:     ErrCharacterNotInWorld,
		},
		{
			name:        "no opposing character in world",
			worldID:     3,
			characterID: "maul",
			rng:         &scriptedSource{},
			wantErr:     ErrNoOpponentAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, recorder := newTestService(tt.rng)

			state, err := svc.StartBattle(context.Background(), user, tt.worldID, tt.characterID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.characterID, state.Player.Character.ID)
			assert.Equal(t, tt.wantOpp, state.Opponent.Character.ID)
			assert.Equal(t, state.Player.Character.Stats.Defense, state.Player.HP)
			assert.False(t, state.Finished)

			stored, err := store.Get(state.ID)
			require.NoError(t, err)
			assert.Same(t, state, stored)

			require.Len(t, recorder.Entries, 1)
			assert.Equal(t, auditdomain.ActionBattleStart, recorder.Entries[0].Action)
			assert.Equal(t, "rex", recorder.Entries[0].Username)
		})
	}
}

func TestTakeAction(t *testing.T) {
	owner := &userdomain.User{ID: 1, Username: "rex"}
	intruder := &userdomain.User{ID: 2, Username: "dooku"}

	t.Run("unknown battle", func(t *testing.T) {
		svc, _, _ := newTestService(&scriptedSource{})
		_, err := svc.TakeAction(context.Background(), owner, "missing", battledomain.AbilityNormal)
		assert.ErrorIs(t, err, battlestore.ErrNotFound)
	})

	t.Run("foreign battle is forbidden", func(t *testing.T) {
		svc, _, _ := newTestService(&scriptedSource{ints: []int{0}, floats: []float64{0.9, 0.5}})
		state, err := svc.StartBattle(context.Background(), owner, 1, "obi")
		require.NoError(t, err)

		_, err = svc.TakeAction(context.Background(), intruder, state.ID, battledomain.AbilityNormal)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("turn advances state", func(t *testing.T) {
		// Player: no dodge, pinned jitter; AI: no special, no dodge, pinned jitter.
		rng := &scriptedSource{ints: []int{0}, floats: []float64{0.9, 0.5}}
		svc, _, _ := newTestService(rng)
		state, err := svc.StartBattle(context.Background(), owner, 1, "obi")
		require.NoError(t, err)
		opponentHP := state.Opponent.HP

		updated, err := svc.TakeAction(context.Background(), owner, state.ID, battledomain.AbilityNormal)
		require.NoError(t, err)
		assert.Less(t, updated.Opponent.HP, opponentHP)
		assert.GreaterOrEqual(t, len(updated.Log), 3)
	})

	t.Run("finished battle leaves the store", func(t *testing.T) {
		svc, store, recorder := newTestService(&scriptedSource{ints: []int{0}, floats: []float64{0.9, 0.5}})
		state, err := svc.StartBattle(context.Background(), owner, 1, "jango")
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			updated, err := svc.TakeAction(context.Background(), owner, state.ID, battledomain.AbilityNormal)
			require.NoError(t, err)
			if updated.Finished {
				_, err := store.Get(state.ID)
				assert.ErrorIs(t, err, battlestore.ErrNotFound)

				last := recorder.Entries[len(recorder.Entries)-1]
				assert.Equal(t, auditdomain.ActionBattleEnd, last.Action)
				assert.Contains(t, last.Details, "won by")
				return
			}
		}
		t.Fatal("battle did not finish")
	})
}
