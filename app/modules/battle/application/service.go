package battleservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	battledomain "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/domain"
	battlestore "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/infrastructure/store"
	catalogservice "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/application"
	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

// BattleService implements the Service interface.
type BattleService struct {
	catalog catalogservice.Service
	store   battlestore.Store
	rng     random.Source
	auditor auditdomain.Recorder
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewBattleService creates a new BattleService.
func NewBattleService(
	catalog catalogservice.Service,
	store battlestore.Store,
	rng random.Source,
	auditor auditdomain.Recorder,
	logger *slog.Logger,
	tracer trace.Tracer,
) *BattleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BattleService{
		catalog: catalog,
		store:   store,
		rng:     rng,
		auditor: auditor,
		logger:  logger,
		tracer:  tracer,
	}
}

// StartBattle creates a battle between the user's chosen character and an
// opposing-faction character drawn at random from the same world.
func (s *BattleService) StartBattle(ctx context.Context, user *userdomain.User, worldID int, characterID string) (*battledomain.State, error) {
	ctx, span := s.tracer.Start(ctx, "battle.StartBattle")
	defer span.End()

	player, err := s.catalog.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if player.WorldID != worldID {
		return nil, ErrCharacterNotInWorld
	}

	opponent, err := s.pickOpponent(ctx, player)
	if err != nil {
		return nil, err
	}

	state := battledomain.NewBattle(uuid.New().String(), user.ID, player, opponent)
	s.store.Put(state)

	s.logger.InfoContext(ctx, "battle started",
		slog.String("battle_id", state.ID),
		slog.String("player", player.ID),
		slog.String("opponent", opponent.ID),
	)
	s.auditor.Record(ctx, auditdomain.Entry{
		Username: user.Username,
		Action:   auditdomain.ActionBattleStart,
		Details:  fmt.Sprintf("Battle of %s vs %s started", player.Name, opponent.Name),
	})

	return state, nil
}

// pickOpponent draws a random opposing-faction character from the player's
// world, excluding the player's own pick.
func (s *BattleService) pickOpponent(ctx context.Context, player catalogdomain.Character) (catalogdomain.Character, error) {
	opposing := catalogdomain.FactionVillain
	if player.Faction == catalogdomain.FactionVillain {
		opposing = catalogdomain.FactionHero
	}

	var candidates []catalogdomain.Character
	for _, c := range s.catalog.ListAll(ctx) {
		if c.WorldID == player.WorldID && c.Faction == opposing && c.ID != player.ID {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return catalogdomain.Character{}, ErrNoOpponentAvailable
	}
	return candidates[s.rng.IntN(len(candidates))], nil
}

// TakeAction resolves one turn of the battle. Turns on the same battle are
// serialized by the store; distinct battles proceed independently.
func (s *BattleService) TakeAction(ctx context.Context, user *userdomain.User, battleID string, action battledomain.Ability) (*battledomain.State, error) {
	ctx, span := s.tracer.Start(ctx, "battle.TakeAction")
	defer span.End()

	state, err := s.store.Update(battleID, func(state *battledomain.State) error {
		if state.OwnerUserID != user.ID {
			return ErrForbidden
		}
		return state.Advance(s.rng, action)
	})
	if err != nil {
		return nil, err
	}

	if state.Finished {
		s.logger.InfoContext(ctx, "battle finished",
			slog.String("battle_id", battleID),
			slog.String("last_event", state.Log[len(state.Log)-1]),
		)
		s.auditor.Record(ctx, auditdomain.Entry{
			Username: user.Username,
			Action:   auditdomain.ActionBattleEnd,
			Details: fmt.Sprintf("Battle of %s vs %s won by %s",
				state.Player.Character.Name, state.Opponent.Character.Name, state.Winner().Name),
		})
	}
	return state, nil
}
