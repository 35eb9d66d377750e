package battleservice

import (
	"context"

	battledomain "github.com/Clone-Wars-Club/arena-bot/app/modules/battle/domain"
	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// Service drives interactive player-vs-AI battles.
type Service interface {
	// StartBattle creates a battle in the given world between the user's
	// chosen character and a randomly drawn opposing character.
	StartBattle(ctx context.Context, user *userdomain.User, worldID int, characterID string) (*battledomain.State, error)
	// TakeAction resolves one turn of the user's battle.
	TakeAction(ctx context.Context, user *userdomain.User, battleID string, action battledomain.Ability) (*battledomain.State, error)
}
