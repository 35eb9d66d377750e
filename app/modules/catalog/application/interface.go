package catalogservice

import (
	"context"

	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
)

// Service is the read-only character catalog consumed by the battle and
// tournament modules.
type Service interface {
	GetCharacter(ctx context.Context, id string) (catalogdomain.Character, error)
	ListAll(ctx context.Context) []catalogdomain.Character
	ListWorlds(ctx context.Context) []catalogdomain.World
	ListByWorld(ctx context.Context, worldID int) (catalogdomain.WorldRoster, error)
}
