package catalogservice

import (
	"context"
	"log/slog"
	"sort"

	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
)

// rosterCap limits each faction list in a world roster.
const rosterCap = 3

// CatalogService implements Service over a static dataset.
type CatalogService struct {
	logger     *slog.Logger
	worlds     map[int]catalogdomain.World
	characters []catalogdomain.Character
	byID       map[string]catalogdomain.Character
}

// NewCatalogService creates a catalog service over the given dataset.
func NewCatalogService(logger *slog.Logger, worlds map[int]catalogdomain.World, characters []catalogdomain.Character) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	byID := make(map[string]catalogdomain.Character, len(characters))
	for _, c := range characters {
		byID[c.ID] = c
	}
	return &CatalogService{
		logger:     logger,
		worlds:     worlds,
		characters: characters,
		byID:       byID,
	}
}

// GetCharacter retrieves a character by id.
func (s *CatalogService) GetCharacter(_ context.Context, id string) (catalogdomain.Character, error) {
	c, ok := s.byID[id]
	if !ok {
		return catalogdomain.Character{}, catalogdomain.ErrCharacterNotFound
	}
	return c, nil
}

// ListAll returns every character in the catalog.
func (s *CatalogService) ListAll(_ context.Context) []catalogdomain.Character {
	out := make([]catalogdomain.Character, len(s.characters))
	copy(out, s.characters)
	return out
}

// ListWorlds returns every world, ordered by id.
func (s *CatalogService) ListWorlds(_ context.Context) []catalogdomain.World {
	out := make([]catalogdomain.World, 0, len(s.worlds))
	for _, w := range s.worlds {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListByWorld returns a world's roster, capped to the first three heroes
// and the first three villains in catalog order.
func (s *CatalogService) ListByWorld(_ context.Context, worldID int) (catalogdomain.WorldRoster, error) {
	if _, ok := s.worlds[worldID]; !ok {
		return catalogdomain.WorldRoster{}, catalogdomain.ErrWorldNotFound
	}

	var roster catalogdomain.WorldRoster
	for _, c := range s.characters {
		if c.WorldID != worldID {
			continue
		}
		switch c.Faction {
		case catalogdomain.FactionHero:
			if len(roster.Heroes) < rosterCap {
				roster.Heroes = append(roster.Heroes, c)
			}
		case catalogdomain.FactionVillain:
			if len(roster.Villains) < rosterCap {
				roster.Villains = append(roster.Villains, c)
			}
		}
	}
	return roster, nil
}
