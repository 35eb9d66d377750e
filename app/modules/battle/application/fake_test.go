package battleservice

import (
	"context"
	"sync"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
)

// ------------------------
// Fake Catalog
// ------------------------

type FakeCatalog struct {
	Characters []catalogdomain.Character
}

func (f *FakeCatalog) GetCharacter(ctx context.Context, id string) (catalogdomain.Character, error) {
	for _, c := range f.Characters {
		if c.ID == id {
			return c, nil
		}
	}
	return catalogdomain.Character{}, catalogdomain.ErrCharacterNotFound
}

func (f *FakeCatalog) ListAll(ctx context.Context) []catalogdomain.Character {
	return f.Characters
}

func (f *FakeCatalog) ListWorlds(ctx context.Context) []catalogdomain.World {
	return nil
}

func (f *FakeCatalog) ListByWorld(ctx context.Context, worldID int) (catalogdomain.WorldRoster, error) {
	return catalogdomain.WorldRoster{}, nil
}

// ------------------------
// Fake Audit Recorder
// ------------------------

type FakeRecorder struct {
	mu      sync.Mutex
	Entries []auditdomain.Entry
}

func (f *FakeRecorder) Record(ctx context.Context, entry auditdomain.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Entries = append(f.Entries, entry)
}

// ------------------------
// Scripted random source
// ------------------------

type scriptedSource struct {
	floats []float64
	ints   []int
	nextF  int
	nextI  int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[s.nextF%len(s.floats)]
	s.nextF++
	return v
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.nextI%len(s.ints)] % n
	s.nextI++
	return v
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {}
