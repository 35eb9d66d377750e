package tournamentservice

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/uptrace/bun"

	auditdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/audit/domain"
	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	tournamentdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/domain"
	tournamentdb "github.com/Clone-Wars-Club/arena-bot/app/modules/tournament/infrastructure/repositories"
)

// ------------------------
// Fake transaction runner
// ------------------------

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

// ------------------------
// Fake Repository
// ------------------------

// FakeRepository is an in-memory Repository. It hands out copies so the
// service cannot mutate stored state except through Update/UpdateMatch,
// mirroring how the real repository behaves.
type FakeRepository struct {
	mu           sync.Mutex
	Tournaments  map[int64]*tournamentdb.Tournament
	Participants map[int64]*tournamentdb.Participant
	Matches      map[int64]*tournamentdb.Match
	Users        map[int64]string
	nextID       int64

	InsertParticipantsErr error
	InsertMatchesErr      error
	GetMatchFunc          func(ctx context.Context, db bun.IDB, id int64) (*tournamentdb.Match, error)

	LockCalls          []int64
	LeaderboardEntries []tournamentdb.LeaderboardEntry
	LeaderboardLimit   int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		Tournaments:  make(map[int64]*tournamentdb.Tournament),
		Participants: make(map[int64]*tournamentdb.Participant),
		Matches:      make(map[int64]*tournamentdb.Match),
		Users:        make(map[int64]string),
	}
}

func (f *FakeRepository) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *FakeRepository) userOf(id *int64) *tournamentdb.User {
	if id == nil {
		return nil
	}
	name, ok := f.Users[*id]
	if !ok {
		return nil
	}
	return &tournamentdb.User{ID: *id, Username: name}
}

func (f *FakeRepository) participantCopy(id *int64) *tournamentdb.Participant {
	if id == nil {
		return nil
	}
	stored, ok := f.Participants[*id]
	if !ok {
		return nil
	}
	cp := *stored
	cp.User = f.userOf(stored.UserID)
	return &cp
}

func (f *FakeRepository) matchCopy(stored *tournamentdb.Match) *tournamentdb.Match {
	cp := *stored
	cp.Player1 = f.participantCopy(stored.Player1ID)
	cp.Player2 = f.participantCopy(stored.Player2ID)
	cp.Winner = f.participantCopy(stored.WinnerID)
	return &cp
}

func (f *FakeRepository) tournamentCopy(stored *tournamentdb.Tournament, withBracket bool) *tournamentdb.Tournament {
	cp := *stored
	cp.Winner = f.userOf(stored.WinnerUserID)
	for _, p := range f.Participants {
		if p.TournamentID == stored.ID {
			cp.Participants = append(cp.Participants, f.participantCopy(&p.ID))
		}
	}
	sort.Slice(cp.Participants, func(i, j int) bool {
		return cp.Participants[i].ID < cp.Participants[j].ID
	})
	if withBracket {
		for _, m := range f.Matches {
			if m.TournamentID == stored.ID {
				cp.Matches = append(cp.Matches, f.matchCopy(m))
			}
		}
		sort.Slice(cp.Matches, func(i, j int) bool {
			if cp.Matches[i].Round != cp.Matches[j].Round {
				return cp.Matches[i].Round < cp.Matches[j].Round
			}
			return cp.Matches[i].MatchIndex < cp.Matches[j].MatchIndex
		})
	}
	return &cp
}

func (f *FakeRepository) Create(ctx context.Context, _ bun.IDB, tournament *tournamentdb.Tournament) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tournament.ID = f.id()
	cp := *tournament
	f.Tournaments[cp.ID] = &cp
	return nil
}

func (f *FakeRepository) GetByID(ctx context.Context, _ bun.IDB, id int64) (*tournamentdb.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.Tournaments[id]
	if !ok {
		return nil, tournamentdb.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}

func (f *FakeRepository) GetWithParticipants(ctx context.Context, _ bun.IDB, id int64) (*tournamentdb.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.Tournaments[id]
	if !ok {
		return nil, tournamentdb.ErrNotFound
	}
	return f.tournamentCopy(stored, false), nil
}

func (f *FakeRepository) GetWithBracket(ctx context.Context, _ bun.IDB, id int64) (*tournamentdb.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.Tournaments[id]
	if !ok {
		return nil, tournamentdb.ErrNotFound
	}
	return f.tournamentCopy(stored, true), nil
}

func (f *FakeRepository) ListOpen(ctx context.Context, _ bun.IDB) ([]*tournamentdb.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*tournamentdb.Tournament
	for _, t := range f.Tournaments {
		if t.Status == tournamentdomain.StatusPending {
			out = append(out, f.tournamentCopy(t, false))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepository) Update(ctx context.Context, _ bun.IDB, tournament *tournamentdb.Tournament) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.Tournaments[tournament.ID]
	if !ok {
		return tournamentdb.ErrNotFound
	}
	stored.Status = tournament.Status
	stored.WinnerUserID = tournament.WinnerUserID
	stored.StartTime = tournament.StartTime
	stored.EndTime = tournament.EndTime
	return nil
}

func (f *FakeRepository) InsertParticipants(ctx context.Context, _ bun.IDB, participants []*tournamentdb.Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertParticipantsErr != nil {
		return f.InsertParticipantsErr
	}
	for _, p := range participants {
		p.ID = f.id()
		cp := *p
		f.Participants[cp.ID] = &cp
	}
	return nil
}

func (f *FakeRepository) InsertMatches(ctx context.Context, _ bun.IDB, matches []*tournamentdb.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertMatchesErr != nil {
		return f.InsertMatchesErr
	}
	for _, m := range matches {
		m.ID = f.id()
		cp := *m
		f.Matches[cp.ID] = &cp
	}
	return nil
}

func (f *FakeRepository) GetMatch(ctx context.Context, db bun.IDB, id int64) (*tournamentdb.Match, error) {
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, db, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.Matches[id]
	if !ok {
		return nil, tournamentdb.ErrMatchNotFound
	}
	return f.matchCopy(stored), nil
}

func (f *FakeRepository) ListRoundMatches(ctx context.Context, _ bun.IDB, tournamentID int64, round int) ([]*tournamentdb.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*tournamentdb.Match
	for _, m := range f.Matches {
		if m.TournamentID == tournamentID && m.Round == round {
			out = append(out, f.matchCopy(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchIndex < out[j].MatchIndex })
	return out, nil
}

// UpdateMatch mirrors the real repository's status guard: only a pending
// row accepts a winner.
func (f *FakeRepository) UpdateMatch(ctx context.Context, _ bun.IDB, match *tournamentdb.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.Matches[match.ID]
	if !ok {
		return tournamentdb.ErrMatchNotFound
	}
	if stored.Status != tournamentdomain.MatchPending {
		return tournamentdb.ErrMatchAlreadyPlayed
	}
	stored.WinnerID = match.WinnerID
	stored.Status = match.Status
	return nil
}

// Leaderboard mirrors the store's ordering contract: fastest completions
// first, capped at limit.
func (f *FakeRepository) Leaderboard(ctx context.Context, _ bun.IDB, limit int) ([]tournamentdb.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LeaderboardLimit = limit
	out := make([]tournamentdb.LeaderboardEntry, len(f.LeaderboardEntries))
	copy(out, f.LeaderboardEntries)
	sort.Slice(out, func(i, j int) bool { return out[i].DurationSeconds < out[j].DurationSeconds })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeRepository) LockTournament(ctx context.Context, _ bun.IDB, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LockCalls = append(f.LockCalls, id)
	return nil
}

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

// testCharacters builds n distinct catalog characters with identical stats.
func testCharacters(n int) []catalogdomain.Character {
	chars := make([]catalogdomain.Character, 0, n)
	for i := 0; i < n; i++ {
		faction := catalogdomain.FactionHero
		if i%2 == 1 {
			faction = catalogdomain.FactionVillain
		}
		chars = append(chars, catalogdomain.Character{
			ID:      fmt.Sprintf("char-%02d", i),
			Name:    fmt.Sprintf("Character %02d", i),
			Faction: faction,
			WorldID: 1,
			Stats:   catalogdomain.Stats{Damage: 60, Defense: 100, SpecialPower: 120},
		})
	}
	return chars
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

// Shuffle is a no-op so seeded orderings stay deterministic in tests.
func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {}
