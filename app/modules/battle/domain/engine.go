package battledomain

import (
	"errors"
	"fmt"

	catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"
	"github.com/Clone-Wars-Club/arena-bot/internal/random"
)

// ErrBattleFinished is returned when a turn is taken on a terminated battle.
var ErrBattleFinished = errors.New("battle already finished")

const (
	// aiSpecialChanceInteractive is the per-turn probability the AI opponent
	// spends its special in an interactive battle.
	aiSpecialChanceInteractive = 0.5
	// aiSpecialChanceSimulated is the per-turn special probability for both
	// sides of an instantaneous simulation.
	aiSpecialChanceSimulated = 0.3
)

// Participant is one side of an interactive battle. HP starts at the
// character's defense stat; the special flag resets only at battle creation.
type Participant struct {
	Character   catalogdomain.Character `json:"character"`
	HP          int                     `json:"hp"`
	SpecialUsed bool                    `json:"special_used"`
	Human       bool                    `json:"human"`
}

// State is the transient state of one interactive battle. It lives in the
// battle store for the battle's lifetime and is never persisted.
type State struct {
	ID          string      `json:"id"`
	OwnerUserID int64       `json:"-"`
	Player      Participant `json:"player"`
	Opponent    Participant `json:"opponent"`
	Log         []string    `json:"log"`
	Finished    bool        `json:"finished"`
}

// Winner returns the surviving side's character. Only meaningful once the
// battle is finished.
func (s *State) Winner() catalogdomain.Character {
	if s.Opponent.HP <= 0 {
		return s.Player.Character
	}
	return s.Opponent.Character
}

// NewBattle starts an interactive battle between a human-controlled player
// and an AI opponent.
func NewBattle(id string, ownerUserID int64, player, opponent catalogdomain.Character) *State {
	return &State{
		ID:          id,
		OwnerUserID: ownerUserID,
		Player:      Participant{Character: player, HP: player.Stats.Defense, Human: true},
		Opponent:    Participant{Character: opponent, HP: opponent.Stats.Defense},
		Log: []string{
			fmt.Sprintf("The battle between %s and %s begins!", player.Name, opponent.Name),
		},
	}
}

// Advance resolves one full turn: the player's action first, then, if the
// opponent survives, the AI's retaliation. A special action already spent
// this battle is silently downgraded to a normal attack and logged.
func (s *State) Advance(rng random.Source, action Ability) error {
	if s.Finished {
		return ErrBattleFinished
	}

	if action == AbilitySpecial && s.Player.SpecialUsed {
		s.Log = append(s.Log, fmt.Sprintf("%s already spent their special attack; attacking normally.", s.Player.Character.Name))
		action = AbilityNormal
	}
	if action == AbilitySpecial {
		s.Player.SpecialUsed = true
	}

	damage, msg := ResolveAbility(rng, s.Player.Character, s.Opponent.Character, action)
	s.Opponent.HP = clampHP(s.Opponent.HP - damage)
	s.Log = append(s.Log, msg)
	if s.Opponent.HP <= 0 {
		s.Finished = true
		s.Log = append(s.Log, fmt.Sprintf("%s has won the battle!", s.Player.Character.Name))
		return nil
	}

	aiAction := AbilityNormal
	if !s.Opponent.SpecialUsed && rng.Float64() < aiSpecialChanceInteractive {
		aiAction = AbilitySpecial
		s.Opponent.SpecialUsed = true
	}

	aiDamage, aiMsg := ResolveAbility(rng, s.Opponent.Character, s.Player.Character, aiAction)
	s.Player.HP = clampHP(s.Player.HP - aiDamage)
	s.Log = append(s.Log, aiMsg)
	if s.Player.HP <= 0 {
		s.Finished = true
		s.Log = append(s.Log, fmt.Sprintf("%s has won the battle!", s.Opponent.Character.Name))
	}

	return nil
}

// Simulate runs a full battle with no external input and returns the
// surviving character plus the ordered event log. Side a always acts before
// side b within a turn, and each death check happens before the other side
// retaliates, so exactly one side reaches zero first. Termination is
// guaranteed: a non-dodged hit always deals at least 1 damage.
func Simulate(rng random.Source, a, b catalogdomain.Character) (catalogdomain.Character, []string) {
	hpA := a.Stats.Defense
	hpB := b.Stats.Defense
	specialUsedA := false
	specialUsedB := false
	log := []string{fmt.Sprintf("The simulation between %s and %s begins!", a.Name, b.Name)}

	for hpA > 0 && hpB > 0 {
		actionA := AbilityNormal
		if !specialUsedA && rng.Float64() < aiSpecialChanceSimulated {
			actionA = AbilitySpecial
			specialUsedA = true
		}
		damage, msg := ResolveAbility(rng, a, b, actionA)
		hpB = clampHP(hpB - damage)
		log = append(log, msg)
		if hpB <= 0 {
			log = append(log, fmt.Sprintf("%s has won the battle!", a.Name))
			return a, log
		}

		actionB := AbilityNormal
		if !specialUsedB && rng.Float64() < aiSpecialChanceSimulated {
			actionB = AbilitySpecial
			specialUsedB = true
		}
		damage, msg = ResolveAbility(rng, b, a, actionB)
		hpA = clampHP(hpA - damage)
		log = append(log, msg)
		if hpA <= 0 {
			log = append(log, fmt.Sprintf("%s has won the battle!", b.Name))
			return b, log
		}
	}

	// Unreachable: both in-loop death checks return. Kept for the
	// deterministic pick should the loop condition ever be reworked.
	if hpA > 0 {
		return a, log
	}
	return b, log
}

func clampHP(hp int) int {
	if hp < 0 {
		return 0
	}
	return hp
}
