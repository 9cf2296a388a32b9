package arena

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Scoreboard aggregates fight outcomes across all fights dispatched through
// a manager. It declares its capabilities through named handler methods and
// is safe for concurrent use, so it works under snapshot dispatch too.
type Scoreboard struct {
	mu     sync.Mutex
	damage map[string]int
	downs  map[string]int
	wins   map[string]int
	fights int
}

// NewScoreboard creates an empty scoreboard
func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		damage: make(map[string]int),
		downs:  make(map[string]int),
		wins:   make(map[string]int),
	}
}

// HandleAttackLanded tallies damage dealt by the attacker
func (s *Scoreboard) HandleAttackLanded(e AttackLanded) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.damage[e.Attacker] += e.Damage
}

// HandleFighterDowned tallies knockouts scored by the attacker
func (s *Scoreboard) HandleFighterDowned(e FighterDowned) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downs[e.By]++
}

// HandleFightEnded tallies wins
func (s *Scoreboard) HandleFightEnded(e FightEnded) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wins[e.Winner]++
	s.fights++
}

// Fights returns the number of completed fights seen
func (s *Scoreboard) Fights() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fights
}

// Wins returns the number of fights name has won
func (s *Scoreboard) Wins(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wins[name]
}

// DamageDealt returns the total damage name has dealt
func (s *Scoreboard) DamageDealt(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.damage[name]
}

// Downs returns the number of knockouts name has scored
func (s *Scoreboard) Downs(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downs[name]
}

// Lines renders one summary line per fighter, most wins first
func (s *Scoreboard) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.wins))
	for name := range s.wins {
		names = append(names, name)
	}
	// Fighters who never won still dealt damage
	for name := range s.damage {
		if _, ok := s.wins[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if s.wins[names[i]] != s.wins[names[j]] {
			return s.wins[names[i]] > s.wins[names[j]]
		}
		return names[i] < names[j]
	})

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %d wins, %d downs, %d damage dealt",
			name, s.wins[name], s.downs[name], s.damage[name]))
	}
	return lines
}

// Chronicle narrates every fight event through a structured logger
type Chronicle struct {
	log zerolog.Logger
}

// NewChronicle creates a chronicle writing to log
func NewChronicle(log zerolog.Logger) *Chronicle {
	return &Chronicle{log: log}
}

// HandleRoundStarted logs the start of a round
func (c *Chronicle) HandleRoundStarted(e RoundStarted) {
	c.log.Debug().Str("fight", e.FightID).Int("round", e.Round).Msg("round started")
}

// HandleAttackLanded logs a landed attack
func (c *Chronicle) HandleAttackLanded(e AttackLanded) {
	c.log.Info().
		Str("fight", e.FightID).
		Int("round", e.Round).
		Str("attacker", e.Attacker).
		Str("defender", e.Defender).
		Int("roll", e.Roll).
		Int("damage", e.Damage).
		Int("hp_left", e.HPLeft).
		Msg("attack landed")
}

// HandleAttackMissed logs a missed attack
func (c *Chronicle) HandleAttackMissed(e AttackMissed) {
	c.log.Debug().
		Str("fight", e.FightID).
		Int("round", e.Round).
		Str("attacker", e.Attacker).
		Str("defender", e.Defender).
		Int("roll", e.Roll).
		Msg("attack missed")
}

// HandleFighterDowned logs a knockout
func (c *Chronicle) HandleFighterDowned(e FighterDowned) {
	c.log.Info().Str("fight", e.FightID).Str("fighter", e.Name).Str("by", e.By).Msg("fighter downed")
}

// HandleFightEnded logs the fight outcome
func (c *Chronicle) HandleFightEnded(e FightEnded) {
	c.log.Info().Str("fight", e.FightID).Str("winner", e.Winner).Int("rounds", e.Rounds).Msg("fight ended")
}
