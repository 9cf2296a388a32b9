package arena

import (
	"context"
	"errors"
	"fmt"

	"github.com/parley-go/parley/internal/dice"
	"github.com/parley-go/parley/pkg/events"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxRounds caps a fight that neither side can finish
const DefaultMaxRounds = 50

// Fighter is one combatant
type Fighter struct {
	Name   string
	HP     int
	Guard  int           // an attack roll at or above this lands
	Attack dice.Notation // damage dice for a landed attack
}

// Engine runs fights and publishes every state change through one shared
// event manager. Anything subscribed to the manager, a scoreboard, a
// narrator, a metrics exporter, sees the same stream.
type Engine struct {
	manager   *events.Manager
	roller    dice.Roller
	ids       IDGenerator
	maxRounds int
}

// EngineConfig holds the engine's collaborators
type EngineConfig struct {
	Manager   *events.Manager
	Roller    dice.Roller
	IDs       IDGenerator // optional, defaults to random UUIDs
	MaxRounds int         // optional, defaults to DefaultMaxRounds
}

// NewEngine creates an engine from cfg
func NewEngine(cfg *EngineConfig) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("engine config is required")
	}
	if cfg.Manager == nil {
		return nil, errors.New("engine requires an event manager")
	}
	if cfg.Roller == nil {
		return nil, errors.New("engine requires a dice roller")
	}

	e := &Engine{
		manager:   cfg.Manager,
		roller:    cfg.Roller,
		ids:       cfg.IDs,
		maxRounds: cfg.MaxRounds,
	}
	if e.ids == nil {
		e.ids = UUIDGenerator{}
	}
	if e.maxRounds <= 0 {
		e.maxRounds = DefaultMaxRounds
	}
	return e, nil
}

// RunFight pits two fighters against each other and returns the outcome.
// Attacks alternate within a round, first fighter first. A fight that
// reaches the round limit is decided by remaining hit points, first fighter
// winning ties.
func (e *Engine) RunFight(first, second Fighter) (FightEnded, error) {
	fightID := e.ids.New()

	// Work on copies so callers can reuse fighter definitions
	red, blue := first, second
	for round := 1; round <= e.maxRounds; round++ {
		events.Dispatch(e.manager, RoundStarted{FightID: fightID, Round: round})

		if err := e.attack(fightID, round, &red, &blue); err != nil {
			return FightEnded{}, err
		}
		if blue.HP <= 0 {
			return e.finish(fightID, round, red, blue), nil
		}

		if err := e.attack(fightID, round, &blue, &red); err != nil {
			return FightEnded{}, err
		}
		if red.HP <= 0 {
			return e.finish(fightID, round, blue, red), nil
		}
	}

	if red.HP >= blue.HP {
		return e.finish(fightID, e.maxRounds, red, blue), nil
	}
	return e.finish(fightID, e.maxRounds, blue, red), nil
}

// RunAll runs count independent fights between the same pair concurrently
// and returns the outcomes in no particular order.
func (e *Engine) RunAll(ctx context.Context, first, second Fighter, count int) ([]FightEnded, error) {
	results := make([]FightEnded, count)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := e.RunFight(first, second)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// attack resolves one attack, mutating the defender's hit points
func (e *Engine) attack(fightID string, round int, attacker, defender *Fighter) error {
	toHit, err := e.roller.Roll(1, 20, 0)
	if err != nil {
		return fmt.Errorf("attack roll for %s: %w", attacker.Name, err)
	}

	if toHit.Total < defender.Guard {
		events.Dispatch(e.manager, AttackMissed{
			FightID:  fightID,
			Round:    round,
			Attacker: attacker.Name,
			Defender: defender.Name,
			Roll:     toHit.Total,
		})
		return nil
	}

	dmg, err := e.roller.Roll(attacker.Attack.Count, attacker.Attack.Sides, attacker.Attack.Bonus)
	if err != nil {
		return fmt.Errorf("damage roll for %s: %w", attacker.Name, err)
	}

	defender.HP -= dmg.Total
	events.Dispatch(e.manager, AttackLanded{
		FightID:  fightID,
		Round:    round,
		Attacker: attacker.Name,
		Defender: defender.Name,
		Roll:     toHit.Total,
		Damage:   dmg.Total,
		HPLeft:   defender.HP,
	})

	if defender.HP <= 0 {
		events.Dispatch(e.manager, FighterDowned{
			FightID: fightID,
			Round:   round,
			Name:    defender.Name,
			By:      attacker.Name,
		})
	}
	return nil
}

// finish publishes and returns the fight outcome
func (e *Engine) finish(fightID string, rounds int, winner, loser Fighter) FightEnded {
	ended := FightEnded{
		FightID: fightID,
		Winner:  winner.Name,
		Loser:   loser.Name,
		Rounds:  rounds,
	}
	events.Dispatch(e.manager, ended)
	return ended
}
