package dice

import (
	"errors"
	"math/rand"
	"sync"
)

// randomRoller implements Roller with a seedable source. The mutex guards
// rng because rand.Rand is not safe for concurrent use.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded with seed. Two rollers built from
// the same seed produce the same sequence, which keeps simulations
// reproducible.
func NewRandomRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice sides")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	total := bonus
	for i := range rolls {
		roll := r.rng.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total: total,
		Rolls: rolls,
		Bonus: bonus,
	}, nil
}
