package dice

// Roller rolls dice
// This allows us to inject predetermined results for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult carries the outcome of one roll
type RollResult struct {
	Total int   // sum of all dice plus the bonus
	Rolls []int // individual die results
	Bonus int
}
