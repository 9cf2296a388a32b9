package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation is a dice expression such as "2d6" or "1d8+3"
type Notation struct {
	Count int
	Sides int
	Bonus int
}

// ParseNotation parses a dice expression of the form NdS, NdS+B, or NdS-B
func ParseNotation(s string) (Notation, error) {
	var n Notation

	expr := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(expr, "+-"); i >= 0 {
		bonus, err := strconv.Atoi(expr[i:])
		if err != nil {
			return n, fmt.Errorf("invalid dice bonus in %q", s)
		}
		n.Bonus = bonus
		expr = expr[:i]
	}

	parts := strings.Split(expr, "d")
	if len(parts) != 2 {
		return n, fmt.Errorf("invalid dice expression %q", s)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil || count < 1 {
		return n, fmt.Errorf("invalid dice count in %q", s)
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil || sides < 1 {
		return n, fmt.Errorf("invalid dice sides in %q", s)
	}

	n.Count = count
	n.Sides = sides
	return n, nil
}

func (n Notation) String() string {
	if n.Bonus != 0 {
		return fmt.Sprintf("%dd%d%+d", n.Count, n.Sides, n.Bonus)
	}
	return fmt.Sprintf("%dd%d", n.Count, n.Sides)
}
