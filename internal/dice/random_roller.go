package dice

import (
	"math/rand"

	"github.com/mossfell/delve-rules/internal/errors"
)

// randomRoller implements Roller using a seeded PRNG
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the given value so runs can be replayed
func NewRandomRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Check implements Roller.Check
func (r *randomRoller) Check(num, den int) (bool, error) {
	if den <= 0 {
		return false, errors.InvalidArgumentf("chance denominator must be positive, got %d", den)
	}
	if num <= 0 {
		return false, nil
	}
	if num >= den {
		return true, nil
	}
	return r.rng.Intn(den) < num, nil
}

// Range implements Roller.Range
func (r *randomRoller) Range(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("range bound must be positive, got %d", n)
	}
	return r.rng.Intn(n), nil
}
