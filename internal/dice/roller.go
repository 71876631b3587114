package dice

// Roller provides an interface for the engine's chance checks
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Check succeeds with probability num/den. Den must be > 0.
	Check(num, den int) (bool, error)

	// Range returns a uniform value in [0, n)
	Range(n int) (int, error)
}
