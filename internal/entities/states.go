package entities

import "github.com/mossfell/delve-rules/internal/core/state"

// Status state kinds shared by the lifecycle machinery. Concrete statuses
// add their own kinds on top of these.

// StackState is an integer magnitude on a status (stat stage, accumulating
// counter). The lifecycle clamps it into the definition's [min, max].
type StackState struct {
	Count int `json:"count"`
}

func (s *StackState) Kind() string { return "status.stack" }

func (s *StackState) CloneState() state.State {
	clone := *s
	return &clone
}

// CountdownState tracks a status's remaining duration in turns. Original
// keeps the value the countdown started from; the self-cure clamp depends
// on it.
type CountdownState struct {
	Remaining int `json:"remaining"`
	Original  int `json:"original"`
}

func (c *CountdownState) Kind() string { return "status.countdown" }

func (c *CountdownState) CloneState() state.State {
	clone := *c
	return &clone
}

// RegisterStates adds the shared state kinds to a codec registry
func RegisterStates(registry *state.Registry) error {
	if err := registry.Register("status.stack", func() state.State { return &StackState{} }); err != nil {
		return err
	}
	return registry.Register("status.countdown", func() state.State { return &CountdownState{} })
}
