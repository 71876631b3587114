package entities

import "github.com/mossfell/delve-rules/internal/core/state"

// Status is an instance of a status condition attached to a character.
// Some statuses link two characters (a bond, or a countdown aimed at a
// second character); those carry the other character's ID rather than a
// pointer so that cloning never shares mutable structure.
type Status struct {
	ID       string     `json:"id"`
	DefID    string     `json:"def_id"`
	TargetID string     `json:"target_id,omitempty"`
	States   *state.Bag `json:"-"`
}

// NewStatus creates a status instance with an empty state bag
func NewStatus(id, defID string) *Status {
	return &Status{
		ID:     id,
		DefID:  defID,
		States: state.NewBag(),
	}
}

// Clone deep-copies the status including its state bag
func (s *Status) Clone() *Status {
	return &Status{
		ID:       s.ID,
		DefID:    s.DefID,
		TargetID: s.TargetID,
		States:   s.States.Clone(),
	}
}

// OwnerID implements Owner
func (s *Status) OwnerID() string { return s.ID }

// OwnerBag implements Owner
func (s *Status) OwnerBag() *state.Bag { return s.States }
