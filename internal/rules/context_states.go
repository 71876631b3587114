// Package rules is the handler catalogue: the concrete rule variants that
// entity definitions register on hooks. Handlers are mechanically uniform;
// each mutates the invocation context, may consult the environment's
// services, and deep-copies itself on clone.
package rules

import (
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
)

// PendingStatusState annotates a status-add invocation with what is about
// to be added, so gate handlers can inspect it
type PendingStatusState struct {
	DefID string `json:"def_id"`
	Bad   bool   `json:"bad"`
}

func (p *PendingStatusState) Kind() string { return "context.pending_status" }

func (p *PendingStatusState) CloneState() state.State {
	clone := *p
	return &clone
}

// SyncOverrideState marks that a duplicate status addition should refresh
// the existing instance instead of being cancelled
type SyncOverrideState struct{}

func (s *SyncOverrideState) Kind() string { return "context.sync_override" }

func (s *SyncOverrideState) CloneState() state.State {
	return &SyncOverrideState{}
}

// CritState marks the current hit as a critical
type CritState struct{}

func (c *CritState) Kind() string { return "context.crit" }

func (c *CritState) CloneState() state.State {
	return &CritState{}
}

// FollowUpState marks the current hit as a follow-up of an earlier hit in
// the same action
type FollowUpState struct{}

func (f *FollowUpState) Kind() string { return "context.follow_up" }

func (f *FollowUpState) CloneState() state.State {
	return &FollowUpState{}
}

// FractionState is a fractional multiplier with sentinel semantics:
// a positive numerator processes normally with a message, a zero
// numerator processes a zero outcome with a message (ignored entirely by
// unmissable actions), a negative numerator processes a zero outcome
// silently. The denominator is validated at construction; zero and
// negative denominators are rejected rather than left undefined.
type FractionState struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

// NewFraction builds a FractionState, rejecting non-positive denominators
func NewFraction(num, den int) (*FractionState, error) {
	if den <= 0 {
		return nil, errors.InvalidArgumentf("fraction denominator must be positive, got %d", den)
	}
	return &FractionState{Num: num, Den: den}, nil
}

func (f *FractionState) Kind() string { return "context.fraction" }

func (f *FractionState) CloneState() state.State {
	clone := *f
	return &clone
}

// TraverseState carries a mobility query: which terrain is being entered
// and whether anything has allowed it yet
type TraverseState struct {
	Terrain entities.Terrain `json:"terrain"`
	Allowed bool             `json:"allowed"`
}

func (t *TraverseState) Kind() string { return "context.traverse" }

func (t *TraverseState) CloneState() state.State {
	clone := *t
	return &clone
}
