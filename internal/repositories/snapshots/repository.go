// Package snapshots persists the mutable rules-layer state of characters
// (active statuses with their state bags, stat stages) so an external
// save layer can restore a floor mid-run. The engine itself never reads
// snapshots during resolution.
package snapshots

import (
	"context"
	"time"

	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
)

// StatusSnapshot is one status instance in serialized form. State bags
// are stored as type-tagged envelopes so concrete kinds round-trip.
type StatusSnapshot struct {
	ID       string           `json:"id"`
	DefID    string           `json:"def_id"`
	TargetID string           `json:"target_id,omitempty"`
	States   []state.Envelope `json:"states,omitempty"`
}

// CharacterSnapshot is the serialized rules-layer state of one character
type CharacterSnapshot struct {
	CharacterID string                `json:"character_id"`
	HP          int                   `json:"hp"`
	Stages      map[entities.Stat]int `json:"stages,omitempty"`
	Statuses    []StatusSnapshot      `json:"statuses,omitempty"`
	TakenAt     time.Time             `json:"taken_at"`
}

// Repository stores character snapshots
type Repository interface {
	// Save stores one snapshot
	Save(ctx context.Context, snapshot *CharacterSnapshot) error

	// SaveAll stores a batch of snapshots concurrently
	SaveAll(ctx context.Context, snapshots []*CharacterSnapshot) error

	// Get loads a character's snapshot
	Get(ctx context.Context, characterID string) (*CharacterSnapshot, error)

	// Delete removes a character's snapshot
	Delete(ctx context.Context, characterID string) error
}

// Capture builds a snapshot from a character's live state
func Capture(c *entities.Character) (*CharacterSnapshot, error) {
	snapshot := &CharacterSnapshot{
		CharacterID: c.ID,
		HP:          c.HP,
		TakenAt:     time.Now().UTC(),
	}
	if len(c.Stages) > 0 {
		snapshot.Stages = make(map[entities.Stat]int, len(c.Stages))
		for stat, stage := range c.Stages {
			snapshot.Stages[stat] = stage
		}
	}
	for _, status := range c.Statuses {
		envelopes, err := state.EncodeBag(status.States)
		if err != nil {
			return nil, errors.Wrapf(err, "encode status %s", status.ID)
		}
		snapshot.Statuses = append(snapshot.Statuses, StatusSnapshot{
			ID:       status.ID,
			DefID:    status.DefID,
			TargetID: status.TargetID,
			States:   envelopes,
		})
	}
	return snapshot, nil
}

// Apply restores a snapshot onto a character, replacing its statuses and
// stages. The codec registry must know every state kind the snapshot
// carries.
func (s *CharacterSnapshot) Apply(registry *state.Registry, c *entities.Character) error {
	c.HP = s.HP
	c.Stages = make(map[entities.Stat]int, len(s.Stages))
	for stat, stage := range s.Stages {
		c.Stages[stat] = stage
	}
	c.Statuses = nil
	for _, stored := range s.Statuses {
		bag, err := state.DecodeBag(registry, stored.States)
		if err != nil {
			return errors.Wrapf(err, "decode status %s", stored.ID)
		}
		c.AttachStatus(&entities.Status{
			ID:       stored.ID,
			DefID:    stored.DefID,
			TargetID: stored.TargetID,
			States:   bag,
		})
	}
	return nil
}
