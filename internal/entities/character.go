package entities

import "github.com/mossfell/delve-rules/internal/core/state"

// Character is a combatant on the floor: a player team member or a wild
// enemy. It owns its CharState bag, its active statuses in application
// order, and its per-stat boost stages.
type Character struct {
	ID        string
	Name      string
	Level     int
	HP        int
	MaxHP     int
	Elements  []Element
	AbilityID string
	HeldItem  *Item
	Skills    []*Skill
	Statuses  []*Status
	Stages    map[Stat]int
	Faction   Faction
	States    *state.Bag
}

// NewCharacter creates a character with empty state
func NewCharacter(id, name string) *Character {
	return &Character{
		ID:     id,
		Name:   name,
		Stages: make(map[Stat]int),
		States: state.NewBag(),
	}
}

// HasElement reports whether the character carries the given element
func (c *Character) HasElement(element Element) bool {
	for _, e := range c.Elements {
		if e == element {
			return true
		}
	}
	return false
}

// StatusByDefID returns the active status instance for a definition, if any
func (c *Character) StatusByDefID(defID string) *Status {
	for _, s := range c.Statuses {
		if s.DefID == defID {
			return s
		}
	}
	return nil
}

// HasStatus reports whether a status with the given definition is active
func (c *Character) HasStatus(defID string) bool {
	return c.StatusByDefID(defID) != nil
}

// AttachStatus appends a status instance, preserving application order
func (c *Character) AttachStatus(s *Status) {
	c.Statuses = append(c.Statuses, s)
}

// DetachStatus removes a status instance by its instance ID
func (c *Character) DetachStatus(statusID string) *Status {
	for i, s := range c.Statuses {
		if s.ID == statusID {
			c.Statuses = append(c.Statuses[:i], c.Statuses[i+1:]...)
			return s
		}
	}
	return nil
}

// Stage returns the boost stage for a stat (0 when untouched)
func (c *Character) Stage(stat Stat) int {
	return c.Stages[stat]
}

// IsFainted reports whether the character is out of the fight
func (c *Character) IsFainted() bool {
	return c.HP <= 0
}

// Clone deep-copies the character: stages, statuses, held item, skills and
// the state bag are all copied, never shared
func (c *Character) Clone() *Character {
	clone := &Character{
		ID:        c.ID,
		Name:      c.Name,
		Level:     c.Level,
		HP:        c.HP,
		MaxHP:     c.MaxHP,
		Elements:  append([]Element(nil), c.Elements...),
		AbilityID: c.AbilityID,
		HeldItem:  c.HeldItem.Clone(),
		Faction:   c.Faction,
		Stages:    make(map[Stat]int, len(c.Stages)),
		States:    c.States.Clone(),
	}
	for stat, stage := range c.Stages {
		clone.Stages[stat] = stage
	}
	for _, skill := range c.Skills {
		clone.Skills = append(clone.Skills, skill.Clone())
	}
	for _, status := range c.Statuses {
		clone.Statuses = append(clone.Statuses, status.Clone())
	}
	return clone
}

// OwnerID implements Owner. A character is the owner of its own intrinsic
// ability's handlers.
func (c *Character) OwnerID() string { return c.ID }

// OwnerBag implements Owner
func (c *Character) OwnerBag() *state.Bag { return c.States }
