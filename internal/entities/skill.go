package entities

import "github.com/mossfell/delve-rules/internal/core/state"

// Skill is an instance of a learned move. Combat-relevant fields are
// copied out of the definition at instantiation so the resolution path
// never reaches back into shared definition data.
type Skill struct {
	ID         string     `json:"id"`
	DefID      string     `json:"def_id"`
	Element    Element    `json:"element"`
	Power      int        `json:"power"`
	HitNum     int        `json:"hit_num"`
	HitDen     int        `json:"hit_den"`
	Unmissable bool       `json:"unmissable"`
	PP         int        `json:"pp"`
	States     *state.Bag `json:"-"`
}

// Clone deep-copies the skill
func (s *Skill) Clone() *Skill {
	if s == nil {
		return nil
	}
	clone := *s
	clone.States = s.States.Clone()
	return &clone
}

// OwnerID implements Owner
func (s *Skill) OwnerID() string { return s.ID }

// OwnerBag implements Owner
func (s *Skill) OwnerBag() *state.Bag { return s.States }
