// Package rulebook holds the data definitions the engine resolves against:
// statuses, items, abilities, skills, map statuses and terrains, each
// carrying one handler list per recognized hook. Definitions are shared
// and immutable after registration; anything mutable is cloned into
// instances.
package rulebook

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/entities"
)

// HookSet maps hook names to this definition's contributed handler lists
type HookSet struct {
	lists map[hooks.Hook]*hooks.List
}

// NewHookSet creates an empty hook set
func NewHookSet() *HookSet {
	return &HookSet{lists: make(map[hooks.Hook]*hooks.List)}
}

// On returns the list for a hook, or nil if the definition contributes
// nothing there
func (h *HookSet) On(hook hooks.Hook) *hooks.List {
	if h == nil {
		return nil
	}
	return h.lists[hook]
}

// Add registers a handler on a hook at the given priority
func (h *HookSet) Add(hook hooks.Hook, priority int, handler hooks.Handler) *HookSet {
	list, ok := h.lists[hook]
	if !ok {
		list = hooks.NewList()
		h.lists[hook] = list
	}
	list.Add(priority, handler)
	return h
}

// Clone deep-copies the set including every handler
func (h *HookSet) Clone() *HookSet {
	clone := NewHookSet()
	for hook, list := range h.lists {
		clone.lists[hook] = list.Clone()
	}
	return clone
}

// StatusDef defines a status condition
type StatusDef struct {
	ID   string
	Name string

	// Bad marks a harmful status, eligible for ratio-based self-cure
	Bad bool

	// Stack bounds. Equal bounds (including 0/0) mean the status does
	// not stack.
	MinStack int
	MaxStack int

	// BaseCountdown is the default duration in turns; 0 means indefinite
	BaseCountdown int

	// FatalOnExpiry knocks the carrier out when the countdown runs out.
	// The status is removed before the fatal effect resolves.
	FatalOnExpiry bool

	// Linked statuses carry a second character reference
	Linked bool

	Hooks *HookSet
}

// Stacks reports whether the status carries a stack magnitude
func (d *StatusDef) Stacks() bool {
	return d.MinStack != d.MaxStack
}

// ItemDef defines an equippable item
type ItemDef struct {
	ID    string
	Name  string
	Hooks *HookSet
}

// Shareable reports whether this item's effect set may be executed on
// behalf of a character other than its wearer. Proximity-triggered or
// on-refresh handlers disqualify the item, as does any handler registered
// off the baseline priority.
func (d *ItemDef) Shareable() bool {
	if d.Hooks == nil {
		return true
	}
	if d.Hooks.On(hooks.OnProximities).Len() > 0 {
		return false
	}
	if d.Hooks.On(hooks.OnRefreshes).Len() > 0 {
		return false
	}
	for _, hook := range hooks.AllHooks() {
		if hook == hooks.OnProximities || hook == hooks.OnRefreshes {
			continue
		}
		if !d.Hooks.On(hook).AllBaseline() {
			return false
		}
	}
	return true
}

// AbilityDef defines a character's intrinsic ability
type AbilityDef struct {
	ID    string
	Name  string
	Hooks *HookSet
}

// SkillDef defines a usable move
type SkillDef struct {
	ID         string
	Name       string
	Element    entities.Element
	Power      int
	HitNum     int
	HitDen     int
	Unmissable bool
	BasePP     int
	Hooks      *HookSet
}

// MapStatusDef defines a floor-wide status
type MapStatusDef struct {
	ID            string
	Name          string
	BaseCountdown int
	Hooks         *HookSet
}

// TerrainDef attaches handlers to a terrain kind
type TerrainDef struct {
	Terrain entities.Terrain
	Hooks   *HookSet
}
