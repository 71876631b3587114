// Package hooks implements the priority-ordered handler lists the rules
// engine is built on. A hook is a named extension point in action
// resolution; entity definitions contribute handler lists to hooks, the
// engine merges the lists of every relevant entity into one sequence and
// applies it to a mutable context until the sequence ends or a handler
// cancels the rest.
package hooks

// Hook identifies a named extension point
type Hook int

const (
	// Status lifecycle
	BeforeStatusAdds Hook = iota
	OnStatusAdds
	OnStatusRemoves
	OnRefreshes

	// Action resolution
	OnActionStarts
	BeforeHittings
	AfterHittings

	// Stat stages
	OnStatStageChanges

	// Turn boundaries
	OnTurnEnds
	OnMapTurnEnds

	// Map status lifecycle
	OnMapStatusAdds
	OnMapStatusRemoves

	// Elemental matchup layering
	UserElementEffects
	TargetElementEffects

	// Movement
	OnTraverseChecks

	// Position-sensitive item effects
	OnProximities

	hookCount
)

var hookNames = map[Hook]string{
	BeforeStatusAdds:     "BeforeStatusAdds",
	OnStatusAdds:         "OnStatusAdds",
	OnStatusRemoves:      "OnStatusRemoves",
	OnRefreshes:          "OnRefreshes",
	OnActionStarts:       "OnActionStarts",
	BeforeHittings:       "BeforeHittings",
	AfterHittings:        "AfterHittings",
	OnStatStageChanges:   "OnStatStageChanges",
	OnTurnEnds:           "OnTurnEnds",
	OnMapTurnEnds:        "OnMapTurnEnds",
	OnMapStatusAdds:      "OnMapStatusAdds",
	OnMapStatusRemoves:   "OnMapStatusRemoves",
	UserElementEffects:   "UserElementEffects",
	TargetElementEffects: "TargetElementEffects",
	OnTraverseChecks:     "OnTraverseChecks",
	OnProximities:        "OnProximities",
}

// String returns the hook's name for logging
func (h Hook) String() string {
	if name, ok := hookNames[h]; ok {
		return name
	}
	return "UnknownHook"
}

// AllHooks returns every recognized hook, in declaration order
func AllHooks() []Hook {
	all := make([]Hook, 0, int(hookCount))
	for h := Hook(0); h < hookCount; h++ {
		all = append(all, h)
	}
	return all
}

// Priority bands for consistent handler ordering. Within one priority,
// merge order decides; most handlers register at the baseline.
const (
	PriorityGate     = -100 // blocks and protections run before anything else
	PriorityBaseline = 0    // the default for ordinary handlers
	PriorityAdjust   = 100  // modifiers layered over baseline results
	PriorityReport   = 200  // reporting and message handlers run last
)
