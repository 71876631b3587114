package hooks

import (
	"sort"

	"github.com/mossfell/delve-rules/internal/entities"
)

// Handler is a single rule that observes and mutates an in-flight hook
// invocation. A handler must be side-effect-free outside Apply and must
// deep-copy itself on CloneHandler, since handler instances live inside
// entity definitions and are copied whenever a definition is instantiated.
type Handler interface {
	Apply(ctx *Context, binding Binding)
	CloneHandler() Handler
}

// Binding tells a handler which entity contributed it and which character
// that entity is attached to
type Binding struct {
	Owner     entities.Owner
	Character *entities.Character
}

// Entry is one (priority, handler) pair in a definition's hook list
type Entry struct {
	Priority int
	Handler  Handler
}

// List is an ordered collection of (priority, handler) pairs contributed
// by one source. Enumeration order is ascending priority with ties broken
// by insertion order; Merge preserves the other list's internal order.
type List struct {
	entries []Entry
}

// NewList creates an empty list
func NewList() *List {
	return &List{}
}

// Add appends a handler at the given priority
func (l *List) Add(priority int, h Handler) *List {
	l.entries = append(l.entries, Entry{Priority: priority, Handler: h})
	return l
}

// Merge appends other's pairs, preserving other's internal order
func (l *List) Merge(other *List) {
	if other == nil {
		return
	}
	l.entries = append(l.entries, other.entries...)
}

// Len returns the number of entries
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns the pairs sorted ascending by priority, stable within
// equal priorities
func (l *List) Entries() []Entry {
	if l == nil {
		return nil
	}
	sorted := make([]Entry, len(l.entries))
	copy(sorted, l.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}

// AllBaseline reports whether every entry sits at the baseline priority.
// The shareability gate uses it to reject priority-sensitive lists.
func (l *List) AllBaseline() bool {
	if l == nil {
		return true
	}
	for _, e := range l.entries {
		if e.Priority != PriorityBaseline {
			return false
		}
	}
	return true
}

// Clone deep-copies the list including each handler
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	clone := &List{entries: make([]Entry, len(l.entries))}
	for i, e := range l.entries {
		clone.entries[i] = Entry{Priority: e.Priority, Handler: e.Handler.CloneHandler()}
	}
	return clone
}

// BoundEntry is a handler paired with the binding it will run under,
// produced by Gather for one hook invocation
type BoundEntry struct {
	Priority int
	Handler  Handler
	Binding  Binding
}

// Contribution pairs one source's hook list with the entity that
// contributed it
type Contribution struct {
	List      *List
	Owner     entities.Owner
	Character *entities.Character
}

// Gather merges contributions into one execution sequence: ascending
// priority, ties broken by contribution order, then by insertion order
// within a single contribution.
func Gather(contributions ...Contribution) []BoundEntry {
	var bound []BoundEntry
	for _, c := range contributions {
		if c.List == nil {
			continue
		}
		for _, e := range c.List.entries {
			bound = append(bound, BoundEntry{
				Priority: e.Priority,
				Handler:  e.Handler,
				Binding:  Binding{Owner: c.Owner, Character: c.Character},
			})
		}
	}
	sort.SliceStable(bound, func(i, j int) bool {
		return bound[i].Priority < bound[j].Priority
	})
	return bound
}
