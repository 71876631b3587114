// Package state provides typed heterogeneous storage for game entities.
//
// Every entity (character, item, skill, status, map status, tile, terrain)
// owns one Bag scoped to its own category; states of different categories
// never share a bag. A bag holds at most one instance per state kind.
package state

import (
	"reflect"
	"sort"
)

// State is a single piece of typed entity state. Implementations must be
// deep-copyable: CloneState must never share mutable substructure with the
// receiver, since bags are cloned whenever an entity or status is copied.
type State interface {
	// Kind returns the stable name of this state, used for serialization
	Kind() string

	// CloneState returns a deep copy
	CloneState() State
}

// StatePtr constrains a pointer-to-struct state, letting GetOrDefault
// build a fresh zero value without touching the bag.
type StatePtr[T any] interface {
	*T
	State
}

// Bag maps state kinds to exactly one instance of each kind
type Bag struct {
	states map[reflect.Type]State
}

// NewBag creates an empty bag
func NewBag() *Bag {
	return &Bag{states: make(map[reflect.Type]State)}
}

// Set stores s, replacing any existing instance of the same kind
func (b *Bag) Set(s State) {
	if s == nil {
		return
	}
	b.states[reflect.TypeOf(s)] = s
}

// Len returns the number of stored states
func (b *Bag) Len() int {
	return len(b.states)
}

// Kinds returns the stored kind names, sorted for deterministic iteration
func (b *Bag) Kinds() []string {
	kinds := make([]string, 0, len(b.states))
	for _, s := range b.states {
		kinds = append(kinds, s.Kind())
	}
	sort.Strings(kinds)
	return kinds
}

// All returns the stored states in Kind order
func (b *Bag) All() []State {
	states := make([]State, 0, len(b.states))
	for _, s := range b.states {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Kind() < states[j].Kind() })
	return states
}

// Clone deep-copies the bag via each state's own clone contract
func (b *Bag) Clone() *Bag {
	clone := NewBag()
	for _, s := range b.states {
		clone.Set(s.CloneState())
	}
	return clone
}

// Get returns the stored instance of kind T, if present
func Get[T State](b *Bag) (T, bool) {
	s, ok := b.states[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return s.(T), true
}

// GetOrDefault returns the stored instance of the kind, or a fresh zero
// value if absent. The bag is not mutated either way.
func GetOrDefault[T any, PT StatePtr[T]](b *Bag) PT {
	if s, ok := b.states[reflect.TypeOf((*PT)(nil)).Elem()]; ok {
		return s.(PT)
	}
	return PT(new(T))
}

// Has reports whether an instance of kind T is stored
func Has[T State](b *Bag) bool {
	_, ok := b.states[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// Remove deletes the instance of kind T, if present
func Remove[T State](b *Bag) {
	delete(b.states, reflect.TypeOf((*T)(nil)).Elem())
}
