package state

import (
	"encoding/json"

	"github.com/mossfell/delve-rules/internal/errors"
)

// Envelope wraps a serialized state with its kind tag, mirroring how the
// save layer stores polymorphic data
type Envelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Registry maps kind names to factories so envelopes can be decoded back
// into concrete states
type Registry struct {
	factories map[string]func() State
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() State)}
}

// Register binds a kind name to its factory. Registering the same kind
// twice is a programming error.
func (r *Registry) Register(kind string, factory func() State) error {
	if _, exists := r.factories[kind]; exists {
		return errors.AlreadyExists("state kind already registered: " + kind)
	}
	r.factories[kind] = factory
	return nil
}

// New creates a fresh zero state of the named kind
func (r *Registry) New(kind string) (State, error) {
	factory, ok := r.factories[kind]
	if !ok {
		return nil, errors.NotFoundf("unknown state kind %q", kind)
	}
	return factory(), nil
}

// EncodeBag serializes every state in the bag as a tagged envelope, in
// deterministic Kind order
func EncodeBag(b *Bag) ([]Envelope, error) {
	envelopes := make([]Envelope, 0, b.Len())
	for _, s := range b.All() {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal state %q", s.Kind())
		}
		envelopes = append(envelopes, Envelope{Kind: s.Kind(), Data: data})
	}
	return envelopes, nil
}

// DecodeBag rebuilds a bag from tagged envelopes using the registry
func DecodeBag(r *Registry, envelopes []Envelope) (*Bag, error) {
	bag := NewBag()
	for _, env := range envelopes {
		s, err := r.New(env.Kind)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(env.Data, s); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal state %q", env.Kind)
		}
		bag.Set(s)
	}
	return bag, nil
}
