// Package presenter is the engine's one-way door to the presentation
// layer. Every call is fire-and-forget: the rules engine never reads
// anything back from rendering, audio or the message log.
package presenter

//go:generate mockgen -destination=mocks/mock_presenter.go -package=mocks github.com/mossfell/delve-rules/internal/presenter Presenter

// Presenter receives presentation side effects. Message text lives in an
// external localization table; the engine only passes template keys and
// positional arguments.
type Presenter interface {
	// PlayAnimation plays a named animation at an entity's location
	PlayAnimation(targetID, animation string)

	// PlaySound plays a named sound effect
	PlaySound(name string)

	// Log emits a message by template key with positional arguments
	Log(key string, args ...any)

	// WaitFrames asks the presentation layer to let the given number of
	// simulated frames elapse before the step sequence resumes
	WaitFrames(frames int)
}

// Null is a Presenter that discards everything
type Null struct{}

// NewNull creates a discarding presenter
func NewNull() *Null {
	return &Null{}
}

// PlayAnimation implements Presenter
func (n *Null) PlayAnimation(targetID, animation string) {}

// PlaySound implements Presenter
func (n *Null) PlaySound(name string) {}

// Log implements Presenter
func (n *Null) Log(key string, args ...any) {}

// WaitFrames implements Presenter
func (n *Null) WaitFrames(frames int) {}
