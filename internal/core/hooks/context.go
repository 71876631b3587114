package hooks

import (
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/dice"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/presenter"
)

// EntityLookup resolves characters and their relationships. Read-only from
// the engine's point of view; it carries only what handlers consume.
type EntityLookup interface {
	Character(id string) (*entities.Character, bool)
	Allies(c *entities.Character) []*entities.Character
}

// StatusOps lets handlers add and remove statuses without depending on the
// lifecycle service package
type StatusOps interface {
	AddStatus(ctx *Context, target *entities.Character, defID string, stackDelta, countdown int) error
	RemoveStatus(ctx *Context, target *entities.Character, statusID string) error
	BoostStat(ctx *Context, target *entities.Character, stat entities.Stat, delta int) error
}

// MapStatusOps lets handlers add and remove floor-wide statuses
type MapStatusOps interface {
	AddMapStatus(ctx *Context, defID string, countdown int) error
	RemoveMapStatus(ctx *Context, id string) error
}

// DefinitionSource hands out the hook list a definition contributes to a
// hook. The engine's only contract with the data layer.
type DefinitionSource interface {
	HookList(defID string, hook Hook) *List
	ItemShareable(defID string) bool
}

// Env carries the services every hook invocation may need. It replaces
// ambient globals: dependencies are visible at the call site and can be
// swapped in tests.
type Env struct {
	Presenter   presenter.Presenter
	Roller      dice.Roller
	Entities    EntityLookup
	Statuses    StatusOps
	MapStatuses MapStatusOps
	Defs        DefinitionSource
}

// Context is the mutable aggregate threaded through one hook invocation's
// entire handler chain. It is created when an action starts resolving and
// discarded when the action ends; its States bag holds scratch annotations
// later handlers in the same chain can test.
type Context struct {
	User   *entities.Character
	Target *entities.Character
	Skill  *entities.Skill

	// Numeric accumulators
	Damage     int
	StackDelta int
	HitNum     int
	HitDen     int

	// Silent suppresses user-visible log and animation output, used by
	// internal reapplications
	Silent bool

	States *state.Bag
	Env    *Env

	cancelled bool
}

// NewContext creates a context bound to an environment
func NewContext(env *Env) *Context {
	return &Context{
		States: state.NewBag(),
		Env:    env,
	}
}

// WithUser sets the acting character
func (c *Context) WithUser(user *entities.Character) *Context {
	c.User = user
	return c
}

// WithTarget sets the targeted character
func (c *Context) WithTarget(target *entities.Character) *Context {
	c.Target = target
	return c
}

// WithSkill sets the skill being resolved
func (c *Context) WithSkill(skill *entities.Skill) *Context {
	c.Skill = skill
	return c
}

// Child derives a context for a nested invocation started mid-chain, for
// example a handler applying a secondary status. The child shares the
// environment and silence flag but carries its own accumulators, scratch
// bag and cancellation flag, so cancelling the nested invocation never
// aborts the outer chain.
func (c *Context) Child() *Context {
	return &Context{
		User:   c.User,
		Target: c.Target,
		Silent: c.Silent,
		States: state.NewBag(),
		Env:    c.Env,
	}
}

// Cancel sets the cancellation flag. Cancellation is cooperative: it stops
// the remaining handlers of the current invocation only, and the caller of
// the hook decides whether to abort the larger action.
func (c *Context) Cancel() {
	c.cancelled = true
}

// IsCancelled reports whether a handler cancelled the invocation
func (c *Context) IsCancelled() bool {
	return c.cancelled
}

// ClearCancel resets the flag so the caller can reuse the context for a
// follow-up hook invocation
func (c *Context) ClearCancel() {
	c.cancelled = false
}

// Say logs a message unless the context is silent
func (c *Context) Say(key string, args ...any) {
	if c.Silent || c.Env == nil || c.Env.Presenter == nil {
		return
	}
	c.Env.Presenter.Log(key, args...)
}

// Animate plays an animation unless the context is silent
func (c *Context) Animate(targetID, animation string) {
	if c.Silent || c.Env == nil || c.Env.Presenter == nil {
		return
	}
	c.Env.Presenter.PlayAnimation(targetID, animation)
}

// Sound plays a sound effect unless the context is silent
func (c *Context) Sound(name string) {
	if c.Silent || c.Env == nil || c.Env.Presenter == nil {
		return
	}
	c.Env.Presenter.PlaySound(name)
}
