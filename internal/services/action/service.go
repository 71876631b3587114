// Package action resolves a character using a skill against a target:
// the start gates, the accuracy roll, the elemental matchup pipeline and
// the hit itself, with hook invocations at each joint.
package action

import (
	"log"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/errors"
	"github.com/mossfell/delve-rules/internal/matchup"
	"github.com/mossfell/delve-rules/internal/rulebook"
	"github.com/mossfell/delve-rules/internal/rules"
)

// Result reports how one skill use resolved
type Result struct {
	// Started is false when an action-start gate cancelled the whole turn
	Started bool
	// Hit is true when the skill connected with the target
	Hit     bool
	Damage  int
	Matchup matchup.Result
}

// Service resolves skill uses and movement queries
type Service interface {
	ResolveSkill(ctx *hooks.Context, user, target *entities.Character, skill *entities.Skill) (*Result, error)

	// CheckTraverse reports whether a character may enter the given
	// terrain, after its walkers and blocks have had their say
	CheckTraverse(ctx *hooks.Context, c *entities.Character, terrain entities.Terrain) (bool, error)
}

type service struct {
	registry *rulebook.Registry
	floor    *entities.Floor
}

// ServiceConfig holds configuration for the action service
type ServiceConfig struct {
	Registry *rulebook.Registry
	Floor    *entities.Floor
}

// NewService creates an action resolution service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Registry == nil {
		panic("registry is required")
	}
	return &service{
		registry: cfg.Registry,
		floor:    cfg.Floor,
	}
}

// gatherWithSkill merges a character's contributions for a hook with the
// in-flight skill's own list, skill last
func (s *service) gatherWithSkill(c *entities.Character, skill *entities.Skill, hook hooks.Hook) []hooks.BoundEntry {
	contributions := rulebook.ContributionsFor(s.registry, s.floor, c, hook)
	contributions = append(contributions, s.skillContribution(c, skill, hook))
	return hooks.Gather(contributions...)
}

// gatherPreHit merges both sides' pre-hit contributions: the user's own
// lists first, then the target's plus the floor's map statuses, then the
// skill. Map statuses contribute exactly once.
func (s *service) gatherPreHit(user, target *entities.Character, skill *entities.Skill) []hooks.BoundEntry {
	contributions := rulebook.CharacterContributions(s.registry, user, hooks.BeforeHittings)
	contributions = append(contributions, rulebook.ContributionsFor(s.registry, s.floor, target, hooks.BeforeHittings)...)
	contributions = append(contributions, s.skillContribution(user, skill, hooks.BeforeHittings))
	return hooks.Gather(contributions...)
}

func (s *service) skillContribution(c *entities.Character, skill *entities.Skill, hook hooks.Hook) hooks.Contribution {
	return hooks.Contribution{
		List:      s.registry.HookList(skill.DefID, hook),
		Owner:     skill,
		Character: c,
	}
}

// ResolveSkill implements Service
func (s *service) ResolveSkill(ctx *hooks.Context, user, target *entities.Character, skill *entities.Skill) (*Result, error) {
	if user == nil || target == nil || skill == nil {
		return nil, errors.InvalidArgument("user, target and skill are required")
	}
	if ctx.Env == nil || ctx.Env.Roller == nil {
		return nil, errors.InvalidArgument("context needs a roller")
	}

	inv := ctx.Child().WithUser(user).WithTarget(target).WithSkill(skill)

	hooks.Run(inv, hooks.OnActionStarts, s.gatherWithSkill(user, skill, hooks.OnActionStarts))
	if inv.IsCancelled() {
		log.Printf("[ACTION] %s's %s gated", user.ID, skill.DefID)
		return &Result{}, nil
	}

	if skill.PP > 0 {
		skill.PP--
	}

	// Matchup pipeline: seed, then let both sides' element effects layer
	matchup.Seed(inv, skill.Element, target)
	hooks.Run(inv, hooks.UserElementEffects, s.gatherWithSkill(user, skill, hooks.UserElementEffects))
	hooks.Run(inv, hooks.TargetElementEffects, s.gatherWithSkill(target, skill, hooks.TargetElementEffects))
	result := matchup.Finalize(inv)

	if result.Immune {
		inv.Say(result.Phrase(), target.Name)
		return &Result{Started: true, Matchup: result}, nil
	}

	// Accuracy seed: skill base scaled by the net accuracy/evasion stage.
	// The pre-hit hooks run before the roll so accuracy scalers reshape
	// the fraction the roller actually sees.
	inv.HitNum, inv.HitDen = skill.HitNum, skill.HitDen
	applyStageToAccuracy(inv, user, target)

	num, den := result.Multiplier()
	inv.Damage = skill.Power * num / den

	hooks.Run(inv, hooks.BeforeHittings, s.gatherPreHit(user, target, skill))
	if inv.IsCancelled() {
		return &Result{Started: true, Matchup: result}, nil
	}

	if !skill.Unmissable {
		hit, err := ctx.Env.Roller.Check(inv.HitNum, inv.HitDen)
		if err != nil {
			return nil, errors.Wrap(err, "accuracy roll")
		}
		if !hit {
			inv.Say("action.missed", user.Name, target.Name)
			return &Result{Started: true, Matchup: result}, nil
		}
	}

	// Compensation fractions annotated by earlier gates resolve here
	comp := &rules.ApplyCompensation{MessageKey: "action.hindered"}
	comp.Apply(inv, hooks.Binding{Owner: user, Character: user})

	if skill.Power > 0 && inv.Damage < 1 {
		inv.Damage = 1
	}
	target.HP -= inv.Damage
	if target.HP < 0 {
		target.HP = 0
	}
	if result.Score != matchup.ScoreNeutral {
		inv.Say(result.Phrase(), target.Name)
	}
	inv.Say("action.hit", user.Name, target.Name, inv.Damage)
	log.Printf("[ACTION] %s hit %s with %s for %d", user.ID, target.ID, skill.DefID, inv.Damage)

	// User side first without the floor, then the target side with it, so
	// each map status fires once per hit
	userSide := append(rulebook.CharacterContributions(s.registry, user, hooks.AfterHittings),
		s.skillContribution(user, skill, hooks.AfterHittings))
	hooks.Run(inv, hooks.AfterHittings, hooks.Gather(userSide...))
	inv.ClearCancel()
	hooks.Run(inv, hooks.AfterHittings, hooks.Gather(rulebook.ContributionsFor(s.registry, s.floor, target, hooks.AfterHittings)...))

	return &Result{Started: true, Hit: true, Damage: inv.Damage, Matchup: result}, nil
}

// CheckTraverse implements Service. The query runs as its own hook
// invocation: a TraverseState seeded closed, the character's walkers and
// the terrain's own list deciding, blocks last.
func (s *service) CheckTraverse(ctx *hooks.Context, c *entities.Character, terrain entities.Terrain) (bool, error) {
	if c == nil {
		return false, errors.InvalidArgument("character is required")
	}

	inv := ctx.Child().WithUser(c)
	traverse := &rules.TraverseState{Terrain: terrain}
	inv.States.Set(traverse)

	contributions := rulebook.CharacterContributions(s.registry, c, hooks.OnTraverseChecks)
	if def, ok := s.registry.Terrain(terrain); ok {
		contributions = append(contributions, hooks.Contribution{
			List:      def.Hooks.On(hooks.OnTraverseChecks),
			Owner:     c,
			Character: c,
		})
	}
	hooks.Run(inv, hooks.OnTraverseChecks, hooks.Gather(contributions...))
	return traverse.Allowed, nil
}

// applyStageToAccuracy folds the net accuracy-versus-evasion stage into
// the hit fraction using the standard 3-step curve
func applyStageToAccuracy(inv *hooks.Context, user, target *entities.Character) {
	net := user.Stage(entities.StatAccuracy) - target.Stage(entities.StatEvasion)
	if net > entities.StageMax {
		net = entities.StageMax
	}
	if net < entities.StageMin {
		net = entities.StageMin
	}
	if net >= 0 {
		inv.HitNum *= 3 + net
		inv.HitDen *= 3
	} else {
		inv.HitNum *= 3
		inv.HitDen *= 3 - net
	}
}
