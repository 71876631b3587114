package rulebook

import (
	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/core/state"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/matchup"
	"github.com/mossfell/delve-rules/internal/rules"
)

// Definition IDs used by the stock catalogue
const (
	StatusBurn      = "burn"
	StatusSleep     = "sleep"
	StatusParalysis = "paralysis"
	StatusPoison    = "poison"
	StatusRegen     = "regen"
	StatusReflect   = "reflect"
	StatusDoomCount = "doom_count"
	StatusAttackUp  = "attack_up"
	StatusFrozen    = "frozen"

	AbilityNormalizer   = "normalizer"
	AbilityVoltAbsorb   = "volt_absorb"
	AbilityStoneWall    = "stone_wall"
	AbilityScrounger    = "scrounger"
	AbilityCloudPiercer = "cloud_piercer"

	ItemPowerBand    = "power_band"
	ItemWardCharm    = "ward_charm"
	ItemScopeLens    = "scope_lens"
	ItemAlertOrb     = "alert_orb"
	ItemDriftFeather = "drift_feather"

	SkillEmber     = "ember"
	SkillTackle    = "tackle"
	SkillBubble    = "bubble"
	SkillSwiftStar = "swift_star"
	SkillToxicJab  = "toxic_jab"
	SkillDoomChant = "doom_chant"

	MapStatusSandstorm = "sandstorm"
	MapStatusRain      = "rain"
)

// DefaultRegistry builds the stock catalogue: the statuses, abilities,
// items, skills, map statuses and terrains the engine ships with. Game
// content adds its own definitions on top through the same Add methods.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Burn chips the carrier each turn and is thawed out of the carrier
	// by water hits
	r.AddStatus(&StatusDef{
		ID:            StatusBurn,
		Name:          "Burn",
		Bad:           true,
		BaseCountdown: 6,
		Hooks: NewHookSet().
			Add(hooks.OnStatusAdds, hooks.PriorityReport, &rules.StatusAppliedReporter{
				MessageKey: "status.burn.applied",
				Animation:  "burn_flare",
			}).
			Add(hooks.OnTurnEnds, hooks.PriorityBaseline, &rules.ResidualDamage{
				Num: 1, Den: 12, MessageKey: "status.burn.damage", Animation: "burn_tick",
			}).
			Add(hooks.AfterHittings, hooks.PriorityBaseline, &rules.CureOnElementHit{
				Element: entities.ElementWater, MessageKey: "status.burn.doused",
			}).
			Add(hooks.OnStatusRemoves, hooks.PriorityReport, &rules.StatusRemovedReporter{
				MessageKey: "status.burn.healed",
			}),
	})

	// Sleep skips the carrier's actions outright until it wears off
	r.AddStatus(&StatusDef{
		ID:            StatusSleep,
		Name:          "Sleep",
		Bad:           true,
		BaseCountdown: 4,
		Hooks: NewHookSet().
			Add(hooks.OnActionStarts, hooks.PriorityGate, &rules.SkipTurnGate{
				MessageKey: "status.sleep.asleep",
			}).
			Add(hooks.OnStatusAdds, hooks.PriorityReport, &rules.StatusAppliedReporter{
				MessageKey: "status.sleep.applied",
			}).
			Add(hooks.OnStatusRemoves, hooks.PriorityReport, &rules.StatusRemovedReporter{
				MessageKey: "status.sleep.woke",
			}),
	})

	// Paralysis blocks actions one turn in four
	r.AddStatus(&StatusDef{
		ID:   StatusParalysis,
		Name: "Paralysis",
		Bad:  true,
		Hooks: NewHookSet().
			Add(hooks.OnActionStarts, hooks.PriorityGate, &rules.ChanceGate{
				Num: 1, Den: 4, MessageKey: "status.paralysis.seized",
			}).
			Add(hooks.OnStatusAdds, hooks.PriorityReport, &rules.StatusAppliedReporter{
				MessageKey: "status.paralysis.applied",
			}),
	})

	// Poison stacks: each reapplication deepens the chip damage stage
	r.AddStatus(&StatusDef{
		ID:       StatusPoison,
		Name:     "Poison",
		Bad:      true,
		MinStack: 1,
		MaxStack: 3,
		Hooks: NewHookSet().
			Add(hooks.OnStatusAdds, hooks.PriorityReport, &rules.StatusAppliedReporter{
				MessageKey: "status.poison.applied",
			}).
			Add(hooks.OnTurnEnds, hooks.PriorityBaseline, &rules.ResidualDamage{
				Num: 1, Den: 10, MessageKey: "status.poison.damage",
			}).
			Add(hooks.OnStatusRemoves, hooks.PriorityReport, &rules.StatusRemovedReporter{
				MessageKey: "status.poison.healed",
			}),
	})

	// Regen restores a little HP each turn
	r.AddStatus(&StatusDef{
		ID:            StatusRegen,
		Name:          "Regen",
		BaseCountdown: 8,
		Hooks: NewHookSet().
			Add(hooks.OnTurnEnds, hooks.PriorityBaseline, &rules.ResidualHeal{
				Num: 1, Den: 16, MessageKey: "status.regen.heal",
			}),
	})

	// Reflect halves incoming hit damage while it lasts
	r.AddStatus(&StatusDef{
		ID:            StatusReflect,
		Name:          "Reflect",
		BaseCountdown: 5,
		Hooks: NewHookSet().
			Add(hooks.BeforeHittings, hooks.PriorityAdjust, &rules.DamageScale{
				Num: 1, Den: 2,
			}).
			Add(hooks.OnStatusAdds, hooks.PriorityReport, &rules.StatusAppliedReporter{
				MessageKey: "status.reflect.applied",
			}).
			Add(hooks.OnStatusRemoves, hooks.PriorityReport, &rules.StatusRemovedReporter{
				MessageKey: "status.reflect.faded",
			}),
	})

	// The doom count knocks the carrier out when it reaches zero. The
	// status is removed before the fatal effect resolves.
	r.AddStatus(&StatusDef{
		ID:            StatusDoomCount,
		Name:          "Doom Count",
		Bad:           true,
		BaseCountdown: 3,
		FatalOnExpiry: true,
		Linked:        true,
		Hooks: NewHookSet().
			Add(hooks.OnStatusAdds, hooks.PriorityReport, &rules.StatusAppliedReporter{
				MessageKey: "status.doom.applied",
			}).
			Add(hooks.OnTurnEnds, hooks.PriorityReport, &rules.PerishReporter{
				MessageKey: "status.doom.count",
			}),
	})

	// Attack Up carries the boost magnitude in its stack
	r.AddStatus(&StatusDef{
		ID:       StatusAttackUp,
		Name:     "Attack Up",
		MinStack: -6,
		MaxStack: 6,
		Hooks: NewHookSet().
			Add(hooks.BeforeHittings, hooks.PriorityBaseline, &rules.DamageScale{
				Num: 4, Den: 3,
			}),
	})

	// Frozen skips turns and is cured by fire hits
	r.AddStatus(&StatusDef{
		ID:            StatusFrozen,
		Name:          "Frozen",
		Bad:           true,
		BaseCountdown: 5,
		Hooks: NewHookSet().
			Add(hooks.OnActionStarts, hooks.PriorityGate, &rules.SkipTurnGate{
				MessageKey: "status.frozen.solid",
			}).
			Add(hooks.AfterHittings, hooks.PriorityBaseline, &rules.CureOnElementHit{
				Element: entities.ElementFire, MessageKey: "status.frozen.thawed",
			}).
			Add(hooks.OnStatusRemoves, hooks.PriorityReport, &rules.StatusRemovedReporter{
				MessageKey: "status.frozen.melted",
			}),
	})

	// Abilities

	r.AddAbility(&AbilityDef{
		ID:   AbilityNormalizer,
		Name: "Normalizer",
		Hooks: NewHookSet().
			Add(hooks.UserElementEffects, hooks.PriorityBaseline, &rules.NormalizeMatchup{}),
	})

	r.AddAbility(&AbilityDef{
		ID:   AbilityVoltAbsorb,
		Name: "Volt Absorb",
		Hooks: NewHookSet().
			Add(hooks.BeforeHittings, hooks.PriorityGate, &rules.ElementAbsorb{
				Element: entities.ElementElectric,
				HealNum: 1, HealDen: 4,
				MessageKey: "ability.volt_absorb.drank",
			}),
	})

	r.AddAbility(&AbilityDef{
		ID:   AbilityStoneWall,
		Name: "Stone Wall",
		Hooks: NewHookSet().
			Add(hooks.OnStatStageChanges, hooks.PriorityGate, &rules.BlockStatDrop{
				MessageKey: "ability.stone_wall.held",
			}),
	})

	// Scrounger borrows allies' shareable held items on the hit path
	scrounger := NewHookSet()
	for _, hook := range []hooks.Hook{hooks.BeforeHittings, hooks.AfterHittings, hooks.UserElementEffects} {
		scrounger.Add(hook, hooks.PriorityBaseline, &rules.SharedItemHandler{Hook: hook})
	}
	r.AddAbility(&AbilityDef{
		ID:    AbilityScrounger,
		Name:  "Scrounger",
		Hooks: scrounger,
	})

	r.AddAbility(&AbilityDef{
		ID:   AbilityCloudPiercer,
		Name: "Cloud Piercer",
		Hooks: NewHookSet().
			Add(hooks.UserElementEffects, hooks.PriorityBaseline, &rules.PierceImmunity{}),
	})

	// Items

	// Shareable: a single baseline damage booster
	r.AddItem(&ItemDef{
		ID:   ItemPowerBand,
		Name: "Power Band",
		Hooks: NewHookSet().
			Add(hooks.BeforeHittings, hooks.PriorityBaseline, &rules.DamageScale{
				Num: 11, Den: 10,
			}),
	})

	// Not shareable: its gate runs off baseline
	r.AddItem(&ItemDef{
		ID:   ItemWardCharm,
		Name: "Ward Charm",
		Hooks: NewHookSet().
			Add(hooks.BeforeStatusAdds, hooks.PriorityGate, &rules.BlockBadStatusAdds{
				MessageKey: "item.ward_charm.warded",
			}),
	})

	// Shareable accuracy booster
	r.AddItem(&ItemDef{
		ID:   ItemScopeLens,
		Name: "Scope Lens",
		Hooks: NewHookSet().
			Add(hooks.BeforeHittings, hooks.PriorityBaseline, &rules.AccuracyScale{
				Num: 6, Den: 5,
			}),
	})

	// Not shareable: proximity-triggered
	r.AddItem(&ItemDef{
		ID:   ItemAlertOrb,
		Name: "Alert Orb",
		Hooks: NewHookSet().
			Add(hooks.OnProximities, hooks.PriorityBaseline, &rules.StatusAppliedReporter{
				MessageKey: "item.alert_orb.chimed",
			}),
	})

	r.AddItem(&ItemDef{
		ID:   ItemDriftFeather,
		Name: "Drift Feather",
		Hooks: NewHookSet().
			Add(hooks.OnTraverseChecks, hooks.PriorityBaseline, &rules.TerrainWalker{
				Terrain: entities.TerrainWater,
			}),
	})

	// Skills

	r.AddSkill(&SkillDef{
		ID:      SkillEmber,
		Name:    "Ember",
		Element: entities.ElementFire,
		Power:   12,
		HitNum:  9, HitDen: 10,
		BasePP: 20,
		Hooks: NewHookSet().
			Add(hooks.AfterHittings, hooks.PriorityBaseline, &rules.ContactInfection{
				StatusDefID: StatusBurn, Num: 1, Den: 10,
			}),
	})

	r.AddSkill(&SkillDef{
		ID:      SkillTackle,
		Name:    "Tackle",
		Element: entities.ElementNormal,
		Power:   10,
		HitNum:  19, HitDen: 20,
		BasePP: 30,
		Hooks:  NewHookSet(),
	})

	r.AddSkill(&SkillDef{
		ID:      SkillBubble,
		Name:    "Bubble",
		Element: entities.ElementWater,
		Power:   11,
		HitNum:  9, HitDen: 10,
		BasePP: 25,
		Hooks:  NewHookSet(),
	})

	// Swift Star never misses and ignores compensation fractions
	r.AddSkill(&SkillDef{
		ID:      SkillSwiftStar,
		Name:    "Swift Star",
		Element: entities.ElementNormal,
		Power:   9,
		HitNum:  1, HitDen: 1,
		Unmissable: true,
		BasePP:     20,
		Hooks:      NewHookSet(),
	})

	r.AddSkill(&SkillDef{
		ID:      SkillToxicJab,
		Name:    "Toxic Jab",
		Element: entities.ElementGrass,
		Power:   13,
		HitNum:  4, HitDen: 5,
		BasePP: 15,
		Hooks: NewHookSet().
			Add(hooks.AfterHittings, hooks.PriorityBaseline, &rules.ContactInfection{
				StatusDefID: StatusPoison, Num: 3, Den: 10,
			}),
	})

	r.AddSkill(&SkillDef{
		ID:      SkillDoomChant,
		Name:    "Doom Chant",
		Element: entities.ElementGhost,
		Power:   0,
		HitNum:  1, HitDen: 1,
		Unmissable: true,
		BasePP:     5,
		Hooks: NewHookSet().
			Add(hooks.AfterHittings, hooks.PriorityBaseline, &rules.ContactInfection{
				StatusDefID: StatusDoomCount, Num: 1, Den: 1,
			}),
	})

	// Map statuses

	r.AddMapStatus(&MapStatusDef{
		ID:            MapStatusSandstorm,
		Name:          "Sandstorm",
		BaseCountdown: 8,
		Hooks: NewHookSet().
			Add(hooks.OnMapStatusAdds, hooks.PriorityReport, &rules.MapStatusReporter{
				MessageKey: "weather.sandstorm.rose", Sound: "wind_howl",
			}).
			Add(hooks.OnMapTurnEnds, hooks.PriorityBaseline, &rules.WeatherChipDamage{
				Num: 1, Den: 16,
				ExemptElements: []entities.Element{
					entities.ElementRock,
					entities.ElementGround,
					entities.ElementSteel,
				},
				MessageKey: "weather.sandstorm.buffeted",
			}).
			Add(hooks.OnMapStatusRemoves, hooks.PriorityReport, &rules.MapStatusReporter{
				MessageKey: "weather.sandstorm.settled",
			}),
	})

	r.AddMapStatus(&MapStatusDef{
		ID:            MapStatusRain,
		Name:          "Rain",
		BaseCountdown: 8,
		Hooks: NewHookSet().
			Add(hooks.OnMapStatusAdds, hooks.PriorityReport, &rules.MapStatusReporter{
				MessageKey: "weather.rain.started",
			}).
			Add(hooks.BeforeHittings, hooks.PriorityAdjust, &rules.WeatherDamageScale{
				Element: entities.ElementFire, Num: 1, Den: 2,
			}).
			Add(hooks.BeforeHittings, hooks.PriorityAdjust, &rules.WeatherDamageScale{
				Element: entities.ElementWater, Num: 3, Den: 2,
			}).
			Add(hooks.OnMapStatusRemoves, hooks.PriorityReport, &rules.MapStatusReporter{
				MessageKey: "weather.rain.stopped",
			}),
	})

	// Terrains: traversal is closed until something grants it. Ground
	// grants itself; water and lava need a walker on the character side;
	// walls grant nothing and the universal walker refuses them too.
	r.AddTerrain(&TerrainDef{Terrain: entities.TerrainGround, Hooks: NewHookSet().
		Add(hooks.OnTraverseChecks, hooks.PriorityBaseline, &rules.TerrainWalker{
			Terrain: entities.TerrainGround,
		})})
	r.AddTerrain(&TerrainDef{Terrain: entities.TerrainWater, Hooks: NewHookSet()})
	r.AddTerrain(&TerrainDef{Terrain: entities.TerrainLava, Hooks: NewHookSet()})
	r.AddTerrain(&TerrainDef{Terrain: entities.TerrainWall, Hooks: NewHookSet()})

	return r
}

// RegisterStates adds every state kind the stock catalogue and engine use
// to a codec registry, so snapshots round-trip
func RegisterStates(registry *state.Registry) error {
	if err := entities.RegisterStates(registry); err != nil {
		return err
	}
	factories := map[string]func() state.State{
		"context.pending_status": func() state.State { return &rules.PendingStatusState{} },
		"context.sync_override":  func() state.State { return &rules.SyncOverrideState{} },
		"context.crit":           func() state.State { return &rules.CritState{} },
		"context.follow_up":      func() state.State { return &rules.FollowUpState{} },
		"context.fraction":       func() state.State { return &rules.FractionState{} },
		"context.traverse":       func() state.State { return &rules.TraverseState{} },
		"context.matchup":        func() state.State { return &matchup.PipelineState{} },
	}
	for kind, factory := range factories {
		if err := registry.Register(kind, factory); err != nil {
			return err
		}
	}
	return nil
}
