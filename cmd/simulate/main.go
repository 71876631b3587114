package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mossfell/delve-rules/internal/config"
	"github.com/mossfell/delve-rules/internal/core/tasks"
	"github.com/mossfell/delve-rules/internal/dice"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/presenter"
	"github.com/mossfell/delve-rules/internal/repositories/snapshots"
	"github.com/mossfell/delve-rules/internal/rulebook"
	"github.com/mossfell/delve-rules/internal/services"
)

// consolePresenter prints message keys straight to the log; a real game
// client would look the keys up in a localization table
type consolePresenter struct{}

func (p *consolePresenter) PlayAnimation(targetID, animation string) {
	log.Printf("[ANIM] %s on %s", animation, targetID)
}

func (p *consolePresenter) PlaySound(name string) {
	log.Printf("[SOUND] %s", name)
}

func (p *consolePresenter) Log(key string, args ...any) {
	log.Printf("[MSG] %s %v", key, args)
}

func (p *consolePresenter) WaitFrames(frames int) {}

var _ presenter.Presenter = (*consolePresenter)(nil)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Simulation seed %d, %d turns", cfg.Sim.Seed, cfg.Sim.Turns)

	registry := rulebook.DefaultRegistry()
	floor := entities.NewFloor()

	hero := entities.NewCharacter("hero", "Emberling")
	hero.Level = 12
	hero.MaxHP, hero.HP = 90, 90
	hero.Elements = []entities.Element{entities.ElementFire}
	hero.Faction = entities.FactionPlayer
	hero.HeldItem = entities.NewItem("band-1", rulebook.ItemPowerBand)
	ember, err := registry.InstantiateSkill(rulebook.SkillEmber, "hero-ember")
	if err != nil {
		log.Fatalf("Failed to build skill: %v", err)
	}
	hero.Skills = append(hero.Skills, ember)

	foe := entities.NewCharacter("foe", "Thornling")
	foe.Level = 12
	foe.MaxHP, foe.HP = 110, 110
	foe.Elements = []entities.Element{entities.ElementGrass}
	foe.Faction = entities.FactionEnemy
	tackle, err := registry.InstantiateSkill(rulebook.SkillTackle, "foe-tackle")
	if err != nil {
		log.Fatalf("Failed to build skill: %v", err)
	}
	foe.Skills = append(foe.Skills, tackle)

	floor.Characters = append(floor.Characters, hero, foe)

	provider := services.NewProvider(&services.ProviderConfig{
		Registry:  registry,
		Floor:     floor,
		Presenter: &consolePresenter{},
		Roller:    dice.NewRandomRoller(cfg.Sim.Seed),
	})

	ctx := provider.NewContext()
	if err := provider.MapStatusService.AddMapStatus(ctx, rulebook.MapStatusSandstorm, 0); err != nil {
		log.Fatalf("Failed to start weather: %v", err)
	}

	// Each turn runs as a resumable sequence: action phases wait a few
	// simulated frames for their animations before the next phase runs
	scheduler := tasks.NewScheduler()
	act := func(user *entities.Character) tasks.Step {
		return func() tasks.Wait {
			if user.IsFainted() {
				return tasks.Continue()
			}
			foes := floor.Opponents(user)
			if len(foes) == 0 || foes[0].IsFainted() {
				return tasks.Continue()
			}
			target := foes[0]
			result, err := provider.ActionService.ResolveSkill(provider.NewContext(), user, target, user.Skills[0])
			if err != nil {
				log.Fatalf("Action failed: %v", err)
			}
			if result.Hit {
				log.Printf("%s: %d HP left", target.Name, target.HP)
			}
			return tasks.Frames(20)
		}
	}
	endPhase := func() tasks.Wait {
		for _, c := range floor.Characters {
			if err := provider.StatusService.TickTurn(provider.NewContext(), c); err != nil {
				log.Fatalf("Turn tick failed: %v", err)
			}
		}
		if err := provider.MapStatusService.TickTurn(provider.NewContext()); err != nil {
			log.Fatalf("Map tick failed: %v", err)
		}
		return tasks.Done()
	}

	for turn := 1; turn <= cfg.Sim.Turns; turn++ {
		log.Printf("=== turn %d ===", turn)
		seq := tasks.NewSeq(act(hero), act(foe), endPhase)
		scheduler.Start(seq)
		for !seq.Done() {
			scheduler.Tick(10)
		}
		if hero.IsFainted() || foe.IsFainted() {
			break
		}
	}

	// Persist the run's end state so a save layer could resume it
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}()

	background := context.Background()
	if err := client.Ping(background).Err(); err != nil {
		log.Printf("Redis unavailable, skipping snapshots: %v", err)
		return
	}

	repo := snapshots.NewRedisRepository(&snapshots.RedisRepoConfig{Client: client})
	var batch []*snapshots.CharacterSnapshot
	for _, c := range floor.Characters {
		snapshot, err := snapshots.Capture(c)
		if err != nil {
			log.Fatalf("Failed to capture %s: %v", c.ID, err)
		}
		batch = append(batch, snapshot)
	}
	if err := repo.SaveAll(background, batch); err != nil {
		log.Fatalf("Failed to save snapshots: %v", err)
	}
	log.Printf("Saved %d snapshots", len(batch))
}
