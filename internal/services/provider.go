// Package services wires the engine's service layer together.
package services

import (
	"time"

	"github.com/mossfell/delve-rules/internal/core/hooks"
	"github.com/mossfell/delve-rules/internal/dice"
	"github.com/mossfell/delve-rules/internal/entities"
	"github.com/mossfell/delve-rules/internal/presenter"
	"github.com/mossfell/delve-rules/internal/rulebook"
	actionService "github.com/mossfell/delve-rules/internal/services/action"
	mapstatusService "github.com/mossfell/delve-rules/internal/services/mapstatus"
	statusService "github.com/mossfell/delve-rules/internal/services/status"
	"github.com/mossfell/delve-rules/internal/uuid"
)

// Provider holds all service instances plus the hook environment that
// binds them into contexts
type Provider struct {
	StatusService    statusService.Service
	MapStatusService mapstatusService.Service
	ActionService    actionService.Service
	Env              *hooks.Env
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Registry  *rulebook.Registry
	Floor     *entities.Floor
	Presenter presenter.Presenter
	Roller    dice.Roller
	IDs       uuid.Generator
}

// NewProvider creates a service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	registry := cfg.Registry
	if registry == nil {
		registry = rulebook.DefaultRegistry()
	}
	floor := cfg.Floor
	if floor == nil {
		floor = entities.NewFloor()
	}
	out := cfg.Presenter
	if out == nil {
		out = presenter.NewNull()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(time.Now().UnixNano())
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	statusSvc := statusService.NewService(&statusService.ServiceConfig{
		Registry: registry,
		IDs:      ids,
		Floor:    floor,
	})
	mapStatusSvc := mapstatusService.NewService(&mapstatusService.ServiceConfig{
		Registry: registry,
		IDs:      ids,
		Floor:    floor,
	})
	actionSvc := actionService.NewService(&actionService.ServiceConfig{
		Registry: registry,
		Floor:    floor,
	})

	return &Provider{
		StatusService:    statusSvc,
		MapStatusService: mapStatusSvc,
		ActionService:    actionSvc,
		Env: &hooks.Env{
			Presenter:   out,
			Roller:      roller,
			Entities:    floor,
			Statuses:    statusSvc,
			MapStatuses: mapStatusSvc,
			Defs:        registry,
		},
	}
}

// NewContext creates a hook context bound to the provider's environment
func (p *Provider) NewContext() *hooks.Context {
	return hooks.NewContext(p.Env)
}
