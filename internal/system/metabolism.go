package system

import (
	"time"

	"github.com/reefgo/server/internal/component"
	"github.com/reefgo/server/internal/core/ecs"
	"github.com/reefgo/server/internal/core/event"
	"go.uber.org/zap"
)

// MetabolismSystem ages creatures and drains upkeep energy. Starved or
// expired creatures are queued for destruction (sim.cleanup flushes the
// queue at tick end) and their death is announced on the bus.
type MetabolismSystem struct {
	deps *Deps
}

func NewMetabolismSystem(deps *Deps) *MetabolismSystem {
	return &MetabolismSystem{deps: deps}
}

func (s *MetabolismSystem) Name() string { return "sim.metabolism" }

func (s *MetabolismSystem) Update(_ time.Duration) {
	ws := s.deps.World
	ws.EachCreature(func(e ecs.Entity, _ *component.Position, vit *component.Vitals, ref *component.SpeciesRef) {
		tpl, ok := s.deps.Species.Get(ref.SpeciesID)
		if !ok {
			return
		}

		vit.Age++
		upkeep := tpl.Upkeep
		if _, resting := ws.Resting[e]; resting {
			upkeep /= 2
		}
		vit.Energy -= upkeep

		var cause string
		switch {
		case vit.Energy <= 0:
			cause = "starved"
		case vit.Lifespan > 0 && vit.Age >= vit.Lifespan:
			cause = "old_age"
		default:
			return
		}

		ws.KillCreature(e)
		event.Emit(s.deps.Bus, event.CreatureDied{
			Entity:  e,
			Species: ref.Name,
			Age:     vit.Age,
			Cause:   cause,
		})
		s.deps.Log.Debug("creature died",
			zap.String("species", ref.Name),
			zap.String("cause", cause),
			zap.Int("age", vit.Age))
	})
}
