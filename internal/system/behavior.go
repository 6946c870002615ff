package system

import (
	"time"

	"github.com/reefgo/server/internal/component"
	"github.com/reefgo/server/internal/core/ecs"
	"github.com/reefgo/server/internal/scripting"
)

// BehaviorSystem steers scripted species through their Lua hooks. Species
// without a hook (or hosts without a scripting engine) are left to
// sim.wander. A resting decision marks the creature in world state so
// metabolism charges reduced upkeep this tick.
type BehaviorSystem struct {
	deps *Deps
}

func NewBehaviorSystem(deps *Deps) *BehaviorSystem {
	return &BehaviorSystem{deps: deps}
}

func (s *BehaviorSystem) Name() string { return "sim.behavior" }

func (s *BehaviorSystem) Update(_ time.Duration) {
	ws := s.deps.World
	clear(ws.Resting)
	if s.deps.Lua == nil {
		return
	}

	ws.EachCreature(func(e ecs.Entity, pos *component.Position, vit *component.Vitals, ref *component.SpeciesRef) {
		tpl, ok := s.deps.Species.Get(ref.SpeciesID)
		if !ok || tpl.Behavior == "" {
			return
		}
		dec := s.deps.Lua.Decide(tpl.Behavior, scripting.BehaviorContext{
			X:          int(pos.X),
			Y:          int(pos.Y),
			Energy:     int(vit.Energy),
			MaxEnergy:  int(vit.MaxEnergy),
			Age:        vit.Age,
			Population: ws.Population(),
			Tick:       ws.Tick,
		})
		if dec.Rest {
			ws.Resting[e] = struct{}{}
			return
		}
		dx, dy := clampStep(dec.DX, tpl.Speed), clampStep(dec.DY, tpl.Speed)
		ws.Move(pos, dx, dy)
	})
}

// clampStep limits a scripted move to the species' speed.
func clampStep(d int, speed int32) int32 {
	v := int32(d)
	if v > speed {
		return speed
	}
	if v < -speed {
		return -speed
	}
	return v
}
