package system

import (
	"math/rand"
	"time"

	"github.com/reefgo/server/internal/core/event"
	"github.com/reefgo/server/internal/data"
	"go.uber.org/zap"
)

// SpawnSystem seeds the reef from the spawn table. It lives in the
// Initialize phase, which the driver ticks exactly once; the seeded guard
// keeps a re-ticked Initialize group harmless anyway.
type SpawnSystem struct {
	deps   *Deps
	seeded bool
}

func NewSpawnSystem(deps *Deps) *SpawnSystem {
	return &SpawnSystem{deps: deps}
}

func (s *SpawnSystem) Name() string { return "boot.spawn" }

func (s *SpawnSystem) Update(_ time.Duration) {
	if s.seeded {
		return
	}
	s.seeded = true

	total := 0
	s.deps.Spawns.Each(func(entry data.SpawnEntry) {
		tpl, ok := s.deps.Species.Get(entry.SpeciesID)
		if !ok {
			s.deps.Log.Warn("spawn entry references unknown species",
				zap.Int32("species_id", entry.SpeciesID))
			return
		}
		for i := 0; i < entry.Count; i++ {
			x, y := scatter(entry.X, entry.Y, entry.Spread)
			e := s.deps.World.SpawnCreature(tpl.SpeciesID, tpl.Name, tpl.MaxEnergy, tpl.Lifespan, x, y)
			event.Emit(s.deps.Bus, event.CreatureSpawned{Entity: e, Species: tpl.Name})
			total++
		}
	})

	s.deps.Log.Info("reef seeded", zap.Int("creatures", total))
}

func scatter(x, y, spread int32) (int32, int32) {
	if spread <= 0 {
		return x, y
	}
	return x + rand.Int31n(spread*2+1) - spread,
		y + rand.Int31n(spread*2+1) - spread
}
