package system

import (
	"context"
	"time"

	"github.com/reefgo/server/internal/component"
	"github.com/reefgo/server/internal/core/ecs"
	"github.com/reefgo/server/internal/persist"
	"go.uber.org/zap"
)

// SnapshotSystem persists a population snapshot every snapshot_every ticks.
// Hosts without a database run with a nil repo and the system is inert.
type SnapshotSystem struct {
	deps  *Deps
	every int64
}

func NewSnapshotSystem(deps *Deps) *SnapshotSystem {
	every := int64(deps.Sim.SnapshotEvery)
	if every <= 0 {
		every = 300
	}
	return &SnapshotSystem{deps: deps, every: every}
}

func (s *SnapshotSystem) Name() string { return "view.snapshot" }

func (s *SnapshotSystem) Update(_ time.Duration) {
	if s.deps.Snapshots == nil {
		return
	}
	ws := s.deps.World
	if ws.Tick == 0 || ws.Tick%s.every != 0 {
		return
	}

	bySpecies := make(map[int32]int, 8)
	ws.Species.Each(func(_ ecs.Entity, ref *component.SpeciesRef) {
		bySpecies[ref.SpeciesID]++
	})

	snap := persist.Snapshot{
		Tick:       ws.Tick,
		Population: ws.Population(),
		Births:     ws.Births,
		Deaths:     ws.Deaths,
		BySpecies:  bySpecies,
	}
	snap.Checksum = persist.SnapshotChecksum(snap)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.deps.Snapshots.Insert(ctx, snap); err != nil {
		s.deps.Log.Error("snapshot insert failed", zap.Int64("tick", ws.Tick), zap.Error(err))
		return
	}
	s.deps.Log.Debug("snapshot persisted", zap.Int64("tick", ws.Tick), zap.Int("population", snap.Population))
}
