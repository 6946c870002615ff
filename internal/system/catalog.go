package system

import (
	"github.com/reefgo/server/internal/config"
	"github.com/reefgo/server/internal/core/event"
	coresys "github.com/reefgo/server/internal/core/system"
	"github.com/reefgo/server/internal/data"
	"github.com/reefgo/server/internal/persist"
	"github.com/reefgo/server/internal/scripting"
	"github.com/reefgo/server/internal/world"
	"go.uber.org/zap"
)

// Deps carries everything a system might need. Optional collaborators
// (Lua, Snapshots) may be nil; the systems that use them degrade to no-ops.
type Deps struct {
	Log       *zap.Logger
	World     *world.State
	Species   *data.SpeciesTable
	Spawns    *data.SpawnTable
	Lua       *scripting.Engine
	Snapshots *persist.SnapshotRepo
	Bus       *event.Bus
	Sim       config.SimulationConfig
}

// BuildCatalog registers every reef system. Registration order within a
// category is the order automatic inclusion places them, so sim.events
// comes first (buffer swap at tick start) and sim.cleanup last (deferred
// destruction at tick end).
func BuildCatalog(deps *Deps) (*coresys.Catalog, error) {
	c := coresys.NewCatalog()

	all := []coresys.Descriptor{
		{
			Name:     "boot.spawn",
			Category: coresys.CategoryBoot,
			Kind:     coresys.Managed,
			Phase:    coresys.PhaseInitialize,
			New:      func() coresys.System { return NewSpawnSystem(deps) },
		},
		{
			Name:     "sim.events",
			Category: coresys.CategorySim,
			Kind:     coresys.Unmanaged,
			Phase:    coresys.PhaseSimulate,
			Run:      tickEvents(deps),
		},
		{
			Name:     "sim.wander",
			Category: coresys.CategorySim,
			Kind:     coresys.Unmanaged,
			Phase:    coresys.PhaseSimulate,
			Run:      tickWander(deps),
		},
		{
			Name:     "sim.behavior",
			Category: coresys.CategorySim,
			Kind:     coresys.Managed,
			Phase:    coresys.PhaseSimulate,
			New:      func() coresys.System { return NewBehaviorSystem(deps) },
		},
		{
			Name:     "sim.metabolism",
			Category: coresys.CategorySim,
			Kind:     coresys.Managed,
			Phase:    coresys.PhaseSimulate,
			New:      func() coresys.System { return NewMetabolismSystem(deps) },
		},
		{
			Name:     "sim.cleanup",
			Category: coresys.CategorySim,
			Kind:     coresys.Unmanaged,
			Phase:    coresys.PhaseSimulate,
			Run:      tickCleanup(deps),
		},
		{
			Name:     "view.stats",
			Category: coresys.CategoryView,
			Kind:     coresys.Unmanaged,
			Phase:    coresys.PhasePresent,
			Run:      tickStats(deps),
		},
		{
			Name:     "view.snapshot",
			Category: coresys.CategoryView,
			Kind:     coresys.Managed,
			Phase:    coresys.PhasePresent,
			New:      func() coresys.System { return NewSnapshotSystem(deps) },
		},
	}

	for _, d := range all {
		if err := c.Register(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}
