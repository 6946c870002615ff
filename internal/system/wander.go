package system

import (
	"math/rand"
	"time"

	"github.com/reefgo/server/internal/component"
	"github.com/reefgo/server/internal/core/ecs"
)

// headingDelta maps a heading (0-7, clockwise from north) to a unit step.
var headingDelta = [8][2]int32{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// tickWander drifts every creature along its heading at species speed,
// occasionally turning. Creatures whose species defines a behavior hook are
// steered by sim.behavior instead; wander only moves the rest.
func tickWander(deps *Deps) func(time.Duration) {
	return func(_ time.Duration) {
		ws := deps.World
		ecs.Join(ws.Positions, ws.Species, func(e ecs.Entity, pos *component.Position, ref *component.SpeciesRef) {
			tpl, ok := deps.Species.Get(ref.SpeciesID)
			if !ok || tpl.Behavior != "" {
				return
			}
			if rand.Intn(8) == 0 {
				pos.Heading = int16(rand.Intn(8))
			}
			d := headingDelta[pos.Heading&7]
			ws.Move(pos, d[0]*tpl.Speed, d[1]*tpl.Speed)
		})
	}
}
