package world

import (
	"math/rand"

	"github.com/reefgo/server/internal/component"
	"github.com/reefgo/server/internal/core/ecs"
)

// State holds the in-memory reef: the ECS world, the component stores, and
// running population counters. Accessed only from the simulation loop
// goroutine — no locks needed.
type State struct {
	ECS       *ecs.World
	Positions *ecs.Store[component.Position]
	Vitals    *ecs.Store[component.Vitals]
	Species   *ecs.Store[component.SpeciesRef]

	Width  int32
	Height int32

	Tick   int64
	Births int64
	Deaths int64

	// Resting marks creatures that chose to rest this tick. Written by the
	// behavior system, read by metabolism, cleared every tick.
	Resting map[ecs.Entity]struct{}
}

func NewState(width, height int32) *State {
	w := ecs.NewWorld()
	return &State{
		ECS:       w,
		Positions: ecs.NewStore[component.Position](w),
		Vitals:    ecs.NewStore[component.Vitals](w),
		Species:   ecs.NewStore[component.SpeciesRef](w),
		Width:     width,
		Height:    height,
		Resting:   make(map[ecs.Entity]struct{}, 64),
	}
}

// SpawnCreature creates a fully-componented creature at the given spot.
func (s *State) SpawnCreature(speciesID int32, name string, maxEnergy int32, lifespan int, x, y int32) ecs.Entity {
	e := s.ECS.Spawn()
	s.Positions.Set(e, &component.Position{X: s.clampX(x), Y: s.clampY(y), Heading: int16(rand.Intn(8))})
	s.Vitals.Set(e, &component.Vitals{Energy: maxEnergy, MaxEnergy: maxEnergy, Lifespan: lifespan})
	s.Species.Set(e, &component.SpeciesRef{SpeciesID: speciesID, Name: name})
	s.Births++
	return e
}

// KillCreature queues a creature for end-of-tick destruction.
func (s *State) KillCreature(e ecs.Entity) {
	s.ECS.Despawn(e)
	s.Deaths++
}

func (s *State) Population() int {
	return s.Species.Len()
}

// EachCreature visits every creature that still has all three components.
func (s *State) EachCreature(fn func(ecs.Entity, *component.Position, *component.Vitals, *component.SpeciesRef)) {
	s.Species.Each(func(e ecs.Entity, ref *component.SpeciesRef) {
		pos, ok := s.Positions.Get(e)
		if !ok {
			return
		}
		vit, ok := s.Vitals.Get(e)
		if !ok {
			return
		}
		fn(e, pos, vit, ref)
	})
}

func (s *State) clampX(x int32) int32 {
	if x < 0 {
		return 0
	}
	if x >= s.Width {
		return s.Width - 1
	}
	return x
}

func (s *State) clampY(y int32) int32 {
	if y < 0 {
		return 0
	}
	if y >= s.Height {
		return s.Height - 1
	}
	return y
}

// Move clamps and applies a delta to a position.
func (s *State) Move(pos *component.Position, dx, dy int32) {
	pos.X = s.clampX(pos.X + dx)
	pos.Y = s.clampY(pos.Y + dy)
}
