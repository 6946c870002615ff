package ecs

// Entity encodes a 32-bit index in the lower bits and a 32-bit generation in
// the upper bits. The generation increments on destroy so stale references
// never resolve.
type Entity uint64

func makeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

func (e Entity) Index() uint32      { return uint32(e) }
func (e Entity) Generation() uint32 { return uint32(e >> 32) }
func (e Entity) IsZero() bool       { return e == 0 }

// remover is implemented by every component store so the world can clear an
// entity's data from all of them on destroy.
type remover interface {
	remove(e Entity)
}

// World owns entity allocation, the registered component stores, and a
// deferred destruction queue flushed at tick end by the cleanup system.
// Single-goroutine access only (the simulation loop).
type World struct {
	generations  []uint32
	freeList     []uint32
	nextIndex    uint32
	stores       []remover
	destroyQueue []Entity
}

func NewWorld() *World {
	return &World{
		generations:  make([]uint32, 0, 1024),
		freeList:     make([]uint32, 0, 256),
		stores:       make([]remover, 0, 8),
		destroyQueue: make([]Entity, 0, 64),
	}
}

// Spawn allocates an entity, reusing freed indices with bumped generations.
func (w *World) Spawn() Entity {
	if n := len(w.freeList); n > 0 {
		idx := w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		return makeEntity(idx, w.generations[idx])
	}
	idx := w.nextIndex
	w.nextIndex++
	if int(idx) >= len(w.generations) {
		w.generations = append(w.generations, 0)
	}
	return makeEntity(idx, w.generations[idx])
}

func (w *World) Alive(e Entity) bool {
	idx := e.Index()
	if idx >= w.nextIndex {
		return false
	}
	return w.generations[idx] == e.Generation()
}

// Despawn queues an entity for end-of-tick destruction.
func (w *World) Despawn(e Entity) {
	w.destroyQueue = append(w.destroyQueue, e)
}

// Flush destroys all queued entities and clears their components from every
// registered store.
func (w *World) Flush() {
	for _, e := range w.destroyQueue {
		w.destroy(e)
	}
	w.destroyQueue = w.destroyQueue[:0]
}

func (w *World) destroy(e Entity) {
	idx := e.Index()
	if idx >= w.nextIndex || w.generations[idx] != e.Generation() {
		return // stale reference, already destroyed
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	w.generations[idx]++
	w.freeList = append(w.freeList, idx)
}

func (w *World) register(s remover) {
	w.stores = append(w.stores, s)
}
