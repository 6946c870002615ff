package ecs

// Store is a typed map-backed component store. No reflect, no interface{} —
// pure generics. NewStore registers the store with the world so destroyed
// entities are cleared from it automatically.
type Store[T any] struct {
	data map[Entity]*T
}

func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{data: make(map[Entity]*T, 256)}
	w.register(s)
	return s
}

func (s *Store[T]) Set(e Entity, c *T) {
	s.data[e] = c
}

func (s *Store[T]) Get(e Entity) (*T, bool) {
	c, ok := s.data[e]
	return c, ok
}

func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.data[e]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

func (s *Store[T]) Each(fn func(Entity, *T)) {
	for e, c := range s.data {
		fn(e, c)
	}
}

func (s *Store[T]) remove(e Entity) {
	delete(s.data, e)
}

// Join iterates entities present in both stores, walking the smaller one.
func Join[A, B any](sa *Store[A], sb *Store[B], fn func(Entity, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for e, a := range sa.data {
			if b, ok := sb.data[e]; ok {
				fn(e, a, b)
			}
		}
		return
	}
	for e, b := range sb.data {
		if a, ok := sa.data[e]; ok {
			fn(e, a, b)
		}
	}
}
