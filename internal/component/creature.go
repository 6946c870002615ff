package component

// Position is a creature's location on the reef grid.
type Position struct {
	X       int32
	Y       int32
	Heading int16 // 0-7, clockwise from north
}

// Vitals stores a creature's life state.
// Pure data, zero methods — all mutations happen in System functions.
type Vitals struct {
	Energy    int32
	MaxEnergy int32
	Age       int // ticks lived
	Lifespan  int // ticks until old age
}

// SpeciesRef links an entity to its species template by ID.
// The template itself lives in the data tables.
type SpeciesRef struct {
	SpeciesID int32
	Name      string
}
