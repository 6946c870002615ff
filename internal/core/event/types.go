package event

import "github.com/reefgo/server/internal/core/ecs"

// Ecology event types.

type CreatureSpawned struct {
	Entity  ecs.Entity
	Species string
}

type CreatureDied struct {
	Entity  ecs.Entity
	Species string
	Age     int
	Cause   string // "starved" or "old_age"
}
