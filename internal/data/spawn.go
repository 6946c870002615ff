package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry defines where and how many creatures to seed at startup.
type SpawnEntry struct {
	SpeciesID int32 `yaml:"species_id"`
	X         int32 `yaml:"x"`
	Y         int32 `yaml:"y"`
	Count     int   `yaml:"count"`
	Spread    int32 `yaml:"spread"` // random scatter radius around (x,y)
}

type spawnListFile struct {
	Spawns []SpawnEntry `yaml:"spawns"`
}

// SpawnTable holds the seed list in file order.
type SpawnTable struct {
	entries []SpawnEntry
}

// LoadSpawnTable reads spawn_list.yaml.
func LoadSpawnTable(path string) (*SpawnTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn list %s: %w", path, err)
	}
	var file spawnListFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse spawn list %s: %w", path, err)
	}
	for i, e := range file.Spawns {
		if e.SpeciesID == 0 || e.Count <= 0 {
			return nil, fmt.Errorf("spawn entry %d missing species_id or count", i)
		}
	}
	return &SpawnTable{entries: file.Spawns}, nil
}

func (t *SpawnTable) Count() int {
	return len(t.entries)
}

func (t *SpawnTable) Each(fn func(SpawnEntry)) {
	for _, e := range t.entries {
		fn(e)
	}
}
