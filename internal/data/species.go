package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpeciesTemplate holds static data for one species loaded from YAML.
type SpeciesTemplate struct {
	SpeciesID int32  `yaml:"species_id"`
	Name      string `yaml:"name"`
	Diet      string `yaml:"diet"`       // grazer, predator, scavenger
	Speed     int32  `yaml:"speed"`
	MaxEnergy int32  `yaml:"max_energy"`
	Upkeep    int32  `yaml:"upkeep"`     // energy drained per tick
	Lifespan  int    `yaml:"lifespan"`   // ticks
	Behavior  string `yaml:"behavior"`   // lua hook name, empty = none
}

type speciesListFile struct {
	Species []SpeciesTemplate `yaml:"species"`
}

// SpeciesTable holds all species templates indexed by SpeciesID.
type SpeciesTable struct {
	byID map[int32]*SpeciesTemplate
}

// LoadSpeciesTable reads species_list.yaml.
func LoadSpeciesTable(path string) (*SpeciesTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read species list %s: %w", path, err)
	}
	var file speciesListFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse species list %s: %w", path, err)
	}

	t := &SpeciesTable{byID: make(map[int32]*SpeciesTemplate, len(file.Species))}
	for i := range file.Species {
		tpl := &file.Species[i]
		if tpl.SpeciesID == 0 || tpl.Name == "" {
			return nil, fmt.Errorf("species entry %d missing id or name", i)
		}
		if _, dup := t.byID[tpl.SpeciesID]; dup {
			return nil, fmt.Errorf("duplicate species_id %d", tpl.SpeciesID)
		}
		t.byID[tpl.SpeciesID] = tpl
	}
	return t, nil
}

func (t *SpeciesTable) Get(id int32) (*SpeciesTemplate, bool) {
	tpl, ok := t.byID[id]
	return tpl, ok
}

func (t *SpeciesTable) Count() int {
	return len(t.byID)
}

func (t *SpeciesTable) Each(fn func(*SpeciesTemplate)) {
	for _, tpl := range t.byID {
		fn(tpl)
	}
}
