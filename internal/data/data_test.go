package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpeciesTable(t *testing.T) {
	path := writeFile(t, "species_list.yaml", `
species:
  - species_id: 1
    name: urchin
    diet: grazer
    speed: 1
    max_energy: 120
    upkeep: 1
    lifespan: 900
  - species_id: 2
    name: reef_shark
    diet: predator
    speed: 3
    max_energy: 400
    upkeep: 4
    lifespan: 3000
    behavior: hunt
`)
	table, err := LoadSpeciesTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Count() != 2 {
		t.Fatalf("count = %d, want 2", table.Count())
	}
	shark, ok := table.Get(2)
	if !ok {
		t.Fatal("species 2 missing")
	}
	if shark.Name != "reef_shark" || shark.Speed != 3 || shark.Behavior != "hunt" {
		t.Fatalf("shark = %+v", shark)
	}
}

func TestLoadSpeciesTableRejectsDuplicates(t *testing.T) {
	path := writeFile(t, "species_list.yaml", `
species:
  - species_id: 1
    name: urchin
  - species_id: 1
    name: urchin_again
`)
	if _, err := LoadSpeciesTable(path); err == nil {
		t.Fatal("duplicate species_id accepted")
	}
}

func TestLoadSpawnTable(t *testing.T) {
	path := writeFile(t, "spawn_list.yaml", `
spawns:
  - species_id: 1
    x: 10
    y: 12
    count: 25
    spread: 4
  - species_id: 2
    x: 40
    y: 40
    count: 2
`)
	table, err := LoadSpawnTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Count() != 2 {
		t.Fatalf("count = %d, want 2", table.Count())
	}
	total := 0
	table.Each(func(e SpawnEntry) { total += e.Count })
	if total != 27 {
		t.Fatalf("total seeded = %d, want 27", total)
	}
}

func TestLoadSpawnTableRejectsZeroCount(t *testing.T) {
	path := writeFile(t, "spawn_list.yaml", `
spawns:
  - species_id: 1
    count: 0
`)
	if _, err := LoadSpawnTable(path); err == nil {
		t.Fatal("zero count accepted")
	}
}
