package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed data/entities.yaml
var entitiesYAML []byte

// EntityListEntry is one row of spec.md §6's entity-list table.
type EntityListEntry struct {
	ID                int32
	Name              string
	SpawnEggPrimary   int32
	SpawnEggSecondary int32
	HasSpawnEgg       bool
}

type entityYAMLEntry struct {
	ID                int32 `yaml:"id"`
	Name              string `yaml:"name"`
	SpawnEggPrimary   *int32 `yaml:"spawnEggPrimary"`
	SpawnEggSecondary *int32 `yaml:"spawnEggSecondary"`
}

var entitiesByID = map[int32]EntityListEntry{}

func init() {
	var entries []entityYAMLEntry
	if err := yaml.Unmarshal(entitiesYAML, &entries); err != nil {
		panic(fmt.Sprintf("data: decode entity list: %v", err))
	}
	for _, e := range entries {
		entry := EntityListEntry{ID: e.ID, Name: e.Name}
		if e.SpawnEggPrimary != nil {
			entry.HasSpawnEgg = true
			entry.SpawnEggPrimary = *e.SpawnEggPrimary
			if e.SpawnEggSecondary != nil {
				entry.SpawnEggSecondary = *e.SpawnEggSecondary
			}
		}
		entitiesByID[e.ID] = entry
	}
}

// EntityListEntryByID returns the registered entry for id and whether it
// exists.
func EntityListEntryByID(id int32) (EntityListEntry, bool) {
	e, ok := entitiesByID[id]
	return e, ok
}
