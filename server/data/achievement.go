package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed data/achievements.yaml
var achievementsYAML []byte

// Achievement is one entry of spec.md §6's achievement table: a name and
// its parent (empty for the root, "openInventory").
type Achievement struct {
	Name   string
	Parent string
}

type achievementYAMLEntry struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`
}

var achievementsByName = map[string]Achievement{}

func init() {
	var entries []achievementYAMLEntry
	if err := yaml.Unmarshal(achievementsYAML, &entries); err != nil {
		panic(fmt.Sprintf("data: decode achievement table: %v", err))
	}
	for _, e := range entries {
		achievementsByName[e.Name] = Achievement{Name: e.Name, Parent: e.Parent}
	}
}

// AchievementByName returns the registered achievement and whether it
// exists.
func AchievementByName(name string) (Achievement, bool) {
	a, ok := achievementsByName[name]
	return a, ok
}

// CanUnlock reports whether name may be unlocked given the set of
// already-unlocked achievement names, per spec.md §6 ("root
// openInventory is independent, others require parent unlocked").
func CanUnlock(name string, unlocked map[string]bool) bool {
	a, ok := achievementsByName[name]
	if !ok {
		return false
	}
	if a.Parent == "" {
		return true
	}
	return unlocked[a.Parent]
}
