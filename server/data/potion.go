package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed data/potions.yaml
var potionsYAML []byte

// Potion is one entry of spec.md §6's potion table.
type Potion struct {
	ID                 int32
	Name                string
	Color               int32
	IsBadEffect         bool
	IsInstant           bool
	Effectiveness       float64
	AttributeModifiers  []string
}

// TickInterval returns the tick-readiness interval for this potion at
// the given amplifier, per spec.md §6 ("Regen 50>>amp, Poison 25>>amp,
// Wither 40>>amp, Hunger every tick"); 0 for potions with no periodic
// tick (instants, or anything not in that list).
func (p Potion) TickInterval(amplifier int) int {
	switch p.Name {
	case "regeneration":
		return 50 >> uint(amplifier)
	case "poison":
		return 25 >> uint(amplifier)
	case "wither":
		return 40 >> uint(amplifier)
	case "hunger":
		return 1
	default:
		return 0
	}
}

type potionYAMLEntry struct {
	ID                 int32    `yaml:"id"`
	Name               string   `yaml:"name"`
	Color              int32    `yaml:"color"`
	IsBadEffect        bool     `yaml:"isBadEffect"`
	IsInstant          bool     `yaml:"isInstant"`
	Effectiveness      float64  `yaml:"effectiveness"`
	AttributeModifiers []string `yaml:"attributeModifiers"`
}

var potionsByID = map[int32]Potion{}

func init() {
	var entries []potionYAMLEntry
	if err := yaml.Unmarshal(potionsYAML, &entries); err != nil {
		panic(fmt.Sprintf("data: decode potion table: %v", err))
	}
	for _, e := range entries {
		potionsByID[e.ID] = Potion{
			ID: e.ID, Name: e.Name, Color: e.Color, IsBadEffect: e.IsBadEffect,
			IsInstant: e.IsInstant, Effectiveness: e.Effectiveness, AttributeModifiers: e.AttributeModifiers,
		}
	}
}

// PotionByID returns the registered potion for id and whether it exists.
func PotionByID(id int32) (Potion, bool) {
	p, ok := potionsByID[id]
	return p, ok
}
