// Package data holds the reference data tables spec.md §6 names
// (biomes, potions, attributes, entity list, achievements), loaded once
// from embedded yaml at init, the same immutable-registry-at-startup
// discipline server/block and server/item use (spec.md §9, "Global
// mutable state").
package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed data/biomes.yaml
var biomesYAML []byte

// TempCategory classifies a biome's temperature, per spec.md §6
// ("<0.2=Cold, <1.0=Medium, else Warm").
type TempCategory int

const (
	TempCold TempCategory = iota
	TempMedium
	TempWarm
)

// Biome is one entry of the reference biome table.
type Biome struct {
	ID          byte
	Name        string
	Temperature float64
	Rainfall    float64
	RootHeight  float64
	Variation   float64
	EnableSnow  bool
	EnableRain  bool
	TopBlock    string
	FillerBlock string
}

// TempCategory classifies this biome's temperature per the spec.md §6
// thresholds.
func (b Biome) TempCategory() TempCategory {
	switch {
	case b.Temperature < 0.2:
		return TempCold
	case b.Temperature < 1.0:
		return TempMedium
	default:
		return TempWarm
	}
}

type biomeYAMLEntry struct {
	ID          byte    `yaml:"id"`
	Name        string  `yaml:"name"`
	Temperature float64 `yaml:"temperature"`
	Rainfall    float64 `yaml:"rainfall"`
	RootHeight  float64 `yaml:"rootHeight"`
	Variation   float64 `yaml:"variation"`
	EnableSnow  bool    `yaml:"enableSnow"`
	EnableRain  bool    `yaml:"enableRain"`
	TopBlock    string  `yaml:"topBlock"`
	FillerBlock string  `yaml:"fillerBlock"`
}

var biomesByID = map[byte]Biome{}

func init() {
	var entries []biomeYAMLEntry
	if err := yaml.Unmarshal(biomesYAML, &entries); err != nil {
		panic(fmt.Sprintf("data: decode biome table: %v", err))
	}
	for _, e := range entries {
		biomesByID[e.ID] = Biome{
			ID: e.ID, Name: e.Name, Temperature: e.Temperature, Rainfall: e.Rainfall,
			RootHeight: e.RootHeight, Variation: e.Variation, EnableSnow: e.EnableSnow,
			EnableRain: e.EnableRain, TopBlock: e.TopBlock, FillerBlock: e.FillerBlock,
		}
	}
}

// BiomeByID returns the registered biome for id, falling back to plains
// (id 1) for any id with no table entry.
func BiomeByID(id byte) Biome {
	if b, ok := biomesByID[id]; ok {
		return b
	}
	return biomesByID[1]
}

// Biomes returns every registered biome, for iteration (e.g. by the
// generator's biome-noise layer).
func Biomes() []Biome {
	out := make([]Biome, 0, len(biomesByID))
	for _, b := range biomesByID {
		out = append(out, b)
	}
	return out
}
