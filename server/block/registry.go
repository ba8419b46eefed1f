// Package block holds the static, process-wide block registry: the id <->
// namespaced-name mapping and the per-block physical properties (hardness,
// blast resistance, light emission/opacity, flammability, piston
// behaviour) that the tick, light and explosion subsystems read. Per
// spec.md §9 ("Global mutable state... treat them as immutable tables
// constructed at startup"), the registry is built once in init and never
// mutated afterwards, so reads need no locking.
package block

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed data/blocks.yaml
var blocksYAML []byte

// PistonBehavior classifies how a block reacts to an incoming piston push,
// per spec.md §4.4.
type PistonBehavior int

const (
	// PistonNormal blocks are pushed like any other block.
	PistonNormal PistonBehavior = iota
	// PistonBreak blocks are destroyed (and may drop an item) when pushed.
	PistonBreak
	// PistonImmovable blocks abort the push entirely.
	PistonImmovable
)

// MaxID is the highest legal block id, per spec.md §3 ("an integer id in
// [0, 4095]").
const MaxID = 4095

// Properties describes the static, registry-time properties of a block id.
// It intentionally carries no behavioural closures (scheduled tick, random
// tick, block-event handling): those need access to a world transaction and
// so are dispatched from the world package's behaviour table (spec.md §9),
// keyed by the same id, to avoid a block<->world import cycle.
type Properties struct {
	ID                  uint16
	Name                string
	Hardness            float64
	Resistance          float64
	LightEmission       byte
	LightOpacity        byte
	Flammable           bool
	Solid               bool
	RandomTickable      bool
	PistonBehavior      PistonBehavior
}

type yamlEntry struct {
	ID             uint16  `yaml:"id"`
	Name           string  `yaml:"name"`
	Hardness       float64 `yaml:"hardness"`
	Resistance     float64 `yaml:"resistance"`
	LightEmission  byte    `yaml:"lightEmission"`
	LightOpacity   *byte   `yaml:"lightOpacity"`
	Flammable      bool    `yaml:"flammable"`
	Solid          *bool   `yaml:"solid"`
	RandomTickable bool    `yaml:"randomTickable"`
	PistonBehavior string  `yaml:"pistonBehavior"`
}

var (
	byID   [MaxID + 1]Properties
	byName = map[string]uint16{}
)

func init() {
	var entries []yamlEntry
	if err := yaml.Unmarshal(blocksYAML, &entries); err != nil {
		panic(fmt.Sprintf("block: decode registry data: %v", err))
	}
	// Air is the implicit default for every id not given an explicit entry
	// in data/blocks.yaml, matching the reference game where unregistered
	// ids render as invisible/air-like placeholders.
	for id := range byID {
		byID[id] = Properties{ID: uint16(id), Name: "minecraft:air", Solid: false, LightOpacity: 0}
	}
	for _, e := range entries {
		if e.ID > MaxID {
			panic(fmt.Sprintf("block: id %d exceeds MaxID", e.ID))
		}
		solid := true
		if e.Solid != nil {
			solid = *e.Solid
		}
		opacity := byte(15)
		if e.LightOpacity != nil {
			opacity = *e.LightOpacity
		} else if !solid {
			opacity = 0
		}
		behavior := PistonNormal
		switch e.PistonBehavior {
		case "break":
			behavior = PistonBreak
		case "immovable":
			behavior = PistonImmovable
		}
		byID[e.ID] = Properties{
			ID:             e.ID,
			Name:           e.Name,
			Hardness:       e.Hardness,
			Resistance:     e.Resistance,
			LightEmission:  e.LightEmission,
			LightOpacity:   opacity,
			Flammable:      e.Flammable,
			Solid:          solid,
			RandomTickable: e.RandomTickable,
			PistonBehavior: behavior,
		}
		byName[e.Name] = e.ID
	}
}

// ByID returns the registered Properties for id. Ids with no explicit
// registry entry resolve to air's properties, matching the reference
// game's behaviour for unknown/legacy ids.
func ByID(id uint16) Properties {
	if id > MaxID {
		return byID[0]
	}
	return byID[id]
}

// ByName resolves a namespaced block name to its properties. The second
// return value is false if the name is not registered.
func ByName(name string) (Properties, bool) {
	id, ok := byName[name]
	if !ok {
		return Properties{}, false
	}
	return byID[id], true
}

// Air is the id of the air block, which per spec.md §3 "never has
// block-light emission > 0 and never has a tile entity".
const Air uint16 = 0

// Opaque reports whether a block id is fully opaque for sky-light and
// height-map purposes (light opacity at or above the per-block max).
func (p Properties) Opaque() bool { return p.LightOpacity >= 15 }
