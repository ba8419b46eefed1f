// Package item holds the static, process-wide item registry: id/name
// mapping and stack-limit/durability table, per spec.md §6 and the open
// question in spec.md §9 ("per-item stack limits... move them to the
// item table" rather than inline special-cased constants). Built once
// in init from an embedded yaml table, the same pattern server/block
// uses for its own registry.
package item

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed data/items.yaml
var itemsYAML []byte

// DefaultStackLimit is the stack size an item takes when its registry
// entry does not override it.
const DefaultStackLimit = 64

// Properties describes one registered item.
type Properties struct {
	ID         int32
	Name       string
	StackLimit int
	// MaxDamage is the durability ceiling for tools/armor; zero means the
	// item is not damageable.
	MaxDamage int
}

// Damageable reports whether this item tracks durability instead of
// stack count, per spec.md §9 ("tools = 1").
func (p Properties) Damageable() bool { return p.MaxDamage > 0 }

type yamlEntry struct {
	ID         int32  `yaml:"id"`
	Name       string `yaml:"name"`
	StackLimit int    `yaml:"stackLimit"`
	MaxDamage  int    `yaml:"maxDamage"`
}

var (
	byID   = map[int32]Properties{}
	byName = map[string]int32{}
)

func init() {
	var entries []yamlEntry
	if err := yaml.Unmarshal(itemsYAML, &entries); err != nil {
		panic(fmt.Sprintf("item: decode registry data: %v", err))
	}
	for _, e := range entries {
		limit := e.StackLimit
		if limit == 0 {
			limit = DefaultStackLimit
		}
		if e.MaxDamage > 0 {
			limit = 1
		}
		byID[e.ID] = Properties{ID: e.ID, Name: e.Name, StackLimit: limit, MaxDamage: e.MaxDamage}
		byName[e.Name] = e.ID
	}
}

// ByID returns the registered Properties for id, and whether it is
// registered.
func ByID(id int32) (Properties, bool) {
	p, ok := byID[id]
	return p, ok
}

// ByName resolves a namespaced item name to its properties.
func ByName(name string) (Properties, bool) {
	id, ok := byName[name]
	if !ok {
		return Properties{}, false
	}
	return byID[id], true
}

// StackLimit returns id's stack limit, defaulting to DefaultStackLimit
// for any id with no registry entry (matching the reference game's
// fallback for block-form items, which this table does not duplicate
// from server/block).
func StackLimit(id int32) int {
	if p, ok := byID[id]; ok {
		return p.StackLimit
	}
	return DefaultStackLimit
}

// Stack is an item stack: an item id, a count or remaining-durability
// value depending on Damageable, and an optional metadata/damage value.
type Stack struct {
	ID    int32
	Count int
	Meta  int16
}

// Merge attempts to combine b into a, returning the merged stack and
// whatever could not fit (Count 0 if fully merged). Damageable items
// never merge.
func (a Stack) Merge(b Stack) (merged, remainder Stack) {
	if a.ID != b.ID || a.Meta != b.Meta {
		return a, b
	}
	props, _ := ByID(a.ID)
	if props.Damageable() {
		return a, b
	}
	limit := StackLimit(a.ID)
	total := a.Count + b.Count
	if total <= limit {
		return Stack{ID: a.ID, Count: total, Meta: a.Meta}, Stack{}
	}
	return Stack{ID: a.ID, Count: limit, Meta: a.Meta}, Stack{ID: b.ID, Count: total - limit, Meta: b.Meta}
}
