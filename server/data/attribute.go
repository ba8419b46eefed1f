package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed data/attributes.yaml
var attributesYAML []byte

// AttributeDefault is the reference base value and clamp range for one
// of spec.md §6's five attributes.
type AttributeDefault struct {
	Name     string
	Base     float64
	Min, Max float64
}

type attributeYAMLEntry struct {
	Name string  `yaml:"name"`
	Base float64 `yaml:"base"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

var attributeDefaults = map[string]AttributeDefault{}

func init() {
	var entries []attributeYAMLEntry
	if err := yaml.Unmarshal(attributesYAML, &entries); err != nil {
		panic(fmt.Sprintf("data: decode attribute table: %v", err))
	}
	for _, e := range entries {
		attributeDefaults[e.Name] = AttributeDefault{Name: e.Name, Base: e.Base, Min: e.Min, Max: e.Max}
	}
}

// AttributeDefaultFor returns the registered default for name, and
// whether it is one of the five defined attributes.
func AttributeDefaultFor(name string) (AttributeDefault, bool) {
	a, ok := attributeDefaults[name]
	return a, ok
}
