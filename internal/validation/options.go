package validation

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed options.yaml
var defaultOptionsYAML []byte

// Option is one choice of an enumerated field.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// OptionSets maps a set name (as referenced by Rule.Options) to its choices.
type OptionSets map[string][]Option

// Contains reports whether value is one of the choices in set.
func (o OptionSets) Contains(set, value string) bool {
	for _, opt := range o[set] {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// DefaultOptions returns the option sets compiled into the binary.
func DefaultOptions() OptionSets {
	sets, err := ParseOptions(defaultOptionsYAML)
	if err != nil {
		panic(fmt.Sprintf("validation: embedded options.yaml: %v", err))
	}
	return sets
}

// LoadOptions reads option sets from a YAML file. An empty path yields the
// embedded defaults.
func LoadOptions(path string) (OptionSets, error) {
	if path == "" {
		return DefaultOptions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options file: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes YAML option sets and checks that every set used by a
// form is present and non-empty and that no value exceeds MaxOptionLength.
func ParseOptions(data []byte) (OptionSets, error) {
	var sets OptionSets
	if err := yaml.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	for _, form := range Forms() {
		for _, f := range form.Fields {
			for _, r := range f.Rules {
				if r.Kind != KindOption {
					continue
				}
				if len(sets[r.Options]) == 0 {
					return nil, fmt.Errorf("option set %q (field %s.%s) is missing or empty", r.Options, form.Name, f.Name)
				}
			}
		}
	}
	for name, opts := range sets {
		for i, opt := range opts {
			if opt.Value == "" {
				return nil, fmt.Errorf("option set %q entry %d has no value", name, i)
			}
			if n := utf8.RuneCountInString(opt.Value); n > MaxOptionLength {
				return nil, fmt.Errorf("option set %q value %q is %d characters, max %d", name, opt.Value, n, MaxOptionLength)
			}
			if opt.Label == "" {
				sets[name][i].Label = opt.Value
			}
		}
	}
	return sets, nil
}
