package settings

import (
	"strings"

	"github.com/spf13/cast"
)

// GenerateValueString returns value as a string when it is truthy, def
// otherwise. nil, "", "0", false and numeric zero are not truthy.
func (n *Normalizer) GenerateValueString(value any, def string) string {
	if !truthy(value) {
		return def
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return def
	}
	return s
}

// GenerateValueFloat returns value as a float64. Zero means unset and
// yields nil, as does anything that is not a number.
func (n *Normalizer) GenerateValueFloat(value any) *float64 {
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || f == 0 {
		return nil
	}
	return &f
}

// NormalizeFloats coerces every key of defaults from input. Keys missing
// from input keep their default, zero values become nil.
func (n *Normalizer) NormalizeFloats(input, defaults map[string]any) map[string]any {
	valid := make(map[string]any, len(defaults))
	for key, def := range defaults {
		v, ok := input[key]
		if !ok {
			valid[key] = def
			continue
		}
		if f := n.GenerateValueFloat(v); f != nil {
			valid[key] = *f
		} else {
			valid[key] = nil
		}
	}
	return valid
}

// GenerateValueArray returns value unchanged.
func (n *Normalizer) GenerateValueArray(value map[string]any) map[string]any {
	return value
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	}
	if f, err := cast.ToFloat64E(value); err == nil {
		return f != 0
	}
	return true
}
