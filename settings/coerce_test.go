package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var floatKeys = map[string]any{
	"one_key": "",
	"two_key": "7.5",
}

func TestGenerateValueString(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		name  string
		value any
		def   string
		want  string
	}{
		{name: "string passes through", value: "test", def: "", want: "test"},
		{name: "empty string uses default", value: "", def: "imperial", want: "imperial"},
		{name: "nil uses default", value: nil, def: "metric", want: "metric"},
		{name: "zero string uses default", value: "0", def: "x", want: "x"},
		{name: "numeric zero uses default", value: 0, def: "x", want: "x"},
		{name: "false uses default", value: false, def: "x", want: "x"},
		{name: "number is stringified", value: 1.25, def: "", want: "1.25"},
		{name: "uncastable uses default", value: []string{"a"}, def: "d", want: "d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.GenerateValueString(tt.value, tt.def))
		})
	}
}

func TestNormalizeFloatsReturnsDefaultsWithMissingKeys(t *testing.T) {
	n := NewNormalizer(nil)
	input := map[string]any{
		"wrongkey":      "",
		"wrongkeyagain": "",
	}

	assert.Equal(t, floatKeys, n.NormalizeFloats(input, floatKeys))
}

func TestNormalizeFloatsReturnsNilWithZero(t *testing.T) {
	n := NewNormalizer(nil)
	input := map[string]any{
		"one_key": 0,
		"two_key": 0.0,
	}

	assert.Equal(t, map[string]any{
		"one_key": nil,
		"two_key": nil,
	}, n.NormalizeFloats(input, floatKeys))
}

func TestNormalizeFloatsReturnsValidFloat(t *testing.T) {
	n := NewNormalizer(nil)
	input := map[string]any{
		"one_key": .61,
		"two_key": 1.34,
	}

	assert.Equal(t, map[string]any{
		"one_key": .61,
		"two_key": 1.34,
	}, n.NormalizeFloats(input, floatKeys))
}

func TestGenerateValueFloat(t *testing.T) {
	n := NewNormalizer(nil)

	t.Run("numeric string", func(t *testing.T) {
		got := n.GenerateValueFloat(" 0.615 ")
		require.NotNil(t, got)
		assert.Equal(t, 0.615, *got)
	})

	t.Run("int", func(t *testing.T) {
		got := n.GenerateValueFloat(3)
		require.NotNil(t, got)
		assert.Equal(t, 3.0, *got)
	})

	for _, v := range []any{nil, 0, 0.0, "0", "", "abc"} {
		assert.Nil(t, n.GenerateValueFloat(v), "value %#v", v)
	}
}

func TestGenerateValueArrayReturnsArray(t *testing.T) {
	n := NewNormalizer(nil)
	array := map[string]any{
		"one_key": 0,
		"two_key": 0,
	}

	assert.Equal(t, array, n.GenerateValueArray(array))
	assert.Nil(t, n.GenerateValueArray(nil))
}
