package jmh

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		numeric bool
		num     float64
		text    string
	}{
		{"number", `1.5`, true, 1.5, "1.5"},
		{"integer", `42`, true, 42, "42"},
		{"numeric string", `"3.25"`, true, 3.25, "3.25"},
		{"NaN string", `"NaN"`, false, 0, "NaN"},
		{"text", `"N/A"`, false, 0, "N/A"},
		{"null", `null`, false, 0, Missing},
		{"bool", `true`, false, 0, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			f, ok := v.Float()
			assert.Equal(t, tt.numeric, ok)
			if tt.numeric {
				assert.Equal(t, tt.num, f)
			}
			assert.Equal(t, tt.text, v.String())
		})
	}
}

func TestNumber(t *testing.T) {
	f, ok := Number(2.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = Number(math.NaN()).Float()
	assert.False(t, ok)

	assert.Equal(t, Missing, Value{}.String())
}

func TestParseIdentifier(t *testing.T) {
	id := ParseIdentifier("com.example.Foo.bar")
	assert.Equal(t, "bar", id.Method)
	assert.Equal(t, "Foo", id.Class)
	assert.Equal(t, "com.example.Foo", id.FullClass)
	assert.Equal(t, "Foo.bar", id.Qualified())

	single := ParseIdentifier("bar")
	assert.Equal(t, "bar", single.Method)
	assert.Equal(t, UnknownClass, single.Class)
	assert.Equal(t, UnknownClass, single.FullClass)

	two := ParseIdentifier("Foo.bar")
	assert.Equal(t, "Foo", two.Class)
	assert.Equal(t, "Foo", two.FullClass)
}
