package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/steward-tools/internal/config"
)

func TestFirstStringPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		vals     []string
		expected string
	}{
		{"cli wins", []string{"cli", "file", "default"}, "cli"},
		{"file wins when cli empty", []string{"", "file", "default"}, "file"},
		{"default when others empty", []string{"", "", "default"}, "default"},
		{"all empty", []string{"", "", ""}, ""},
		{"no sources", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.FirstString(tt.vals...))
		})
	}
}

func TestResolveBoolFirstSetWins(t *testing.T) {
	set := func(v bool) config.BoolSource { return config.BoolSource{Value: v, Set: true} }
	unset := config.BoolSource{}

	// An explicit false from the command line shadows a true from the file.
	assert.False(t, config.ResolveBool(true, set(false), set(true)))
	assert.True(t, config.ResolveBool(false, unset, set(true)))
	assert.True(t, config.ResolveBool(true, unset, unset))
	assert.False(t, config.ResolveBool(false))
}

func TestResolveIntFirstSetWins(t *testing.T) {
	set := func(v int) config.IntSource { return config.IntSource{Value: v, Set: true} }
	unset := config.IntSource{}

	assert.Equal(t, 2, config.ResolveInt(0, set(2), set(1)))
	assert.Equal(t, 1, config.ResolveInt(0, unset, set(1)))
	assert.Equal(t, 7, config.ResolveInt(7, unset))
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in    string
		value bool
		ok    bool
	}{
		{"1", true, true},
		{"0", false, true},
		{"yes", true, true},
		{"no", false, true},
		{"on", true, true},
		{"off", false, true},
		{"true", true, true},
		{"false", false, true},
		{"  TRUE  ", true, true},
		{"maybe", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := config.ParseBool(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.value, v)
		})
	}
}
