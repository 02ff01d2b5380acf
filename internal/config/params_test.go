// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	content := `
discrimination: [0.8, 1.2, 1.6]
difficulty:
  - [-1]
  - [0]
  - [1]
theta: 0.25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, []any{0.8, 1.2, 1.6}, p.Discrimination)
	assert.Equal(t, []any{[]any{-1}, []any{0}, []any{1}}, p.Difficulty)
	assert.Equal(t, 0.25, p.Theta)
}

func TestLoad_JSONAndAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"slop": 1, "threshold": [0], "trait": [-1, 1]}`), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Discrimination)
	assert.Equal(t, []any{0}, p.Difficulty)
	assert.Equal(t, []any{-1, 1}, p.Theta)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Decode(strings.NewReader("slop: 1\ndiscrimination: 2\n"))
	require.ErrorIs(t, err, ErrDuplicateParameter)

	_, err = Decode(strings.NewReader("guess: 0.2\n"))
	require.Error(t, err, "unknown keys are rejected")
}

func TestDecode_Empty(t *testing.T) {
	p, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.ErrorIs(t, p.Validate(), ErrMissingParameter)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"1.5", 1.5},
		{"2", 2},
		{"-0.5", -0.5},
		{"[1, 2.5]", []any{1, 2.5}},
		{"[[1],[2]]", []any{[]any{1}, []any{2}}},
		{"a", "a"},
		{"", nil},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseValue("[1, 2")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	p := &Params{Discrimination: 1, Difficulty: 0}
	err := p.Validate()
	require.ErrorIs(t, err, ErrMissingParameter)
	assert.Contains(t, err.Error(), "theta")
}
