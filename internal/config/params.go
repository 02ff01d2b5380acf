// SPDX-License-Identifier: MIT

// Package config loads model parameters for the irt command from YAML or
// JSON files and from inline flag values.
//
// Values are decoded into plain Go values ([]any, int, float64, string) and
// handed to logistic.New unchanged, so type errors are reported by the model
// with the parameter name rather than by the decoder.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingParameter is returned by Validate when a parameter is unset.
	ErrMissingParameter = errors.New("config: missing parameter")

	// ErrDuplicateParameter is returned when a parameter is given under both
	// its name and its alias (discrimination/slop, difficulty/threshold,
	// theta/trait).
	ErrDuplicateParameter = errors.New("config: parameter given twice")
)

// Params holds the raw, undecoded-by-type model parameters.
type Params struct {
	Discrimination any `yaml:"discrimination" json:"discrimination"`
	Difficulty     any `yaml:"difficulty" json:"difficulty"`
	Theta          any `yaml:"theta" json:"theta"`
}

// paramFile is the on-disk layout; aliases are folded into Params.
type paramFile struct {
	Discrimination any `yaml:"discrimination"`
	Slop           any `yaml:"slop"`
	Difficulty     any `yaml:"difficulty"`
	Threshold      any `yaml:"threshold"`
	Theta          any `yaml:"theta"`
	Trait          any `yaml:"trait"`
}

// Load reads a parameter file. Unknown keys are rejected.
func Load(path string) (*Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return p, nil
}

// Decode reads one YAML (or JSON) document of parameters from r.
func Decode(r io.Reader) (*Params, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f paramFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var p Params
	var err error
	if p.Discrimination, err = pick("discrimination", f.Discrimination, "slop", f.Slop); err != nil {
		return nil, err
	}
	if p.Difficulty, err = pick("difficulty", f.Difficulty, "threshold", f.Threshold); err != nil {
		return nil, err
	}
	if p.Theta, err = pick("theta", f.Theta, "trait", f.Trait); err != nil {
		return nil, err
	}

	return &p, nil
}

func pick(name string, v any, alias string, av any) (any, error) {
	if v != nil && av != nil {
		return nil, fmt.Errorf("%s and %s: %w", name, alias, ErrDuplicateParameter)
	}
	if v != nil {
		return v, nil
	}

	return av, nil
}

// ParseValue decodes an inline value such as "1.5", "[1, 2]" or "[[1],[2]]".
// An empty string yields nil.
func ParseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("parsing value %q: %w", s, err)
	}

	return v, nil
}

// Validate reports the first parameter that is still unset.
func (p *Params) Validate() error {
	switch {
	case p.Discrimination == nil:
		return fmt.Errorf("discrimination: %w", ErrMissingParameter)
	case p.Difficulty == nil:
		return fmt.Errorf("difficulty: %w", ErrMissingParameter)
	case p.Theta == nil:
		return fmt.Errorf("theta: %w", ErrMissingParameter)
	}

	return nil
}
