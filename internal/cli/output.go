// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/irt/logistic"
	"github.com/katalvlaran/irt/ndarray"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// result is the serialized view of an evaluated model.
type result struct {
	Discrimination   *ndarray.Array `json:"discrimination" yaml:"discrimination"`
	Difficulty       *ndarray.Array `json:"difficulty" yaml:"difficulty"`
	Theta            *ndarray.Array `json:"theta" yaml:"theta"`
	Shape            []int          `json:"shape" yaml:"shape,flow"`
	Probability      *ndarray.Array `json:"probability" yaml:"probability"`
	FirstDerivative  *ndarray.Array `json:"first_derivative" yaml:"first_derivative"`
	SecondDerivative *ndarray.Array `json:"second_derivative" yaml:"second_derivative"`
}

func newResult(m *logistic.Model) *result {
	return &result{
		Discrimination:   m.Discrimination(),
		Difficulty:       m.Difficulty(),
		Theta:            m.Trait(),
		Shape:            m.Shape(),
		Probability:      m.Probability(),
		FirstDerivative:  m.FirstDerivative(),
		SecondDerivative: m.SecondDerivative(),
	}
}

func printResult(w io.Writer, format string, r *result) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	case formatTable:
		s, err := renderTable(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "encoding json")
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	headerStyle = lipgloss.NewStyle().
			Bold(true)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// renderTable lays out one row per evaluated cell with the parameters
// broadcast to the result shape.
func renderTable(r *result) (string, error) {
	cols := []*ndarray.Array{r.Discrimination, r.Difficulty, r.Theta, r.Probability, r.FirstDerivative, r.SecondDerivative}
	values := make([][]float64, len(cols))
	for i, a := range cols {
		b, err := ndarray.Apply(a, r.Probability, func(x, _ float64) float64 { return x })
		if err != nil {
			return "", errors.Wrap(err, "broadcasting table column")
		}
		values[i] = b.Data()
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("2PL logistic model %v", r.Shape)),
		headerStyle.Render(fmt.Sprintf("%5s %10s %10s %10s %10s %10s %10s", "#", "a", "b", "theta", "P", "P'", "aP'")),
	}
	for row := 0; row < r.Probability.Size(); row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%5d", row)
		for _, col := range values {
			fmt.Fprintf(&sb, " %10.4f", col[row])
		}
		lines = append(lines, sb.String())
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)), nil
}
