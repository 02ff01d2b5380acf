// SPDX-License-Identifier: MIT

package cli

import (
	"log/slog"

	"github.com/katalvlaran/irt/internal/config"
	"github.com/katalvlaran/irt/logistic"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v2"
)

var (
	fileFlag = &urfave.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "YAML or JSON file with discrimination, difficulty and theta keys",
	}

	discriminationFlag = &urfave.StringFlag{
		Name:    "discrimination",
		Aliases: []string{"a", "slop"},
		Usage:   "Item discrimination, e.g. 1.2, [1, 1.5] or [[1], [1.5]]",
	}

	difficultyFlag = &urfave.StringFlag{
		Name:    "difficulty",
		Aliases: []string{"b", "threshold"},
		Usage:   "Item difficulty, same forms as --discrimination",
	}

	thetaFlag = &urfave.StringFlag{
		Name:    "theta",
		Aliases: []string{"t", "trait"},
		Usage:   "Examinee trait, a number, a list or a column [[..], [..]]",
	}

	evalCmd = &urfave.Command{
		Name:   "eval",
		Usage:  "Evaluate probability and derivatives for the given parameters",
		Action: cmdEval,
		Flags: []urfave.Flag{
			fileFlag,
			discriminationFlag,
			difficultyFlag,
			thetaFlag,
		},
	}
)

func cmdEval(c *urfave.Context) error {
	params, err := readParams(c)
	if err != nil {
		return err
	}

	m, err := logistic.New(params.Discrimination, params.Difficulty, params.Theta)
	if err != nil {
		return errors.Wrap(err, "building model")
	}
	slog.Debug("model built",
		"discrimination", m.Discrimination().Shape(),
		"difficulty", m.Difficulty().Shape(),
		"theta", m.Trait().Shape(),
		"shape", m.Shape())

	return printResult(c.App.Writer, getConfig(c).Format, newResult(m))
}

// readParams merges the parameter file with inline flags; flags win.
func readParams(c *urfave.Context) (*config.Params, error) {
	params := &config.Params{}
	if path := c.String(fileFlag.Name); path != "" {
		p, err := config.Load(path)
		if err != nil {
			return nil, errors.Wrap(err, "loading parameter file")
		}
		params = p
		slog.Debug("loaded parameter file", "path", path)
	}

	for _, f := range []struct {
		flag *urfave.StringFlag
		dst  *any
	}{
		{discriminationFlag, &params.Discrimination},
		{difficultyFlag, &params.Difficulty},
		{thetaFlag, &params.Theta},
	} {
		if !c.IsSet(f.flag.Name) {
			continue
		}
		v, err := config.ParseValue(c.String(f.flag.Name))
		if err != nil {
			return nil, errors.Wrapf(err, "--%s", f.flag.Name)
		}
		*f.dst = v
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}
