// SPDX-License-Identifier: MIT

// Package cli implements the irt command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/irt/internal/logging"
	urfave "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const (
	appConfigKey = "app-config"

	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml, table] (default: table on a terminal, json otherwise)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	initLogging(false)

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Format string
	Debug  bool
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:            "irt",
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		HideHelpCommand: true,
		Usage:           "Evaluate the two-parameter logistic item response model",
		Flags: []urfave.Flag{
			debugFlag,
			formatFlag,
		},
		Commands: []*urfave.Command{
			evalCmd,
		},
		Before: func(c *urfave.Context) error {
			debug := c.Bool(debugFlag.Name)
			if debug {
				initLogging(true)
			}

			format, err := resolveFormat(c.String(formatFlag.Name), isTerminal(os.Stdout))
			if err != nil {
				return err
			}

			if c.App.Metadata == nil {
				c.App.Metadata = map[string]any{}
			}
			c.App.Metadata[appConfigKey] = &appConfig{Format: format, Debug: debug}
			slog.Debug("config", "format", format)
			return nil
		},
	}
}

// resolveFormat validates an explicit format or picks the default.
func resolveFormat(format string, tty bool) (string, error) {
	switch format {
	case formatJSON, formatTable:
		return format, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case "":
		if tty {
			return formatTable, nil
		}
		return formatJSON, nil
	}

	return "", fmt.Errorf("unsupported format %q, want one of [%s, %s, %s]", format, formatJSON, formatYAML, formatTable)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func initLogging(debug bool) {
	level := "info"
	if debug {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level, isTerminal(os.Stderr))
}
