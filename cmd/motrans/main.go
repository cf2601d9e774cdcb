// SPDX-License-Identifier: MIT

// Command motrans transforms SO integrals to the MO basis.
//
//	motrans --config run.toml transform
//	motrans --config run.toml describe
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "motrans",
		Usage:   "Symmetry-blocked SO to MO integral transformation",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Run file path (TOML)",
				Value:   "motrans.toml",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every irrep block of both passes",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "transform",
				Aliases: []string{"t"},
				Usage:   "Transform the integrals named in the run file and print them",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tei",
						Usage: "Two-electron stream (overrides run file)",
					},
					&cli.StringFlag{
						Name:  "oei",
						Usage: "One-electron triangle (overrides run file)",
					},
				},
				Action: func(c *cli.Context) error {
					rf, err := loadRunFileWithOverrides(c)
					if err != nil {
						return err
					}

					return runTransform(rf, c.App.Writer, newLogger(c.Bool("verbose")))
				},
			},
			{
				Name:  "describe",
				Usage: "Print irreps and pair counts of the run file",
				Action: func(c *cli.Context) error {
					rf, err := LoadRunFile(c.String("config"))
					if err != nil {
						return err
					}

					return describe(rf, c.App.Writer)
				},
			},
		},
	}
}

// loadRunFileWithOverrides loads the run file and applies command flags.
// Override paths are taken relative to the working directory.
func loadRunFileWithOverrides(c *cli.Context) (*RunFile, error) {
	rf, err := LoadRunFile(c.String("config"))
	if err != nil {
		return nil, err
	}
	if p := c.String("tei"); p != "" {
		rf.TEI = absPath(p)
	}
	if p := c.String("oei"); p != "" {
		rf.OEI = absPath(p)
	}

	return rf, nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "motrans:", err)
		os.Exit(1)
	}
}
