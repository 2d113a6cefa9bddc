// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-fortune"
	"github.com/ianlewis/go-fortune/internal/cmdutil"
)

// ExitCodeNoDataDir is the exit code used when no data directory was given
// and none of the default locations exist.
const ExitCodeNoDataDir = 100

// ErrFortune is a parent error for all command errors.
var ErrFortune = errors.New("fortune")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrFortune)

// ErrNoDataDir indicates that no default data directory could be found.
var ErrNoDataDir = fmt.Errorf("%w: can't find default data folder", ErrFortune)

func newFortuneApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Print a random fortune.",
		ArgsUsage: "[DIR]",
		Description: strings.Join([]string{
			"Prints a fortune chosen at random from the fortune files in DIR.",
			"If DIR is not given the first of these that exists is used:",
			"  " + strings.Join(fortuneLocations(), "\n  "),
		}, "\n"),
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:               "summary",
				Usage:              "show information about the fortune files and exit",
				Aliases:            []string{"s"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "also show the fortune's source file",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "unrotate",
				Usage:              "decode fortunes from ROT13 encoded files",
				Aliases:            []string{"u"},
				DisableDefaultText: true,
			},
		}, cmdutil.SpecialFlags()...),
		Copyright:       strings.Join(cmdutil.CopyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				cmdutil.Check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return cmdutil.PrintVersion(c)
			}

			if c.NArg() > 1 {
				return fmt.Errorf("%w: too many arguments", ErrFlagParse)
			}

			dir := c.Args().First()
			if dir == "" {
				var err error
				dir, err = defaultDir()
				if err != nil {
					return err
				}
			}

			if c.Bool("summary") {
				return printSummary(c, dir)
			}
			return printFortune(c, dir)
		},
	}
}

// defaultDir returns the first default data location that exists.
func defaultDir() (string, error) {
	for _, loc := range fortuneLocations() {
		if info, err := os.Stat(loc); err == nil && info.IsDir() {
			return loc, nil
		}
	}
	return "", ErrNoDataDir
}

func printFortune(c *cli.Context, dir string) error {
	f, err := fortune.Random(dir, &fortune.Options{
		Unrotate: c.Bool("unrotate"),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFortune, err)
	}

	w := c.App.Writer
	if c.Bool("verbose") {
		_, _ = fmt.Fprintf(w, "[%s]\n", f.File)
	}
	text := f.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = fmt.Fprint(w, text)
	return err
}

func printSummary(c *cli.Context, dir string) error {
	stats, err := fortune.Stats(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFortune, err)
	}

	total := 0
	for _, s := range stats {
		total += s.Count
	}

	w := c.App.Writer
	_, _ = fmt.Fprintf(w, "%d %s in %d %s\n", total, plural(total, "fortune"), len(stats), plural(len(stats), "file"))
	_, _ = fmt.Fprintln(w, dir)

	tbl := table.New("File", "Count", "Percent").WithWriter(w)
	for _, s := range stats {
		percent := 0.0
		if total > 0 {
			percent = float64(s.Count*100) / float64(total)
		}
		tbl.AddRow(s.File, s.Count, fmt.Sprintf("%.2f%%", percent))
	}
	tbl.Print()

	return nil
}

func plural(n int, s string) string {
	if n == 1 {
		return s
	}
	return s + "s"
}
