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
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-fortune/dat"
	"github.com/ianlewis/go-fortune/internal/cmdutil"
)

// ErrStrfile is a parent error for all command errors.
var ErrStrfile = errors.New("strfile")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrStrfile)

func newStrfileApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Create a random access index for a fortune file.",
		ArgsUsage: "FILE [DATFILE]",
		Description: strings.Join([]string{
			"Reads the fortunes in FILE and writes an index to DATFILE.",
			"Fortunes end with a line containing only the separator character.",
			"If DATFILE is not given, FILE with its extension replaced by .dat is used.",
		}, "\n"),
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:               "quiet",
				Usage:              "don't print a summary",
				Aliases:            []string{"q"},
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:    "separator",
				Usage:   "the character that separates fortunes",
				Aliases: []string{"s"},
				Value:   string(dat.DefaultSeparator),
			},
			&cli.BoolFlag{
				Name:               "random",
				Usage:              "set the random flag in the header",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "ordered",
				Usage:              "set the ordered flag in the header",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "rotated",
				Usage:              "set the rotated flag in the header (text is ROT13 encoded)",
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

			switch {
			case c.NArg() == 0:
				return fmt.Errorf("%w: missing FILE", ErrFlagParse)
			case c.NArg() > 2:
				return fmt.Errorf("%w: too many arguments", ErrFlagParse)
			}

			opts, err := buildOptions(c)
			if err != nil {
				return err
			}

			textPath := c.Args().Get(0)
			datPath := c.Args().Get(1)
			if datPath == "" {
				datPath = dat.DefaultPath(textPath)
			}

			d, err := dat.BuildFile(textPath, datPath, opts)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrStrfile, err)
			}

			if !c.Bool("quiet") {
				printSummary(c, textPath, datPath, d)
			}
			return nil
		},
	}
}

func buildOptions(c *cli.Context) (*dat.BuildOptions, error) {
	s := c.String("separator")
	sep, size := utf8.DecodeRuneInString(s)
	if sep == utf8.RuneError || size != len(s) {
		return nil, fmt.Errorf("%w: separator must be a single character: %q", ErrFlagParse, s)
	}

	var flags dat.Flags
	if c.Bool("random") {
		flags |= dat.Random
	}
	if c.Bool("ordered") {
		flags |= dat.Ordered
	}
	if c.Bool("rotated") {
		flags |= dat.Rotated
	}

	return &dat.BuildOptions{
		Separator: sep,
		Flags:     flags,
	}, nil
}

func printSummary(c *cli.Context, textPath, datPath string, d *dat.Dat) {
	w := c.App.Writer
	_, _ = fmt.Fprintf(w, "Processed file:  %s\n", textPath)
	_, _ = fmt.Fprintf(w, "Generated file:  %s\n", datPath)
	_, _ = fmt.Fprintf(w, "Number of items: %d\n", d.Header.Count)
	_, _ = fmt.Fprintf(w, "Flags:           [%s]\n", d.Header.Flags)
	_, _ = fmt.Fprintf(w, "Shortest:        %d\n", d.Header.Shortest)
	_, _ = fmt.Fprintf(w, "Longest:         %d\n", d.Header.Longest)
}
