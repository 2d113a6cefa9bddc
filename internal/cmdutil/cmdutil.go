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

// Package cmdutil holds helpers shared by the fortune commands.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError
)

// CopyrightNames are the copyright holders printed by --version.
var CopyrightNames = []string{
	"2025 Ian Lewis",
}

// Check checks the error and panics if not nil.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}

// SpecialFlags returns the --help and --version flags. They are meant to be
// shown at the end of the flag list.
func SpecialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:               "help",
			Usage:              "print this help text and exit",
			Aliases:            []string{"h"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Usage:              "print version information and exit",
			Aliases:            []string{"V"},
			DisableDefaultText: true,
		},
	}
}

// PrintVersion prints version information for the app.
func PrintVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

Licensed under the Apache License, Version 2.0.

%s
`,
		c.App.Name,
		versionInfo.GitVersion,
		strings.Join(CopyrightNames, ", "),
		versionInfo.String(),
	)
	if err != nil {
		return fmt.Errorf("printing version: %w", err)
	}
	return nil
}
