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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-fortune/dat"
	"github.com/ianlewis/go-fortune/internal/cmdutil"
	"github.com/ianlewis/go-fortune/internal/testutil"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newStrfileApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"strfile"}, args...))
	return out.String(), err
}

// TestStrfileApp tests building .dat files.
func TestStrfileApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []string
		sep     rune
		flags   []string
		datName string

		expected *dat.Dat
	}{
		{
			name:     "default",
			records:  []string{"one", "two", "three"},
			sep:      '%',
			expected: testutil.MakeIndex([]string{"one", "two", "three"}, '%', 0),
		},
		{
			name:     "separator",
			records:  []string{"one", "two"},
			sep:      '#',
			flags:    []string{"-s", "#"},
			expected: testutil.MakeIndex([]string{"one", "two"}, '#', 0),
		},
		{
			name:     "multibyte separator",
			records:  []string{"one", "two"},
			sep:      '§',
			flags:    []string{"--separator", "§"},
			expected: testutil.MakeIndex([]string{"one", "two"}, '§', 0),
		},
		{
			name:     "flags",
			records:  []string{"one"},
			sep:      '%',
			flags:    []string{"--random", "--ordered", "--rotated"},
			expected: testutil.MakeIndex([]string{"one"}, '%', dat.Random|dat.Ordered|dat.Rotated),
		},
		{
			name:     "explicit dat file",
			records:  []string{"one"},
			sep:      '%',
			datName:  "other.dat",
			expected: testutil.MakeIndex([]string{"one"}, '%', 0),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			textPath := filepath.Join(dir, "hoge")
			testutil.WriteFile(t, textPath, testutil.MakeText(test.records, test.sep))

			args := append([]string{"-q"}, test.flags...)
			args = append(args, textPath)
			datPath := filepath.Join(dir, "hoge.dat")
			if test.datName != "" {
				datPath = filepath.Join(dir, test.datName)
				args = append(args, datPath)
			}

			out, err := runApp(t, args...)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if diff := cmp.Diff("", out); diff != "" {
				t.Fatalf("Run (-want, +got):\n%s", diff)
			}

			got, err := dat.Open(datPath)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Open (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestStrfileApp_summary tests the summary printed after building.
func TestStrfileApp_summary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	textPath := filepath.Join(dir, "hoge.txt")
	testutil.WriteFile(t, textPath, testutil.MakeText([]string{"a", "bbb", "cc"}, '%'))

	out, err := runApp(t, "--rotated", textPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	datPath := filepath.Join(dir, "hoge.dat")
	want := "Processed file:  " + textPath + "\n" +
		"Generated file:  " + datPath + "\n" +
		"Number of items: 3\n" +
		"Flags:           [Rotated]\n" +
		"Shortest:        2\n" +
		"Longest:         4\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("Run (-want, +got):\n%s", diff)
	}

	if _, err := os.Stat(datPath); err != nil {
		t.Fatalf("Stat: %v", err)
	}
}

// TestStrfileApp_errors tests error handling and exit codes.
func TestStrfileApp_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args func(textPath string) []string

		err      error
		exitCode int
	}{
		{
			name: "no arguments",
			args: func(string) []string {
				return nil
			},
			err:      ErrFlagParse,
			exitCode: cmdutil.ExitCodeFlagParseError,
		},
		{
			name: "too many arguments",
			args: func(textPath string) []string {
				return []string{textPath, textPath + ".dat", "extra"}
			},
			err:      ErrFlagParse,
			exitCode: cmdutil.ExitCodeFlagParseError,
		},
		{
			name: "long separator",
			args: func(textPath string) []string {
				return []string{"-s", "%%", textPath}
			},
			err:      ErrFlagParse,
			exitCode: cmdutil.ExitCodeFlagParseError,
		},
		{
			name: "empty separator",
			args: func(textPath string) []string {
				return []string{"-s", "", textPath}
			},
			err:      ErrFlagParse,
			exitCode: cmdutil.ExitCodeFlagParseError,
		},
		{
			name: "newline separator",
			args: func(textPath string) []string {
				return []string{"-s", "\n", textPath}
			},
			err:      dat.ErrInvalidSeparator,
			exitCode: cmdutil.ExitCodeUnknownError,
		},
		{
			name: "missing file",
			args: func(textPath string) []string {
				return []string{textPath + ".missing"}
			},
			err:      os.ErrNotExist,
			exitCode: cmdutil.ExitCodeUnknownError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			textPath := filepath.Join(t.TempDir(), "hoge")
			testutil.WriteFile(t, textPath, testutil.MakeText([]string{"one"}, '%'))

			_, err := runApp(t, test.args(textPath)...)
			if !errors.Is(err, test.err) {
				t.Fatalf("Run: expected %v, got %v", test.err, err)
			}
			if diff := cmp.Diff(test.exitCode, exitCode(err)); diff != "" {
				t.Fatalf("exitCode (-want, +got):\n%s", diff)
			}
		})
	}
}
