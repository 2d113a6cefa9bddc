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

//go:build !windows

package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-fortune/internal/cmdutil"
	"github.com/ianlewis/go-fortune/internal/testutil"
)

// TestFortuneApp_defaultDir tests finding the default data directory.
//
//nolint:paralleltest // uses t.Setenv
func TestFortuneApp_defaultDir(t *testing.T) {
	empty := t.TempDir()
	t.Setenv("HOME", filepath.Join(empty, "home"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(empty, "xdg"))
	t.Setenv("FORTUNE_DATA_DIR", "")

	_, err := runApp(t)
	if !errors.Is(err, ErrNoDataDir) {
		t.Fatalf("Run: expected ErrNoDataDir, got %v", err)
	}
	if diff := cmp.Diff(ExitCodeNoDataDir, exitCode(err)); diff != "" {
		t.Fatalf("exitCode (-want, +got):\n%s", diff)
	}

	dir := testutil.WriteFortuneDir(t, []*testutil.FortuneFile{
		{Name: "hoge", Records: []string{"hello"}},
	})
	t.Setenv("FORTUNE_DATA_DIR", dir)

	out, err := runApp(t)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff("hello\n", out); diff != "" {
		t.Fatalf("Run (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(cmdutil.ExitCodeSuccess, exitCode(nil)); diff != "" {
		t.Fatalf("exitCode (-want, +got):\n%s", diff)
	}
}
