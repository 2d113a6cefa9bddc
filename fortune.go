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

package fortune

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-fortune/dat"
)

// ErrDirUnreadable indicates that a data directory could not be listed.
var ErrDirUnreadable = errors.New("cannot read data folder")

// Fortune is a single fortune.
type Fortune struct {
	// File is the logical name of the file the fortune was read from.
	File string `json:"file"`

	// Text is the fortune text.
	Text string `json:"fortune"`
}

// String returns the fortune text.
func (f *Fortune) String() string {
	return f.Text
}

// OpenAll opens all fortune files in the directory dir. Subdirectories are not
// searched. Files with incompatible .dat files are skipped. Files are returned
// in directory order.
func OpenAll(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDirUnreadable, dir, err)
	}

	var files []*File
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".dat") {
			continue
		}

		path := filepath.Join(dir, e.Name())
		// Follow symlinks but skip anything that isn't a regular file.
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			continue
		}

		f, err := OpenFile(path)
		if err != nil {
			if errors.Is(err, dat.ErrIncompatible) {
				continue
			}
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}
