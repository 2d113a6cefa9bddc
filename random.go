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
	"math/rand/v2"
)

// ErrNoFortunes indicates that there are no fortunes to choose from.
var ErrNoFortunes = errors.New("no fortunes available")

// errIndexRange is returned when a Rand returns a number outside of [0,n).
var errIndexRange = errors.New("random index out of range")

// Rand is a source of random numbers. *rand.Rand from math/rand/v2 satisfies
// Rand.
type Rand interface {
	// IntN returns a non-negative random number in [0,n).
	IntN(n int) int
}

// Options are options for reading fortunes.
type Options struct {
	// Rand is used to choose fortunes. Defaults to the global random source.
	Rand Rand

	// Unrotate decodes fortunes from files that have the Rotated flag set.
	Unrotate bool
}

// DefaultOptions are the default options.
var DefaultOptions = &Options{
	Rand: globalRand{},
}

// GetRand returns the random source or the global random source.
func (o *Options) GetRand() Rand {
	if o == nil || o.Rand == nil {
		return globalRand{}
	}
	return o.Rand
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	//nolint:gosec // fortunes don't need a cryptographically secure source.
	return rand.IntN(n)
}

// Random returns a fortune chosen at random from the files in dir.
// ErrNoFortunes is returned if dir has no usable fortune files.
func Random(dir string, opts *Options) (*Fortune, error) {
	files, err := OpenAll(dir)
	if err != nil {
		return nil, err
	}

	f, i, err := Choose(files, opts.GetRand())
	if err != nil {
		return nil, err
	}

	return f.Fortune(i, opts)
}

// Choose chooses a fortune at random from files. Every fortune is equally
// likely. It returns the file containing the fortune and the index of the
// fortune within that file.
func Choose(files []*File, r Rand) (*File, int, error) {
	total := 0
	for _, f := range files {
		total += f.Count()
	}
	if total == 0 {
		return nil, 0, ErrNoFortunes
	}

	return locate(files, r.IntN(total))
}

// locate finds the file holding fortune index when the fortunes of all files
// are numbered in order.
func locate(files []*File, index int) (*File, int, error) {
	for _, f := range files {
		count := f.Count()
		// index is 0-based so a file owns it while index < count.
		if index >= count {
			index -= count
			continue
		}
		return f, index, nil
	}

	return nil, 0, fmt.Errorf("%w: %d", errIndexRange, index)
}
