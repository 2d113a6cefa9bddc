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

package dat

import (
	"strings"
)

// Flags describe how the records in a text file were prepared. Flags are
// informational and are not enforced when reading records.
type Flags uint32

const (
	// Random indicates the records are in random order.
	Random Flags = 1 << iota

	// Ordered indicates the records are sorted.
	Ordered

	// Rotated indicates the records are ROT13 encoded.
	Rotated
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{Random, "Random"},
	{Ordered, "Ordered"},
	{Rotated, "Rotated"},
}

// Has returns true if all flags in f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// String returns a comma separated list of the set flag names.
func (f Flags) String() string {
	var names []string
	for _, n := range flagNames {
		if f.Has(n.f) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ", ")
}
