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

// Stat is the number of fortunes in a file.
type Stat struct {
	// File is the logical name of the file.
	File string `json:"file"`

	// Count is the number of fortunes in the file.
	Count int `json:"count"`
}

// Stats returns the number of fortunes in each file in dir.
func Stats(dir string) ([]*Stat, error) {
	files, err := OpenAll(dir)
	if err != nil {
		return nil, err
	}
	return StatsOf(files), nil
}

// StatsOf returns the number of fortunes in each of files in the same order.
func StatsOf(files []*File) []*Stat {
	stats := make([]*Stat, 0, len(files))
	for _, f := range files {
		stats = append(stats, &Stat{
			File:  f.Name(),
			Count: f.Count(),
		})
	}
	return stats
}
