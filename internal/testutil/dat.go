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

package testutil

import (
	"encoding/binary"

	"github.com/ianlewis/go-fortune/dat"
)

// MakeDat makes a test .dat file from the given header and offsets. The
// header is written as is so incompatible files can be made too.
func MakeDat(h dat.Header, offsets []uint32) []byte {
	b := make([]byte, dat.HeaderSize)
	binary.BigEndian.PutUint32(b[0:4], h.Version)
	binary.BigEndian.PutUint32(b[4:8], h.Count)
	binary.BigEndian.PutUint32(b[8:12], h.Longest)
	binary.BigEndian.PutUint32(b[12:16], h.Shortest)
	binary.BigEndian.PutUint32(b[16:20], uint32(h.Flags))
	//nolint:gosec // test code, separators are never negative.
	binary.LittleEndian.PutUint32(b[20:24], uint32(h.Separator))

	for _, o := range offsets {
		b = binary.BigEndian.AppendUint32(b, o)
	}
	return b
}

// MakeText makes a fortune text file from the given records. Each record is
// followed by a newline and a separator line.
func MakeText(records []string, sep rune) []byte {
	b := []byte{}
	for _, r := range records {
		b = append(b, r...)
		b = append(b, '\n')
		b = append(b, string(sep)...)
		b = append(b, '\n')
	}
	return b
}

// MakeIndex returns the .dat file for text made by MakeText.
func MakeIndex(records []string, sep rune, flags dat.Flags) *dat.Dat {
	d := &dat.Dat{
		Header: dat.Header{
			Version:   dat.Version,
			Flags:     flags,
			Separator: sep,
		},
	}

	delimLen := uint32(len(string(sep)) + 1)
	var offset uint32
	for i, r := range records {
		//nolint:gosec // test code, records are small.
		n := uint32(len(r) + 1)
		if i == 0 || n < d.Header.Shortest {
			d.Header.Shortest = n
		}
		if n > d.Header.Longest {
			d.Header.Longest = n
		}
		d.Offsets = append(d.Offsets, offset)
		offset += n + delimLen
		d.Header.Count++
	}
	d.Offsets = append(d.Offsets, offset)

	return d
}
