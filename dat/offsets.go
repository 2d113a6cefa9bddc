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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// offsetSize is the size of an encoded offset.
const offsetSize = 4

// maxPrealloc caps the offset slice preallocation so a corrupt count does not
// allocate a huge slice before the short read is found.
const maxPrealloc = 1 << 16

// AppendOffsets appends the encoded offset table to b.
func AppendOffsets(b []byte, offsets []uint32) []byte {
	for _, o := range offsets {
		b = binary.BigEndian.AppendUint32(b, o)
	}
	return b
}

// ReadOffsets reads the offset table for a file with count records. Exactly
// count+1 offsets are read. ErrTruncated is returned if r ends early.
func ReadOffsets(r io.Reader, count uint32) ([]uint32, error) {
	n := uint64(count) + 1
	offsets := make([]uint32, 0, min(n, maxPrealloc))

	var b [offsetSize]byte
	for i := range n {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: read %d of %d offsets", ErrTruncated, i, n)
			}
			return nil, fmt.Errorf("reading offsets: %w", err)
		}
		offsets = append(offsets, binary.BigEndian.Uint32(b[:]))
	}

	return offsets, nil
}
