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
	"unicode/utf8"
)

const (
	// Version is the supported .dat file format version.
	Version = 2

	// HeaderSize is the size of the encoded header in bytes.
	HeaderSize = 24

	// DefaultSeparator is the default record separator.
	DefaultSeparator = '%'

	knownFlags = Random | Ordered | Rotated
)

var (
	// ErrIncompatible indicates that a .dat file is not usable, either because
	// it was written for a different format version or because it has no
	// records. It is a signal to skip the file rather than a failure.
	ErrIncompatible = errors.New("incompatible dat file")

	// ErrTruncated indicates that the .dat file ended early.
	ErrTruncated = fmt.Errorf("truncated dat file: %w", io.ErrUnexpectedEOF)
)

// Header is the .dat file header.
type Header struct {
	// Version is the format version. Only Version is supported.
	Version uint32

	// Count is the number of records.
	Count uint32

	// Longest is the length in bytes of the longest record, not including
	// the separator line.
	Longest uint32

	// Shortest is the length in bytes of the shortest record, not including
	// the separator line.
	Shortest uint32

	// Flags are informational flags about the text file.
	Flags Flags

	// Separator is the record separator character.
	Separator rune
}

// AppendBinary appends the encoded header to b.
func (h *Header) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint32(b, h.Version)
	b = binary.BigEndian.AppendUint32(b, h.Count)
	b = binary.BigEndian.AppendUint32(b, h.Longest)
	b = binary.BigEndian.AppendUint32(b, h.Shortest)
	b = binary.BigEndian.AppendUint32(b, uint32(h.Flags))
	// NOTE: The separator is stored little-endian unlike every other field.
	//       Existing .dat files depend on this so it must not change without
	//       a new format version.
	//nolint:gosec // runes are never negative here.
	b = binary.LittleEndian.AppendUint32(b, uint32(h.Separator))
	return b, nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (h *Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. It decodes the
// header fields without checking compatibility.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: header is %d bytes", ErrTruncated, len(b))
	}

	h.Version = binary.BigEndian.Uint32(b[0:4])
	h.Count = binary.BigEndian.Uint32(b[4:8])
	h.Longest = binary.BigEndian.Uint32(b[8:12])
	h.Shortest = binary.BigEndian.Uint32(b[12:16])
	h.Flags = Flags(binary.BigEndian.Uint32(b[16:20])) & knownFlags

	sep := binary.LittleEndian.Uint32(b[20:24])
	//nolint:gosec // validated below.
	h.Separator = rune(sep)
	if !utf8.ValidRune(h.Separator) {
		// Only the low byte is meaningful for single byte separators.
		h.Separator = rune(byte(sep))
	}

	return nil
}

// ReadHeader reads a header from r. ErrIncompatible is returned if the header
// is for an unsupported version or the file contains no records. The version
// and count are checked as soon as they are read so incompatible files are
// reported even when they are shorter than a full header.
func ReadHeader(r io.Reader) (*Header, error) {
	var b [HeaderSize]byte

	if err := readHeaderField(r, b[0:4]); err != nil {
		return nil, err
	}
	if v := binary.BigEndian.Uint32(b[0:4]); v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrIncompatible, v)
	}

	if err := readHeaderField(r, b[4:8]); err != nil {
		return nil, err
	}
	if binary.BigEndian.Uint32(b[4:8]) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrIncompatible)
	}

	if err := readHeaderField(r, b[8:]); err != nil {
		return nil, err
	}

	var h Header
	if err := h.UnmarshalBinary(b[:]); err != nil {
		return nil, err
	}
	return &h, nil
}

func readHeaderField(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: reading header", ErrTruncated)
		}
		return fmt.Errorf("reading header: %w", err)
	}
	return nil
}
