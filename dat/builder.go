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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-dictzip"
)

// maxLineSize is the longest line accepted in a text file.
const maxLineSize = 16 << 20

var (
	// ErrInvalidSeparator indicates that the separator can't be used to
	// delimit records.
	ErrInvalidSeparator = errors.New("invalid separator")

	// ErrTooLarge indicates that the text file is too large to be indexed
	// with 32 bit offsets.
	ErrTooLarge = errors.New("text file too large")
)

// BuildOptions are options for building a .dat file.
type BuildOptions struct {
	// Separator is the record separator. Defaults to DefaultSeparator.
	Separator rune

	// Flags are stored in the header as is.
	Flags Flags
}

// DefaultBuildOptions are the default options used by Build.
var DefaultBuildOptions = &BuildOptions{
	Separator: DefaultSeparator,
}

// Build scans the text in r and returns its index.
//
// A record ends at a line consisting only of the separator followed by a
// newline. Text after the last separator line is not part of any record and
// is not covered by the final offset.
func Build(r io.Reader, opts *BuildOptions) (*Dat, error) {
	if opts == nil {
		opts = DefaultBuildOptions
	}
	sep := opts.Separator
	if sep == 0 {
		sep = DefaultSeparator
	}
	if sep == '\n' || !utf8.ValidRune(sep) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
	}
	delim := []byte(string(sep) + "\n")

	d := &Dat{
		Header: Header{
			Version:   Version,
			Flags:     opts.Flags,
			Separator: sep,
		},
	}

	var offset, length uint64
	shortest := uint64(math.MaxUint32)
	longest := uint64(0)

	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	s.Split(splitLines)
	for s.Scan() {
		line := s.Bytes()
		if !bytes.Equal(line, delim) {
			length += uint64(len(line))
			continue
		}

		// End of the record.
		next := offset + length + uint64(len(delim))
		if next > math.MaxUint32 {
			return nil, fmt.Errorf("%w: offset %d", ErrTooLarge, next)
		}
		//nolint:gosec // bounds checked above.
		d.Offsets = append(d.Offsets, uint32(offset))
		d.Header.Count++
		shortest = min(shortest, length)
		longest = max(longest, length)

		offset = next
		length = 0
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning text: %w", err)
	}

	// End of data offset.
	//nolint:gosec // offset is bounds checked in the loop.
	d.Offsets = append(d.Offsets, uint32(offset))

	if d.Header.Count == 0 {
		shortest = 0
	}
	//nolint:gosec // lengths are bounded by offset.
	d.Header.Shortest = uint32(shortest)
	//nolint:gosec // lengths are bounded by offset.
	d.Header.Longest = uint32(longest)

	return d, nil
}

// DefaultPath returns the default .dat file path for the text file at
// textPath. The text file's extension, if any, is replaced.
func DefaultPath(textPath string) string {
	return strings.TrimSuffix(textPath, filepath.Ext(textPath)) + ".dat"
}

// BuildFile indexes the text file at textPath and writes the result to
// datPath. If datPath is empty DefaultPath(textPath) is used. Text files with
// a ".dz" extension are read as dictzip files and indexed by their
// uncompressed contents.
func BuildFile(textPath, datPath string, opts *BuildOptions) (*Dat, error) {
	if datPath == "" {
		datPath = DefaultPath(textPath)
	}

	f, err := os.Open(textPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", textPath, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(textPath), ".dz") {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", textPath, err)
		}
		defer z.Close()
		r = z
	}

	d, err := Build(r, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", textPath, err)
	}

	if err := WriteFile(datPath, d); err != nil {
		return nil, err
	}

	return d, nil
}

// splitLines splits text into lines. Unlike [bufio.ScanLines] the line
// terminator is kept so that offsets can be computed from token lengths.
func splitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
