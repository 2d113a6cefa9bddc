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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-fortune/dat"
	"github.com/ianlewis/go-fortune/internal/rot13"
)

// ErrBadRange indicates that a record's range does not end with a separator
// line. The .dat file does not match its text.
var ErrBadRange = errors.New("bad record range")

// File is a fortune text file and its index.
type File struct {
	datPath  string
	textPath string
	dat      *dat.Dat
}

// OpenFile opens the fortune file indexed by the .dat file at datPath.
func OpenFile(datPath string) (*File, error) {
	d, err := dat.Open(datPath)
	if err != nil {
		return nil, err
	}

	return &File{
		datPath:  datPath,
		textPath: findTextPath(datPath),
		dat:      d,
	}, nil
}

// Name returns the file's logical name. This is the name of the .dat file
// without the extension.
func (f *File) Name() string {
	base := filepath.Base(f.datPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Path returns the path to the text file.
func (f *File) Path() string {
	return f.textPath
}

// DatPath returns the path to the .dat file.
func (f *File) DatPath() string {
	return f.datPath
}

// Header returns the .dat file header.
func (f *File) Header() dat.Header {
	return f.dat.Header
}

// Count returns the number of fortunes in the file.
func (f *File) Count() int {
	return int(f.dat.Header.Count)
}

// Fortune reads fortune i from the text file. Text that is not valid UTF-8 is
// returned as an empty string.
func (f *File) Fortune(i int, opts *Options) (*Fortune, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	start, end, err := f.dat.Record(i)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", f.datPath, err)
	}

	b, err := f.readAt(start, end-start)
	if err != nil {
		return nil, err
	}

	b, ok := dropSeparatorLine(b)
	if !ok {
		return nil, fmt.Errorf("%w: %q: record %d", ErrBadRange, f.datPath, i)
	}

	var text string
	if utf8.Valid(b) {
		text = string(b)
	}

	if opts.Unrotate && f.dat.Header.Flags.Has(dat.Rotated) {
		text, _, err = transform.String(rot13.Transformer{}, text)
		if err != nil {
			return nil, fmt.Errorf("unrotating %q: %w", f.textPath, err)
		}
	}

	return &Fortune{
		File: f.Name(),
		Text: text,
	}, nil
}

// dropSeparatorLine removes the trailing separator line from a record. The
// line is found by its newlines rather than the separator's encoded length,
// which differs between single byte separators in older .dat files and UTF-8
// encoded separators in the text.
func dropSeparatorLine(b []byte) ([]byte, bool) {
	if len(b) == 0 || b[len(b)-1] != '\n' {
		return nil, false
	}
	return b[:bytes.LastIndexByte(b[:len(b)-1], '\n')+1], true
}

// readAt reads size bytes at offset off from the text file.
func (f *File) readAt(off, size int64) ([]byte, error) {
	tf, err := os.Open(f.textPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", f.textPath, err)
	}
	defer tf.Close()

	var r io.ReaderAt = tf
	if strings.EqualFold(filepath.Ext(f.textPath), ".dz") {
		z, err := dictzip.NewReader(tf)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", f.textPath, err)
		}
		defer z.Close()
		r = z
	}

	b := make([]byte, size)
	// NOTE: ReadAt returns an error if fewer than size bytes are read.
	if _, err := r.ReadAt(b, off); err != nil {
		return nil, fmt.Errorf("reading %q: %w", f.textPath, err)
	}
	return b, nil
}

// findTextPath returns the text file path for the .dat file at datPath. A
// plain text file is preferred over a dictzip compressed one.
func findTextPath(datPath string) string {
	baseName := strings.TrimSuffix(datPath, filepath.Ext(datPath))

	textExts := []string{"", ".dz", ".DZ"}
	for _, ext := range textExts {
		textPath := baseName + ext
		if _, err := os.Stat(textPath); err == nil {
			return textPath
		}
	}
	return baseName
}
