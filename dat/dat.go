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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrCorrupt indicates that the offset table is inconsistent.
	ErrCorrupt = errors.New("corrupt dat file")

	// ErrRecordRange indicates a record index outside of the offset table.
	ErrRecordRange = errors.New("record out of range")
)

// Dat is an in-memory .dat file.
type Dat struct {
	Header Header

	// Offsets holds Header.Count+1 offsets into the text file.
	Offsets []uint32
}

// Read reads a .dat file from r. ErrIncompatible is returned if the file is
// not usable. Any other error means the file is corrupt or could not be read.
func Read(r io.Reader) (*Dat, error) {
	br := bufio.NewReader(r)

	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	offsets, err := ReadOffsets(br, h.Count)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("%w: offset %d decreases", ErrCorrupt, i)
		}
	}

	return &Dat{
		Header:  *h,
		Offsets: offsets,
	}, nil
}

// Open reads the .dat file at path.
func Open(path string) (*Dat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (d *Dat) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, HeaderSize+offsetSize*len(d.Offsets))
	b, err := d.Header.AppendBinary(b)
	if err != nil {
		return nil, err
	}
	return AppendOffsets(b, d.Offsets), nil
}

// WriteTo implements [io.WriterTo].
func (d *Dat) WriteTo(w io.Writer) (int64, error) {
	b, err := d.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	if err != nil {
		return int64(n), fmt.Errorf("writing dat file: %w", err)
	}
	return int64(n), nil
}

// Record returns the start and end offsets of record i in the text file. The
// end offset includes the record's separator line.
func (d *Dat) Record(i int) (int64, int64, error) {
	if i < 0 || i+1 >= len(d.Offsets) {
		return 0, 0, fmt.Errorf("%w: %d", ErrRecordRange, i)
	}
	return int64(d.Offsets[i]), int64(d.Offsets[i+1]), nil
}

// WriteFile writes d to path. The file is first written to a temporary file in
// the same directory and then renamed so that readers never see a partially
// written file.
func WriteFile(path string, d *Dat) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	tmpPath := f.Name()
	defer os.Remove(tmpPath)

	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	//nolint:gosec // .dat files are meant to be world readable.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return nil
}
