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

package dat_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-fortune/dat"
	"github.com/ianlewis/go-fortune/internal/testutil"
)

// TestRead tests Read.
func TestRead(t *testing.T) {
	t.Parallel()

	h := dat.Header{
		Version:   dat.Version,
		Count:     3,
		Longest:   5,
		Shortest:  2,
		Separator: '%',
	}

	tests := []struct {
		name string
		data []byte

		expected *dat.Dat
		err      error
	}{
		{
			name: "valid",
			data: testutil.MakeDat(h, []uint32{0, 4, 11, 15}),
			expected: &dat.Dat{
				Header:  h,
				Offsets: []uint32{0, 4, 11, 15},
			},
		},
		{
			name: "extra data ignored",
			data: append(testutil.MakeDat(h, []uint32{0, 4, 11, 15}), 0xff, 0xff),
			expected: &dat.Dat{
				Header:  h,
				Offsets: []uint32{0, 4, 11, 15},
			},
		},
		{
			name: "missing sentinel",
			data: testutil.MakeDat(h, []uint32{0, 4, 11}),
			err:  dat.ErrTruncated,
		},
		{
			name: "partial offset",
			data: testutil.MakeDat(h, []uint32{0, 4, 11, 15})[:dat.HeaderSize+14],
			err:  dat.ErrTruncated,
		},
		{
			name: "no offsets",
			data: testutil.MakeDat(h, nil),
			err:  dat.ErrTruncated,
		},
		{
			name: "decreasing offsets",
			data: testutil.MakeDat(h, []uint32{0, 11, 4, 15}),
			err:  dat.ErrCorrupt,
		},
		{
			name: "incompatible",
			data: testutil.MakeDat(dat.Header{Version: 3, Count: 3}, []uint32{0, 4, 11, 15}),
			err:  dat.ErrIncompatible,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, err := dat.Read(bytes.NewReader(test.data))
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Read (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, d); diff != "" {
				t.Fatalf("Read (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestDat_RoundTrip tests that marshalled files are read back unchanged.
func TestDat_RoundTrip(t *testing.T) {
	t.Parallel()

	d := testutil.MakeIndex([]string{"one", "two two", "three three three"}, '%', dat.Random|dat.Ordered)

	b, err := d.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if diff := cmp.Diff(testutil.MakeDat(d.Header, d.Offsets), b); diff != "" {
		t.Fatalf("MarshalBinary (-want, +got):\n%s", diff)
	}

	got, err := dat.Read(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Fatalf("Read (-want, +got):\n%s", diff)
	}
}

// TestOpen tests that Open reports the file path.
func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "truncated.dat")
	h := dat.Header{Version: dat.Version, Count: 2, Separator: '%'}
	testutil.WriteFile(t, path, testutil.MakeDat(h, []uint32{0, 4}))

	_, err := dat.Open(path)
	if !errors.Is(err, dat.ErrTruncated) {
		t.Fatalf("Open: expected ErrTruncated, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("Open: error %q does not contain %q", err, path)
	}

	_, err = dat.Open(filepath.Join(dir, "missing.dat"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open: expected os.ErrNotExist, got %v", err)
	}
}

// TestWriteFile tests WriteFile.
func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "fortunes.dat")

	// Replace an existing file.
	testutil.WriteFile(t, path, []byte("old"))

	d := testutil.MakeIndex([]string{"hoge", "fuga"}, '%', 0)
	if err := dat.WriteFile(path, d); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := dat.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Fatalf("Open (-want, +got):\n%s", diff)
	}

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if diff := cmp.Diff(1, len(entries)); diff != "" {
		t.Fatalf("ReadDir (-want, +got):\n%s", diff)
	}
}

// TestDat_Record tests Dat.Record.
func TestDat_Record(t *testing.T) {
	t.Parallel()

	d := &dat.Dat{
		Header:  dat.Header{Version: dat.Version, Count: 2, Separator: '%'},
		Offsets: []uint32{0, 5, 12},
	}

	tests := []struct {
		name  string
		index int

		start int64
		end   int64
		err   error
	}{
		{name: "first", index: 0, start: 0, end: 5},
		{name: "last", index: 1, start: 5, end: 12},
		{name: "sentinel", index: 2, err: dat.ErrRecordRange},
		{name: "negative", index: -1, err: dat.ErrRecordRange},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			start, end, err := d.Record(test.index)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Record (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.start, start); diff != "" {
				t.Fatalf("Record start (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.end, end); diff != "" {
				t.Fatalf("Record end (-want, +got):\n%s", diff)
			}
		})
	}
}
