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
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-fortune/dat"
)

// FortuneFile describes a test fortune file.
type FortuneFile struct {
	// Name is the logical name of the file. The text is written to Name and
	// the index to Name + ".dat".
	Name string

	// Records are the fortunes in the file.
	Records []string

	// Separator is the record separator. Defaults to '%'.
	Separator rune

	// Flags are stored in the index header.
	Flags dat.Flags

	// DictZip indicates that the text should be written compressed to
	// Name + ".dz".
	DictZip bool

	// Dat overrides the generated .dat file contents when not nil.
	Dat []byte
}

// GetSeparator returns the separator or the default separator.
func (f *FortuneFile) GetSeparator() rune {
	if f.Separator == 0 {
		return dat.DefaultSeparator
	}
	return f.Separator
}

// WriteFortuneDir writes the given fortune files to a temporary directory and
// returns its path.
func WriteFortuneDir(t *testing.T, files []*FortuneFile) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		sep := f.GetSeparator()

		text := MakeText(f.Records, sep)
		textPath := filepath.Join(dir, f.Name)
		if f.DictZip {
			WriteDictZip(t, textPath+".dz", text)
		} else {
			WriteFile(t, textPath, text)
		}

		b := f.Dat
		if b == nil {
			d := MakeIndex(f.Records, sep, f.Flags)
			b = MakeDat(d.Header, d.Offsets)
		}
		WriteFile(t, filepath.Join(dir, f.Name+".dat"), b)
	}

	return dir
}

// WriteFile writes b to path.
func WriteFile(t *testing.T, path string, b []byte) {
	t.Helper()

	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
}

// WriteDictZip writes b to path compressed using the dictzip format.
func WriteDictZip(t *testing.T, path string, b []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}
