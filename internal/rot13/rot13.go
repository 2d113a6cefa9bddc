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

// Package rot13 implements a ROT13 [transform.Transformer].
package rot13

import (
	"golang.org/x/text/transform"
)

// Transformer rotates ASCII letters by 13 places. All other bytes, including
// multi-byte UTF-8 sequences, are copied unchanged. ROT13 is its own inverse
// so the same Transformer encodes and decodes.
type Transformer struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (Transformer) Transform(dst, src []byte, _ bool) (int, int, error) {
	n := len(src)
	var err error
	if len(dst) < n {
		n = len(dst)
		err = transform.ErrShortDst
	}

	for i := range n {
		dst[i] = rotate(src[i])
	}

	return n, n, err
}

func rotate(c byte) byte {
	switch {
	case 'a' <= c && c <= 'z':
		return 'a' + (c-'a'+13)%26
	case 'A' <= c && c <= 'Z':
		return 'A' + (c-'A'+13)%26
	default:
		return c
	}
}
