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

// Package dat implements reading and writing fortune .dat files.
//
// A .dat file indexes a fortune text file. The text file contains records
// separated by lines holding only the separator character (usually '%').
// The .dat file comes in two parts:
//  1. A 24 byte header made of six 4 byte fields: version, count, longest,
//     shortest and flags in network byte order, followed by the separator
//     character as a little-endian code point.
//  2. The offset table: count+1 offsets in network byte order. Offset i is
//     the byte offset of record i in the text file. The final offset marks
//     the end of the last record.
//
// Offsets always refer to the text file and never to the .dat file itself.
package dat
