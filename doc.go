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

// Package fortune implements a library for reading fortune cookie files in
// pure Go.
//
// A fortune data directory contains pairs of files:
//  1. A text file that contains the fortunes, each followed by a line
//     holding only the separator character (usually '%'). The text file can
//     be compressed using the dictzip format, in which case it has a ".dz"
//     extension.
//  2. A .dat file with the same name plus a ".dat" extension that contains
//     the offset of each fortune in the text file. See package dat.
//
// Fortunes are chosen at random across all files in a directory. Each
// fortune is equally likely so larger files are chosen more often.
//
// Every call reads the directory again. Nothing is cached between calls so
// files can be added or rebuilt while a program is running.
package fortune
