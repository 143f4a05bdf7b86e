// This file is part of intcode - https://github.com/enjmusic/intcode
//
// Copyright 2019 The intcode Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Image is the dense memory segment of a machine, as loaded from program
// text.
type Image []Cell

// At returns the cell at addr, reading zero past the end of the image.
func (img Image) At(addr int) Cell {
	if addr < len(img) {
		return img[addr]
	}
	return 0
}

// Memory is a machine's address space: a dense image segment initialized
// from the loaded program, extended by a sparse overflow map for any address
// written past the end of the image. Any address never written reads as
// zero. Dereferencing a negative address is a bug in the emulated program
// and panics; the execution engine recovers such panics into errors.
type Memory struct {
	image Image
	ext   map[int]Cell
}

func newMemory(image Image) Memory {
	m := Memory{image: make(Image, len(image)), ext: make(map[int]Cell)}
	copy(m.image, image)
	return m
}

// Load returns the value at addr. It never fails: addresses past the dense
// segment fall through to the overflow map and read as zero if unwritten.
func (m *Memory) Load(addr int) Cell {
	if addr < len(m.image) {
		return m.image[addr]
	}
	return m.ext[addr]
}

// Store writes v at addr, extending storage as needed.
func (m *Memory) Store(addr int, v Cell) {
	if addr < len(m.image) {
		m.image[addr] = v
		return
	}
	m.ext[addr] = v
}

// Image returns the dense memory segment. Value changes will be reflected in
// the machine's memory.
func (m *Memory) Image() Image {
	return m.image
}

// Parse reads a program image from r: comma separated signed integers with
// optional surrounding whitespace.
func Parse(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	var img Image
	for _, tok := range strings.Split(strings.TrimSpace(string(b)), ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid integer given: %q", tok)
		}
		img = append(img, Cell(n))
	}
	return img, nil
}

// LoadFile loads a program image from file fileName.
func LoadFile(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := Parse(f)
	return img, errors.Wrapf(err, "load %s", fileName)
}
