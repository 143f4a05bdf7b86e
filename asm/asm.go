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

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/enjmusic/intcode/internal/errw"
	"github.com/enjmusic/intcode/vm"
)

// An Error records a single assembly error and its source position.
type Error struct {
	Pos scanner.Position
	Msg string
}

// ErrAsm is the error type returned by Assemble: a list of up to 10
// accumulated assembly errors.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s: %s", err.Pos, err.Msg)
	}
	return sb.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns
// the resulting image and error if any.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (vm.Image, error) {
	p := newParser()
	img, err := p.parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Disassemble writes a rendering of the instruction at position pc in mem to
// the specified io.Writer and returns the position of the next instruction
// and any write error. A word that does not decode is rendered as opaque
// data and skipped, since data words interleaved with code are common in
// Intcode programs; decoding problems are never fatal.
func Disassemble(mem vm.Image, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*errw.Writer)
	if ew == nil {
		ew = errw.New(w)
	}

	in, next, derr := vm.Decode(mem, pc)
	if derr != nil {
		fmt.Fprintf(ew, "%-24d ; data", int64(mem[pc]))
		return pc + 1, ew.Err
	}
	raw := make([]int64, 0, next-pc)
	for i := pc; i < next; i++ {
		raw = append(raw, int64(mem.At(i)))
	}
	fmt.Fprintf(ew, "%-24v ; %v", raw, in)
	return next, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given image to the
// specified io.Writer: a best effort linear walk from the start of the
// image. The base argument specifies the real address of the first cell.
// It will return any write error.
func DisassembleAll(mem vm.Image, base int, w io.Writer) error {
	ew := errw.New(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
