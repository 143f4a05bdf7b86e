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
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Intcode opcodes: the low two decimal digits of an instruction word.
const (
	OpAdd        Op = 1
	OpMul        Op = 2
	OpInput      Op = 3
	OpOutput     Op = 4
	OpJumpTrue   Op = 5
	OpJumpFalse  Op = 6
	OpLess       Op = 7
	OpEquals     Op = 8
	OpAdjustBase Op = 9
	OpHalt       Op = 99
)

// Op is an instruction's operation selector.
type Op Cell

// Arity returns the number of parameters an opcode takes. ok is false for
// opcodes outside the known set.
func (op Op) Arity() (n int, ok bool) {
	switch op {
	case OpAdd, OpMul, OpLess, OpEquals:
		return 3, true
	case OpInput, OpOutput, OpAdjustBase:
		return 1, true
	case OpJumpTrue, OpJumpFalse:
		return 2, true
	case OpHalt:
		return 0, true
	}
	return 0, false
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpInput:
		return "in"
	case OpOutput:
		return "out"
	case OpJumpTrue:
		return "jnz"
	case OpJumpFalse:
		return "jez"
	case OpLess:
		return "lt"
	case OpEquals:
		return "eq"
	case OpAdjustBase:
		return "arb"
	case OpHalt:
		return "hlt"
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode selects how a parameter's raw value maps to an operand.
type Mode int

// Parameter modes.
const (
	Position  Mode = 0 // value is an address to dereference
	Immediate Mode = 1 // value is used literally
	Relative  Mode = 2 // value is an offset from the relative base register
)

// Param is a raw parameter value tagged with its mode.
type Param struct {
	Val  Cell
	Mode Mode
}

func (p Param) String() string {
	switch p.Mode {
	case Immediate:
		return strconv.FormatInt(int64(p.Val), 10)
	case Relative:
		return fmt.Sprintf("[rb%+d]", p.Val)
	default:
		return fmt.Sprintf("[%d]", p.Val)
	}
}

// Instr is a decoded instruction.
type Instr struct {
	Op     Op
	Params []Param
}

func (in Instr) String() string {
	p := in.Params
	switch in.Op {
	case OpAdd:
		return fmt.Sprintf("add: %v <- %v + %v", p[2], p[0], p[1])
	case OpMul:
		return fmt.Sprintf("mul: %v <- %v * %v", p[2], p[0], p[1])
	case OpInput:
		return fmt.Sprintf("in: %v", p[0])
	case OpOutput:
		return fmt.Sprintf("out: %v", p[0])
	case OpJumpTrue:
		return fmt.Sprintf("jnz: %v if %v", p[1], p[0])
	case OpJumpFalse:
		return fmt.Sprintf("jez: %v if not %v", p[1], p[0])
	case OpLess:
		return fmt.Sprintf("lt: %v <- %v < %v", p[2], p[0], p[1])
	case OpEquals:
		return fmt.Sprintf("eq: %v <- %v == %v", p[2], p[0], p[1])
	case OpAdjustBase:
		return fmt.Sprintf("arb %v", p[0])
	case OpHalt:
		return "hlt"
	}
	return in.Op.String()
}

// decode decodes the instruction starting at pc and returns it along with
// the position of the following instruction. The opcode is the low two
// decimal digits of the word at pc; the remaining digits select parameter
// modes, consumed least significant first as the parameter list is walked,
// defaulting to Position.
func decode(load func(int) Cell, pc int) (Instr, int, error) {
	w := load(pc)
	op := Op(w % 100)
	n, ok := op.Arity()
	if !ok {
		return Instr{}, pc, errors.Errorf("invalid opcode %d", w%100)
	}
	in := Instr{Op: op, Params: make([]Param, n)}
	modes := w / 100
	for i := 0; i < n; i++ {
		m := Position
		switch modes % 10 {
		case 0:
			m = Position
		case 1:
			m = Immediate
		default:
			m = Relative
		}
		in.Params[i] = Param{Val: load(pc + 1 + i), Mode: m}
		modes /= 10
	}
	return in, pc + 1 + n, nil
}

// Decode decodes the instruction starting at pc in img, reading zero past
// the end of the image. It returns the decoded instruction and the position
// of the following one.
func Decode(img Image, pc int) (Instr, int, error) {
	return decode(img.At, pc)
}
