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

// Package asm provides utility functions to assemble and disassemble
// Intcode programs.
//
// Supported assembler mnemonics, with operands in encoding order:
//
//	opcode	asm	operands	description
//	------	---	--------	------------------------------------------------
//	1	add	a b dest	dest <- a + b
//	2	mul	a b dest	dest <- a * b
//	3	in	dest		read one input value into dest
//	4	out	a		write a to the output device
//	5	jnz	p target	jump to target if p is not zero
//	6	jez	p target	jump to target if p is zero
//	7	lt	a b dest	dest <- 1 if a < b else 0
//	8	eq	a b dest	dest <- 1 if a == b else 0
//	9	arb	a		add a to the relative base register
//	99	hlt			halt
//
// Operand syntax selects the parameter mode:
//
//	42		immediate: the value itself
//	[42]		position: the value at address 42
//	[rb+2] [rb-1]	relative: the value at relative base + offset
//
// Operands used as write destinations must not be immediate.
//
// Labels are defined with a leading colon (":loop") and refer to the
// address of the next emitted cell. A bare label operand assembles as an
// immediate holding the label's address (what jump targets want); "[label]"
// assembles as a position reference. The ".dat" directive emits its single
// integer or label argument as a raw data cell. Comments are Go style,
// line ("//") or general ("/* */").
package asm
