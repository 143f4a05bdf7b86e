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
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/enjmusic/intcode/vm"
)

const maxErrors = 10

var mnemonics = map[string]vm.Op{
	"add":  vm.OpAdd,
	"mul":  vm.OpMul,
	"in":   vm.OpInput,
	"out":  vm.OpOutput,
	"jnz":  vm.OpJumpTrue,
	"jez":  vm.OpJumpFalse,
	"lt":   vm.OpLess,
	"eq":   vm.OpEquals,
	"arb":  vm.OpAdjustBase,
	"hlt":  vm.OpHalt,
	"halt": vm.OpHalt,
}

// destinations marks, per opcode, which parameter is a write destination
// and therefore must not be immediate.
var destinations = map[vm.Op]int{
	vm.OpAdd:    2,
	vm.OpMul:    2,
	vm.OpInput:  0,
	vm.OpLess:   2,
	vm.OpEquals: 2,
}

// mode digit weights within an instruction word, per parameter index.
var modeWeight = [3]vm.Cell{100, 1000, 10000}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) ||
		strings.ContainsRune("[]+-:._", ch)
}

type labelUse struct {
	pos  scanner.Position
	cell int // image index to patch with the label's address
}

type label struct {
	pos  scanner.Position
	addr int // -1 while undefined
	uses []labelUse
}

// pending is the instruction currently collecting operands.
type pending struct {
	op    vm.Op
	opIdx int // image index of the opcode word
	need  int
	got   int
}

type parser struct {
	img    []vm.Cell
	pc     int
	s      scanner.Scanner
	labels map[string]*label
	ins    *pending
	data   bool // a .dat directive awaits its argument
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{labels: make(map[string]*label)}
}

func (p *parser) addErr(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	p.img = append(p.img, v)
	p.pc++
}

func (p *parser) useLabel(name string) *label {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{pos: p.s.Pos(), addr: -1}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelUse{p.s.Pos(), p.pc})
	return lbl
}

func (p *parser) defineLabel(name string) {
	if lbl, ok := p.labels[name]; ok {
		if lbl.addr != -1 {
			p.addErr(p.s.Pos(), "label redefinition: "+name+", previous definition here: "+lbl.pos.String())
			return
		}
		lbl.addr = p.pc
		lbl.pos = p.s.Pos()
		return
	}
	p.labels[name] = &label{pos: p.s.Pos(), addr: p.pc}
}

// operand emits one operand token: a value cell, plus its mode digit merged
// into the pending instruction's opcode word.
func (p *parser) operand(s string) {
	ins := p.ins
	if s[0] == ':' {
		p.addErr(p.s.Pos(), "unexpected label definition as argument: "+s)
		return
	}
	mode := vm.Immediate
	inner := s
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") || len(s) < 3 {
			p.addErr(p.s.Pos(), "malformed operand: "+s)
			return
		}
		inner = s[1 : len(s)-1]
		mode = vm.Position
		if len(inner) > 3 && inner[:2] == "rb" && (inner[2] == '+' || inner[2] == '-') {
			mode = vm.Relative
			inner = inner[2:]
			if inner[0] == '+' {
				inner = inner[1:]
			}
		}
	}
	if d, isDest := destinations[ins.op]; isDest && d == ins.got && mode == vm.Immediate {
		p.addErr(p.s.Pos(), "destination operand cannot be immediate: "+s)
		return
	}
	p.img[ins.opIdx] += vm.Cell(mode) * modeWeight[ins.got]
	if n, err := strconv.ParseInt(inner, 10, 64); err == nil {
		p.write(vm.Cell(n))
	} else if mode == vm.Relative {
		p.addErr(p.s.Pos(), "malformed relative operand: "+s)
		p.write(0)
	} else {
		p.useLabel(inner)
		p.write(0)
	}
	ins.got++
	if ins.got == ins.need {
		p.ins = nil
	}
}

func (p *parser) parse(name string, r io.Reader) (vm.Image, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.addErr(pos, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents | scanner.ScanComments | scanner.SkipComments
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.addErr(p.s.Pos(), "unexpected character "+strconv.QuoteRune(tok))
			continue
		}

		switch {
		case p.data:
			p.data = false
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				p.write(vm.Cell(n))
			} else if isLabelName(s) {
				p.useLabel(s)
				p.write(0)
			} else {
				p.addErr(p.s.Pos(), ".dat: expected integer or label, got "+s)
			}
		case p.ins != nil:
			p.operand(s)
		case s[0] == ':':
			if len(s) == 1 {
				p.addErr(p.s.Pos(), "empty label name")
				break
			}
			p.defineLabel(s[1:])
		case s == ".dat":
			p.data = true
		case s[0] == '.':
			p.addErr(p.s.Pos(), "unknown dot directive: "+s)
		default:
			op, ok := mnemonics[s]
			if !ok {
				p.addErr(p.s.Pos(), "unknown mnemonic: "+s)
				break
			}
			n, _ := op.Arity()
			opIdx := p.pc
			p.write(vm.Cell(op))
			if n > 0 {
				p.ins = &pending{op: op, opIdx: opIdx, need: n}
			}
		}
	}

	if p.ins != nil {
		p.addErr(p.s.Pos(), p.ins.op.String()+": missing operands")
	}
	if p.data {
		p.addErr(p.s.Pos(), ".dat: missing argument")
	}

	// patch label uses
	for n, l := range p.labels {
		if l.addr == -1 {
			p.addErr(l.uses[0].pos, "missing label definition for "+n)
			continue
		}
		for _, u := range l.uses {
			p.img[u.cell] = vm.Cell(l.addr)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return vm.Image(p.img), nil
}

func isLabelName(s string) bool {
	return len(s) > 0 && !strings.ContainsAny(s, "[]:.") &&
		!unicode.IsDigit(rune(s[0])) && s[0] != '-' && s[0] != '+'
}
