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

import "github.com/pkg/errors"

// Event is the reason the event driven engine returned control to its
// caller.
type Event int

// Observable events.
const (
	InputRequired  Event = iota // input instruction reached with no value ready
	ProducedOutput              // one value was written to the output device
	Exited                      // halt instruction reached; terminal and repeated
)

func (e Event) String() string {
	switch e {
	case InputRequired:
		return "InputRequired"
	case ProducedOutput:
		return "ProducedOutput"
	case Exited:
		return "Exited"
	}
	return "Event(?)"
}

// eventNone means the instruction completed without anything to report and
// the loop continues internally.
const eventNone Event = -1

// load resolves a parameter to its operand value.
func (i *Instance) load(p Param) Cell {
	switch p.Mode {
	case Immediate:
		return p.Val
	case Relative:
		return i.mem.Load(int(p.Val + i.rbase))
	default:
		return i.mem.Load(int(p.Val))
	}
}

// store resolves a destination parameter and writes v there. Destinations
// are never Immediate.
func (i *Instance) store(p Param, v Cell) {
	addr := int(p.Val)
	if p.Mode == Relative {
		addr = int(p.Val + i.rbase)
	}
	i.mem.Store(addr, v)
}

// exec executes a single decoded instruction. With block set, input reads
// block on the device; otherwise an input instruction with no value ready
// reports InputRequired without touching memory, and the caller must roll
// the instruction pointer back so the instruction is retried whole.
func (i *Instance) exec(in Instr, block bool) (Event, error) {
	switch in.Op {
	case OpAdd:
		i.store(in.Params[2], i.load(in.Params[0])+i.load(in.Params[1]))
	case OpMul:
		i.store(in.Params[2], i.load(in.Params[0])*i.load(in.Params[1]))
	case OpInput:
		if !block {
			v, ok := i.in.GetMaybe()
			if !ok {
				return InputRequired, nil
			}
			i.store(in.Params[0], v)
			break
		}
		v, err := i.in.Get()
		if err != nil {
			return eventNone, errors.Wrap(err, "input")
		}
		i.store(in.Params[0], v)
	case OpOutput:
		i.out.Put(i.load(in.Params[0]))
		return ProducedOutput, nil
	case OpJumpTrue:
		if i.load(in.Params[0]) != 0 {
			i.PC = int(i.load(in.Params[1]))
		}
	case OpJumpFalse:
		if i.load(in.Params[0]) == 0 {
			i.PC = int(i.load(in.Params[1]))
		}
	case OpLess:
		var v Cell
		if i.load(in.Params[0]) < i.load(in.Params[1]) {
			v = 1
		}
		i.store(in.Params[2], v)
	case OpEquals:
		var v Cell
		if i.load(in.Params[0]) == i.load(in.Params[1]) {
			v = 1
		}
		i.store(in.Params[2], v)
	case OpAdjustBase:
		i.rbase += i.load(in.Params[0])
	case OpHalt:
		return Exited, nil
	}
	return eventNone, nil
}

// step counts an executed instruction against the optional step budget.
func (i *Instance) step() error {
	i.insCount++
	if i.maxSteps > 0 && i.insCount > i.maxSteps {
		return errors.Errorf("step budget of %d exceeded", i.maxSteps)
	}
	return nil
}

// Run executes the program until it halts, blocking on device operations as
// needed. A decode or IO error aborts the run immediately with the PC left
// at the offending instruction. Invalid address dereferences by the emulated
// program panic internally and are recovered into errors here.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("machine %s: recovered @pc=%d: %v", i.name, i.PC, e)
		}
	}()
	for !i.halted {
		pc := i.PC
		in, next, err := decode(i.mem.Load, pc)
		if err != nil {
			return errors.Wrapf(err, "machine %s: @pc=%d", i.name, pc)
		}
		i.PC = next
		ev, err := i.exec(in, true)
		if err != nil {
			i.PC = pc
			return errors.Wrapf(err, "machine %s: @pc=%d", i.name, pc)
		}
		if ev == Exited {
			i.PC = pc
			i.halted = true
		}
		if err := i.step(); err != nil {
			return errors.Wrapf(err, "machine %s", i.name)
		}
	}
	return nil
}

// RunUntilEvent executes instructions until one of the three observable
// events occurs and returns it.
//
// If the next input instruction finds no value ready, the instruction
// pointer is rolled back to where it was before the decode and
// InputRequired is returned: no memory mutation has occurred, and supplying
// input then calling again completes the instruction exactly once. After an
// output instruction completes, ProducedOutput is returned with the pointer
// already advanced. Once the machine halts, every subsequent call returns
// Exited without mutating anything.
func (i *Instance) RunUntilEvent() (ev Event, err error) {
	defer func() {
		if e := recover(); e != nil {
			ev, err = 0, errors.Errorf("machine %s: recovered @pc=%d: %v", i.name, i.PC, e)
		}
	}()
	if i.halted {
		return Exited, nil
	}
	for {
		pc := i.PC
		in, next, err := decode(i.mem.Load, pc)
		if err != nil {
			return 0, errors.Wrapf(err, "machine %s: @pc=%d", i.name, pc)
		}
		i.PC = next
		ev, err := i.exec(in, false)
		if err != nil {
			i.PC = pc
			return 0, errors.Wrapf(err, "machine %s: @pc=%d", i.name, pc)
		}
		switch ev {
		case InputRequired:
			// undo the decoder's advance so the instruction is redecoded
			// and retried atomically on resumption
			i.PC = pc
			return InputRequired, nil
		case ProducedOutput:
			if err := i.step(); err != nil {
				return 0, errors.Wrapf(err, "machine %s", i.name)
			}
			return ProducedOutput, nil
		case Exited:
			i.PC = pc
			i.halted = true
			i.insCount++
			return Exited, nil
		}
		if err := i.step(); err != nil {
			return 0, errors.Wrapf(err, "machine %s", i.name)
		}
	}
}
