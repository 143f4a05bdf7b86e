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

import "github.com/rs/xid"

// Instance represents an Intcode machine instance. An instance is strictly
// sequential: its execution loop has no internal parallelism, and it owns
// its memory and devices exclusively. Concurrency arises from composition,
// with multiple instances wired together through channel backed devices.
type Instance struct {
	// PC is the instruction pointer. It is exported for drivers and
	// diagnostics; nothing but the execution loop should write it.
	PC int

	mem      Memory
	rbase    Cell
	in       InputDevice
	out      OutputDevice
	name     string
	halted   bool
	insCount int64
	maxSteps int64
}

// Option interface
type Option func(*Instance) error

// Input sets the machine's input device.
func Input(d InputDevice) Option {
	return func(i *Instance) error { i.in = d; return nil }
}

// Output sets the machine's output device.
func Output(d OutputDevice) Option {
	return func(i *Instance) error { i.out = d; return nil }
}

// Name sets the machine's name, used to attribute errors when many machines
// run together. The default is a generated unique id.
func Name(name string) Option {
	return func(i *Instance) error { i.name = name; return nil }
}

// MaxSteps imposes an external step budget: Run and RunUntilEvent fail once
// the machine has executed more than n instructions. The engine itself does
// not guarantee liveness, so callers running untrusted programs should set
// a budget. The default 0 means unbounded.
func MaxSteps(n int64) Option {
	return func(i *Instance) error { i.maxSteps = n; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine instance.
//
// The image parameter is the parsed program, usually obtained from Parse or
// LoadFile. It is copied into the machine's dense memory segment, so the
// caller may reuse it for further instances.
//
// Unless overridden by options, input is an empty Queue and output a Buffer.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem:  newMemory(image),
		name: xid.New().String(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.in == nil {
		i.in = NewQueue()
	}
	if i.out == nil {
		i.out = NewBuffer()
	}
	return i, nil
}

// Mem returns the machine's memory for introspection: drivers read result
// cells after a halt with Mem().Load and patch programs with Mem().Store.
func (i *Instance) Mem() *Memory { return &i.mem }

// SetInput replaces the input device. Devices are interchangeable at any
// time, even while the machine is suspended between events.
func (i *Instance) SetInput(d InputDevice) { i.in = d }

// SetOutput replaces the output device.
func (i *Instance) SetOutput(d OutputDevice) { i.out = d }

// Feed queues v on the machine's input device.
func (i *Instance) Feed(v Cell) { i.in.Put(v) }

// Out drains the oldest value retained by the machine's output device.
func (i *Instance) Out() (Cell, bool) { return i.out.Get() }

// Drain empties the machine's output device.
func (i *Instance) Drain() []Cell {
	var vs []Cell
	for v, ok := i.out.Get(); ok; v, ok = i.out.Get() {
		vs = append(vs, v)
	}
	return vs
}

// String returns the machine's name.
func (i *Instance) String() string { return i.name }

// Halted reports whether the machine has executed its halt instruction.
func (i *Instance) Halted() bool { return i.halted }

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 { return i.insCount }
