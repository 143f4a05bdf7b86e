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

package cluster

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/enjmusic/intcode/vm"
)

// chanSize is the per edge channel capacity. Channels block when full; a
// machine running far ahead of its downstream peer simply waits.
const chanSize = 64

// edge is one directed channel between two machines, closed at most once.
type edge struct {
	ch   chan vm.Cell
	once sync.Once
}

func (e *edge) close() {
	if e != nil {
		e.once.Do(func() { close(e.ch) })
	}
}

// Pipeline is a chain of machines running the same program, wired output to
// input with channel backed devices. With feedback enabled the last
// machine's output loops back into the first, forming a cycle.
type Pipeline struct {
	machines []*vm.Instance
	inbound  []*edge // inbound[i] feeds machine i's input; nil if none
	outbound []*edge // outbound[i] carries machine i's output; nil if none
	feedback bool
}

// NewPipeline builds a pipeline of n machines loaded from image. Machine
// i's output feeds machine i+1's input. Without feedback, the first
// machine's input and the last machine's output stay in process (a Queue
// and a Buffer); with feedback they are joined by one more channel edge.
func NewPipeline(image vm.Image, n int, feedback bool) (*Pipeline, error) {
	if n < 1 {
		return nil, errors.Errorf("pipeline needs at least one machine, got %d", n)
	}
	p := &Pipeline{
		machines: make([]*vm.Instance, n),
		inbound:  make([]*edge, n),
		outbound: make([]*edge, n),
		feedback: feedback,
	}
	for i := range p.machines {
		m, err := vm.New(image, vm.Name(fmt.Sprintf("pipe%d", i)))
		if err != nil {
			return nil, err
		}
		p.machines[i] = m
	}
	for i := 0; i < n-1; i++ {
		e := &edge{ch: make(chan vm.Cell, chanSize)}
		p.machines[i].SetOutput(vm.NewChannelOutput(e.ch))
		p.machines[i+1].SetInput(vm.NewChannelInput(e.ch))
		p.outbound[i], p.inbound[i+1] = e, e
	}
	if feedback {
		e := &edge{ch: make(chan vm.Cell, chanSize)}
		p.machines[n-1].SetOutput(vm.NewChannelOutput(e.ch))
		p.machines[0].SetInput(vm.NewChannelInput(e.ch))
		p.outbound[n-1], p.inbound[0] = e, e
	}
	return p, nil
}

// Machine returns machine i, for seeding inputs before Run.
func (p *Pipeline) Machine(i int) *vm.Instance { return p.machines[i] }

// Run drives every machine on its own goroutine until all halt, then
// returns the last machine's final output. When a machine stops, its edges
// are closed so that neighbors degrade per the channel device contract: an
// upstream peer falls back to local buffering, a downstream peer reads the
// edge as permanently empty. A machine error aborts the run and is
// returned; driving goroutines are always joined before Run returns.
func (p *Pipeline) Run() (vm.Cell, error) {
	g := new(errgroup.Group)
	for idx, m := range p.machines {
		idx, m := idx, m
		g.Go(func() error {
			defer p.inbound[idx].close()
			defer p.outbound[idx].close()
			return m.Run()
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	// The final signal is the last machine's most recent output. Without
	// feedback it sits in that machine's Buffer device. With feedback the
	// final send raced the first machine's halt: it ended up either in the
	// device's local fallback buffer or stranded in the feedback channel.
	// Values stranded in the channel predate anything in the fallback
	// buffer, so drain the channel first and let the buffer win.
	last := p.machines[len(p.machines)-1]
	result, found := vm.Cell(0), false
	if e := p.outbound[len(p.machines)-1]; e != nil {
		for v := range e.ch {
			result, found = v, true
		}
	}
	for _, v := range last.Drain() {
		result, found = v, true
	}
	if !found {
		return 0, errors.New("pipeline produced no result")
	}
	return result, nil
}
