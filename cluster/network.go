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

	"github.com/pkg/errors"

	"github.com/enjmusic/intcode/vm"
)

// NoPacket is the sentinel fed to a machine polling an empty queue, so that
// no machine ever blocks the round robin loop.
const NoPacket vm.Cell = -1

// DefaultNATAddr is the destination address routed to the NAT aggregator.
const DefaultNATAddr vm.Cell = 255

// Packet is one X, Y pair exchanged on the network.
type Packet struct {
	X, Y vm.Cell
}

// NATEvent reports NAT aggregator activity to the Run stop condition.
type NATEvent struct {
	Packet    Packet
	Delivered bool // re-injected to address 0 on idle, rather than freshly buffered
	Repeat    bool // delivered packet's Y equals the previously delivered one's
}

// Network is a switched network of machines running the same program, each
// seeded with its own address, polled round robin by a single coordinating
// loop with the event driven engine. Output is interpreted as triples
// (dst, x, y). Triples addressed to the NAT are buffered, last one wins,
// and re-injected to address 0 whenever the whole network is simultaneously
// idle.
type Network struct {
	machines []*vm.Instance
	queues   [][]Packet
	partial  [][]vm.Cell
	natAddr  vm.Cell
	nat      *Packet
	lastSent *Packet
}

// NetOption configures a Network.
type NetOption func(*Network)

// NATAddr overrides the destination address handled by the NAT aggregator.
func NATAddr(addr vm.Cell) NetOption {
	return func(n *Network) { n.natAddr = addr }
}

// NewNetwork builds a network of size machines loaded from image, each fed
// its own address as the first input value.
func NewNetwork(image vm.Image, size int, opts ...NetOption) (*Network, error) {
	if size < 1 {
		return nil, errors.Errorf("network needs at least one machine, got %d", size)
	}
	n := &Network{
		machines: make([]*vm.Instance, size),
		queues:   make([][]Packet, size),
		partial:  make([][]vm.Cell, size),
		natAddr:  DefaultNATAddr,
	}
	for _, opt := range opts {
		opt(n)
	}
	for addr := range n.machines {
		m, err := vm.New(image, vm.Name(fmt.Sprintf("node%d", addr)))
		if err != nil {
			return nil, err
		}
		m.Feed(vm.Cell(addr))
		n.machines[addr] = m
	}
	return n, nil
}

// Run polls every machine round robin until stop returns true or a machine
// fails. stop is consulted once whenever the NAT buffers a fresh packet and
// once whenever it delivers one to address 0 after an idle round. Run fails
// if a machine errors, or if every machine has halted with nothing left for
// the NAT to deliver.
func (n *Network) Run(stop func(NATEvent) bool) error {
	for {
		idle := true
		exited := 0
		for addr, m := range n.machines {
			ev, err := m.RunUntilEvent()
			if err != nil {
				return err
			}
			switch ev {
			case vm.Exited:
				// an exited machine keeps reporting this event; skip it
				exited++
			case vm.InputRequired:
				q := n.queues[addr]
				if len(q) == 0 {
					m.Feed(NoPacket)
					break
				}
				idle = false
				pkt := q[0]
				n.queues[addr] = q[1:]
				m.Feed(pkt.X)
				m.Feed(pkt.Y)
			case vm.ProducedOutput:
				idle = false
				v, ok := m.Out()
				if !ok {
					return errors.Errorf("node%d: output event with no value", addr)
				}
				n.partial[addr] = append(n.partial[addr], v)
				if len(n.partial[addr]) < 3 {
					break
				}
				dst, pkt := n.partial[addr][0], Packet{n.partial[addr][1], n.partial[addr][2]}
				n.partial[addr] = n.partial[addr][:0]
				switch {
				case dst == n.natAddr:
					n.nat = &pkt
					if stop != nil && stop(NATEvent{Packet: pkt}) {
						return nil
					}
				case dst >= 0 && int(dst) < len(n.machines):
					n.queues[dst] = append(n.queues[dst], pkt)
				default:
					return errors.Errorf("node%d: invalid packet address %d", addr, dst)
				}
			}
		}

		if exited == len(n.machines) && n.nat == nil {
			return errors.New("all machines halted")
		}

		if idle && n.nat != nil {
			pkt := *n.nat
			ev := NATEvent{
				Packet:    pkt,
				Delivered: true,
				Repeat:    n.lastSent != nil && n.lastSent.Y == pkt.Y,
			}
			if stop != nil && stop(ev) {
				return nil
			}
			n.queues[0] = append(n.queues[0], pkt)
			n.lastSent, n.nat = &pkt, nil
		}
	}
}
