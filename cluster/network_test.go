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

package cluster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enjmusic/intcode/asm"
	"github.com/enjmusic/intcode/cluster"
	"github.com/enjmusic/intcode/vm"
)

// forwarder reads its address, announces itself to the NAT as (addr, addr),
// then forwards every packet it receives back to the NAT. It polls with the
// no-packet sentinel in mind and never halts.
const forwarder = `
	in [90]
	out 255
	out [90]
	out [90]
:poll	in [91]
	eq [91] -1 [92]
	jnz [92] poll
	in [93]
	out 255
	out [91]
	out [93]
	jez 0 poll
`

func TestNetwork_natDelivery(t *testing.T) {
	img, err := asm.Assemble("forwarder.ias", strings.NewReader(forwarder))
	require.NoError(t, err)

	n, err := cluster.NewNetwork(img, 2)
	require.NoError(t, err)

	var delivered []cluster.NATEvent
	err = n.Run(func(ev cluster.NATEvent) bool {
		if !ev.Delivered {
			return false
		}
		delivered = append(delivered, ev)
		return ev.Repeat
	})
	require.NoError(t, err)

	// the last announcement wins the NAT buffer, gets re-injected to node 0,
	// comes straight back, and repeats
	require.Len(t, delivered, 2)
	assert.Equal(t, cluster.Packet{X: 1, Y: 1}, delivered[0].Packet)
	assert.False(t, delivered[0].Repeat)
	assert.Equal(t, cluster.Packet{X: 1, Y: 1}, delivered[1].Packet)
	assert.True(t, delivered[1].Repeat)
}

func TestNetwork_firstBuffered(t *testing.T) {
	img, err := asm.Assemble("forwarder.ias", strings.NewReader(forwarder))
	require.NoError(t, err)

	n, err := cluster.NewNetwork(img, 3)
	require.NoError(t, err)

	var first *cluster.NATEvent
	err = n.Run(func(ev cluster.NATEvent) bool {
		first = &ev
		return true
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.False(t, first.Delivered)
	assert.Equal(t, cluster.Packet{X: 0, Y: 0}, first.Packet, "node 0 announces first")
}

func TestNetwork_invalidAddress(t *testing.T) {
	n, err := cluster.NewNetwork(mustParse(t, "104,7,104,0,104,0,99"), 2)
	require.NoError(t, err)

	err = n.Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid packet address 7")
}

func TestNetwork_natAddrOption(t *testing.T) {
	// same sends, but address 7 now names the NAT instead of being invalid
	n, err := cluster.NewNetwork(mustParse(t, "104,7,104,0,104,0,99"), 2,
		cluster.NATAddr(7))
	require.NoError(t, err)

	var got *cluster.NATEvent
	err = n.Run(func(ev cluster.NATEvent) bool {
		if !ev.Delivered {
			return false
		}
		got = &ev
		return true
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cluster.Packet{X: 0, Y: 0}, got.Packet)
}

func TestNetwork_allHalted(t *testing.T) {
	n, err := cluster.NewNetwork(vm.Image{99}, 2)
	require.NoError(t, err)

	err = n.Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all machines halted")
}

func TestNewNetwork_invalid(t *testing.T) {
	_, err := cluster.NewNetwork(vm.Image{99}, 0)
	require.Error(t, err)
}
