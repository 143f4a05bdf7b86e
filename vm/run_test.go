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

package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enjmusic/intcode/vm"
)

func TestRunUntilEvent_inputAtomicity(t *testing.T) {
	m, err := vm.New(mustParse(t, "3,5,4,5,99,7"))
	require.NoError(t, err)

	// suspending on an empty device must leave no trace of the attempt
	ev, err := m.RunUntilEvent()
	require.NoError(t, err)
	assert.Equal(t, vm.InputRequired, ev)
	assert.Equal(t, 0, m.PC, "suspended input must be retried from its own address")
	assert.Equal(t, vm.Cell(7), m.Mem().Load(5), "suspended input must not touch memory")

	// still starving: same event again
	ev, err = m.RunUntilEvent()
	require.NoError(t, err)
	assert.Equal(t, vm.InputRequired, ev)
	assert.Equal(t, 0, m.PC)

	m.Feed(42)
	ev, err = m.RunUntilEvent()
	require.NoError(t, err)
	assert.Equal(t, vm.ProducedOutput, ev)
	assert.Equal(t, vm.Cell(42), m.Mem().Load(5), "retried input executes exactly once")
	assert.Equal(t, 4, m.PC, "output leaves the counter past the out instruction")

	v, ok := m.Out()
	require.True(t, ok)
	assert.Equal(t, vm.Cell(42), v)

	ev, err = m.RunUntilEvent()
	require.NoError(t, err)
	assert.Equal(t, vm.Exited, ev)
	assert.True(t, m.Halted())
	assert.Equal(t, 4, m.PC, "exit leaves the counter on the halt instruction")
}

func TestRunUntilEvent_exitedIdempotent(t *testing.T) {
	m, err := vm.New(vm.Image{99})
	require.NoError(t, err)

	for n := 0; n < 3; n++ {
		ev, err := m.RunUntilEvent()
		require.NoError(t, err)
		assert.Equal(t, vm.Exited, ev)
	}
	assert.Equal(t, int64(1), m.InstructionCount(), "halt executes once, later calls are no-ops")
	assert.Equal(t, vm.Image{99}, m.Mem().Image())
}

func TestRunUntilEvent_promptLoop(t *testing.T) {
	m, err := vm.New(mustParse(t, "3,9,101,1,9,9,4,9,99,0"))
	require.NoError(t, err)

	ev, err := m.RunUntilEvent()
	require.NoError(t, err)
	require.Equal(t, vm.InputRequired, ev)

	m.Feed(5)
	ev, err = m.RunUntilEvent()
	require.NoError(t, err)
	require.Equal(t, vm.ProducedOutput, ev)
	v, ok := m.Out()
	require.True(t, ok)
	assert.Equal(t, vm.Cell(6), v)

	ev, err = m.RunUntilEvent()
	require.NoError(t, err)
	assert.Equal(t, vm.Exited, ev)
}

func TestRunUntilEvent_decodeError(t *testing.T) {
	m, err := vm.New(vm.Image{98})
	require.NoError(t, err)
	_, err = m.RunUntilEvent()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid opcode 98")
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "InputRequired", vm.InputRequired.String())
	assert.Equal(t, "ProducedOutput", vm.ProducedOutput.String())
	assert.Equal(t, "Exited", vm.Exited.String())
}
