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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enjmusic/intcode/vm"
)

func mustParse(t *testing.T, src string) vm.Image {
	t.Helper()
	img, err := vm.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return img
}

func TestParse(t *testing.T) {
	var tests = [...]struct {
		name string
		src  string
		want vm.Image
	}{
		{"simple", "1,2,3", vm.Image{1, 2, 3}},
		{"negatives", "-1,0,-99", vm.Image{-1, 0, -99}},
		{"trailing newline", "1,9,10,3\n", vm.Image{1, 9, 10, 3}},
		{"inner whitespace", " 1, 2 ,3 ", vm.Image{1, 2, 3}},
		{"single", "99", vm.Image{99}},
		{"large", "1125899906842624", vm.Image{1125899906842624}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := vm.Parse(strings.NewReader(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img)
		})
	}
}

func TestParse_errors(t *testing.T) {
	_, err := vm.Parse(strings.NewReader("1,x,3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)

	_, err = vm.Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestMemory_sparse(t *testing.T) {
	img := mustParse(t, "1,9,10,3,2,3,11,0,99,30,40,50")
	m, err := vm.New(img)
	require.NoError(t, err)

	mem := m.Mem()
	far := 10 * len(img)
	mem.Store(far, 1234)
	assert.Equal(t, vm.Cell(1234), mem.Load(far))
	assert.Equal(t, vm.Cell(0), mem.Load(far-1), "never written address reads as zero")
	assert.Equal(t, vm.Cell(0), mem.Load(len(img)+7))

	// dense segment still behaves like a plain array
	mem.Store(0, 2)
	assert.Equal(t, vm.Cell(2), mem.Load(0))
	assert.Equal(t, vm.Cell(2), mem.Image()[0])
}

func TestMemory_copiesImage(t *testing.T) {
	img := vm.Image{1, 0, 0, 0, 99}
	m, err := vm.New(img)
	require.NoError(t, err)
	require.NoError(t, m.Run())
	assert.Equal(t, vm.Cell(1), img[0], "caller's image must not be mutated")
	assert.Equal(t, vm.Cell(2), m.Mem().Load(0))
}

func TestImage_At(t *testing.T) {
	img := vm.Image{7, 8}
	assert.Equal(t, vm.Cell(8), img.At(1))
	assert.Equal(t, vm.Cell(0), img.At(2))
	assert.Equal(t, vm.Cell(0), img.At(100))
}
