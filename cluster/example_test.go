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
	"fmt"
	"strings"

	"github.com/enjmusic/intcode/cluster"
	"github.com/enjmusic/intcode/vm"
)

func ExamplePipeline() {
	// each stage reads one value and emits it incremented
	img, err := vm.Parse(strings.NewReader("3,9,101,1,9,9,4,9,99,0"))
	if err != nil {
		panic(err)
	}
	p, err := cluster.NewPipeline(img, 3, false)
	if err != nil {
		panic(err)
	}
	p.Machine(0).Feed(0)
	v, err := p.Run()
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// Output:
	// 3
}

func ExampleDrive() {
	img, err := vm.Parse(strings.NewReader("3,9,101,1,9,9,4,9,99,0"))
	if err != nil {
		panic(err)
	}
	m, err := vm.New(img)
	if err != nil {
		panic(err)
	}
	err = cluster.Drive(m,
		func() (vm.Cell, error) { return 20, nil },
		func(v vm.Cell) error { fmt.Println(v); return nil })
	if err != nil {
		panic(err)
	}

	// Output:
	// 21
}
