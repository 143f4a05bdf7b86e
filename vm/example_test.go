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
	"fmt"
	"strings"

	"github.com/enjmusic/intcode/vm"
)

func ExampleInstance_Run() {
	img, err := vm.Parse(strings.NewReader("1,9,10,3,2,3,11,0,99,30,40,50"))
	if err != nil {
		panic(err)
	}
	m, err := vm.New(img)
	if err != nil {
		panic(err)
	}
	if err = m.Run(); err != nil {
		panic(err)
	}
	fmt.Println(m.Mem().Load(0))

	// Output:
	// 3500
}

func ExampleInstance_RunUntilEvent() {
	// reads one value, prints it incremented, halts
	img, err := vm.Parse(strings.NewReader("3,9,101,1,9,9,4,9,99,0"))
	if err != nil {
		panic(err)
	}
	m, err := vm.New(img)
	if err != nil {
		panic(err)
	}

	ev, err := m.RunUntilEvent()
	if err != nil {
		panic(err)
	}
	fmt.Println(ev)

	m.Feed(41)
	ev, err = m.RunUntilEvent()
	if err != nil {
		panic(err)
	}
	fmt.Println(ev)
	if v, ok := m.Out(); ok {
		fmt.Println(v)
	}

	ev, err = m.RunUntilEvent()
	if err != nil {
		panic(err)
	}
	fmt.Println(ev)

	// Output:
	// InputRequired
	// ProducedOutput
	// 42
	// Exited
}
