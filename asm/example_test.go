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

package asm_test

import (
	"fmt"
	"strings"

	"github.com/enjmusic/intcode/asm"
)

func ExampleAssemble() {
	const src = `
	add 2 3 [5]
	out 0
	hlt
`
	img, err := asm.Assemble("example.ias", strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	sep := ""
	for _, v := range img {
		fmt.Print(sep, v)
		sep = ","
	}
	fmt.Println()

	// Output:
	// 1101,2,3,5,104,0,99
}
