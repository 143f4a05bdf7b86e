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
	"github.com/pkg/errors"

	"github.com/enjmusic/intcode/vm"
)

// Drive runs m in lock step with the caller until the machine exits: in is
// called for a value whenever the machine blocks on input, and out receives
// every value the machine emits. This is the producer/consumer pattern used
// by drivers that interpret the output stream as a structured protocol
// (screens, robots) while steering the machine between events.
//
// An error from either callback aborts the run and is returned wrapped.
func Drive(m *vm.Instance, in func() (vm.Cell, error), out func(vm.Cell) error) error {
	for {
		ev, err := m.RunUntilEvent()
		if err != nil {
			return err
		}
		switch ev {
		case vm.Exited:
			return nil
		case vm.InputRequired:
			if in == nil {
				return errors.New("machine requires input but no input callback was given")
			}
			v, err := in()
			if err != nil {
				return errors.Wrap(err, "input callback")
			}
			m.Feed(v)
		case vm.ProducedOutput:
			v, ok := m.Out()
			if !ok {
				return errors.New("output event with no value retained by the device")
			}
			if out == nil {
				continue
			}
			if err := out(v); err != nil {
				return errors.Wrap(err, "output callback")
			}
		}
	}
}
