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

import (
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// Console is the interactive input device fallback: Get prompts on the
// controlling terminal and parses one signed integer per line. Values fed
// with Put are consulted before prompting, and GetMaybe never touches the
// terminal, so a Console behind the event driven engine only ever drains its
// buffer. The readline instance is created lazily on the first prompt.
type Console struct {
	buf    []Cell
	prompt string
	rl     *readline.Instance
}

// NewConsole returns a Console prompting with the default prompt.
func NewConsole() *Console {
	return &Console{prompt: "program input> "}
}

// Put queues v ahead of the terminal.
func (c *Console) Put(v Cell) { c.buf = append(c.buf, v) }

// Get drains the local buffer, then prompts the terminal for a value.
func (c *Console) Get() (Cell, error) {
	if v, ok := c.GetMaybe(); ok {
		return v, nil
	}
	if c.rl == nil {
		rl, err := readline.New(c.prompt)
		if err != nil {
			return 0, errors.Wrap(err, "console")
		}
		c.rl = rl
	}
	line, err := c.rl.Readline()
	if err != nil {
		return 0, errors.Wrap(err, "console read")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid integer given: %q", strings.TrimSpace(line))
	}
	return Cell(n), nil
}

// GetMaybe drains the local buffer; it never prompts.
func (c *Console) GetMaybe() (Cell, bool) {
	if len(c.buf) == 0 {
		return 0, false
	}
	v := c.buf[0]
	c.buf = c.buf[1:]
	return v, true
}

// Close releases the terminal if a prompt was ever shown.
func (c *Console) Close() error {
	if c.rl == nil {
		return nil
	}
	return c.rl.Close()
}
