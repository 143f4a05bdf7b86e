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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/enjmusic/intcode/vm"
)

var runFlags struct {
	inputs      []int64
	interactive bool
	pokes       []string
	result      int
	maxSteps    int64
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run an Intcode program to completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Int64SliceVarP(&runFlags.inputs, "input", "i", nil,
		"preload an input value (can be repeated)")
	runCmd.Flags().BoolVar(&runFlags.interactive, "interactive", false,
		"prompt on the terminal when the program reads input")
	runCmd.Flags().StringArrayVar(&runFlags.pokes, "poke", nil,
		"patch a memory cell before running, as addr=value (can be repeated)")
	runCmd.Flags().IntVar(&runFlags.result, "result", -1,
		"print the value of this memory cell after the halt instead of the output stream")
	runCmd.Flags().Int64Var(&runFlags.maxSteps, "max-steps", 0,
		"abort after this many executed instructions (0 means unbounded)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	img, err := vm.LoadFile(args[0])
	if err != nil {
		return err
	}

	var opts []vm.Option
	if runFlags.interactive {
		in := vm.NewConsole()
		defer in.Close()
		for _, v := range runFlags.inputs {
			in.Put(vm.Cell(v))
		}
		opts = append(opts, vm.Input(in))
	} else {
		in := vm.NewQueue()
		for _, v := range runFlags.inputs {
			in.Put(vm.Cell(v))
		}
		opts = append(opts, vm.Input(in))
	}
	if runFlags.maxSteps > 0 {
		opts = append(opts, vm.MaxSteps(runFlags.maxSteps))
	}

	m, err := vm.New(img, opts...)
	if err != nil {
		return err
	}
	for _, poke := range runFlags.pokes {
		addr, v, err := parsePoke(poke)
		if err != nil {
			return err
		}
		m.Mem().Store(addr, v)
	}

	if err := m.Run(); err != nil {
		return err
	}
	if runFlags.result >= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), m.Mem().Load(runFlags.result))
		return nil
	}
	for _, v := range m.Drain() {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func parsePoke(s string) (addr int, v vm.Cell, err error) {
	a, val, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, errors.Errorf("malformed poke %q, want addr=value", s)
	}
	addr, err = strconv.Atoi(a)
	if err != nil || addr < 0 {
		return 0, 0, errors.Errorf("malformed poke address %q", a)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, 0, errors.Errorf("malformed poke value %q", val)
	}
	return addr, vm.Cell(n), nil
}
