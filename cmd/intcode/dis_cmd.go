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
	"github.com/spf13/cobra"

	"github.com/enjmusic/intcode/asm"
	"github.com/enjmusic/intcode/vm"
)

var disCmd = &cobra.Command{
	Use:   "dis FILE",
	Short: "Disassemble an Intcode program",
	Long: `Disassemble renders a program file as readable mnemonics: a best effort ` +
		`linear walk that prints words that do not decode as opaque data, since ` +
		`data interleaved with code is common in Intcode programs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := vm.LoadFile(args[0])
		if err != nil {
			return err
		}
		return asm.DisassembleAll(img, 0, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(disCmd)
}
