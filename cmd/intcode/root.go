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
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "intcode",
	Short: "intcode runs, assembles and disassembles Intcode programs",
	Long: `intcode is a driver for the Intcode virtual machine: it runs program ` +
		`files to completion with preloaded or interactive input, renders images ` +
		`as readable mnemonics, compiles assembly text into images, and drives ` +
		`amplifier style machine pipelines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// execute adds all child commands to the root command and sets flags
// appropriately.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
