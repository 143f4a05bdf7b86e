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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/enjmusic/intcode/asm"
)

var asmCmd = &cobra.Command{
	Use:   "asm FILE",
	Short: "Assemble Intcode assembly text into a program image",
	Long: `Assemble compiles a text file of Intcode mnemonics into a program image ` +
		`and prints it in the comma separated load format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open failed")
		}
		defer f.Close()
		img, err := asm.Assemble(args[0], f)
		if err != nil {
			return err
		}
		cells := make([]string, len(img))
		for i, v := range img {
			cells[i] = strconv.FormatInt(int64(v), 10)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cells, ","))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
}
