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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/enjmusic/intcode/cluster"
	"github.com/enjmusic/intcode/vm"
)

var pipelineFlags struct {
	phases   []int64
	feedback bool
	seed     int64
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline FILE",
	Short: "Run machines chained output to input",
	Long: `Pipeline runs one machine per phase value, wiring each machine's output ` +
		`to the next machine's input. Each machine is fed its phase value first; ` +
		`the first machine then receives the seed value. With --feedback the last ` +
		`machine's output loops back into the first, and the pipeline result is ` +
		`the last value it produced before the whole chain halted.`,
	Args: cobra.ExactArgs(1),
	RunE: runPipeline,
}

func init() {
	pipelineCmd.Flags().Int64SliceVarP(&pipelineFlags.phases, "phase", "p", nil,
		"phase value for each machine, in order (required, one per machine)")
	pipelineCmd.Flags().BoolVarP(&pipelineFlags.feedback, "feedback", "g", false,
		"feed the last machine's output back into the first")
	pipelineCmd.Flags().Int64Var(&pipelineFlags.seed, "seed", 0,
		"initial value given to the first machine")
	rootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	if len(pipelineFlags.phases) == 0 {
		return errors.New("at least one --phase value is required")
	}
	img, err := vm.LoadFile(args[0])
	if err != nil {
		return err
	}
	p, err := cluster.NewPipeline(img, len(pipelineFlags.phases), pipelineFlags.feedback)
	if err != nil {
		return err
	}
	for i, phase := range pipelineFlags.phases {
		p.Machine(i).Feed(vm.Cell(phase))
	}
	p.Machine(0).Feed(vm.Cell(pipelineFlags.seed))
	result, err := p.Run()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
