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

// Package cluster composes multiple Intcode machine instances.
//
// Three composition patterns are provided. A Pipeline wires machines
// output to input through channel backed devices and drives each on its own
// goroutine, optionally feeding the last machine's output back into the
// first. Drive runs a single machine in lock step with caller supplied
// input and output callbacks, for consumers that interpret the output
// stream as a structured protocol. A Network round robins over many
// machines with the event driven engine, feeding a sentinel when a
// machine's packet queue is empty so that no machine can stall the others,
// and re-injecting the aggregator's packet when the whole network is idle.
//
// Machines never share mutable state: every machine is owned by exactly one
// goroutine, and all cross machine traffic flows through channels.
package cluster
