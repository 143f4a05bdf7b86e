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

// Package vm implements an Intcode virtual machine: an interpreter over a
// growable signed 64 bit integer memory with pluggable input and output
// devices.
//
// Programs are comma separated integer text, loaded with Parse or LoadFile
// and run on an Instance. Two execution modes are offered: Run drives the
// machine to completion, blocking on devices as needed, while RunUntilEvent
// steps the machine until it needs input, has produced output, or has
// exited, letting external code interleave with the instruction stream.
// The package examples and the cluster package demonstrate both.
//
// Memory behaves as an infinite zero initialized tape: a dense segment
// holds the loaded program and a sparse overflow structure catches anything
// written past it. Programs may freely address far beyond their own image.
// Dereferencing a negative address, on the other hand, is a bug in the
// emulated program; the engine recovers the resulting panic into an error
// rather than specifying a behavior for it.
package vm
