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

import "github.com/pkg/errors"

// InputDevice supplies values to a running machine. Implementations keep a
// local FIFO buffer fed by Put that is consulted before the underlying
// source. Devices are owned by a single machine and are not safe for
// concurrent use; cross-machine concurrency is confined to the channel
// inside ChannelInput/ChannelOutput.
type InputDevice interface {
	// Put queues v to be returned by future Get/GetMaybe calls before the
	// underlying source is consulted.
	Put(v Cell)
	// Get blocks until a value is available. It fails on an OS level read
	// error, a malformed value, or a vanished peer.
	Get() (Cell, error)
	// GetMaybe returns immediately, reporting false rather than blocking.
	GetMaybe() (Cell, bool)
}

// OutputDevice consumes values produced by a running machine.
type OutputDevice interface {
	// Put delivers v.
	Put(v Cell)
	// Get drains the oldest value retained by the device, if any.
	Get() (Cell, bool)
}

// ErrNoInput is returned by Queue.Get when the queue is empty: a Queue has
// no underlying source to fall back to.
var ErrNoInput = errors.New("input exhausted")

// Queue is an in-process input device: a plain FIFO with no underlying
// source. It is the default input device of a machine.
type Queue struct {
	buf []Cell
}

// NewQueue returns a Queue preloaded with the given values.
func NewQueue(vs ...Cell) *Queue {
	return &Queue{buf: append([]Cell(nil), vs...)}
}

// Put queues v.
func (q *Queue) Put(v Cell) { q.buf = append(q.buf, v) }

// Get dequeues the oldest value, or fails with ErrNoInput.
func (q *Queue) Get() (Cell, error) {
	if v, ok := q.GetMaybe(); ok {
		return v, nil
	}
	return 0, ErrNoInput
}

// GetMaybe dequeues the oldest value without blocking.
func (q *Queue) GetMaybe() (Cell, bool) {
	if len(q.buf) == 0 {
		return 0, false
	}
	v := q.buf[0]
	q.buf = q.buf[1:]
	return v, true
}

// Buffer is an in-process output device: values accumulate in FIFO order
// until drained with Get. It is the default output device of a machine.
type Buffer struct {
	buf []Cell
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Put appends v to the buffer.
func (b *Buffer) Put(v Cell) { b.buf = append(b.buf, v) }

// Get drains the oldest buffered value.
func (b *Buffer) Get() (Cell, bool) {
	if len(b.buf) == 0 {
		return 0, false
	}
	v := b.buf[0]
	b.buf = b.buf[1:]
	return v, true
}

// ChannelInput is an input device backed by a cross goroutine channel.
// Values fed directly with Put are consulted before the channel. Once the
// peer closes the channel it reads as permanently empty: Get fails, and
// GetMaybe keeps reporting false, which under event driven stepping surfaces
// as persistent InputRequired rather than a crash.
type ChannelInput struct {
	buf []Cell
	ch  <-chan Cell
}

// NewChannelInput returns an input device receiving from ch.
func NewChannelInput(ch <-chan Cell) *ChannelInput {
	return &ChannelInput{ch: ch}
}

// Put queues v locally, ahead of anything still in the channel.
func (d *ChannelInput) Put(v Cell) { d.buf = append(d.buf, v) }

// Get drains the local buffer, then blocks on the channel.
func (d *ChannelInput) Get() (Cell, error) {
	if v, ok := d.pop(); ok {
		return v, nil
	}
	v, ok := <-d.ch
	if !ok {
		return 0, errors.New("input channel closed")
	}
	return v, nil
}

// GetMaybe drains the local buffer, then polls the channel without blocking.
func (d *ChannelInput) GetMaybe() (Cell, bool) {
	if v, ok := d.pop(); ok {
		return v, true
	}
	select {
	case v, ok := <-d.ch:
		if !ok {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func (d *ChannelInput) pop() (Cell, bool) {
	if len(d.buf) == 0 {
		return 0, false
	}
	v := d.buf[0]
	d.buf = d.buf[1:]
	return v, true
}

// ChannelOutput is an output device backed by a cross goroutine channel.
// When the receiving end has disappeared (the peer closed the channel),
// values are retained in a local buffer instead of being lost, so they can
// be inspected after the fact with Get.
type ChannelOutput struct {
	buf    []Cell
	ch     chan<- Cell
	closed bool
}

// NewChannelOutput returns an output device sending to ch.
func NewChannelOutput(ch chan<- Cell) *ChannelOutput {
	return &ChannelOutput{ch: ch}
}

// Put sends v to the peer, blocking if the channel is full. If the peer is
// gone, v and every later value land in the local fallback buffer.
func (d *ChannelOutput) Put(v Cell) {
	if d.closed {
		d.buf = append(d.buf, v)
		return
	}
	defer func() {
		// send on a closed channel: the peer vanished mid stream
		if recover() != nil {
			d.closed = true
			d.buf = append(d.buf, v)
		}
	}()
	d.ch <- v
}

// Get drains the oldest value from the fallback buffer.
func (d *ChannelOutput) Get() (Cell, bool) {
	if len(d.buf) == 0 {
		return 0, false
	}
	v := d.buf[0]
	d.buf = d.buf[1:]
	return v, true
}
