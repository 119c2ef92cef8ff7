// go-veo250
// Copyright (c) 2026 The DiveIO Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-veo250.
//
// go-veo250 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-veo250 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-veo250; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package veo250

import (
	"sync"
	"time"

	"github.com/diveio/go-veo250/internal/frame"
)

// MockTransport is a scriptable byte-level transport for tests. Reads are
// served from a queue of chunks; an exhausted queue behaves like a transport
// whose read deadline elapsed (zero bytes, nil error).
type MockTransport struct {
	writeErr error
	drainErr error
	flushErr error
	closeErr error
	reads    []mockChunk
	writes   [][]byte
	timeout  time.Duration
	flushes  int
	mu       sync.Mutex
	closed   bool
	dtr      bool
	rts      bool
}

type mockChunk struct {
	err  error
	data []byte
}

// NewMockTransport creates a new mock transport with an empty read script
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// QueueRead appends bytes to the read script
func (m *MockTransport) QueueRead(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, mockChunk{data: append([]byte(nil), data...)})
}

// QueueReadError appends a failing read to the script
func (m *MockTransport) QueueReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, mockChunk{err: err})
}

// QueueAck scripts a positive acknowledgement byte
func (m *MockTransport) QueueAck() {
	m.QueueRead([]byte{frame.ACK})
}

// QueueNAK scripts a negative acknowledgement byte
func (m *MockTransport) QueueNAK() {
	m.QueueRead([]byte{frame.NAK})
}

// QueueAnswer scripts an ACK followed by a well-formed answer frame carrying
// payload: checksum byte and NAK terminator appended.
func (m *MockTransport) QueueAnswer(payload []byte) {
	m.QueueAck()
	answer := append([]byte(nil), payload...)
	answer = append(answer, frame.Checksum(payload, 0x00), frame.NAK)
	m.QueueRead(answer)
}

// SetWriteError makes all subsequent writes fail with err
func (m *MockTransport) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// SetDrainError makes all subsequent drains fail with err
func (m *MockTransport) SetDrainError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drainErr = err
}

// SetFlushError makes all subsequent flushes fail with err
func (m *MockTransport) SetFlushError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushErr = err
}

// SetCloseError makes Close fail with err
func (m *MockTransport) SetCloseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeErr = err
}

// Writes returns a copy of every buffer written so far
func (m *MockTransport) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	writes := make([][]byte, len(m.writes))
	for i, w := range m.writes {
		writes[i] = append([]byte(nil), w...)
	}
	return writes
}

// Flushes returns how many times the queues were flushed
func (m *MockTransport) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// Write records the outgoing command
func (m *MockTransport) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrNotConnected
	}
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.writes = append(m.writes, append([]byte(nil), p...))
	return len(p), nil
}

// Read serves the next scripted chunk. Chunks larger than p are served
// across multiple reads, mimicking a serial port delivering partial data.
func (m *MockTransport) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrNotConnected
	}
	if len(m.reads) == 0 {
		// Deadline elapsed with nothing on the wire
		return 0, nil
	}

	chunk := m.reads[0]
	if chunk.err != nil {
		m.reads = m.reads[1:]
		return 0, chunk.err
	}

	n := copy(p, chunk.data)
	if n < len(chunk.data) {
		m.reads[0].data = chunk.data[n:]
	} else {
		m.reads = m.reads[1:]
	}
	return n, nil
}

// Drain reports the scripted drain outcome
func (m *MockTransport) Drain() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drainErr
}

// Flush counts queue flushes
func (m *MockTransport) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flushErr != nil {
		return m.flushErr
	}
	m.flushes++
	return nil
}

// SetTimeout records the configured deadline
func (m *MockTransport) SetTimeout(timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
	return nil
}

// SetControlLines records the DTR/RTS state
func (m *MockTransport) SetControlLines(dtr, rts bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dtr, m.rts = dtr, rts
	return nil
}

// Close marks the transport closed
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return m.closeErr
}

// IsConnected returns true until Close is called
func (m *MockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// Type returns TransportMock
func (*MockTransport) Type() TransportType {
	return TransportMock
}
