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

package testing

import (
	"encoding/binary"
	"sync"
	"time"

	veo250 "github.com/diveio/go-veo250"
	"github.com/diveio/go-veo250/internal/frame"
)

// Simulator emulates a Veo 250 behind the veo250.Transport interface. It
// holds a full memory image and answers commands the way the real device
// does: a single ACK or NAK byte, then a checksummed answer frame where the
// protocol calls for one.
type Simulator struct {
	VersionPayload []byte
	pending        []byte
	Memory         [frame.MemorySize]byte
	// NAKCount makes the simulator reject this many commands with a NAK
	// before accepting, for exercising the resend path
	NAKCount int
	mu       sync.Mutex
	closed   bool
}

// NewSimulator creates a simulator with a deterministic memory pattern
func NewSimulator() *Simulator {
	s := &Simulator{
		VersionPayload: BuildVersionPayload(),
	}
	for i := range s.Memory {
		s.Memory[i] = byte(i ^ (i >> 8))
	}
	return s
}

// Write parses one complete command and queues the device's response
func (s *Simulator) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, veo250.ErrNotConnected
	}
	if len(p) == 0 {
		return 0, nil
	}

	switch p[0] {
	case 0x55: // init, no reply
	case 0x98: // handshake banner, no acknowledgement byte
		s.pending = append(s.pending, frame.Banner...)
	case 0x90: // version
		s.answer(s.VersionPayload)
	case 0x20: // packet read
		if len(p) != 6 || p[1] != p[3] || p[2] != p[4] || p[5] != 0x00 {
			s.pending = append(s.pending, frame.NAK)
			break
		}
		number := int(binary.LittleEndian.Uint16(p[1:3]))
		offset := number * frame.PacketSize
		if offset+frame.PacketSize > frame.MemorySize {
			s.pending = append(s.pending, frame.NAK)
			break
		}
		s.answer(s.Memory[offset : offset+frame.PacketSize])
	default:
		s.pending = append(s.pending, frame.NAK)
	}

	return len(p), nil
}

// answer queues an acknowledgement and, once past any scripted NAKs, the
// framed payload
func (s *Simulator) answer(payload []byte) {
	if s.NAKCount > 0 {
		s.NAKCount--
		s.pending = append(s.pending, frame.NAK)
		return
	}
	s.pending = append(s.pending, frame.ACK)
	s.pending = append(s.pending, BuildAnswer(payload)...)
}

// Read serves queued response bytes; an empty queue behaves like an elapsed
// read deadline
func (s *Simulator) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, veo250.ErrNotConnected
	}
	if len(s.pending) == 0 {
		return 0, nil
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

// Drain is a no-op; simulated writes complete instantly
func (*Simulator) Drain() error { return nil }

// Flush discards any queued response bytes
func (s *Simulator) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return nil
}

// SetTimeout is a no-op for the simulator
func (*Simulator) SetTimeout(_ time.Duration) error { return nil }

// SetControlLines is a no-op for the simulator
func (*Simulator) SetControlLines(_, _ bool) error { return nil }

// Close marks the simulator closed
func (s *Simulator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// IsConnected returns true until Close is called
func (s *Simulator) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Type returns the mock transport type
func (*Simulator) Type() veo250.TransportType {
	return veo250.TransportMock
}
