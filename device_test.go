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
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diveio/go-veo250/internal/frame"
)

// packetFor builds the payload the mock serves for a given packet index, so
// tests can verify data ends up at the right offset
func packetFor(number int) []byte {
	payload := make([]byte, frame.PacketSize)
	for i := range payload {
		payload[i] = byte(number)
	}
	return payload
}

// TestConnect verifies the open sequence: flush, init, handshake, in order
func TestConnect(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.QueueRead(frame.Banner)

	device := newTestDevice(t, mock)
	require.NoError(t, device.Connect())

	assert.Equal(t, 1, mock.Flushes())
	writes := mock.Writes()
	require.Len(t, writes, 2)
	assert.Equal(t, initCommand(), writes[0])
	assert.Equal(t, handshakeCommand(), writes[1])
}

// TestConnectSurfacesHandshakeFailure verifies open failures are reported
// instead of silently swallowed
func TestConnectSurfacesHandshakeFailure(t *testing.T) {
	t.Parallel()

	mutated := append([]byte(nil), frame.Banner...)
	mutated[0] = 'X'

	mock := NewMockTransport()
	mock.QueueRead(mutated)

	device := newTestDevice(t, mock)
	err := device.Connect()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandshakeFailed)
}

// TestConnectNotConnected verifies Connect refuses a closed transport
func TestConnectNotConnected(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	device := newTestDevice(t, mock)
	require.NoError(t, mock.Close())

	assert.ErrorIs(t, device.Connect(), ErrNotConnected)
}

// TestClose verifies the quiescing handshake result is discarded and the
// transport is always released
func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("handshake failure not reported", func(t *testing.T) {
		t.Parallel()
		mock := NewMockTransport() // handshake will time out
		device := newTestDevice(t, mock)

		require.NoError(t, device.Close())
		assert.False(t, mock.IsConnected(), "transport must be released")
	})

	t.Run("transport close failure reported", func(t *testing.T) {
		t.Parallel()
		closeErr := errors.New("close failed")
		mock := NewMockTransport()
		mock.QueueRead(frame.Banner)
		mock.SetCloseError(closeErr)

		device := newTestDevice(t, mock)
		err := device.Close()
		require.Error(t, err)
		assert.ErrorIs(t, err, closeErr)
	})
}

// TestReadPacketization verifies the sequence of packet indices requested:
// ascending, each exactly once, starting at address/PacketSize
func TestReadPacketization(t *testing.T) {
	t.Parallel()

	const (
		address = 3 * frame.PacketSize
		size    = 5 * frame.PacketSize
	)

	mock := NewMockTransport()
	for n := 3; n < 8; n++ {
		mock.QueueAnswer(packetFor(n))
	}

	device := newTestDevice(t, mock)
	data, err := device.Read(address, size)
	require.NoError(t, err)
	require.Len(t, data, size)

	writes := mock.Writes()
	require.Len(t, writes, 5)
	for i, cmd := range writes {
		require.Len(t, cmd, 6)
		assert.EqualValues(t, cmdRead, cmd[0])
		number := binary.LittleEndian.Uint16(cmd[1:3])
		assert.EqualValues(t, 3+i, number, "packet index of command %d", i)
		assert.Equal(t, cmd[1:3], cmd[3:5], "index must be duplicated")
		assert.EqualValues(t, 0x00, cmd[5])

		// Each packet's payload lands at its own offset
		assert.Equal(t, packetFor(3+i), data[i*frame.PacketSize:(i+1)*frame.PacketSize])
	}
}

// TestReadAtomicOnFailure verifies a mid-read failure aborts the whole call
// with no partial result
func TestReadAtomicOnFailure(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.QueueAnswer(packetFor(0))
	mock.QueueAnswer(packetFor(1))
	// Third packet: NAK until retries exhaust
	mock.QueueNAK()
	mock.QueueNAK()
	mock.QueueNAK()

	device := newTestDevice(t, mock)
	data, err := device.Read(0, 5*frame.PacketSize)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoACK)
	assert.Nil(t, data, "failed read must not expose partial data")
}

// TestReadAlignment verifies unaligned requests are rejected before any I/O
func TestReadAlignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address int
		size    int
	}{
		{name: "unaligned address", address: 1, size: frame.PacketSize},
		{name: "unaligned size", address: 0, size: frame.PacketSize - 1},
		{name: "both unaligned", address: 7, size: 9},
		{name: "negative address", address: -frame.PacketSize, size: frame.PacketSize},
		{name: "negative size", address: 0, size: -frame.PacketSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := NewMockTransport()
			device := newTestDevice(t, mock)

			data, err := device.Read(tt.address, tt.size)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnalignedAccess)
			assert.Nil(t, data)
			assert.Empty(t, mock.Writes(), "precondition failure must not touch the transport")
		})
	}
}

// TestReadZeroSize verifies a zero-length read is a no-op
func TestReadZeroSize(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	device := newTestDevice(t, mock)

	data, err := device.Read(0, 0)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Empty(t, mock.Writes())
}

// TestDumpToCapacity verifies the capacity check happens before any I/O
func TestDumpToCapacity(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	device := newTestDevice(t, mock)

	n, err := device.DumpTo(make([]byte, frame.MemorySize-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Zero(t, n)
	assert.Empty(t, mock.Writes(), "capacity failure must not issue transport I/O")
}

// TestNewOptionError verifies option failures abort construction
func TestNewOptionError(t *testing.T) {
	t.Parallel()

	device, err := New(NewMockTransport(), WithMaxRetries(-1))
	require.Error(t, err)
	assert.Nil(t, device)
}

// TestWithMaxRetriesBound verifies the retry knob changes the send count
func TestWithMaxRetriesBound(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.QueueNAK() // single send, no retries allowed

	device := newTestDevice(t, mock, WithMaxRetries(0))
	_, err := device.transfer(versionCommand())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoACK)
	assert.Len(t, mock.Writes(), 1)
}
