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

import "time"

// Transport defines the byte-level channel to the dive computer. The protocol
// engine does its own framing, so the interface sits below command level:
// raw writes, raw reads, and the line-control primitives the download cable
// needs. Implemented by the uart package and by mocks for testing.
type Transport interface {
	// Write sends bytes to the device, returning the count written
	Write(p []byte) (int, error)

	// Read fills p with up to len(p) bytes. A short count with a nil error
	// means the transport deadline elapsed before more data arrived.
	Read(p []byte) (int, error)

	// Drain blocks until the write buffer has been physically transmitted
	Drain() error

	// Flush discards any pending bytes in both the input and output queues
	Flush() error

	// SetTimeout sets the read deadline for subsequent Read calls
	SetTimeout(timeout time.Duration) error

	// SetControlLines asserts or clears the DTR and RTS lines
	SetControlLines(dtr, rts bool) error

	// Close closes the transport connection
	Close() error

	// IsConnected returns true if the transport is connected
	IsConnected() bool

	// Type returns the transport type
	Type() TransportType
}

// TransportType represents the type of transport
type TransportType string

const (
	// TransportUART represents UART/serial transport.
	TransportUART TransportType = "uart"
	// TransportMock represents a mock transport for testing
	TransportMock TransportType = "mock"
)
