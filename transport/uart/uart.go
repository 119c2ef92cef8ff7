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

// Package uart provides the serial transport for the Veo 250 download cable
package uart

import (
	"fmt"
	"time"

	veo250 "github.com/diveio/go-veo250"
	"go.bug.st/serial"
)

// Line settings for the Oceanic download cable
const (
	baudRate    = 9600
	readTimeout = 3000 * time.Millisecond
	settleDelay = 100 * time.Millisecond
)

// Transport implements the veo250.Transport interface over a serial port
type Transport struct {
	port      serial.Port
	portName  string
	connected bool
}

// New opens portName and configures it for the Veo 250: 9600 8N1 without
// flow control, a 3 second read timeout, DTR and RTS asserted. The download
// interface draws power from the control lines, so New waits briefly after
// asserting them for the electronics to settle.
func New(portName string) (*Transport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}

	t := &Transport{
		port:      port,
		portName:  portName,
		connected: true,
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to set timeout on %s: %w", portName, err)
	}

	if err := t.SetControlLines(true, true); err != nil {
		_ = port.Close()
		return nil, err
	}

	// Give the interface time to settle and draw power up
	time.Sleep(settleDelay)

	return t, nil
}

// Write sends bytes to the device
func (t *Transport) Write(p []byte) (int, error) {
	n, err := t.port.Write(p)
	if err != nil {
		return n, fmt.Errorf("write to %s failed: %w", t.portName, err)
	}
	return n, nil
}

// Read fills p with up to len(p) bytes. When the read timeout elapses with
// nothing on the wire, the port returns a zero count and no error.
func (t *Transport) Read(p []byte) (int, error) {
	n, err := t.port.Read(p)
	if err != nil {
		return n, fmt.Errorf("read from %s failed: %w", t.portName, err)
	}
	return n, nil
}

// Drain blocks until the output buffer has been physically transmitted
func (t *Transport) Drain() error {
	if err := t.port.Drain(); err != nil {
		return fmt.Errorf("drain of %s failed: %w", t.portName, err)
	}
	return nil
}

// Flush discards any pending bytes in both queues
func (t *Transport) Flush() error {
	if err := t.port.ResetInputBuffer(); err != nil {
		return fmt.Errorf("failed to reset input buffer of %s: %w", t.portName, err)
	}
	if err := t.port.ResetOutputBuffer(); err != nil {
		return fmt.Errorf("failed to reset output buffer of %s: %w", t.portName, err)
	}
	return nil
}

// SetTimeout sets the read deadline for subsequent Read calls
func (t *Transport) SetTimeout(timeout time.Duration) error {
	if err := t.port.SetReadTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout on %s: %w", t.portName, err)
	}
	return nil
}

// SetControlLines asserts or clears the DTR and RTS lines
func (t *Transport) SetControlLines(dtr, rts bool) error {
	if err := t.port.SetDTR(dtr); err != nil {
		return fmt.Errorf("failed to set DTR on %s: %w", t.portName, err)
	}
	if err := t.port.SetRTS(rts); err != nil {
		return fmt.Errorf("failed to set RTS on %s: %w", t.portName, err)
	}
	return nil
}

// Close closes the serial port
func (t *Transport) Close() error {
	if !t.connected {
		return nil
	}
	t.connected = false
	if err := t.port.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", t.portName, err)
	}
	return nil
}

// IsConnected returns true if the port is open
func (t *Transport) IsConnected() bool {
	return t.connected
}

// Type returns the transport type
func (*Transport) Type() veo250.TransportType {
	return veo250.TransportUART
}
