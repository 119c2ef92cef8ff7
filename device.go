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
	"fmt"
	"strings"
	"time"

	"github.com/diveio/go-veo250/internal/frame"
)

// Memory geometry, re-exported for callers sizing their own buffers.
const (
	// PacketSize is the fixed unit in which device memory is read.
	PacketSize = frame.PacketSize
	// MemorySize is the total addressable memory of the device.
	MemorySize = frame.MemorySize
)

// DeviceConfig contains configuration options for the Device
type DeviceConfig struct {
	// Timeout is the transport read deadline for every exchange
	Timeout time.Duration
	// MaxRetries is the number of extra resend attempts after a NAK
	MaxRetries int
	// RetryDelay is an optional pause between resend attempts
	RetryDelay time.Duration
}

// DefaultDeviceConfig returns the configuration the device is known to work
// with: the 3 second deadline of the original Oceanic download cable and two
// extra sends after a rejected command.
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		Timeout:    3 * time.Second,
		MaxRetries: 2,
	}
}

// Device represents one session with an Oceanic Veo 250 dive computer. It
// owns its transport for the lifetime of the session; Close releases it.
//
// Thread Safety: Device is NOT thread-safe. The protocol is strictly
// single-exchange request/response with no pipelining, so all methods must
// be called from a single goroutine or protected with external
// synchronization.
type Device struct {
	transport Transport
	config    *DeviceConfig
}

// New creates a new Veo 250 device on the given transport
func New(transport Transport, opts ...Option) (*Device, error) {
	device := &Device{
		transport: transport,
		config:    DefaultDeviceConfig(),
	}

	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	return device, nil
}

// Connect flushes the line, puts the device into download mode and verifies
// its identification banner. Unlike some legacy downloaders, failures here
// are reported rather than swallowed: a device that is already in download
// mode still answers the handshake.
func (d *Device) Connect() error {
	if !d.transport.IsConnected() {
		return ErrNotConnected
	}

	if err := d.transport.SetTimeout(d.config.Timeout); err != nil {
		return NewTransportError("timeout", d.portName(), err, ErrorTypeTransient)
	}

	if err := d.transport.Flush(); err != nil {
		return NewTransportError("flush", d.portName(), err, ErrorTypeTransient)
	}

	if err := d.sendInit(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := d.handshake(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

// Close quiesces the device with a final handshake and releases the
// transport. The closing handshake is best effort: the transport is closed
// regardless of its outcome and only a transport close failure is reported.
func (d *Device) Close() error {
	if d.transport.IsConnected() {
		if err := d.handshake(); err != nil {
			debugf("closing handshake: %v", err)
		}
	}
	if err := d.transport.Close(); err != nil {
		return fmt.Errorf("failed to close transport: %w", err)
	}
	return nil
}

// Version queries the device for its identification string and returns the
// raw packet payload, padded by the device to PacketSize bytes.
func (d *Device) Version() ([]byte, error) {
	payload, err := d.transfer(versionCommand())
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	debugf("version %q", payload)
	return payload, nil
}

// VersionString returns the device version with the padding trimmed
func (d *Device) VersionString() (string, error) {
	payload, err := d.Version()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(payload), "\x00 "), nil
}

// Read retrieves size bytes of device memory starting at address. Both
// address and size must be multiples of PacketSize; unaligned requests are
// rejected before any I/O, never truncated. On any failure the whole read is
// aborted and no partial data is returned.
func (d *Device) Read(address, size int) ([]byte, error) {
	if address%frame.PacketSize != 0 || size%frame.PacketSize != 0 ||
		address < 0 || size < 0 {
		return nil, fmt.Errorf("%w: address %#x, size %#x", ErrUnalignedAccess, address, size)
	}

	// The transmission is split in packets of PacketSize bytes, addressed
	// by packet index rather than byte address.
	data := make([]byte, 0, size)
	for nbytes := 0; nbytes < size; nbytes += frame.PacketSize {
		number := uint16(address / frame.PacketSize)
		payload, err := d.transfer(readCommand(number))
		if err != nil {
			return nil, fmt.Errorf("read packet %d: %w", number, err)
		}
		data = append(data, payload...)
		address += frame.PacketSize
	}

	return data, nil
}

// Dump reads the entire addressable memory of the device
func (d *Device) Dump() ([]byte, error) {
	return d.Read(0, frame.MemorySize)
}

// DumpTo reads the entire addressable memory into buf, which must hold at
// least MemorySize bytes. The capacity check happens before any I/O. Returns
// the number of bytes written.
func (d *Device) DumpTo(buf []byte) (int, error) {
	if len(buf) < frame.MemorySize {
		return 0, fmt.Errorf("%w: need %d bytes, have %d",
			ErrBufferTooSmall, frame.MemorySize, len(buf))
	}

	data, err := d.Dump()
	if err != nil {
		return 0, err
	}
	return copy(buf, data), nil
}
