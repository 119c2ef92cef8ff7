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

/*
Package veo250 downloads memory from Oceanic Veo 250 dive computers over a
serial download cable.

The device speaks a simple command/response protocol: every command is
acknowledged with a single ACK or NAK byte, checksummed answers arrive in
fixed 16-byte packets, and the full 32 KiB memory is read packet by packet.
This package implements the protocol engine - handshaking, framing, checksum
validation and bounded retry - on top of a narrow byte-level Transport
interface.

Features:
  - Session handshake with device identification
  - Verified packetized memory reads and whole-memory dumps
  - Bounded NAK retry confined to the acknowledgement exchange
  - Error taxonomy separating I/O, timeout, protocol and caller errors
  - Serial port auto-detection
  - Cross-platform serial transport (Linux, Windows, macOS)

Basic Usage:

	import (
	    veo250 "github.com/diveio/go-veo250"
	    "github.com/diveio/go-veo250/transport/uart"
	)

	transport, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}

	device, err := veo250.New(transport)
	if err != nil {
	    log.Fatal(err)
	}
	defer device.Close()

	if err := device.Connect(); err != nil {
	    log.Fatal(err)
	}

	version, err := device.VersionString()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println("device:", version)

	memory, err := device.Dump()
	if err != nil {
	    log.Fatal(err)
	}
	os.WriteFile("veo250.bin", memory, 0o644)

This package only guarantees correct, verified byte transfer; it does not
interpret the dive logs inside the dump.
*/
package veo250
