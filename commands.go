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

import "encoding/binary"

// Veo 250 command opcodes
const (
	cmdInit      = 0x55 // put the device in download mode, no reply
	cmdHandshake = 0x98 // identification banner, 14 bytes, no checksum
	cmdVersion   = 0x90 // version string, checksummed packet reply
	cmdRead      = 0x20 // read one memory packet by index
)

// initCommand builds the fire-and-forget download-mode command
func initCommand() []byte {
	return []byte{cmdInit, 0x00}
}

// handshakeCommand builds the identification command
func handshakeCommand() []byte {
	return []byte{cmdHandshake, 0x00}
}

// versionCommand builds the version query command
func versionCommand() []byte {
	return []byte{cmdVersion, 0x00}
}

// readCommand builds the 6-byte packet read command. The device wants the
// little-endian packet index sent twice back to back, then a zero byte.
func readCommand(number uint16) []byte {
	var idx [2]byte
	binary.LittleEndian.PutUint16(idx[:], number)
	return []byte{cmdRead, idx[0], idx[1], idx[0], idx[1], 0x00}
}
