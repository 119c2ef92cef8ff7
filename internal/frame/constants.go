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

// Package frame provides wire-level constants and checksum routines for the
// Oceanic Veo 250 download protocol.
package frame

// Acknowledgement sentinels - the device answers every command with one of
// these before any payload follows
const (
	ACK = 0x5A // command accepted, answer (if any) follows
	NAK = 0xA5 // command rejected / also the answer-frame terminator
)

// Memory geometry
const (
	PacketSize = 16     // fixed unit in which device memory is read
	MemorySize = 0x8000 // total addressable memory
)

// Answer frame layout: PacketSize payload bytes, one additive checksum byte,
// one terminator byte (always NAK)
const (
	AnswerSize = PacketSize + 2
	BannerSize = 14 // handshake banner, sent without a checksum
)

// Banner is the identification string the device returns to the handshake
// command. The trailing NUL is part of the wire format.
var Banner = []byte("PPS--OK_V2.00\x00")
