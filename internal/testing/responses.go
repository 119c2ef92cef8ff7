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

// Package testing provides canned device responses and a full Veo 250
// simulator for driving the protocol engine in tests.
package testing

import "github.com/diveio/go-veo250/internal/frame"

// BuildAnswer wraps a packet payload into a complete answer frame: payload,
// additive checksum byte, NAK terminator.
func BuildAnswer(payload []byte) []byte {
	answer := make([]byte, 0, len(payload)+2)
	answer = append(answer, payload...)
	answer = append(answer, frame.Checksum(payload, 0x00), frame.NAK)
	return answer
}

// BuildVersionPayload creates a plausible version payload padded to
// PacketSize bytes
func BuildVersionPayload() []byte {
	payload := make([]byte, frame.PacketSize)
	copy(payload, "VEO 250 R2.10")
	return payload
}
