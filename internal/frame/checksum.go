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

package frame

// Checksum computes the additive 8-bit checksum of data seeded with seed.
// The sum is truncated to 8 bits.
func Checksum(data []byte, seed byte) byte {
	sum := seed
	for _, b := range data {
		sum += b
	}
	return sum
}

// ValidChecksum reports whether the answer-frame checksum byte matches the
// recomputed checksum of the payload (seed 0).
func ValidChecksum(payload []byte, crc byte) bool {
	return Checksum(payload, 0x00) == crc
}

// ValidTerminator reports whether the answer-frame terminator byte carries
// the NAK sentinel the device appends to every checksummed answer.
func ValidTerminator(last byte) bool {
	return last == NAK
}
