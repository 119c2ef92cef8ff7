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

package detection

import "strings"

// DefaultBlocklist returns USB devices that must not be probed. Probing
// sends protocol bytes down the line, which can confuse devices that happen
// to share an adapter chip with dive cables.
// Format: VID:PID in hexadecimal (case-insensitive).
func DefaultBlocklist() []string {
	return []string{
		// Add known problematic devices here as discovered
	}
}

// IsBlocked checks if a USB device is in the blocklist.
func IsBlocked(vidpid string, blocklist []string) bool {
	vidpid = strings.ToUpper(strings.TrimSpace(vidpid))

	for _, blocked := range blocklist {
		if vidpid == strings.ToUpper(strings.TrimSpace(blocked)) {
			return true
		}
	}
	return false
}
