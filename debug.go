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

import "log"

var debugEnabled bool

// SetDebugEnabled turns debug logging on or off. Debug output includes raw
// command and answer bytes and is written through the standard logger.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

func debugf(format string, args ...any) {
	if debugEnabled {
		log.Printf("[veo250] "+format, args...)
	}
}

func debugln(args ...any) {
	if debugEnabled {
		log.Println(append([]any{"[veo250]"}, args...)...)
	}
}
