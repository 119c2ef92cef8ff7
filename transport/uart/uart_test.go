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

package uart

import (
	"testing"

	veo250 "github.com/diveio/go-veo250"
)

// TestTransportCreation verifies basic transport properties without opening
// a real port
func TestTransportCreation(t *testing.T) {
	t.Parallel()

	testPortName := "/dev/ttyUSB0"
	transport := &Transport{
		portName: testPortName,
	}

	if transport.portName != testPortName {
		t.Errorf("Expected port name %s, got %s", testPortName, transport.portName)
	}

	expectedType := veo250.TransportUART
	if transport.Type() != expectedType {
		t.Errorf("Expected transport type %v, got %v", expectedType, transport.Type())
	}

	if transport.IsConnected() {
		t.Error("Expected IsConnected() to return false for uninitialized transport")
	}
}

// TestNewInvalidPort verifies that opening a nonexistent port fails cleanly
func TestNewInvalidPort(t *testing.T) {
	t.Parallel()

	transport, err := New("/dev/nonexistent-veo250-port")
	if err == nil {
		_ = transport.Close()
		t.Fatal("Expected error opening nonexistent port")
	}
	if transport != nil {
		t.Error("Expected nil transport on open failure")
	}
}

// TestCloseIdempotent verifies Close on an unconnected transport is a no-op
func TestCloseIdempotent(t *testing.T) {
	t.Parallel()

	transport := &Transport{portName: "COM3"}
	if err := transport.Close(); err != nil {
		t.Errorf("Close() on unconnected transport = %v, want nil", err)
	}
}
