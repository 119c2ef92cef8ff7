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

// Package detection finds the serial port a Veo 250 is attached to by
// enumerating candidate ports and probing each with the protocol handshake.
package detection

import (
	"fmt"
	"time"

	veo250 "github.com/diveio/go-veo250"
	"github.com/diveio/go-veo250/transport/uart"
	"go.bug.st/serial/enumerator"
)

// PortInfo describes one candidate serial port
type PortInfo struct {
	// Path is the device path to pass to uart.New
	Path string
	// VIDPID is "VVVV:PPPP" for USB serial adapters, empty otherwise
	VIDPID string
	// Product is the USB product string, if known
	Product string
	// SerialNumber is the USB serial number, if known
	SerialNumber string
}

// Options configures device detection
type Options struct {
	// Blocklist lists VID:PID pairs that must never be probed
	Blocklist []string
	// ProbeTimeout is the per-port read deadline during probing. Probing
	// uses a shorter deadline than a real session so absent devices fail
	// fast.
	ProbeTimeout time.Duration
}

// DefaultOptions returns detection defaults
func DefaultOptions() *Options {
	return &Options{
		Blocklist:    DefaultBlocklist(),
		ProbeTimeout: 1 * time.Second,
	}
}

// ListPorts enumerates the serial ports present on the system
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		info := PortInfo{Path: d.Name}
		if d.IsUSB {
			info.VIDPID = d.VID + ":" + d.PID
			info.Product = d.Product
			info.SerialNumber = d.SerialNumber
		}
		ports = append(ports, info)
	}
	return ports, nil
}

// DetectDevice probes every candidate port and returns the path of the first
// one where a Veo 250 answers the handshake. Returns ErrDeviceNotFound when
// no port has one.
func (o *Options) DetectDevice() (string, error) {
	ports, err := ListPorts()
	if err != nil {
		return "", err
	}

	for _, port := range ports {
		if port.VIDPID != "" && IsBlocked(port.VIDPID, o.Blocklist) {
			continue
		}
		if probePort(port.Path, o.ProbeTimeout) {
			return port.Path, nil
		}
	}
	return "", veo250.ErrDeviceNotFound
}

// DetectDevice probes with default options
func DetectDevice() (string, error) {
	return DefaultOptions().DetectDevice()
}

// probePort reports whether a Veo 250 answers on path. The probe is a full
// session open: init plus handshake, then the quiescing close.
func probePort(path string, timeout time.Duration) bool {
	transport, err := uart.New(path)
	if err != nil {
		return false
	}

	device, err := veo250.New(transport, veo250.WithTimeout(timeout))
	if err != nil {
		_ = transport.Close()
		return false
	}
	defer func() { _ = device.Close() }()

	return device.Connect() == nil
}
