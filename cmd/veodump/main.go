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

// veodump downloads the memory of an Oceanic Veo 250 dive computer to a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	veo250 "github.com/diveio/go-veo250"
	"github.com/diveio/go-veo250/detection"
	"github.com/diveio/go-veo250/transport/uart"
)

type config struct {
	devicePath  *string
	output      *string
	timeout     *time.Duration
	debug       *bool
	versionOnly *bool
}

func parseFlags() *config {
	cfg := &config{
		devicePath: flag.String("device", "",
			"Serial device path (e.g., /dev/ttyUSB0 or COM3). Leave empty for auto-detection."),
		output:      flag.String("output", "veo250.bin", "File to write the memory dump to"),
		timeout:     flag.Duration("timeout", 3*time.Second, "Read timeout per exchange (default: 3s)"),
		debug:       flag.Bool("debug", false, "Enable debug output"),
		versionOnly: flag.Bool("version-only", false, "Only query and print the device version"),
	}
	flag.Parse()

	if *cfg.debug {
		veo250.SetDebugEnabled(true)
	}

	return cfg
}

func run(cfg *config) error {
	path := *cfg.devicePath
	if path == "" {
		fmt.Println("No device specified, scanning serial ports...")
		detected, err := detection.DetectDevice()
		if err != nil {
			return fmt.Errorf("auto-detection failed: %w", err)
		}
		path = detected
		fmt.Printf("Found dive computer on %s\n", path)
	}

	transport, err := uart.New(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	device, err := veo250.New(transport, veo250.WithTimeout(*cfg.timeout))
	if err != nil {
		_ = transport.Close()
		return err
	}
	defer func() {
		if err := device.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}()

	if err := device.Connect(); err != nil {
		return err
	}

	version, err := device.VersionString()
	if err != nil {
		return err
	}
	fmt.Printf("Device: %s\n", version)

	if *cfg.versionOnly {
		return nil
	}

	fmt.Printf("Downloading %d bytes...\n", veo250.MemorySize)
	start := time.Now()
	memory, err := device.Dump()
	if err != nil {
		return err
	}
	fmt.Printf("Downloaded in %v\n", time.Since(start).Round(time.Millisecond))

	if err := os.WriteFile(*cfg.output, memory, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", *cfg.output, err)
	}
	fmt.Printf("Wrote %s\n", *cfg.output)
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
