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

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithMaxRetries sets the number of extra resend attempts after the device
// rejects a command with a NAK. The wire default is 2 (3 sends total).
func WithMaxRetries(maxRetries int) Option {
	return func(d *Device) error {
		if maxRetries < 0 {
			return fmt.Errorf("max retries must not be negative, got %d", maxRetries)
		}
		d.config.MaxRetries = maxRetries
		return nil
	}
}

// WithRetryDelay sets a pause between resend attempts
func WithRetryDelay(delay time.Duration) Option {
	return func(d *Device) error {
		d.config.RetryDelay = delay
		return nil
	}
}

// WithTimeout sets the transport read deadline for every exchange
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", timeout)
		}
		d.config.Timeout = timeout
		if err := d.transport.SetTimeout(timeout); err != nil {
			return fmt.Errorf("failed to set timeout on transport: %w", err)
		}
		return nil
	}
}
