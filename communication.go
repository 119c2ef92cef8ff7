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
	"bytes"
	"fmt"
	"time"

	"github.com/diveio/go-veo250/internal/frame"
)

// portName tags transport errors with the transport they occurred on
func (d *Device) portName() string {
	return string(d.transport.Type())
}

// send writes a command and blocks until every byte has physically left the
// wire. The device expects commands to arrive as a unit before it answers.
func (d *Device) send(command []byte) error {
	debugf("send % 02x", command)
	if _, err := d.transport.Write(command); err != nil {
		return NewTransportError("write", d.portName(),
			fmt.Errorf("%w: %w", ErrTransportWrite, err), ErrorTypeTransient)
	}
	if err := d.transport.Drain(); err != nil {
		return NewTransportError("drain", d.portName(),
			fmt.Errorf("%w: %w", ErrTransportWrite, err), ErrorTypeTransient)
	}
	return nil
}

// readFull reads exactly len(p) bytes from the transport. A read that fails
// outright maps to an I/O error; a read that comes up short within the
// transport deadline maps to a timeout.
func (d *Device) readFull(op string, p []byte) error {
	total := 0
	for total < len(p) {
		n, err := d.transport.Read(p[total:])
		if err != nil || n == 0 {
			return classifyReadError(op, d.portName(), total+n, len(p), err)
		}
		total += n
	}
	return nil
}

// commandAck sends a command and reads the single acknowledgement byte,
// resending on a negative acknowledgement up to the configured retry bound.
// The returned byte is the terminal acknowledgement; any I/O failure while
// reading it aborts immediately without a resend. The loop keeps no state
// beyond its own attempt counter.
func (d *Device) commandAck(command []byte) (byte, error) {
	for attempt := 0; ; attempt++ {
		if err := d.send(command); err != nil {
			return 0, err
		}

		var ack [1]byte
		if err := d.readFull("ack", ack[:]); err != nil {
			return 0, err
		}

		if ack[0] == frame.ACK {
			return ack[0], nil
		}
		debugf("unexpected response (%02x)", ack[0])

		if attempt >= d.config.MaxRetries {
			return ack[0], nil
		}
		if d.config.RetryDelay > 0 {
			time.Sleep(d.config.RetryDelay)
		}
	}
}

// transfer runs one framed exchange: command, acknowledgement, fixed-size
// answer. Only the acknowledgement is retried. Resending after answer bytes
// have started flowing could desynchronize the device, so a corrupted answer
// is a hard failure.
func (d *Device) transfer(command []byte) ([]byte, error) {
	ack, err := d.commandAck(command)
	if err != nil {
		return nil, err
	}
	if ack != frame.ACK {
		return nil, fmt.Errorf("%w: device answered %#02x after %d sends",
			ErrNoACK, ack, d.config.MaxRetries+1)
	}

	answer := make([]byte, frame.AnswerSize)
	if err := d.readFull("answer", answer); err != nil {
		return nil, err
	}
	debugf("recv % 02x", answer)

	payload := answer[:frame.PacketSize]
	crc := answer[frame.PacketSize]
	if !frame.ValidChecksum(payload, crc) {
		return nil, fmt.Errorf("%w: computed %#02x, received %#02x",
			ErrChecksumMismatch, frame.Checksum(payload, 0x00), crc)
	}
	if !frame.ValidTerminator(answer[frame.AnswerSize-1]) {
		return nil, fmt.Errorf("%w: terminator %#02x",
			ErrFrameCorrupted, answer[frame.AnswerSize-1])
	}

	return payload, nil
}

// sendInit puts the device into download mode. The command has no reply, so
// the only failure mode is the send itself.
func (d *Device) sendInit() error {
	return d.send(initCommand())
}

// handshake exchanges the identification command and verifies the fixed
// banner the device answers with. The banner carries no checksum; it must
// match byte for byte.
func (d *Device) handshake() error {
	if err := d.send(handshakeCommand()); err != nil {
		return err
	}

	answer := make([]byte, frame.BannerSize)
	if err := d.readFull("handshake", answer); err != nil {
		return err
	}

	if !bytes.Equal(answer, frame.Banner) {
		return fmt.Errorf("%w: unexpected banner %q", ErrHandshakeFailed, answer)
	}
	return nil
}
