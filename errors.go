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
	"errors"
	"fmt"
)

// Transport errors
var (
	// ErrTransportWrite indicates a transport write primitive failed outright.
	ErrTransportWrite = errors.New("transport write failed")
	// ErrTransportRead indicates a transport read primitive failed outright.
	ErrTransportRead = errors.New("transport read failed")
	// ErrTransportTimeout indicates a read returned fewer bytes than requested
	// before the transport deadline elapsed.
	ErrTransportTimeout = errors.New("transport timeout")
	// ErrNotConnected indicates the transport is not open.
	ErrNotConnected = errors.New("transport not connected")
)

// Protocol errors
var (
	// ErrNoACK indicates the device kept rejecting a command after all
	// resend attempts were exhausted.
	ErrNoACK = errors.New("no ACK received")
	// ErrChecksumMismatch indicates an answer frame whose checksum byte does
	// not match the recomputed payload checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrFrameCorrupted indicates an answer frame whose terminator byte is
	// not the NAK sentinel.
	ErrFrameCorrupted = errors.New("frame corrupted")
	// ErrHandshakeFailed indicates the handshake banner did not match the
	// expected device identification.
	ErrHandshakeFailed = errors.New("handshake failed")
)

// Caller errors
var (
	// ErrBufferTooSmall indicates a caller-supplied buffer cannot hold the
	// requested data.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrUnalignedAccess indicates a read address or size that is not a
	// multiple of the packet size.
	ErrUnalignedAccess = errors.New("address or size not packet aligned")
	// ErrDeviceNotFound indicates no dive computer answered on any probed port.
	ErrDeviceNotFound = errors.New("device not found")
)

// ErrorType classifies errors for retry decisions
type ErrorType string

const (
	// ErrorTypeTransient indicates a temporary failure that may succeed on retry
	ErrorTypeTransient ErrorType = "transient"
	// ErrorTypeTimeout indicates the operation exceeded its deadline
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypePermanent indicates a failure that will not succeed on retry
	ErrorTypePermanent ErrorType = "permanent"
)

// TransportError wraps a transport-level failure with the operation and port
// it occurred on, plus a retry classification.
type TransportError struct {
	Err       error
	Op        string
	Port      string
	Type      ErrorType
	Retryable bool
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError with the given classification
func NewTransportError(op, port string, err error, errType ErrorType) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       err,
		Type:      errType,
		Retryable: errType != ErrorTypePermanent,
	}
}

// NewTimeoutError creates a TransportError for an operation that received
// fewer bytes than requested within the transport deadline.
func NewTimeoutError(op, port string) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       ErrTransportTimeout,
		Type:      ErrorTypeTimeout,
		Retryable: true,
	}
}

// classifyReadError maps a transport read result to the error taxonomy: a
// failed read is an I/O error, a short read is a timeout. Returns nil when
// the read was complete.
func classifyReadError(op, port string, n, want int, err error) error {
	if err != nil {
		return NewTransportError(op, port, fmt.Errorf("%w: %w", ErrTransportRead, err), ErrorTypeTransient)
	}
	if n != want {
		return NewTimeoutError(op, port)
	}
	return nil
}

// retryableErrors are transient by nature: a resend or reconnect may clear them.
var retryableErrors = []error{
	ErrTransportWrite,
	ErrTransportRead,
	ErrTransportTimeout,
	ErrNoACK,
	ErrChecksumMismatch,
	ErrFrameCorrupted,
}

// IsRetryable reports whether a whole-call retry has a chance of succeeding.
// The protocol core never retries above the acknowledgement exchange; this
// classification is for callers deciding whether to reissue a failed call.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.Retryable
	}

	for _, target := range retryableErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// GetErrorType returns the classification of an error
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}

	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.Type
	}

	if errors.Is(err, ErrTransportTimeout) {
		return ErrorTypeTimeout
	}
	if IsRetryable(err) {
		return ErrorTypeTransient
	}
	return ErrorTypePermanent
}
