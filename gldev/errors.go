// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"fmt"

	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/glapi"
)

// DriverError is a native error reported by the driver after a call.
type DriverError struct {

	// Op is the operation or state aspect whose call failed.
	Op string

	// Code is the native error code.
	Code glapi.Enum

	// Desc is the native error description.
	Desc string

	// Caller is the device call site that issued the native call.
	Caller errors.Caller
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("gldev: %s: %s (0x%04X) on %s", e.Op, e.Desc, uint32(e.Code), e.Caller)
}

// ArgumentError is a caller-supplied argument that fails a
// precondition. No native call has been made.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return "gldev: " + e.Op + ": " + e.Msg
}

func argErrorf(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// RangeError is a write that would overrun the capacity of its
// destination. No native write has been made.
type RangeError struct {
	Op       string
	Offset   int
	Length   int
	Capacity int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gldev: %s: range [%d, %d) exceeds capacity %d", e.Op, e.Offset, e.Offset+e.Length, e.Capacity)
}

// ShaderCompileError is a failed shader stage compilation.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("gldev: failed to compile %s shader:\n%s", e.Stage, e.Log)
}

// ShaderLinkError is a failed program link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return "gldev: failed to link program:\n" + e.Log
}

// UnsupportedFeatureError is a request for a capability that was not
// detected, or was disabled, when the device was created.
type UnsupportedFeatureError struct {
	Op      string
	Feature Features
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("gldev: %s: %s is not supported by this device", e.Op, e.Feature)
}

// check returns a [DriverError] for op if the driver has a pending
// error, naming the device method that called check.
func (dv *Device) check(op string) error {
	return dv.checkSkip(op, 2)
}

// maxDrain bounds the number of queued errors discarded after the
// first one, since a lost context may report errors indefinitely.
const maxDrain = 8

func (dv *Device) checkSkip(op string, skip int) error {
	code := dv.gl.GetError()
	if code == glapi.NO_ERROR {
		return nil
	}
	for range maxDrain {
		if dv.gl.GetError() == glapi.NO_ERROR {
			break
		}
	}
	return &DriverError{Op: op, Code: code, Desc: glapi.ErrorString(code), Caller: errors.CallerInfo(skip)}
}
