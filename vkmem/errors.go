// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkmem

import "fmt"

// NoContextError is an operation attempted before an allocator was
// attached.
type NoContextError struct {
	Op string
}

func (e *NoContextError) Error() string {
	return "vkmem: " + e.Op + ": no vulkan device has been set up"
}

// DeviceMemoryError is a failed allocator-backed buffer creation.
// Any partially created buffer has been released.
type DeviceMemoryError struct {
	Size int
	Err  error
}

func (e *DeviceMemoryError) Error() string {
	return fmt.Sprintf("vkmem: failed to allocate a buffer of %d bytes: %v", e.Size, e.Err)
}

func (e *DeviceMemoryError) Unwrap() error { return e.Err }

// ArgumentError is an argument that fails a precondition.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return "vkmem: " + e.Op + ": " + e.Msg
}

// RangeError is a range that exceeds the size of an allocation.
type RangeError struct {
	Op       string
	Offset   int
	Length   int
	Capacity int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vkmem: %s: range [%d, %d) exceeds allocation size %d", e.Op, e.Offset, e.Offset+e.Length, e.Capacity)
}
