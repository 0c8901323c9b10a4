// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vkmem bridges buffer creation and data transfer to a
// general-purpose Vulkan device memory allocator. A [Bridge] routes
// every operation to the [Allocator] attached to it, and fails with
// a [NoContextError] until one is attached.
//
// The vkalloc subpackage provides the allocator on a physical device
// selected with [SelectDevice].
package vkmem

import (
	"errors"
	"log/slog"
)

// Opaque allocator handles.
type (
	BufferHandle     uint64
	AllocationHandle uint64
)

// BufferUsage is a set of Vulkan buffer usage bits, passed through
// to the allocator.
type BufferUsage uint32

// AllocationFlags are the required properties of allocated memory.
type AllocationFlags uint32

const (
	// DeviceLocal is memory local to the device.
	DeviceLocal AllocationFlags = 1 << iota

	// HostVisible is memory that can be mapped.
	HostVisible

	// HostCoherent is mapped memory that needs no flush or invalidate.
	HostCoherent

	// HostCached is mapped memory cached on the host.
	HostCached
)

// Allocator creates buffers together with their memory.
type Allocator interface {

	// CreateBuffer creates a buffer of size bytes bound to a new
	// allocation. On failure nothing remains allocated.
	CreateBuffer(size int, usage BufferUsage, flags AllocationFlags) (BufferHandle, AllocationHandle, error)

	// DestroyBuffer destroys a buffer and frees its allocation.
	DestroyBuffer(buf BufferHandle, alloc AllocationHandle)

	// Size returns the size in bytes of an allocation.
	Size(alloc AllocationHandle) int

	// Map maps a whole allocation into host memory.
	Map(alloc AllocationHandle) ([]byte, error)

	// Unmap unmaps an allocation.
	Unmap(alloc AllocationHandle)

	// Flush makes host writes to a mapped range visible to the
	// device, and Invalidate makes device writes visible to the
	// host. Both do nothing for coherent memory.
	Flush(alloc AllocationHandle, offset, size int) error
	Invalidate(alloc AllocationHandle, offset, size int) error

	// Destroy releases the allocator and its device.
	Destroy()
}

// Bridge is the process-wide entry point to allocator-backed buffers.
// Like the graphics device, it must only be used from one thread.
type Bridge struct {
	alloc Allocator

	// live maps each live allocation to its buffer.
	live   map[AllocationHandle]BufferHandle
	mapped map[AllocationHandle][]byte
}

// Attach sets the allocator all operations are routed to.
// A bridge can only have one allocator attached at a time.
func (b *Bridge) Attach(a Allocator) error {
	if b.alloc != nil {
		return errors.New("vkmem: vulkan device already set")
	}
	b.alloc = a
	b.live = map[AllocationHandle]BufferHandle{}
	b.mapped = map[AllocationHandle][]byte{}
	return nil
}

// Attached reports whether an allocator is attached.
func (b *Bridge) Attached() bool {
	return b.alloc != nil
}

// Detach destroys every buffer still alive, then the allocator.
// It does nothing if no allocator is attached.
func (b *Bridge) Detach() {
	if b.alloc == nil {
		return
	}
	if len(b.live) > 0 {
		slog.Debug("vkmem: destroying live buffers on detach", "count", len(b.live))
	}
	for alloc, buf := range b.live {
		if _, ok := b.mapped[alloc]; ok {
			b.alloc.Unmap(alloc)
		}
		b.alloc.DestroyBuffer(buf, alloc)
	}
	b.alloc.Destroy()
	b.alloc, b.live, b.mapped = nil, nil, nil
}

func (b *Bridge) allocator(op string) (Allocator, error) {
	if b.alloc == nil {
		return nil, &NoContextError{Op: op}
	}
	return b.alloc, nil
}

// checkRange returns an error unless [offset, offset+length) lies
// within alloc.
func (b *Bridge) checkRange(op string, alloc AllocationHandle, offset, length int) error {
	if _, ok := b.live[alloc]; !ok {
		return &ArgumentError{Op: op, Msg: "unknown allocation"}
	}
	if offset < 0 || length < 0 {
		return &ArgumentError{Op: op, Msg: "offset and size must be 0 or more"}
	}
	if size := b.alloc.Size(alloc); offset+length > size {
		return &RangeError{Op: op, Offset: offset, Length: length, Capacity: size}
	}
	return nil
}

// checkMapped is checkRange for an allocation that must be mapped.
func (b *Bridge) checkMapped(op string, alloc AllocationHandle, offset, length int) error {
	if err := b.checkRange(op, alloc, offset, length); err != nil {
		return err
	}
	if _, ok := b.mapped[alloc]; !ok {
		return &ArgumentError{Op: op, Msg: "allocation is not mapped"}
	}
	return nil
}

// CreateBuffer creates a buffer of size bytes with its own allocation.
// Allocation failure gives a [DeviceMemoryError].
func (b *Bridge) CreateBuffer(size int, usage BufferUsage, flags AllocationFlags) (BufferHandle, AllocationHandle, error) {
	const op = "create buffer"
	a, err := b.allocator(op)
	if err != nil {
		return 0, 0, err
	}
	if size <= 0 {
		return 0, 0, &ArgumentError{Op: op, Msg: "size must be greater than 0"}
	}
	buf, alloc, err := a.CreateBuffer(size, usage, flags)
	if err != nil {
		return 0, 0, &DeviceMemoryError{Size: size, Err: err}
	}
	b.live[alloc] = buf
	return buf, alloc, nil
}

// DestroyBuffer destroys a buffer and its allocation together,
// unmapping it first if mapped.
func (b *Bridge) DestroyBuffer(buf BufferHandle, alloc AllocationHandle) error {
	a, err := b.allocator("destroy buffer")
	if err != nil {
		return err
	}
	if _, ok := b.mapped[alloc]; ok {
		a.Unmap(alloc)
		delete(b.mapped, alloc)
	}
	a.DestroyBuffer(buf, alloc)
	delete(b.live, alloc)
	return nil
}

// Map maps alloc and returns its memory. Mapping a mapped allocation
// returns the existing mapping.
func (b *Bridge) Map(alloc AllocationHandle) ([]byte, error) {
	const op = "map"
	a, err := b.allocator(op)
	if err != nil {
		return nil, err
	}
	if m, ok := b.mapped[alloc]; ok {
		return m, nil
	}
	if _, ok := b.live[alloc]; !ok {
		return nil, &ArgumentError{Op: op, Msg: "unknown allocation"}
	}
	m, err := a.Map(alloc)
	if err != nil {
		return nil, err
	}
	b.mapped[alloc] = m
	return m, nil
}

// Unmap unmaps alloc. The memory returned by Map must not be used
// afterwards.
func (b *Bridge) Unmap(alloc AllocationHandle) error {
	a, err := b.allocator("unmap")
	if err != nil {
		return err
	}
	if _, ok := b.mapped[alloc]; !ok {
		return nil
	}
	a.Unmap(alloc)
	delete(b.mapped, alloc)
	return nil
}

// Flush makes host writes to [offset, offset+size) of a mapped
// allocation visible to the device. Call it after writing to memory
// that is not host coherent, before unmapping.
func (b *Bridge) Flush(alloc AllocationHandle, offset, size int) error {
	const op = "flush"
	a, err := b.allocator(op)
	if err != nil {
		return err
	}
	if err := b.checkMapped(op, alloc, offset, size); err != nil {
		return err
	}
	return a.Flush(alloc, offset, size)
}

// Invalidate makes device writes to [offset, offset+size) of a mapped
// allocation visible to the host. Call it before reading memory that
// is not host coherent.
func (b *Bridge) Invalidate(alloc AllocationHandle, offset, size int) error {
	const op = "invalidate"
	a, err := b.allocator(op)
	if err != nil {
		return err
	}
	if err := b.checkMapped(op, alloc, offset, size); err != nil {
		return err
	}
	return a.Invalidate(alloc, offset, size)
}

// Overwrite copies data into alloc at offset and flushes it. An
// allocation that is not mapped is mapped for the copy only.
func (b *Bridge) Overwrite(buf BufferHandle, alloc AllocationHandle, offset int, data []byte) error {
	const op = "overwrite"
	a, err := b.allocator(op)
	if err != nil {
		return err
	}
	if owner, ok := b.live[alloc]; ok && owner != buf {
		return &ArgumentError{Op: op, Msg: "allocation does not belong to buffer"}
	}
	if err := b.checkRange(op, alloc, offset, len(data)); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	m, wasMapped := b.mapped[alloc]
	if !wasMapped {
		if m, err = a.Map(alloc); err != nil {
			return err
		}
		defer a.Unmap(alloc)
	}
	copy(m[offset:], data)
	return a.Flush(alloc, offset, len(data))
}
