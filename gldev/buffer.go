// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"bytes"
	"slices"
	"unsafe"

	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/glapi"
)

// Frequency is how often buffer contents are modified.
type Frequency int32

const (
	Stream Frequency = iota
	Static
	Dynamic
)

// Nature is who reads and writes buffer contents.
type Nature int32

const (
	// Draw is written by the application and read by the device.
	Draw Nature = iota

	// Read is written by the device and read by the application.
	Read

	// Copy is written and read by the device.
	Copy
)

var usages = [3][3]glapi.Enum{
	Stream:  {Draw: glapi.STREAM_DRAW, Read: glapi.STREAM_READ, Copy: glapi.STREAM_COPY},
	Static:  {Draw: glapi.STATIC_DRAW, Read: glapi.STATIC_READ, Copy: glapi.STATIC_COPY},
	Dynamic: {Draw: glapi.DYNAMIC_DRAW, Read: glapi.DYNAMIC_READ, Copy: glapi.DYNAMIC_COPY},
}

// Usage returns the buffer usage hint for the given frequency and nature.
func Usage(f Frequency, n Nature) glapi.Enum {
	return usages[f][n]
}

// BindBuffer binds b to target; the null buffer unbinds.
// Buffer bindings are not cached.
func (dv *Device) BindBuffer(target glapi.Enum, b glapi.Buffer) error {
	dv.gl.BindBuffer(target, b)
	return dv.check("bind buffer")
}

// BindVertexArray binds va; the null vertex array unbinds.
func (dv *Device) BindVertexArray(va glapi.VertexArray) error {
	dv.gl.BindVertexArray(va)
	return dv.check("bind vertex array")
}

// UploadBuffer replaces the storage of the buffer bound to target
// with data and returns its length in bytes.
func (dv *Device) UploadBuffer(target glapi.Enum, data []byte, usage glapi.Enum) (int, error) {
	dv.gl.BufferData(target, len(data), data, usage)
	if err := dv.check("upload buffer"); err != nil {
		return 0, err
	}
	return len(data), nil
}

// ReserveBuffer replaces the storage of the buffer bound to target
// with n uninitialized bytes and returns n.
func (dv *Device) ReserveBuffer(target glapi.Enum, n int, usage glapi.Enum) (int, error) {
	if n < 0 {
		return 0, argErrorf("reserve buffer", "byte count must be 0 or more, got %d", n)
	}
	dv.gl.BufferData(target, n, nil, usage)
	if err := dv.check("reserve buffer"); err != nil {
		return 0, err
	}
	return n, nil
}

// BufferSize returns the capacity in bytes of the buffer bound to target.
func (dv *Device) BufferSize(target glapi.Enum) (int, error) {
	n := dv.gl.GetBufferParameteri(target, glapi.BUFFER_SIZE)
	if err := dv.check("buffer size"); err != nil {
		return 0, err
	}
	return n, nil
}

// WriteBuffer overwrites the buffer bound to target with data starting
// at offset. It returns a [RangeError] without writing if the range
// does not fit in the buffer.
func (dv *Device) WriteBuffer(target glapi.Enum, data []byte, offset int) error {
	if offset < 0 {
		return argErrorf("write buffer", "offset must be 0 or more, got %d", offset)
	}
	size, err := dv.BufferSize(target)
	if err != nil {
		return err
	}
	if offset+len(data) > size {
		return &RangeError{Op: "write buffer", Offset: offset, Length: len(data), Capacity: size}
	}
	dv.gl.BufferSubData(target, offset, data)
	return dv.check("write buffer")
}

// MapBuffer maps the first length bytes of the buffer bound to target
// for reading and writing. The returned slice aliases device memory and
// must not be used after [Device.UnmapBuffer]. A zero length returns an
// empty slice without a native mapping; the matching UnmapBuffer then
// does nothing.
func (dv *Device) MapBuffer(target glapi.Enum, length int) ([]byte, error) {
	if length < 0 {
		return nil, argErrorf("map buffer", "length must be 0 or more, got %d", length)
	}
	if length == 0 {
		if dv.emptyMaps == nil {
			dv.emptyMaps = map[glapi.Enum]bool{}
		}
		dv.emptyMaps[target] = true
		return []byte{}, nil
	}
	size, err := dv.BufferSize(target)
	if err != nil {
		return nil, err
	}
	if length > size {
		return nil, &RangeError{Op: "map buffer", Length: length, Capacity: size}
	}
	p := dv.gl.MapBuffer(target, glapi.READ_WRITE)
	if err := dv.check("map buffer"); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &DriverError{Op: "map buffer", Desc: "driver returned no mapping", Caller: errors.CallerInfo(0)}
	}
	return unsafe.Slice((*byte)(p), length), nil
}

// UnmapBuffer unmaps the buffer bound to target.
func (dv *Device) UnmapBuffer(target glapi.Enum) error {
	if dv.emptyMaps[target] {
		delete(dv.emptyMaps, target)
		return nil
	}
	ok := dv.gl.UnmapBuffer(target)
	if err := dv.check("unmap buffer"); err != nil {
		return err
	}
	if !ok {
		return &DriverError{Op: "unmap buffer", Desc: "buffer contents were corrupted while mapped", Caller: errors.CallerInfo(0)}
	}
	return nil
}

// WithMappedBuffer maps length bytes of the buffer bound to target,
// calls fn with the mapping and unmaps, also when fn fails or panics.
func (dv *Device) WithMappedBuffer(target glapi.Enum, length int, fn func(b []byte) error) (err error) {
	b, err := dv.MapBuffer(target, length)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, dv.UnmapBuffer(target)) }()
	return fn(b)
}

// BufferEdits batches writes to one buffer. Flush issues them sorted by
// offset, with contiguous writes coalesced into a single native write.
type BufferEdits struct {
	Buffer glapi.Buffer
	writes []bufferWrite
}

type bufferWrite struct {
	offset int
	data   []byte
}

// Write queues a copy of data to be written at offset.
func (be *BufferEdits) Write(data []byte, offset int) {
	be.writes = append(be.writes, bufferWrite{offset: offset, data: slices.Clone(data)})
}

// Len returns the number of queued writes.
func (be *BufferEdits) Len() int {
	return len(be.writes)
}

// Clear drops all queued writes.
func (be *BufferEdits) Clear() {
	be.writes = be.writes[:0]
}

// Flush binds the buffer to ARRAY_BUFFER and issues the queued writes.
// Queued writes are dropped whether or not Flush succeeds.
func (be *BufferEdits) Flush(dv *Device) error {
	if len(be.writes) == 0 {
		return nil
	}
	defer be.Clear()
	if err := dv.BindBuffer(glapi.ARRAY_BUFFER, be.Buffer); err != nil {
		return err
	}
	slices.SortStableFunc(be.writes, func(a, b bufferWrite) int { return a.offset - b.offset })
	var run bytes.Buffer
	offset := be.writes[0].offset
	run.Write(be.writes[0].data)
	for _, w := range be.writes[1:] {
		if w.offset == offset+run.Len() {
			run.Write(w.data)
			continue
		}
		if err := dv.WriteBuffer(glapi.ARRAY_BUFFER, run.Bytes(), offset); err != nil {
			return err
		}
		run.Reset()
		run.Write(w.data)
		offset = w.offset
	}
	return dv.WriteBuffer(glapi.ARRAY_BUFFER, run.Bytes(), offset)
}
