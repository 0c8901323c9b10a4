// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vkalloc provides a [vkmem.Allocator] on a Vulkan device.
// Every buffer gets its own device memory allocation.
package vkalloc

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/gdevice/vkmem"
	vk "github.com/goki/vulkan"
)

// NewError returns an error for a failed Vulkan result, or nil for
// [vk.Success].
func NewError(op string, ret vk.Result) error {
	if ret == vk.Success {
		return nil
	}
	return fmt.Errorf("vulkan error: %s: %s (%d)", op, vk.Error(ret).Error(), ret)
}

type allocation struct {
	buffer   vk.Buffer
	memory   vk.DeviceMemory
	size     int
	coherent bool
	mapped   bool
}

// Allocator allocates buffers on the logical device created by [Setup].
type Allocator struct {
	GPU    vk.PhysicalDevice
	Device vk.Device

	// Name is the name of the selected physical device.
	Name string

	// GraphicsQueue and PresentQueue are the queues of the device,
	// which are the same queue for a combined family.
	GraphicsQueue vk.Queue
	PresentQueue  vk.Queue

	memoryTypes []vk.MemoryPropertyFlags
	atomSize    int

	next   uint64
	allocs map[vkmem.AllocationHandle]*allocation
}

// Setup selects the best physical device of instance able to present
// to surface and creates a logical device on it.
func Setup(instance vk.Instance, surface vk.Surface) (*Allocator, error) {
	var count uint32
	if err := NewError("enumerate physical devices", vk.EnumeratePhysicalDevices(instance, &count, nil)); err != nil {
		return nil, err
	}
	gpus := make([]vk.PhysicalDevice, count)
	if err := NewError("enumerate physical devices", vk.EnumeratePhysicalDevices(instance, &count, gpus)); err != nil {
		return nil, err
	}
	cands := make([]vkmem.DeviceCandidate, len(gpus))
	for i, gpu := range gpus {
		c, err := describe(gpu, surface)
		if err != nil {
			return nil, err
		}
		cands[i] = c
		slog.Debug("vkalloc: found device", "name", c.Name, "score", vkmem.ScoreDevice(c))
	}
	sel, err := vkmem.SelectDevice(cands)
	if err != nil {
		return nil, err
	}
	graphics, present, _ := cands[sel].Queues()
	al := &Allocator{GPU: gpus[sel], Name: cands[sel].Name, allocs: map[vkmem.AllocationHandle]*allocation{}}
	if err := al.makeDevice(uint32(graphics), uint32(present)); err != nil {
		return nil, err
	}
	al.readMemoryProps()
	slog.Info("vkalloc: using device", "name", al.Name, "graphicsQueue", graphics, "presentQueue", present)
	return al, nil
}

// describe returns the queue families and extensions of gpu.
func describe(gpu vk.PhysicalDevice, surface vk.Surface) (vkmem.DeviceCandidate, error) {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(gpu, &props)
	props.Deref()
	c := vkmem.DeviceCandidate{Name: vk.ToString(props.DeviceName[:])}

	var queueCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &queueCount, nil)
	queueProps := make([]vk.QueueFamilyProperties, queueCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &queueCount, queueProps)
	for i := range queueProps {
		queueProps[i].Deref()
		var present vk.Bool32
		vk.GetPhysicalDeviceSurfaceSupport(gpu, uint32(i), surface, &present)
		c.Families = append(c.Families, vkmem.QueueFamily{
			Graphics: queueProps[i].QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			Present:  present.B(),
		})
	}

	var extCount uint32
	if err := NewError("enumerate device extensions", vk.EnumerateDeviceExtensionProperties(gpu, "", &extCount, nil)); err != nil {
		return c, err
	}
	exts := make([]vk.ExtensionProperties, extCount)
	if err := NewError("enumerate device extensions", vk.EnumerateDeviceExtensionProperties(gpu, "", &extCount, exts)); err != nil {
		return c, err
	}
	for _, ext := range exts {
		ext.Deref()
		c.Extensions = append(c.Extensions, vk.ToString(ext.ExtensionName[:]))
	}
	return c, nil
}

// makeDevice creates the logical device with one queue per distinct
// queue family.
func (al *Allocator) makeDevice(graphics, present uint32) error {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: graphics,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}
	if present != graphics {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: present,
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		})
	}
	exts := []string{vkmem.SwapchainExtension + "\x00"}
	var device vk.Device
	ret := vk.CreateDevice(al.GPU, &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(exts)),
		PpEnabledExtensionNames: exts,
	}, nil, &device)
	if err := NewError("create device", ret); err != nil {
		return err
	}
	al.Device = device
	vk.GetDeviceQueue(device, graphics, 0, &al.GraphicsQueue)
	al.PresentQueue = al.GraphicsQueue
	if present != graphics {
		vk.GetDeviceQueue(device, present, 0, &al.PresentQueue)
	}
	return nil
}

func (al *Allocator) readMemoryProps() {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(al.GPU, &props)
	props.Deref()
	props.Limits.Deref()
	al.atomSize = int(props.Limits.NonCoherentAtomSize)

	var memProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(al.GPU, &memProps)
	memProps.Deref()
	al.memoryTypes = make([]vk.MemoryPropertyFlags, memProps.MemoryTypeCount)
	for i := range al.memoryTypes {
		memProps.MemoryTypes[i].Deref()
		al.memoryTypes[i] = memProps.MemoryTypes[i].PropertyFlags
	}
}

// PropertyFlags returns the memory property flags for flags.
func PropertyFlags(flags vkmem.AllocationFlags) vk.MemoryPropertyFlags {
	var props vk.MemoryPropertyFlagBits
	if flags&vkmem.DeviceLocal != 0 {
		props |= vk.MemoryPropertyDeviceLocalBit
	}
	if flags&vkmem.HostVisible != 0 {
		props |= vk.MemoryPropertyHostVisibleBit
	}
	if flags&vkmem.HostCoherent != 0 {
		props |= vk.MemoryPropertyHostCoherentBit
	}
	if flags&vkmem.HostCached != 0 {
		props |= vk.MemoryPropertyHostCachedBit
	}
	return vk.MemoryPropertyFlags(props)
}

// FindMemoryType returns the index of the first memory type allowed
// by typeBits that has all of the required properties.
func FindMemoryType(types []vk.MemoryPropertyFlags, typeBits uint32, required vk.MemoryPropertyFlags) (uint32, bool) {
	for i, flags := range types {
		if typeBits&(1<<uint32(i)) != 0 && flags&required == required {
			return uint32(i), true
		}
	}
	return 0, false
}

// AlignRange expands [offset, offset+size) to multiples of atom as
// needed for flushing non-coherent memory. whole is true when the
// range reaches the end of an allocation of total bytes.
func AlignRange(offset, size, atom, total int) (start, length int, whole bool) {
	if atom <= 1 {
		return offset, size, offset+size >= total
	}
	start = offset / atom * atom
	end := (offset + size + atom - 1) / atom * atom
	if end >= total {
		return start, total - start, true
	}
	return start, end - start, false
}

// CreateBuffer creates a buffer and binds it to new memory. On failure
// the buffer is destroyed.
func (al *Allocator) CreateBuffer(size int, usage vkmem.BufferUsage, flags vkmem.AllocationFlags) (vkmem.BufferHandle, vkmem.AllocationHandle, error) {
	var buffer vk.Buffer
	ret := vk.CreateBuffer(al.Device, &vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Usage:       vk.BufferUsageFlags(usage),
		Size:        vk.DeviceSize(size),
		SharingMode: vk.SharingModeExclusive,
	}, nil, &buffer)
	if err := NewError("create buffer", ret); err != nil {
		return 0, 0, err
	}
	memory, err := al.allocBufferMemory(buffer, PropertyFlags(flags))
	if err != nil {
		vk.DestroyBuffer(al.Device, buffer, nil)
		return 0, 0, err
	}
	al.next++
	h := vkmem.AllocationHandle(al.next)
	al.allocs[h] = &allocation{buffer: buffer, memory: memory, size: size, coherent: flags&vkmem.HostCoherent != 0}
	return vkmem.BufferHandle(al.next), h, nil
}

func (al *Allocator) allocBufferMemory(buffer vk.Buffer, props vk.MemoryPropertyFlags) (vk.DeviceMemory, error) {
	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(al.Device, buffer, &memReqs)
	memReqs.Deref()

	memType, ok := FindMemoryType(al.memoryTypes, memReqs.MemoryTypeBits, props)
	if !ok {
		return vk.NullDeviceMemory, errors.New("no memory type with the required properties")
	}
	var memory vk.DeviceMemory
	ret := vk.AllocateMemory(al.Device, &vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  memReqs.Size,
		MemoryTypeIndex: memType,
	}, nil, &memory)
	if err := NewError("allocate memory", ret); err != nil {
		return vk.NullDeviceMemory, err
	}
	if err := NewError("bind buffer memory", vk.BindBufferMemory(al.Device, buffer, memory, 0)); err != nil {
		vk.FreeMemory(al.Device, memory, nil)
		return vk.NullDeviceMemory, err
	}
	return memory, nil
}

// DestroyBuffer destroys a buffer and frees its memory.
func (al *Allocator) DestroyBuffer(buf vkmem.BufferHandle, alloc vkmem.AllocationHandle) {
	a, ok := al.allocs[alloc]
	if !ok {
		return
	}
	if a.mapped {
		vk.UnmapMemory(al.Device, a.memory)
	}
	vk.DestroyBuffer(al.Device, a.buffer, nil)
	vk.FreeMemory(al.Device, a.memory, nil)
	delete(al.allocs, alloc)
}

// Size returns the requested size of alloc.
func (al *Allocator) Size(alloc vkmem.AllocationHandle) int {
	if a, ok := al.allocs[alloc]; ok {
		return a.size
	}
	return 0
}

// Map maps all of alloc.
func (al *Allocator) Map(alloc vkmem.AllocationHandle) ([]byte, error) {
	a, ok := al.allocs[alloc]
	if !ok {
		return nil, errors.New("vkalloc: map: unknown allocation")
	}
	var ptr unsafe.Pointer
	ret := vk.MapMemory(al.Device, a.memory, 0, vk.DeviceSize(a.size), 0, &ptr)
	if err := NewError("map memory", ret); err != nil {
		return nil, err
	}
	a.mapped = true
	return unsafe.Slice((*byte)(ptr), a.size), nil
}

// Unmap unmaps alloc.
func (al *Allocator) Unmap(alloc vkmem.AllocationHandle) {
	if a, ok := al.allocs[alloc]; ok && a.mapped {
		vk.UnmapMemory(al.Device, a.memory)
		a.mapped = false
	}
}

func (al *Allocator) mappedRange(alloc vkmem.AllocationHandle, offset, size int) ([]vk.MappedMemoryRange, bool) {
	a, ok := al.allocs[alloc]
	if !ok || a.coherent {
		return nil, false
	}
	start, length, whole := AlignRange(offset, size, al.atomSize, a.size)
	rsize := vk.DeviceSize(length)
	if whole {
		rsize = vk.DeviceSize(vk.WholeSize)
	}
	return []vk.MappedMemoryRange{{
		SType:  vk.StructureTypeMappedMemoryRange,
		Memory: a.memory,
		Offset: vk.DeviceSize(start),
		Size:   rsize,
	}}, true
}

// Flush flushes a mapped range of non-coherent memory.
func (al *Allocator) Flush(alloc vkmem.AllocationHandle, offset, size int) error {
	rng, ok := al.mappedRange(alloc, offset, size)
	if !ok {
		return nil
	}
	return NewError("flush mapped memory", vk.FlushMappedMemoryRanges(al.Device, 1, rng))
}

// Invalidate invalidates a mapped range of non-coherent memory.
func (al *Allocator) Invalidate(alloc vkmem.AllocationHandle, offset, size int) error {
	rng, ok := al.mappedRange(alloc, offset, size)
	if !ok {
		return nil
	}
	return NewError("invalidate mapped memory", vk.InvalidateMappedMemoryRanges(al.Device, 1, rng))
}

// Destroy frees remaining allocations and destroys the device.
func (al *Allocator) Destroy() {
	if al.Device == nil {
		return
	}
	vk.DeviceWaitIdle(al.Device)
	for h := range al.allocs {
		al.DestroyBuffer(0, h)
	}
	vk.DestroyDevice(al.Device, nil)
	al.Device = nil
}
