// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkalloc

import (
	"testing"

	"cogentcore.org/gdevice/vkmem"
	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
)

var _ vkmem.Allocator = (*Allocator)(nil)

func TestPropertyFlags(t *testing.T) {
	got := PropertyFlags(vkmem.HostVisible | vkmem.HostCoherent)
	want := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	assert.Equal(t, want, got)
	assert.Equal(t, vk.MemoryPropertyFlags(0), PropertyFlags(0))
}

func TestFindMemoryType(t *testing.T) {
	local := vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit)
	visible := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit)
	coherent := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	types := []vk.MemoryPropertyFlags{local, visible, coherent}

	i, ok := FindMemoryType(types, 0b111, coherent)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), i)

	i, ok = FindMemoryType(types, 0b111, visible)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), i)

	i, ok = FindMemoryType(types, 0b101, visible)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), i, "type 1 is not allowed")

	_, ok = FindMemoryType(types, 0b001, visible)
	assert.False(t, ok)
}

func TestAlignRange(t *testing.T) {
	start, length, whole := AlignRange(70, 10, 64, 256)
	assert.Equal(t, 64, start)
	assert.Equal(t, 64, length)
	assert.False(t, whole)

	start, length, whole = AlignRange(200, 50, 64, 256)
	assert.Equal(t, 192, start)
	assert.Equal(t, 64, length)
	assert.True(t, whole)

	start, length, whole = AlignRange(3, 5, 1, 100)
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, length)
	assert.False(t, whole)
}

func TestSetup(t *testing.T) {
	t.Skip("Need software GPU on CI")
}
