// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/vkmem"
	"cogentcore.org/gdevice/vkmem/vkalloc"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/goki/vulkan"
)

// cStrings returns ss with null terminators, as needed by vulkan.
func cStrings(ss []string) []string {
	cs := make([]string, len(ss))
	for i, s := range ss {
		cs[i] = s + "\x00"
	}
	return cs
}

// setupVulkan creates an instance and a surface for a hidden window,
// attaches a bridge to an allocator on the selected device and checks
// a round trip through a host visible buffer.
func setupVulkan(w io.Writer) (err error) {
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return errors.Log(err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := glfw.CreateWindow(16, 16, "gdevinfo vulkan", nil, nil)
	if err != nil {
		return err
	}
	defer win.Destroy()

	exts := cStrings(win.GetRequiredInstanceExtensions())
	var instance vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:            vk.StructureTypeApplicationInfo,
			ApiVersion:       uint32(vk.MakeVersion(1, 2, 0)),
			PApplicationName: "gdevinfo\x00",
			PEngineName:      "gdevice\x00",
		},
		EnabledExtensionCount:   uint32(len(exts)),
		PpEnabledExtensionNames: exts,
	}, nil, &instance)
	if err := vkalloc.NewError("create instance", ret); err != nil {
		return err
	}
	defer vk.DestroyInstance(instance, nil)

	surfPtr, err := win.CreateWindowSurface(instance, nil)
	if err != nil {
		return err
	}
	surface := vk.SurfaceFromPointer(surfPtr)
	defer vk.DestroySurface(instance, surface, nil)

	al, err := vkalloc.Setup(instance, surface)
	if err != nil {
		return err
	}
	var bridge vkmem.Bridge
	if err := bridge.Attach(al); err != nil {
		al.Destroy()
		return err
	}
	defer bridge.Detach()
	fmt.Fprintf(w, "vulkan device: %s\n", al.Name)

	usage := vkmem.BufferUsage(vk.BufferUsageStorageBufferBit)
	buf, alloc, err := bridge.CreateBuffer(16, usage, vkmem.HostVisible|vkmem.HostCoherent)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, bridge.DestroyBuffer(buf, alloc)) }()
	data := []byte{1, 2, 3, 4}
	if err := bridge.Overwrite(buf, alloc, 4, data); err != nil {
		return err
	}
	m, err := bridge.Map(alloc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "vulkan buffer round trip: %v\n", m[4:8])
	return bridge.Unmap(alloc)
}
