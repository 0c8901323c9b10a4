// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkmem

import (
	"errors"
	"slices"
)

// SwapchainExtension is the device extension every selected device
// must support.
const SwapchainExtension = "VK_KHR_swapchain"

// QueueFamily is the capabilities of one queue family of a device.
type QueueFamily struct {
	Graphics bool

	// Present is support for presenting to the target surface.
	Present bool
}

// DeviceCandidate describes a physical device considered for setup.
type DeviceCandidate struct {
	Name       string
	Families   []QueueFamily
	Extensions []string
}

// Queues returns the graphics and present queue family indexes of c,
// preferring a single family supporting both. ok is false if either
// is missing.
func (c *DeviceCandidate) Queues() (graphics, present int, ok bool) {
	graphics, present = -1, -1
	for i, qf := range c.Families {
		if qf.Graphics && qf.Present {
			return i, i, true
		}
		if qf.Graphics && graphics < 0 {
			graphics = i
		}
		if qf.Present && present < 0 {
			present = i
		}
	}
	return graphics, present, graphics >= 0 && present >= 0
}

// ScoreDevice returns 1 for a device with a queue family supporting
// both graphics and presentation, 0 for one with separate families,
// and -1 for one that cannot be used: it lacks a graphics or present
// family, or the swapchain extension.
func ScoreDevice(c DeviceCandidate) int {
	if !slices.Contains(c.Extensions, SwapchainExtension) {
		return -1
	}
	g, p, ok := c.Queues()
	switch {
	case !ok:
		return -1
	case g == p:
		return 1
	}
	return 0
}

// SelectDevice returns the index of the highest scoring candidate,
// the first of those with equal scores, or an error if none can be
// used.
func SelectDevice(cs []DeviceCandidate) (int, error) {
	best, score := -1, -1
	for i, c := range cs {
		if s := ScoreDevice(c); s > score {
			best, score = i, s
		}
	}
	if best < 0 {
		return -1, errors.New("vkmem: no suitable vulkan device: a device needs graphics and present queues and " + SwapchainExtension)
	}
	return best, nil
}
