// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"log/slog"

	"cogentcore.org/gdevice/glapi"
)

// Apply moves the driver to the fixed-function state s, issuing only
// the calls for aspects whose cached value differs from s.
//
// A driver error aborts Apply with a [DriverError] naming the failing
// aspect; aspects applied before it stay applied and cached.
func (dv *Device) Apply(s DrawState) error {
	ops, _, err := planState(dv.state, s, &dv.Caps)
	if err != nil {
		return err
	}
	return dv.run(ops)
}

func (dv *Device) run(ops []stateOp) error {
	for _, op := range ops {
		if op.call != nil {
			op.call(dv.gl)
			if err := dv.checkSkip(op.aspect, 2); err != nil {
				slog.Debug("gldev: state change failed", "aspect", op.aspect, "err", err)
				return err
			}
		}
		if op.commit != nil {
			op.commit(&dv.state)
		}
	}
	return nil
}

// Clear clears the color and depth buffers of the draw framebuffer
// to the given values; a nil value leaves that buffer alone. The
// scissor test is disabled and all color channels are written, and
// the depth mask is enabled when clearing depth. Those changes remain
// in effect and cached after Clear.
func (dv *Device) Clear(color *[4]float32, depth *float32) error {
	if color == nil && depth == nil {
		return nil
	}
	p := newPlanner(dv.state, &dv.Caps)
	p.enable("scissor test", glapi.SCISSOR_TEST, scissorTest, false)
	p.colorMask([4]bool{true, true, true, true})
	var mask glapi.Enum
	if color != nil {
		c := *color
		set(p, "clear color", func(s *stateCache) *cached[[4]float32] { return &s.clearColor }, c,
			func(f glapi.Functions) { f.ClearColor(c[0], c[1], c[2], c[3]) })
		mask |= glapi.COLOR_BUFFER_BIT
	}
	if depth != nil {
		d := *depth
		p.depthMask(true)
		set(p, "clear depth", func(s *stateCache) *cached[float32] { return &s.clearDepth }, d,
			func(f glapi.Functions) { f.ClearDepth(d) })
		mask |= glapi.DEPTH_BUFFER_BIT
	}
	p.add("clear", func(f glapi.Functions) { f.Clear(mask) }, nil)
	return dv.run(p.ops)
}
