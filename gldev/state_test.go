// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"image"
	"testing"

	"cogentcore.org/gdevice/glapi"
	"cogentcore.org/gdevice/glapi/glfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capArgs returns the first argument of each call named name.
func capArgs(f *glfake.Functions, name string) []glapi.Enum {
	var caps []glapi.Enum
	for _, c := range f.Named(name) {
		caps = append(caps, c.Args[0].(glapi.Enum))
	}
	return caps
}

func clipSlots(idx ...int) []glapi.Enum {
	caps := make([]glapi.Enum, len(idx))
	for i, x := range idx {
		caps[i] = glapi.CLIP_DISTANCE0 + glapi.Enum(x)
	}
	return caps
}

func fullState() DrawState {
	s := DefaultDrawState()
	s.DepthWrite = true
	s.DepthFunc = glapi.LESS
	s.Blend = NewBlend(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA)
	s.CullFace = glapi.BACK
	s.Scissor = &image.Rectangle{Min: image.Pt(1, 2), Max: image.Pt(11, 22)}
	s.PolygonMode = glapi.LINE
	s.PointSize = 4
	s.ClipDistances = 2
	s.ClipOrigin = glapi.UPPER_LEFT
	s.ClipDepth = glapi.ZERO_TO_ONE
	return s
}

func TestApplyIdempotent(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := fullState()
	require.NoError(t, dv.Apply(s))
	assert.True(t, f.IsEnabled(glapi.DEPTH_TEST))
	assert.True(t, f.IsEnabled(glapi.BLEND))
	assert.True(t, f.IsEnabled(glapi.CULL_FACE))
	assert.True(t, f.IsEnabled(glapi.SCISSOR_TEST))
	assert.Equal(t, []any{1, 2, 10, 20}, f.Named("Scissor")[0].Args)
	assert.Equal(t, []any{glapi.FRONT_AND_BACK, glapi.LINE}, f.Named("PolygonMode")[0].Args)
	assert.Equal(t, []any{glapi.UPPER_LEFT, glapi.ZERO_TO_ONE}, f.Named("ClipControl")[0].Args)
	assert.Equal(t, []any{float32(1), float32(1), float32(1), float32(1)}, f.Named("BlendColor")[0].Args)
	assert.Equal(t, []any{glapi.FUNC_ADD}, f.Named("BlendEquation")[0].Args)

	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.Empty(t, f.Calls)

	require.NoError(t, dv.Apply(s.Clone()))
	assert.Empty(t, f.Calls)
}

func TestApplyChangesOnlyDifferences(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := fullState()
	require.NoError(t, dv.Apply(s))
	f.ClearCalls()

	s.Scissor = &image.Rectangle{Min: image.Pt(1, 3), Max: image.Pt(11, 23)}
	s.DepthFunc = glapi.LEQUAL
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, []string{"DepthFunc", "GetError", "Scissor", "GetError"}, f.Names())
	assert.Equal(t, []any{1, 3, 10, 20}, f.Named("Scissor")[0].Args)
}

func TestDepthCollapse(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.DepthWrite = true
	s.DepthFunc = glapi.LESS
	require.NoError(t, dv.Apply(s))
	assert.True(t, f.IsEnabled(glapi.DEPTH_TEST))

	f.ClearCalls()
	s.DepthWrite = false
	s.DepthFunc = glapi.ALWAYS
	require.NoError(t, dv.Apply(s))
	assert.False(t, f.IsEnabled(glapi.DEPTH_TEST))
	assert.Zero(t, f.Count("DepthFunc"))
	assert.Zero(t, f.Count("DepthMask"))

	s.DepthFunc = 0
	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.Empty(t, f.Calls, "zero depth func is ALWAYS")
}

func TestDepthClamp(t *testing.T) {
	f := glfake.New()
	dv, ctx := newTestDevice(t, f)
	s := DefaultDrawState()
	require.NoError(t, dv.Apply(s))
	assert.False(t, f.IsEnabled(glapi.DEPTH_CLAMP))
	assert.Contains(t, capArgs(f, "Disable"), glapi.DEPTH_CLAMP)

	f.ClearCalls()
	s.DepthClamp = true
	require.NoError(t, dv.Apply(s))
	assert.True(t, f.IsEnabled(glapi.DEPTH_CLAMP))
	assert.Equal(t, []glapi.Enum{glapi.DEPTH_CLAMP}, capArgs(f, "Enable"))

	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.Empty(t, f.Calls)

	require.NoError(t, ctx.Deactivate())
	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.Contains(t, capArgs(f, "Enable"), glapi.DEPTH_CLAMP, "reapplied after the cache is reset")
}

func TestScissorNegativeSize(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.Scissor = &image.Rectangle{Min: image.Pt(10, 10), Max: image.Pt(2, 2)}
	var ae *ArgumentError
	assert.ErrorAs(t, dv.Apply(s), &ae)
	assert.Empty(t, f.Calls)

	s.Scissor = &image.Rectangle{Min: image.Pt(10, 10), Max: image.Pt(10, 10)}
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, []any{10, 10, 0, 0}, f.Named("Scissor")[0].Args)
}

func TestBlendCollapse(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.Blend = NewBlend(glapi.ONE, glapi.ONE)
	require.NoError(t, dv.Apply(s))
	assert.True(t, f.IsEnabled(glapi.BLEND))

	f.ClearCalls()
	s.Blend = &BlendState{Src: glapi.ONE, Dst: glapi.ZERO, SrcAlpha: glapi.ONE, DstAlpha: glapi.ZERO, Equation: glapi.MAX}
	require.NoError(t, dv.Apply(s))
	assert.False(t, f.IsEnabled(glapi.BLEND))
	assert.Zero(t, f.Count("BlendFuncSeparate"))
	assert.Zero(t, f.Count("BlendEquation"))

	assert.True(t, (*BlendState)(nil).IsIdentity())
	assert.False(t, NewBlend(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA).IsIdentity())
}

func TestBlendColor(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.Blend = NewBlend(glapi.CONSTANT_COLOR, glapi.ZERO)
	s.Blend.Color = &[4]float32{0.5, 0.25, 0, 1}
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, []any{float32(0.5), float32(0.25), float32(0), float32(1)}, f.Named("BlendColor")[0].Args)
}

func TestClipDistanceLadder(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.ClipDistances = 2
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, clipSlots(0, 1), capArgs(f, "Enable"))
	disabled := capArgs(f, "Disable")
	require.Len(t, disabled, 11)
	assert.Equal(t, []glapi.Enum{glapi.DEPTH_TEST, glapi.DEPTH_CLAMP, glapi.BLEND, glapi.CULL_FACE, glapi.SCISSOR_TEST}, disabled[:5])
	assert.Equal(t, clipSlots(2, 3, 4, 5, 6, 7), disabled[5:])

	f.ClearCalls()
	s.ClipDistances = 5
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, clipSlots(2, 3, 4), capArgs(f, "Enable"))
	assert.Empty(t, capArgs(f, "Disable"))

	f.ClearCalls()
	s.ClipDistances = 2
	require.NoError(t, dv.Apply(s))
	assert.ElementsMatch(t, clipSlots(2, 3, 4), capArgs(f, "Disable"))
	assert.Empty(t, capArgs(f, "Enable"))
}

func TestClipDistanceLimit(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.ClipDistances = 9
	var ae *ArgumentError
	assert.ErrorAs(t, dv.Apply(s), &ae)
	s.ClipDistances = -1
	assert.ErrorAs(t, dv.Apply(s), &ae)
	assert.Empty(t, f.Calls)
}

func TestClipControlUnsupported(t *testing.T) {
	f := glfake.New()
	f.Version = "4.1.0 glfake"
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.ClipOrigin = glapi.UPPER_LEFT
	var ue *UnsupportedFeatureError
	require.ErrorAs(t, dv.Apply(s), &ue)
	assert.Equal(t, FeatureClipControl, ue.Feature)
	assert.Empty(t, f.Calls)

	s.ClipOrigin = glapi.LOWER_LEFT
	s.ClipDepth = glapi.NEGATIVE_ONE_TO_ONE
	require.NoError(t, dv.Apply(s))
	assert.Zero(t, f.Count("ClipControl"))
}

func TestPointSize(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, []any{float32(1)}, f.Named("PointSize")[0].Args)

	f.ClearCalls()
	s.PointSize = -2
	var ae *ArgumentError
	assert.ErrorAs(t, dv.Apply(s), &ae)
	assert.Empty(t, f.Calls)
}

func TestApplyPartialFailure(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := fullState()
	f.FailOn("BlendEquation", glapi.INVALID_ENUM)
	err := dv.Apply(s)
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "blend equation", de.Op)
	assert.Equal(t, glapi.INVALID_ENUM, de.Code)
	assert.Contains(t, de.Caller.Function, "Apply")
	assert.Zero(t, f.Count("CullFace"), "apply stops at the failing aspect")

	f.ClearFailures()
	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.Zero(t, f.Count("DepthFunc"), "aspects before the failure stay cached")
	assert.Zero(t, f.Count("BlendFuncSeparate"))
	assert.Equal(t, 1, f.Count("BlendEquation"))
	assert.Equal(t, 1, f.Count("CullFace"))
}

func TestClear(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	s := DefaultDrawState()
	s.ColorMask = [4]bool{true, false, true, false}
	s.Scissor = &image.Rectangle{Max: image.Pt(4, 4)}
	require.NoError(t, dv.Apply(s))

	f.ClearCalls()
	color := [4]float32{0, 0, 0, 1}
	depth := float32(1)
	require.NoError(t, dv.Clear(&color, &depth))
	assert.False(t, f.IsEnabled(glapi.SCISSOR_TEST))
	assert.Equal(t, []any{true, true, true, true}, f.Named("ColorMask")[0].Args)
	assert.Equal(t, []any{true}, f.Named("DepthMask")[0].Args)
	assert.Equal(t, 1, f.Count("ClearColor"))
	assert.Equal(t, 1, f.Count("ClearDepth"))
	require.Equal(t, 1, f.Count("Clear"))
	assert.Equal(t, []any{glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT}, f.Named("Clear")[0].Args)

	f.ClearCalls()
	require.NoError(t, dv.Clear(&color, nil))
	assert.Equal(t, []string{"Clear", "GetError"}, f.Names())
	assert.Equal(t, []any{glapi.COLOR_BUFFER_BIT}, f.Named("Clear")[0].Args)

	f.ClearCalls()
	require.NoError(t, dv.Clear(nil, nil))
	assert.Empty(t, f.Calls)

	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.True(t, f.IsEnabled(glapi.SCISSOR_TEST), "clear overrides are undone by the next apply")
	assert.Equal(t, 1, f.Count("ColorMask"))
}

func TestDrawStateClone(t *testing.T) {
	s := fullState()
	c := s.Clone()
	assert.Equal(t, s.Scissor, c.Scissor)
	assert.NotSame(t, s.Scissor, c.Scissor)
	assert.NotSame(t, s.Blend, c.Blend)
	assert.Equal(t, s.Blend.Src, c.Blend.Src)
	c.Scissor.Max.X = 100
	assert.Equal(t, 11, s.Scissor.Max.X)
}

func TestPlanStateIsPure(t *testing.T) {
	caps := &Caps{MaxClipDistances: 8, Features: FeatureClipControl}
	ops, next, err := planState(stateCache{}, fullState(), caps)
	require.NoError(t, err)
	assert.NotEmpty(t, ops)
	assert.True(t, next.blend.is(true))
	assert.True(t, next.clipDistances.is(2))
	assert.True(t, next.scissor.is([4]int{1, 2, 10, 20}))

	ops, again, err := planState(next, fullState(), caps)
	require.NoError(t, err)
	assert.Empty(t, ops)
	assert.Equal(t, next, again)
}
