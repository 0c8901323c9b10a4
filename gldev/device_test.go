// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"errors"
	"testing"

	"cogentcore.org/gdevice/config"
	"cogentcore.org/gdevice/glapi"
	"cogentcore.org/gdevice/glapi/glfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testContext struct {
	active        bool
	activations   int
	deactivations int
	hooks         []func()
	activateErr   error
}

func (c *testContext) Activate() error {
	if c.activateErr != nil {
		return c.activateErr
	}
	c.active = true
	c.activations++
	return nil
}

func (c *testContext) Deactivate() error {
	c.active = false
	c.deactivations++
	for _, fn := range c.hooks {
		fn()
	}
	return nil
}

func (c *testContext) OnDeactivate(fn func()) {
	c.hooks = append(c.hooks, fn)
}

// newTestDevice returns a device on f with an empty call record.
func newTestDevice(t *testing.T, f *glfake.Functions) (*Device, *testContext) {
	t.Helper()
	ctx := &testContext{}
	dv, err := New(ctx, f, nil)
	require.NoError(t, err)
	f.ClearCalls()
	return dv, ctx
}

func TestNew(t *testing.T) {
	f := glfake.New()
	dv, ctx := newTestDevice(t, f)
	assert.Equal(t, 1, ctx.activations)
	assert.Equal(t, 1, ctx.deactivations)
	assert.False(t, ctx.active)
	assert.Len(t, ctx.hooks, 1)

	assert.Equal(t, glapi.Version{4, 6}, dv.Caps.Version)
	assert.False(t, dv.Caps.ES)
	assert.True(t, dv.Caps.Features.Has(FeatureClipControl|FeatureImageUnit|FeatureShaderStorage|FeatureAnisotropy))
	assert.Equal(t, 8, dv.Caps.MaxClipDistances)
	assert.Equal(t, 32, dv.Caps.MaxTextureUnits)
	assert.Equal(t, 8, dv.Caps.MaxImageUnits)
	assert.Equal(t, 8, dv.Caps.MaxStorageBufferBindings)
	assert.Equal(t, float32(16), dv.Caps.MaxAnisotropy)
	assert.Same(t, f, dv.Functions())
}

func TestNewOldDriver(t *testing.T) {
	f := glfake.New()
	f.Version = "4.1.0 glfake"
	dv, _ := newTestDevice(t, f)
	assert.Equal(t, Features(0), dv.Caps.Features)
	assert.Zero(t, dv.Caps.MaxImageUnits)
	assert.Zero(t, dv.Caps.MaxStorageBufferBindings)
	assert.Zero(t, dv.Caps.MaxAnisotropy)
	assert.Equal(t, "none", dv.Caps.Features.String())

	f = glfake.New()
	f.Version = "4.1.0 glfake"
	f.Exts = []string{"GL_ARB_clip_control", "GL_EXT_texture_filter_anisotropic"}
	dv, _ = newTestDevice(t, f)
	assert.Equal(t, FeatureClipControl|FeatureAnisotropy, dv.Caps.Features)
	assert.Equal(t, "clip control, anisotropic filtering", dv.Caps.Features.String())
}

func TestNewToggles(t *testing.T) {
	f := glfake.New()
	cfg := config.Default()
	cfg.ClipControl = config.Disabled
	cfg.ShaderStorage = config.Disabled
	dv, err := New(&testContext{}, f, cfg)
	require.NoError(t, err)
	assert.False(t, dv.Caps.Features.Has(FeatureClipControl))
	assert.False(t, dv.Caps.Features.Has(FeatureShaderStorage))
	assert.True(t, dv.Caps.Features.Has(FeatureImageUnit|FeatureAnisotropy))
	assert.Zero(t, dv.Caps.MaxStorageBufferBindings)
}

func TestNewErrors(t *testing.T) {
	ctx := &testContext{activateErr: errors.New("no display")}
	_, err := New(ctx, glfake.New(), nil)
	assert.ErrorContains(t, err, "no display")

	f := glfake.New()
	f.Version = "garbage"
	ctx = &testContext{}
	_, err = New(ctx, f, nil)
	assert.Error(t, err)
	assert.Equal(t, 1, ctx.deactivations, "context is released on failure")
	assert.Empty(t, ctx.hooks)
}

func TestResetOnDeactivate(t *testing.T) {
	f := glfake.New()
	dv, ctx := newTestDevice(t, f)
	s := DefaultDrawState()
	s.DepthWrite = true
	require.NoError(t, dv.Apply(s))
	first := f.Names()
	require.NotEmpty(t, first)

	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.Empty(t, f.Calls)

	require.NoError(t, ctx.Deactivate())
	require.NoError(t, ctx.Activate())
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, first, f.Names())

	dv.Reset()
	dv.Reset()
	f.ClearCalls()
	require.NoError(t, dv.Apply(s))
	assert.Equal(t, first, f.Names())
}

func TestDebugCallback(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)

	var got []DebugMessage
	dv.SetDebugCallback(func(m DebugMessage) error {
		got = append(got, m)
		return errors.New("callback failure")
	})
	require.NotNil(t, f.Debug)
	assert.NotPanics(t, func() { f.EmitDebug(glapi.DEBUG_SEVERITY_HIGH, "bad thing") })
	require.Len(t, got, 1)
	assert.Equal(t, "bad thing", got[0].Message)
	assert.Equal(t, glapi.DEBUG_SEVERITY_HIGH, got[0].Severity)

	dv.SetDebugCallback(func(m DebugMessage) error { panic("boom") })
	assert.NotPanics(t, func() { f.EmitDebug(glapi.DEBUG_SEVERITY_LOW, "note") })

	dv.SetDebugCallback(nil)
	assert.Nil(t, f.Debug)
}

func TestNewDebugConfig(t *testing.T) {
	f := glfake.New()
	cfg := config.Default()
	cfg.Debug = true
	_, err := New(&testContext{}, f, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count("DebugMessageCallback"))
	assert.NotPanics(t, func() { f.EmitDebug(glapi.DEBUG_SEVERITY_MEDIUM, "slow path") })
}

func TestDriverErrorCaller(t *testing.T) {
	f := glfake.New()
	dv, _ := newTestDevice(t, f)
	f.FailOn("DeleteTexture", glapi.INVALID_VALUE)
	err := dv.DeleteTexture(7)
	var de *DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "delete texture", de.Op)
	assert.Equal(t, glapi.INVALID_VALUE, de.Code)
	assert.Contains(t, de.Caller.Function, "DeleteTexture")
	assert.Contains(t, err.Error(), "0x0501")
}
