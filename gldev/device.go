// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldev is a thin device layer over OpenGL. A [Device] creates
// and destroys native resources, transfers buffer and texture data,
// manages framebuffer targets, compiles and reflects programs, and
// issues draws and compute dispatches. Fixed-function state is set
// through [Device.Apply], which consults a cache of the state last
// applied to the driver and only issues the calls needed to move the
// driver to the requested state.
//
// A Device is bound to one graphics context and, like the driver,
// must only be used from the thread owning that context.
package gldev

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gdevice/config"
	"cogentcore.org/gdevice/glapi"
)

// Context is the windowing collaborator owning the graphics context.
type Context interface {

	// Activate makes the context current on the calling thread.
	Activate() error

	// Deactivate releases the context from the calling thread.
	Deactivate() error

	// OnDeactivate registers fn to be called whenever the context
	// is deactivated or destroyed.
	OnDeactivate(fn func())
}

// Device is a graphics device bound to one context.
type Device struct {

	// Caps are the probed capabilities and limits.
	Caps Caps

	gl    glapi.Functions
	state stateCache
	debug func(DebugMessage) error

	// emptyMaps are the targets mapped with a zero length, which
	// have no native mapping to release.
	emptyMaps map[glapi.Enum]bool
}

// New returns a device for the context owned by ctx, calling into
// the driver through f. It activates ctx, resolves f if it is a
// [glapi.Loader], probes capabilities subject to the toggles of cfg
// (which may be nil for defaults), and deactivates ctx again before
// returning. The device state cache is reset whenever ctx is
// deactivated.
func New(ctx Context, f glapi.Functions, cfg *config.Config) (*Device, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := ctx.Activate(); err != nil {
		return nil, fmt.Errorf("gldev: activating context: %w", err)
	}
	dv, err := newDevice(f, cfg)
	if derr := ctx.Deactivate(); err == nil && derr != nil {
		err = fmt.Errorf("gldev: deactivating context: %w", derr)
	}
	if err != nil {
		return nil, err
	}
	ctx.OnDeactivate(dv.Reset)
	return dv, nil
}

func newDevice(f glapi.Functions, cfg *config.Config) (*Device, error) {
	if ld, ok := f.(glapi.Loader); ok {
		if err := ld.Load(); err != nil {
			return nil, fmt.Errorf("gldev: loading OpenGL functions: %w", err)
		}
	}
	dv := &Device{gl: f}
	caps, err := probeCaps(f, cfg)
	if err != nil {
		return nil, err
	}
	if err := dv.check("probe capabilities"); err != nil {
		return nil, err
	}
	dv.Caps = caps
	slog.Info("gldev: device ready", "version", caps.Version, "renderer", caps.Renderer, "features", caps.Features)
	if cfg.Debug {
		dv.SetDebugCallback(LogDebugMessage)
	}
	return dv, nil
}

// Functions returns the native functions of the device.
func (dv *Device) Functions() glapi.Functions {
	return dv.gl
}

// Reset returns every cached state aspect to unknown, so the next
// state change is applied unconditionally. It is called when the
// context is deactivated, and is safe to call any number of times.
func (dv *Device) Reset() {
	dv.state = stateCache{}
	slog.Debug("gldev: state cache reset")
}

// require returns an [UnsupportedFeatureError] for op unless the
// device has feat.
func (dv *Device) require(op string, feat Features) error {
	if !dv.Caps.Features.Has(feat) {
		return &UnsupportedFeatureError{Op: op, Feature: feat}
	}
	return nil
}
