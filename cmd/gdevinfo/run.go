// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"cogentcore.org/gdevice/base/errors"
	"cogentcore.org/gdevice/base/logx"
	"cogentcore.org/gdevice/config"
	"cogentcore.org/gdevice/glapi"
	"cogentcore.org/gdevice/glapi/glnative"
	"cogentcore.org/gdevice/gldev"
	"cogentcore.org/gdevice/glfwctx"
)

func run(w io.Writer, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.debug {
		cfg.Debug = true
	}
	if err := logx.Init(cfg.LogLevel); err != nil {
		return err
	}

	if err := glfwctx.Init(); err != nil {
		return err
	}
	defer glfwctx.Terminate()

	copts := glfwctx.DefaultOptions()
	copts.Debug = cfg.Debug
	ctx, err := glfwctx.New(copts)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	dv, err := gldev.New(ctx, glnative.New(), cfg)
	if err != nil {
		return err
	}
	printCaps(w, &dv.Caps)

	if opts.smoke {
		if err := ctx.Activate(); err != nil {
			return err
		}
		err := smokeFrame(w, dv, ctx.FramebufferSize())
		errors.Log(ctx.Deactivate())
		if err != nil {
			return err
		}
	}
	if opts.vulkan {
		return setupVulkan(w)
	}
	return nil
}

func printCaps(w io.Writer, c *gldev.Caps) {
	fmt.Fprintln(w, c)
	fmt.Fprintf(w, "  texture units:           %d\n", c.MaxTextureUnits)
	fmt.Fprintf(w, "  clip distances:          %d\n", c.MaxClipDistances)
	fmt.Fprintf(w, "  image units:             %d\n", c.MaxImageUnits)
	fmt.Fprintf(w, "  storage buffer bindings: %d\n", c.MaxStorageBufferBindings)
	fmt.Fprintf(w, "  draw buffers:            %d\n", c.MaxDrawBuffers)
	fmt.Fprintf(w, "  max anisotropy:          %g\n", c.MaxAnisotropy)
}

// smokeFrame clears an offscreen color and depth target through the
// state cache and reads the result back.
func smokeFrame(w io.Writer, dv *gldev.Device, size image.Point) (err error) {
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(16, 16)
	}
	tex, err := dv.CreateTexture()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, dv.DeleteTexture(tex)) }()
	if err := dv.BindTexture(0, glapi.TEXTURE_2D, tex); err != nil {
		return err
	}
	if err := dv.UploadTexture2D(glapi.TEXTURE_2D, glapi.RGBA32F, size, glapi.RGBA, glapi.FLOAT, nil); err != nil {
		return err
	}
	err = dv.SetTextureParameters(glapi.TEXTURE_2D, gldev.TextureParameters{
		MinFilter: gldev.MinFilterFor(gldev.MipmapNone, gldev.FilterNearest),
		MagFilter: gldev.MagFilterFor(gldev.FilterNearest),
		WrapS:     glapi.CLAMP_TO_EDGE,
	})
	if err != nil {
		return err
	}

	fb, err := dv.CreateFramebuffer()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, dv.DeleteFramebuffer(fb)) }()
	if err := dv.BindReadFramebuffer(fb); err != nil {
		return err
	}
	if err := dv.AttachColor(tex, 0); err != nil {
		return err
	}
	rb, err := dv.AttachDepthRenderbuffer(size)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, dv.DeleteRenderbuffer(rb)) }()
	if err := dv.CheckFramebuffer(glapi.READ_FRAMEBUFFER); err != nil {
		return err
	}
	if err := dv.BindDrawFramebuffer(fb, size); err != nil {
		return err
	}

	st := gldev.DefaultDrawState()
	st.DepthFunc = glapi.LESS
	st.Blend = gldev.NewBlend(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA)
	if err := dv.Apply(st); err != nil {
		return err
	}
	color := [4]float32{0.25, 0.5, 0.75, 1}
	depth := float32(1)
	if err := dv.Clear(&color, &depth); err != nil {
		return err
	}
	px, err := dv.ReadColor(image.Rect(0, 0, 1, 1), 0)
	if err != nil {
		return err
	}
	d, err := dv.ReadDepth(image.Rect(0, 0, 1, 1))
	if err != nil {
		return err
	}
	slog.Debug("smoke frame read back", "color", px, "depth", d)
	fmt.Fprintf(w, "smoke frame: %dx%d cleared to %v, read back %v depth %v\n", size.X, size.Y, color, px, d)
	return dv.BindDrawFramebuffer(0, size)
}
