// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwctx provides a [gldev.Context] owning an OpenGL context
// in a hidden glfw window.
//
// Init and Terminate must be called on the main thread, and the
// calling goroutine must be locked to it with runtime.LockOSThread.
package glfwctx

import (
	"fmt"
	"image"

	"cogentcore.org/gdevice/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes glfw.
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw; call it as the last thing before quitting.
func Terminate() {
	glfw.Terminate()
}

// Options are the options for a new context.
type Options struct {

	// Size is the size of the window framebuffer.
	Size image.Point

	// Major and Minor are the requested OpenGL core profile version.
	Major, Minor int

	// Debug requests a debug context.
	Debug bool

	// Title is the window title.
	Title string
}

// DefaultOptions returns options for a 4.6 core profile context.
func DefaultOptions() *Options {
	return &Options{Size: image.Pt(64, 64), Major: 4, Minor: 6, Title: "gdevice"}
}

// Context is a glfw window with an OpenGL context.
type Context struct {
	Window *glfw.Window

	hooks []func()
}

// New creates a hidden window with an OpenGL context. The context is
// not made current.
func New(opts *Options) (*Context, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	win, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfwctx: creating %d.%d window: %w", opts.Major, opts.Minor, err)
	}
	return &Context{Window: win}, nil
}

// Activate makes the context current on the calling thread.
func (c *Context) Activate() error {
	c.Window.MakeContextCurrent()
	return nil
}

// Deactivate detaches the current context from the calling thread
// and calls the deactivation hooks.
func (c *Context) Deactivate() error {
	glfw.DetachCurrentContext()
	c.runHooks()
	return nil
}

// OnDeactivate adds fn to the hooks called on Deactivate and Destroy.
func (c *Context) OnDeactivate(fn func()) {
	c.hooks = append(c.hooks, fn)
}

func (c *Context) runHooks() {
	for _, fn := range c.hooks {
		fn()
	}
}

// FramebufferSize returns the size of the window framebuffer.
func (c *Context) FramebufferSize() image.Point {
	w, h := c.Window.GetFramebufferSize()
	return image.Pt(w, h)
}

// Destroy calls the deactivation hooks and destroys the window.
func (c *Context) Destroy() {
	if c.Window == nil {
		return
	}
	c.runHooks()
	c.Window.Destroy()
	c.Window = nil
}
