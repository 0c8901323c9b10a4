// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gdevinfo probes the OpenGL device of a hidden window, prints
// its capabilities and renders a cleared frame to check the state
// cache and framebuffer readback. With --vulkan it also sets up the
// Vulkan device memory allocator bridge.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

func init() {
	// glfw calls must happen on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logLevel   string
	vulkan     bool
	smoke      bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "gdevinfo",
		Short:         "Print OpenGL device capabilities and run a smoke frame",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/gdevice/config.toml)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.BoolVar(&opts.vulkan, "vulkan", false, "also set up the Vulkan allocator bridge")
	f.BoolVar(&opts.smoke, "smoke", true, "render and read back a cleared frame")
	f.BoolVar(&opts.debug, "debug", false, "request a debug context and log driver messages")
	return cmd
}
