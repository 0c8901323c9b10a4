// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the leveled, colored slog handler
// used by the device layer and its tools.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level of the default logger,
// [slog.LevelInfo] unless set by [Init].
var UserLevel = new(slog.LevelVar)

// ParseLevel returns the level for the given name
// (debug, info, warn or error; case-insensitive).
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("logx: invalid log level %q", name)
	}
	return lvl, nil
}

// NewHandler returns a text handler writing to w that colors the
// level attribute according to the color profile of w.
func NewHandler(w io.Writer, opts ...termenv.OutputOption) slog.Handler {
	out := termenv.NewOutput(w, opts...)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(LevelString(out, lvl))
				}
			}
			return a
		},
	})
}

// LevelString returns the name of lvl styled for out.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lvl >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}

// Init sets the user level from the given name, when non-empty,
// and installs a [NewHandler] on stderr as the default logger.
func Init(level string) error {
	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		UserLevel.Set(lvl)
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
	return nil
}
