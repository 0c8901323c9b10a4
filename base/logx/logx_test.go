// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	lvl, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	prev := UserLevel.Level()
	defer UserLevel.Set(prev)
	UserLevel.Set(slog.LevelInfo)

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, termenv.WithProfile(termenv.Ascii)))
	lg.Debug("hidden")
	lg.Info("probed", "version", "4.6")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "version=4.6")
}

func TestLevelStringColor(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))
	s := LevelString(out, slog.LevelError)
	assert.Contains(t, s, "ERROR")
	assert.NotEqual(t, "ERROR", s)
	plain := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "WARN", LevelString(plain, slog.LevelWarn))
}
