// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/gdevice/glapi"
)

// DebugMessage is a message from the driver debug output.
type DebugMessage struct {
	Source   glapi.Enum
	Type     glapi.Enum
	ID       uint32
	Severity glapi.Enum
	Message  string
}

// Level returns the log level matching the severity of m.
func (m DebugMessage) Level() slog.Level {
	switch m.Severity {
	case glapi.DEBUG_SEVERITY_HIGH:
		return slog.LevelError
	case glapi.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelWarn
	case glapi.DEBUG_SEVERITY_LOW:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// LogDebugMessage logs m at the level of its severity.
func LogDebugMessage(m DebugMessage) error {
	slog.Log(context.Background(), m.Level(), "gldev: driver: "+m.Message, "source", fmt.Sprintf("0x%04X", uint32(m.Source)),
		"type", fmt.Sprintf("0x%04X", uint32(m.Type)), "id", m.ID)
	return nil
}

// SetDebugCallback installs fn as the receiver of driver debug
// messages, or removes it when fn is nil. fn runs synchronously inside
// the driver call that produced the message. An error returned by fn,
// or a panic in it, is logged and never returned through the driver.
func (dv *Device) SetDebugCallback(fn func(DebugMessage) error) {
	dv.debug = fn
	if fn == nil {
		dv.gl.DebugMessageCallback(nil)
		return
	}
	dv.gl.DebugMessageCallback(dv.deliverDebug)
}

func (dv *Device) deliverDebug(source, typ glapi.Enum, id uint32, severity glapi.Enum, message string) {
	fn := dv.debug
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("gldev: debug callback panicked", "panic", r, "message", message)
		}
	}()
	if err := fn(DebugMessage{Source: source, Type: typ, ID: id, Severity: severity, Message: message}); err != nil {
		slog.Error("gldev: debug callback failed", "err", err, "message", message)
	}
}
