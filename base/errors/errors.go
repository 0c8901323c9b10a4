// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo(1).String())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo(1).String())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Caller is the file, function and line of a call site.
type Caller struct {
	File     string
	Function string
	Line     int
}

// String returns the caller as "file:line function".
func (c Caller) String() string {
	if c.File == "" {
		return "unknown caller"
	}
	return fmt.Sprintf("%s:%d %s", filepath.Base(c.File), c.Line, c.Function)
}

// CallerInfo returns the call site skip frames above the caller
// of CallerInfo.
func CallerInfo(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}
	c := Caller{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		c.Function = filepath.Base(fn.Name())
	}
	return c
}

// New is a wrapper for [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join is a wrapper for [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is is a wrapper for [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper for [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// AsType returns the first error in err's chain of type E,
// and whether one was found.
func AsType[E error](err error) (E, bool) {
	var target E
	ok := errors.As(err, &target)
	return target, ok
}

// Unwrap is a wrapper for [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
