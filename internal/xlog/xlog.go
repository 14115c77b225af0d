// Copyright 2024 The WDBC Toolkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package xlog is the small leveled-logger seam used across the toolkit.
//
// Callers inject their own backend through the Logger interface; nothing
// in this module depends on a concrete logging library. A nil Logger is
// always equivalent to NopLogger.
package xlog

import "fmt"

// Logger is the minimal leveled-logging contract the toolkit depends on.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards everything. It is the zero value callers get when no
// Logger is configured.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}

// Helper wraps a Logger, falling back to NopLogger when none is given.
// Mirrors the shape of an injectable logger handle consumed by a
// library's options struct.
type Helper struct {
	l Logger
}

// NewHelper returns a Helper around l. A nil l is treated as NopLogger.
func NewHelper(l Logger) *Helper {
	if l == nil {
		l = NopLogger{}
	}
	return &Helper{l: l}
}

func (h *Helper) Debugf(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.l.Debugf(format, args...)
}

func (h *Helper) Infof(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.l.Infof(format, args...)
}

func (h *Helper) Warnf(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.l.Warnf(format, args...)
}

func (h *Helper) Errorf(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.l.Errorf(format, args...)
}

// StdLogger is a trivial Logger backed by fmt.Printf-style output, useful
// for CLI tools that want readable output without pulling in a logging
// dependency of their own.
type StdLogger struct {
	Prefix string
}

func (s StdLogger) Debugf(format string, args ...interface{}) { s.printf("DEBUG", format, args...) }
func (s StdLogger) Infof(format string, args ...interface{})  { s.printf("INFO", format, args...) }
func (s StdLogger) Warnf(format string, args ...interface{})  { s.printf("WARN", format, args...) }
func (s StdLogger) Errorf(format string, args ...interface{}) { s.printf("ERROR", format, args...) }

func (s StdLogger) printf(level, format string, args ...interface{}) {
	fmt.Printf("%s[%s] %s\n", s.Prefix, level, fmt.Sprintf(format, args...))
}
