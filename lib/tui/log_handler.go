// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LogRecordMsg delivers a slog record to a bubbletea model for display
// in its status bar.
type LogRecordMsg struct {
	// Summary is the one-line "message (key=value, ...)" rendering.
	Summary string

	// Level is the slog level, for styling.
	Level slog.Level
}

// LogFadeDelay is how long a log message stays in the status bar
// before the host restores its help line.
const LogFadeDelay = 5 * time.Second

// StatusLogHandler is a slog.Handler that routes records into a
// bubbletea program as [LogRecordMsg] values. Records below the
// configured level are dropped, as are records arriving before
// SetProgram is called.
//
// Handlers derived via WithAttrs/WithGroup share the program pointer,
// so one SetProgram call reaches all of them.
type StatusLogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewStatusLogHandler creates a handler for records at or above level.
func NewStatusLogHandler(level slog.Level) *StatusLogHandler {
	return &StatusLogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the program that receives log messages. Safe to
// call from any goroutine.
func (handler *StatusLogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

func (handler *StatusLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

func (handler *StatusLogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}
	message := LogRecordMsg{
		Summary: handler.Summarize(record),
		Level:   record.Level,
	}
	// Send blocks until the event loop receives, and records are often
	// logged from inside Update on that same loop.
	go program.Send(message)
	return nil
}

// Summarize formats record as "message (key=value, ...)", handler
// attributes first. Group names prefix record attribute keys.
func (handler *StatusLogHandler) Summarize(record slog.Record) string {
	var parts []string
	for _, attr := range handler.attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	prefix := ""
	if len(handler.groups) > 0 {
		prefix = strings.Join(handler.groups, ".") + "."
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s%s=%s", prefix, attr.Key, attr.Value))
		return true
	})

	if len(parts) == 0 {
		return record.Message
	}
	return record.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (handler *StatusLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StatusLogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(slices.Clone(handler.attrs), attrs...),
		groups:  slices.Clone(handler.groups),
	}
}

func (handler *StatusLogHandler) WithGroup(name string) slog.Handler {
	return &StatusLogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   slices.Clone(handler.attrs),
		groups:  append(slices.Clone(handler.groups), name),
	}
}

// FanoutHandler sends every record to each of its handlers that is
// enabled for the record's level.
type FanoutHandler []slog.Handler

func (handlers FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			errs = append(errs, handler.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (handlers FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers FanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
