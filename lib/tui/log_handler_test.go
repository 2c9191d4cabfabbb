// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newRecord(level slog.Level, message string, args ...any) slog.Record {
	record := slog.NewRecord(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), level, message, 0)
	record.Add(args...)
	return record
}

func TestStatusLogHandlerSummarize(t *testing.T) {
	handler := NewStatusLogHandler(slog.LevelInfo)

	if got := handler.Summarize(newRecord(slog.LevelInfo, "started")); got != "started" {
		t.Errorf("Summarize without attrs = %q", got)
	}

	derived := handler.WithAttrs([]slog.Attr{slog.String("widget", "dropdown")}).(*StatusLogHandler)
	got := derived.Summarize(newRecord(slog.LevelInfo, "item added", "label", "Music"))
	want := "item added (widget=dropdown, label=Music)"
	if got != want {
		t.Errorf("Summarize = %q, want %q", got, want)
	}

	grouped := handler.WithGroup("state").(*StatusLogHandler)
	if got := grouped.Summarize(newRecord(slog.LevelInfo, "toggled", "open", true)); got != "toggled (state.open=true)" {
		t.Errorf("grouped Summarize = %q", got)
	}

	if len(handler.attrs) != 0 || len(handler.groups) != 0 {
		t.Error("deriving handlers mutated the parent")
	}
}

func TestStatusLogHandlerLevelAndNoProgram(t *testing.T) {
	handler := NewStatusLogHandler(slog.LevelInfo)
	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be below an info handler's level")
	}
	if !handler.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be enabled")
	}
	// No program yet: records are dropped without error.
	if err := handler.Handle(context.Background(), newRecord(slog.LevelInfo, "dropped")); err != nil {
		t.Errorf("Handle without program: %v", err)
	}
}

func TestFanoutHandler(t *testing.T) {
	var debugOut, warnOut bytes.Buffer
	fanout := FanoutHandler{
		slog.NewTextHandler(&debugOut, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnOut, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	logger := slog.New(fanout).With("widget", "dropdown")

	logger.Debug("measured")
	logger.Warn("slow render")

	if !strings.Contains(debugOut.String(), "measured") || !strings.Contains(debugOut.String(), "slow render") {
		t.Errorf("debug handler output = %q, want both records", debugOut.String())
	}
	if strings.Contains(warnOut.String(), "measured") {
		t.Error("warn handler received a debug record")
	}
	if !strings.Contains(warnOut.String(), "widget=dropdown") {
		t.Errorf("warn handler output = %q, want derived attrs", warnOut.String())
	}
	if fanout.Enabled(context.Background(), slog.LevelDebug-4) {
		t.Error("fanout enabled below every handler's level")
	}
}
