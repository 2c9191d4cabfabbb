// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/bureau-dropdown/lib/cli"
	"github.com/bureau-foundation/bureau-dropdown/lib/dropdown"
	"github.com/bureau-foundation/bureau-dropdown/lib/tui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	color.NoColor = true
	os.Exit(m.Run())
}

func newTestHost(t *testing.T) hostModel {
	t.Helper()
	model := newHostModel(dropdown.Options{AnchorX: 2, AnchorY: 1}, slog.New(slog.DiscardHandler))
	model.Init()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return updated.(hostModel)
}

func hostPress(t *testing.T, model hostModel, x, y int) hostModel {
	t.Helper()
	updated, _ := model.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	return updated.(hostModel)
}

func hostKey(t *testing.T, model hostModel, message tea.KeyMsg) (hostModel, tea.Cmd) {
	t.Helper()
	updated, command := model.Update(message)
	return updated.(hostModel), command
}

func isQuit(command tea.Cmd) bool {
	if command == nil {
		return false
	}
	_, ok := command().(tea.QuitMsg)
	return ok
}

func TestHostOutsidePressClosesDropdown(t *testing.T) {
	model := newTestHost(t)

	model = hostPress(t, model, 3, 1)
	if !model.dropdown.State().Open() {
		t.Fatal("press on the label should open the dropdown")
	}

	model = hostPress(t, model, 50, 15)
	if model.dropdown.State().Open() {
		t.Error("press outside the widget should close the dropdown")
	}
	if model.document.Listeners() != 1 {
		t.Errorf("document has %d listeners, want 1", model.document.Listeners())
	}
}

func TestHostSelectionAndLabels(t *testing.T) {
	model := newTestHost(t)
	model = hostPress(t, model, 3, 1)

	// Rows below the label: input at y=2, items from y=3.
	model = hostPress(t, model, 3, 4) // Art
	model = hostPress(t, model, 3, 3) // Yeeeeah, science!

	labels := model.selectedLabels()
	want := []string{"Art", "Yeeeeah, science!"}
	if len(labels) != len(want) {
		t.Fatalf("selectedLabels() = %q, want %q", labels, want)
	}
	for index := range want {
		if labels[index] != want[index] {
			t.Errorf("selectedLabels()[%d] = %q, want %q", index, labels[index], want[index])
		}
	}
}

func TestWriteSelection(t *testing.T) {
	var buffer bytes.Buffer
	if err := writeSelection(&buffer, []string{"Art", "Yeeeeah, science!"}); err != nil {
		t.Fatalf("writeSelection() failed: %v", err)
	}
	if buffer.String() != "Art\nYeeeeah, science!\n" {
		t.Errorf("wrote %q", buffer.String())
	}
}

func TestWriteSelectionEmptyExitsOne(t *testing.T) {
	model, command := hostKey(t, newTestHost(t), tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(command) {
		t.Fatal("ctrl+c should quit")
	}

	var buffer bytes.Buffer
	err := writeSelection(&buffer, model.selectedLabels())
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *cli.ExitError, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", exitErr.ExitCode())
	}
	if buffer.Len() != 0 {
		t.Errorf("empty selection wrote %q", buffer.String())
	}
}

func TestHostQuitKeys(t *testing.T) {
	model := newTestHost(t)

	_, command := hostKey(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !isQuit(command) {
		t.Error("q with the menu closed should quit")
	}

	model = hostPress(t, newTestHost(t), 3, 1)
	model, command = hostKey(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if isQuit(command) {
		t.Error("q with the menu open should be typed, not quit")
	}
	if model.dropdown.State().Input() != "q" {
		t.Errorf("input = %q, want %q", model.dropdown.State().Input(), "q")
	}

	_, command = hostKey(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(command) {
		t.Error("ctrl+c should always quit")
	}
}

func TestHostQuitUnmountsDropdown(t *testing.T) {
	model := newTestHost(t)
	model, _ = hostKey(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
	if model.dropdown.Mounted() {
		t.Error("dropdown still listening after quit")
	}
	if model.document.Listeners() != 0 {
		t.Errorf("document has %d listeners after quit, want 0", model.document.Listeners())
	}
}

func TestHostViewPlacesWidgetAtAnchor(t *testing.T) {
	model := newTestHost(t)
	lines := strings.Split(ansi.Strip(model.View()), "\n")

	if len(lines) != 20 {
		t.Fatalf("view has %d lines, want 20", len(lines))
	}
	if !strings.HasPrefix(lines[1], "   Education") {
		t.Errorf("line 1 = %q, want the label at column 2", lines[1])
	}
	if strings.TrimSpace(lines[0]) != "" {
		t.Errorf("line 0 = %q, want blank", lines[0])
	}
	if !strings.Contains(lines[19], "quit") {
		t.Errorf("last line = %q, want help bar", lines[19])
	}

	model = hostPress(t, model, 3, 1)
	lines = strings.Split(ansi.Strip(model.View()), "\n")
	if !strings.Contains(lines[19], "add item") {
		t.Errorf("open help bar = %q, want dropdown keys", lines[19])
	}
	if !strings.Contains(lines[3], "Yeeeeah, science!") {
		t.Errorf("line 3 = %q, want first item", lines[3])
	}
}

func TestHostStatusLineFades(t *testing.T) {
	model := newTestHost(t)

	updated, command := model.Update(tui.LogRecordMsg{Summary: "item added (label=Music)", Level: slog.LevelInfo})
	model = updated.(hostModel)
	if command == nil {
		t.Fatal("log record should schedule a fade")
	}
	lines := strings.Split(ansi.Strip(model.View()), "\n")
	if lines[len(lines)-1] != "item added (label=Music)" {
		t.Errorf("status line = %q", lines[len(lines)-1])
	}

	// A fade for an older record leaves a newer one in place.
	updated, _ = model.Update(tui.LogRecordMsg{Summary: "newer", Level: slog.LevelWarn})
	model = updated.(hostModel)
	updated, _ = model.Update(statusFadeMsg{seq: 1})
	model = updated.(hostModel)
	if model.status != "newer" {
		t.Errorf("stale fade cleared the status: %q", model.status)
	}

	updated, _ = model.Update(statusFadeMsg{seq: model.statusSeq})
	model = updated.(hostModel)
	lines = strings.Split(ansi.Strip(model.View()), "\n")
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("after fade the help bar should return, got %q", lines[len(lines)-1])
	}
}

func TestOpenLogHandler(t *testing.T) {
	handler, closeLog, err := openLogHandler("")
	if err != nil || handler == nil {
		t.Fatalf("empty path: handler %v, err %v", handler, err)
	}
	closeLog()

	path := t.TempDir() + "/dropdown.log"
	handler, closeLog, err = openLogHandler(path)
	if err != nil {
		t.Fatalf("openLogHandler: %v", err)
	}
	slog.New(handler).Debug("measured", "width", 22)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"measured"`) || !strings.Contains(string(data), `"width":22`) {
		t.Errorf("log file = %q, want JSON debug record", data)
	}
}

func TestHostViewBeforeWindowSize(t *testing.T) {
	model := newHostModel(dropdown.Options{}, slog.New(slog.DiscardHandler))
	if model.View() != model.dropdown.View() {
		t.Error("without a window size the host should render the widget alone")
	}
}

func TestPrintError(t *testing.T) {
	var buffer bytes.Buffer
	printError(&buffer, cli.Validation("unexpected argument: extra").WithHint("Run --help."))
	want := "error: unexpected argument: extra\n\nRun --help.\n"
	if buffer.String() != want {
		t.Errorf("printError wrote %q, want %q", buffer.String(), want)
	}
}

func TestConfigFlagNamesEveryFormat(t *testing.T) {
	var values settings
	usage := newFlagSet(&values).Lookup("config").Usage
	for _, format := range []string{"YAML", "JSONC", "TOML"} {
		if !strings.Contains(usage, format) {
			t.Errorf("--config usage %q does not mention %s", usage, format)
		}
	}
}

func TestParseArgs(t *testing.T) {
	values, _, err := parseArgs([]string{"--config", "x.yaml", "--filter", "--x", "5", "--y", "0", "--no-color"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if values.configPath != "x.yaml" || !values.filter || !values.noColor || values.anchorX != 5 || values.anchorY != 0 {
		t.Errorf("unexpected settings: %+v", values)
	}

	values, _, err = parseArgs([]string{"-h"})
	if err != nil || !values.showHelp {
		t.Errorf("-h: settings %+v, err %v", values, err)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"positional", []string{"extra"}},
		{"negative anchor", []string{"--x", "-1"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := parseArgs(test.args)
			if err == nil {
				t.Fatal("expected error")
			}
			toolErr, ok := err.(*cli.ToolError)
			if !ok || toolErr.Category != cli.CategoryValidation {
				t.Errorf("err = %v (%T), want validation ToolError", err, err)
			}
		})
	}
}

func TestLoadConfigCategories(t *testing.T) {
	t.Setenv("BUREAU_DROPDOWN_CONFIG", "")

	_, err := loadConfig(t.TempDir() + "/missing.yaml")
	toolErr, ok := err.(*cli.ToolError)
	if !ok || toolErr.Category != cli.CategoryNotFound {
		t.Errorf("missing file: err = %v, want not-found ToolError", err)
	}

	path := t.TempDir() + "/dup.yaml"
	if writeErr := os.WriteFile(path, []byte("items:\n  - label: A\n  - label: A\n"), 0644); writeErr != nil {
		t.Fatal(writeErr)
	}
	_, err = loadConfig(path)
	toolErr, ok = err.(*cli.ToolError)
	if !ok || toolErr.Category != cli.CategoryValidation || toolErr.Hint == "" {
		t.Errorf("invalid file: err = %v, want validation ToolError with hint", err)
	}

	cfg, err := loadConfig("")
	if err != nil || cfg.Label != dropdown.DefaultLabel {
		t.Errorf("no file: cfg %+v, err %v", cfg, err)
	}
}
