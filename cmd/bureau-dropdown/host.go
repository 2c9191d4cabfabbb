// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/bureau-dropdown/lib/dropdown"
	"github.com/bureau-foundation/bureau-dropdown/lib/outsideclick"
	"github.com/bureau-foundation/bureau-dropdown/lib/tui"
)

// hostKeys are handled by the host before the dropdown sees them.
type hostKeys struct {
	Quit     key.Binding // Always quits.
	QuitIdle key.Binding // Quits only while the menu is closed.
}

var defaultHostKeys = hostKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
	QuitIdle: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

type hostTheme struct {
	statusInfo lipgloss.Style
	statusWarn lipgloss.Style
}

func newHostTheme(theme tui.Theme) hostTheme {
	return hostTheme{
		statusInfo: lipgloss.NewStyle().Foreground(theme.HelpText),
		statusWarn: lipgloss.NewStyle().Foreground(theme.MatchForeground).Bold(true),
	}
}

// hostModel is the full-screen program around a single dropdown. It
// owns the pointer-down document: every mouse press on the screen is
// dispatched there first, so the dropdown's outside-click listener
// sees presses anywhere, then the message is forwarded to the widget.
type hostModel struct {
	document *outsideclick.Document
	dropdown dropdown.Model
	keys     hostKeys
	help     help.Model
	theme    hostTheme
	logger   *slog.Logger

	width  int
	height int

	// status is the latest log summary shown in place of the help bar
	// until statusSeq's fade fires.
	status      string
	statusLevel slog.Level
	statusSeq   int
}

// statusFadeMsg clears the status line if no newer record replaced it.
type statusFadeMsg struct{ seq int }

// newHostModel builds the host and its dropdown. options.Document is
// replaced with the host's document.
func newHostModel(options dropdown.Options, logger *slog.Logger) hostModel {
	document := outsideclick.NewDocument()
	options.Document = document
	options.Logger = logger
	return hostModel{
		document: document,
		dropdown: dropdown.NewModel(options),
		keys:     defaultHostKeys,
		help:     help.New(),
		theme:    newHostTheme(tui.DefaultTheme),
		logger:   logger,
	}
}

func (model hostModel) Init() tea.Cmd {
	return model.dropdown.Init()
}

func (model hostModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case tui.LogRecordMsg:
		model.status = message.Summary
		model.statusLevel = message.Level
		model.statusSeq++
		seq := model.statusSeq
		return model, tea.Tick(tui.LogFadeDelay, func(time.Time) tea.Msg {
			return statusFadeMsg{seq: seq}
		})

	case statusFadeMsg:
		if message.seq == model.statusSeq {
			model.status = ""
		}
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			return model.quit()
		}
		if !model.dropdown.State().Open() && key.Matches(message, model.keys.QuitIdle) {
			return model.quit()
		}

	case tea.MouseMsg:
		if event, ok := outsideclick.FromMouse(message); ok {
			model.document.Dispatch(event)
		}
	}

	return model.forward(message)
}

func (model hostModel) forward(message tea.Msg) (tea.Model, tea.Cmd) {
	updated, command := model.dropdown.Update(message)
	model.dropdown = updated.(dropdown.Model)
	return model, command
}

func (model hostModel) quit() (tea.Model, tea.Cmd) {
	model.dropdown.Unmount()
	model.logger.Debug("quitting", "selected", len(model.dropdown.Selected()))
	return model, tea.Quit
}

// View splices the dropdown at its anchor over a blank screen with a
// help bar on the last line. Before the first WindowSizeMsg it renders
// the dropdown alone.
func (model hostModel) View() string {
	widget := model.dropdown.View()
	if model.width <= 0 || model.height <= 0 {
		return widget
	}

	anchorX, anchorY := model.dropdown.Anchor()
	screen := tui.Canvas(model.width, model.height-1)
	screen = tui.SpliceOverlay(screen, strings.Split(widget, "\n"), anchorX, anchorY)

	return screen + "\n" + model.bottomLine()
}

// bottomLine is the latest log summary while one is showing, otherwise
// the key help.
func (model hostModel) bottomLine() string {
	if model.status != "" {
		style := model.theme.statusInfo
		if model.statusLevel >= slog.LevelWarn {
			style = model.theme.statusWarn
		}
		return style.MaxWidth(model.width).Render(model.status)
	}
	model.help.Width = model.width
	return model.help.ShortHelpView(model.helpBindings())
}

func (model hostModel) helpBindings() []key.Binding {
	if model.dropdown.State().Open() {
		return append(model.dropdown.KeyMap().ShortHelp(), model.keys.Quit)
	}
	return []key.Binding{model.keys.QuitIdle, model.keys.Quit}
}

// selectedLabels returns the labels of the selected items, in the
// order they were selected.
func (model hostModel) selectedLabels() []string {
	selected := model.dropdown.Selected()
	labels := make([]string, len(selected))
	for index, item := range selected {
		labels[index] = item.Label
	}
	return labels
}
