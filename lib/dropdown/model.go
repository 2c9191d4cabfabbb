// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/bureau-dropdown/lib/outsideclick"
	"github.com/bureau-foundation/bureau-dropdown/lib/tui"
)

const (
	// DefaultLabel is the text on the toggle when Options.Label is empty.
	DefaultLabel = "Education"

	// DefaultPlaceholder is shown in the empty input box.
	DefaultPlaceholder = "Add new item..."
)

// Options configures a dropdown. The zero value gives the built-in
// widget: "Education" label, the five default items, default styles,
// no filtering, anchored at the top-left corner of the screen.
type Options struct {
	Label       string
	Placeholder string

	// Items seeds the list. Nil means [DefaultItems]; an empty non-nil
	// slice starts with no items.
	Items []Item

	// Stylesheet overrides the built-in styles when non-nil.
	Stylesheet *tui.Stylesheet

	// KeyMap overrides [DefaultKeyMap] when non-nil.
	KeyMap *KeyMap

	// Filter makes the pending input text double as a fuzzy search
	// over the item list.
	Filter bool

	// AnchorX and AnchorY are the screen coordinates of the widget's
	// top-left corner. Hosts must splice the rendered view at the same
	// position for mouse hit-testing to line up.
	AnchorX int
	AnchorY int

	// Document is the screen-wide pointer-down source shared with the
	// host. When nil the model creates a private document and feeds it
	// every mouse press it receives itself.
	Document *outsideclick.Document

	Logger *slog.Logger

	// Now overrides the clock used for row highlighting.
	Now func() time.Time
}

// Model is the bubbletea model for a dropdown: a label that toggles a
// menu holding an input box and a list of selectable items.
//
// Model is a value type like every bubbletea model, but its state,
// root element and outside-click detector are pointers shared by all
// copies. The detector's callback closes the shared state no matter
// which copy of the model the host holds at the time.
type Model struct {
	state    *State
	input    textinput.Model
	keys     KeyMap
	styles   tui.Stylesheet
	root     *rootElement
	detector *outsideclick.Detector
	glow     *tui.GlowTracker
	now      func() time.Time

	// tickRunning is true while a glowTick chain is scheduled. Shared
	// across copies so a second add cannot start a parallel chain.
	tickRunning *bool

	label        string
	filter       bool
	anchorX      int
	anchorY      int
	ownsDocument bool
	logger       *slog.Logger
}

// glowTickMsg drives re-rendering while a newly added row fades.
type glowTickMsg struct{}

// rootElement is the handle to the rendered widget that the
// outside-click detector tests presses against. Its bounds are
// refreshed after every update and every render.
type rootElement struct {
	bounds   tui.Rect
	measured bool
}

func (root *rootElement) Contains(x, y int) bool {
	return root.bounds.Contains(x, y)
}

func (root *rootElement) Measured() bool {
	return root.measured
}

func (root *rootElement) measure(bounds tui.Rect) {
	root.bounds = bounds
	root.measured = true
}

// NewModel builds a dropdown from options. The returned model is not
// yet listening for outside clicks; that starts with [Model.Init] or
// [Model.Mount].
func NewModel(options Options) Model {
	seed := options.Items
	if seed == nil {
		seed = DefaultItems()
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	label := options.Label
	if label == "" {
		label = DefaultLabel
	}
	placeholder := options.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	styles := tui.DefaultStylesheet(tui.DefaultTheme)
	if options.Stylesheet != nil {
		styles = *options.Stylesheet
	}
	keys := DefaultKeyMap
	if options.KeyMap != nil {
		keys = *options.KeyMap
	}

	now := options.Now
	if now == nil {
		now = time.Now
	}

	document := options.Document
	ownsDocument := false
	if document == nil {
		document = outsideclick.NewDocument()
		ownsDocument = true
	}

	input := textinput.New()
	input.Placeholder = placeholder
	input.Cursor.SetMode(cursor.CursorStatic)
	input.PlaceholderStyle = styles.Style(tui.ClassDropdown, tui.ClassMenu, tui.ClassInput).Faint(true)
	input.TextStyle = styles.Style(tui.ClassDropdown, tui.ClassMenu, tui.ClassInput)
	input.PromptStyle = styles.Style(tui.ClassDropdown, tui.ClassMenu, tui.ClassInput)

	model := Model{
		state:        NewState(seed).WithLogger(logger),
		input:        input,
		keys:         keys,
		styles:       styles,
		root:         &rootElement{},
		detector:     outsideclick.New(document),
		glow:         tui.NewGlowTracker(),
		now:          now,
		tickRunning:  new(bool),
		label:        label,
		filter:       options.Filter,
		anchorX:      options.AnchorX,
		anchorY:      options.AnchorY,
		ownsDocument: ownsDocument,
		logger:       logger,
	}
	model.measure()
	return model
}

// Mount starts listening for pointer presses outside the widget. A
// press outside closes the menu. Mounting again rebinds.
func (model Model) Mount() {
	model.detector.Bind(model.root, model.state.Close)
	model.logger.Debug("dropdown mounted", "listeners", model.detector.Document().Listeners())
}

// Unmount stops listening for outside presses.
func (model Model) Unmount() {
	model.detector.Unbind()
	model.logger.Debug("dropdown unmounted")
}

// Mounted reports whether the outside-click listener is active.
func (model Model) Mounted() bool {
	return model.detector.Bound()
}

// State returns the state manager backing the widget.
func (model Model) State() *State {
	return model.state
}

// Selected returns the currently selected items.
func (model Model) Selected() []Item {
	return model.state.Selected()
}

// Bounds returns the screen rectangle the widget occupied when it was
// last measured.
func (model Model) Bounds() tui.Rect {
	return model.root.bounds
}

// Anchor returns the screen position of the widget's top-left corner.
func (model Model) Anchor() (int, int) {
	return model.anchorX, model.anchorY
}

// KeyMap returns the active key bindings, for hosts that render help.
func (model Model) KeyMap() KeyMap {
	return model.keys
}

// Init implements tea.Model. Mounts the outside-click listener.
func (model Model) Init() tea.Cmd {
	model.Mount()
	return nil
}

// Update implements tea.Model. Keys are handled only while the menu is
// open. Mouse presses toggle the label, toggle item selection, and
// (through the outside-click detector) close the menu.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var command tea.Cmd

	switch message := message.(type) {
	case tea.KeyMsg:
		command = model.handleKey(message)

	case tea.MouseMsg:
		model.handleMouse(message)

	case glowTickMsg:
		if model.glow.Active(model.now()) {
			command = glowTick()
		} else {
			*model.tickRunning = false
		}
	}

	model.measure()
	return model, command
}

func (model *Model) handleKey(message tea.KeyMsg) tea.Cmd {
	if !model.state.Open() {
		return nil
	}

	switch {
	case key.Matches(message, model.keys.Close):
		model.state.Close()
		return nil

	case key.Matches(message, model.keys.Submit):
		label := model.state.Input()
		if !model.state.SubmitOnEnter(KeyEnter) {
			return nil
		}
		model.input.Reset()
		model.glow.Ignite(label, model.now())
		model.logger.Info("item added", "label", label)
		if *model.tickRunning {
			return nil
		}
		*model.tickRunning = true
		return glowTick()
	}

	var command tea.Cmd
	model.input, command = model.input.Update(message)
	model.state.SetInputText(model.input.Value())
	return command
}

func (model *Model) handleMouse(message tea.MouseMsg) {
	event, ok := outsideclick.FromMouse(message)
	if !ok {
		return
	}

	bounds := model.root.bounds
	if model.ownsDocument {
		model.detector.Document().Dispatch(event)
	}

	row := bounds.RowAt(event.Y)
	if !bounds.Contains(event.X, event.Y) || row < 0 {
		return
	}

	switch {
	case row == labelRow:
		model.state.ToggleOpen()

	case row >= firstItemRow && model.state.Open():
		visible := model.state.Visible(model.filter)
		index := row - firstItemRow
		if index < len(visible) {
			model.state.ToggleItemSelected(visible[index])
			model.logger.Debug("item toggled",
				"label", visible[index].Label,
				"selected", model.state.IsSelected(visible[index]),
			)
		}
	}
}

// measure records the widget's bounds for hit-testing and keeps input
// focus in step with the open flag. The open flag can change outside
// Update (the outside-click callback closes the state directly), so
// this runs after every update rather than only on toggles.
func (model *Model) measure() {
	if model.state.Open() && !model.input.Focused() {
		model.input.Focus()
	} else if !model.state.Open() && model.input.Focused() {
		model.input.Blur()
	}
	model.root.measure(model.bounds())
}

func glowTick() tea.Cmd {
	return tea.Tick(tui.GlowTickInterval, func(time.Time) tea.Msg {
		return glowTickMsg{}
	})
}
