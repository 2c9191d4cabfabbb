// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// bureau-dropdown is a standalone TUI showing a single dropdown: a
// label that opens a menu with an input box for adding items and a
// list of items toggled by clicking. Clicking anywhere outside the
// widget closes the menu.
//
// The widget is seeded from the built-in defaults or from a YAML,
// JSONC or TOML file named by --config or BUREAU_DROPDOWN_CONFIG. When
// the program exits the selected item labels are printed to stdout,
// one per line, so the binary can be used in shell pipelines. Exiting
// with nothing selected prints nothing and exits with status 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bureau-dropdown/lib/cli"
	"github.com/bureau-foundation/bureau-dropdown/lib/config"
	"github.com/bureau-foundation/bureau-dropdown/lib/tui"
	"github.com/bureau-foundation/bureau-dropdown/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			if _, silent := err.(*cli.ExitError); !silent {
				printError(os.Stderr, err)
			}
			os.Exit(coder.ExitCode())
		}
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes "error: <message>" with the prefix in red unless
// color output is disabled (NO_COLOR, --no-color or a non-terminal).
func printError(w io.Writer, err error) {
	red := color.New(color.FgHiRed)
	red.Fprint(w, "error: ")
	fmt.Fprintf(w, "%v\n", err)
}

// settings holds the parsed command line.
type settings struct {
	configPath string
	filter     bool
	logOutput  string
	noColor    bool
	anchorX    int
	anchorY    int

	// showHelp and showVersion short-circuit the program.
	showHelp    bool
	showVersion bool
}

func newFlagSet(values *settings) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("bureau-dropdown", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&values.configPath, "config", "", "YAML, JSONC or TOML config file (default: $"+config.EnvironmentVariable+")")
	flagSet.BoolVar(&values.filter, "filter", false, "narrow the item list by the text being typed")
	flagSet.StringVar(&values.logOutput, "log-output", "", "write JSON debug log records to this file")
	flagSet.BoolVar(&values.noColor, "no-color", false, "render without colors")
	flagSet.IntVar(&values.anchorX, "x", 2, "screen column of the dropdown's top-left corner")
	flagSet.IntVar(&values.anchorY, "y", 1, "screen row of the dropdown's top-left corner")
	flagSet.BoolVar(&values.showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&values.showHelp, "help", "h", false, "show help")
	return flagSet
}

// parseArgs parses the command line (without the program name).
func parseArgs(args []string) (settings, *pflag.FlagSet, error) {
	var values settings
	flagSet := newFlagSet(&values)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			values.showHelp = true
			return values, flagSet, nil
		}
		return values, flagSet, cli.Validation("%w", err).
			WithHint("Run 'bureau-dropdown --help' for usage.")
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return values, flagSet, cli.Validation("unexpected argument: %s", remaining[0])
	}
	if values.anchorX < 0 || values.anchorY < 0 {
		return values, flagSet, cli.Validation("--x and --y must not be negative")
	}
	return values, flagSet, nil
}

func run() error {
	// Handle --version before flag parsing to match other Bureau binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("bureau-dropdown")
		return nil
	}

	values, flagSet, err := parseArgs(os.Args[1:])
	if err != nil {
		return err
	}
	if values.showHelp {
		printHelp(flagSet)
		return nil
	}
	if values.showVersion {
		version.Print("bureau-dropdown")
		return nil
	}

	fileHandler, closeLog, err := openLogHandler(values.logOutput)
	if err != nil {
		return err
	}
	defer closeLog()
	statusHandler := tui.NewStatusLogHandler(slog.LevelInfo)
	logger := slog.New(tui.FanoutHandler{fileHandler, statusHandler})

	if values.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		color.NoColor = true
	}

	cfg, err := loadConfig(values.configPath)
	if err != nil {
		return err
	}
	options, err := cfg.Options(tui.DefaultTheme)
	if err != nil {
		return cli.Validation("building styles: %w", err)
	}
	options.Filter = options.Filter || values.filter
	options.AnchorX = values.anchorX
	options.AnchorY = values.anchorY

	logger.Info("starting",
		"version", version.Info(),
		"items", len(options.Items),
		"filter", options.Filter,
	)

	model := newHostModel(options, logger)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	statusHandler.SetProgram(program)
	final, err := program.Run()
	if err != nil {
		return cli.Internal("running terminal UI: %w", err)
	}

	host, ok := final.(hostModel)
	if !ok {
		return cli.Internal("unexpected final model %T", final)
	}
	return writeSelection(os.Stdout, host.selectedLabels())
}

// writeSelection prints labels one per line. An empty selection is
// reported as exit status 1 with no message, like grep finding no
// match.
func writeSelection(w io.Writer, labels []string) error {
	if len(labels) == 0 {
		return &cli.ExitError{Code: 1}
	}
	for _, label := range labels {
		if _, err := fmt.Fprintln(w, label); err != nil {
			return cli.Internal("writing selection: %w", err)
		}
	}
	return nil
}

// loadConfig resolves the config file and converts failures into
// categorized errors with hints.
func loadConfig(flagPath string) (*config.Config, error) {
	cfg, err := config.Load(flagPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.NotFound("config file: %w", err).
			WithHint("Pass an existing file with --config or unset " + config.EnvironmentVariable + ".")
	}
	return nil, cli.Validation("invalid config: %w", err).
		WithHint("Item labels must be non-empty and unique. Style keys must be one of the dropdown classes.")
}

// openLogHandler returns a JSON debug handler writing to path, or a
// discarding handler when path is empty. Raw records never go to the
// terminal because the alt screen owns it; the status bar shows Info
// and above instead.
func openLogHandler(path string) (slog.Handler, func(), error) {
	if path == "" {
		return slog.DiscardHandler, func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, cli.Validation("opening log output %s: %w", path, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Bureau dropdown — a single dropdown widget in the terminal.

Click the label to open the menu. Type in the input box and press
Enter to add an item. Click items to select or deselect them. Click
anywhere outside the widget (or press Esc) to close the menu. Press q
while the menu is closed, or Ctrl+C at any time, to exit. The labels
of the selected items are printed on exit. The exit status is 1 when
nothing was selected.

Usage:
  bureau-dropdown [flags]

Examples:
  # Open the dropdown with the built-in items
  bureau-dropdown

  # Seed items and styles from a file, narrowing the list while typing
  bureau-dropdown --config dropdown.yaml --filter

  # Use the selection in a script
  choice=$(bureau-dropdown --no-color) || echo "nothing chosen"

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
