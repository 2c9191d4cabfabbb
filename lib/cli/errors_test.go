// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("unexpected argument: %s", "extra")
	if err.Error() != "unexpected argument: extra" {
		t.Errorf("Error() = %q, want %q", err.Error(), "unexpected argument: extra")
	}
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Validation("invalid config").
		WithHint("Item labels must be unique.")

	want := "invalid config\n\nItem labels must be unique."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Internal("terminal failed")
	if original.WithHint("try again") != original {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_UnwrapReachesCause(t *testing.T) {
	err := NotFound("config file: %w", fs.ErrNotExist).WithHint("check the path")
	wrapped := fmt.Errorf("startup: %w", err)

	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped cause")
	}
	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Hint != "check the path" {
		t.Errorf("Hint = %q after unwrap", toolErr.Hint)
	}
}

func TestToolError_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *ToolError
		code int
	}{
		{"Validation", Validation("bad"), 2},
		{"NotFound", NotFound("missing"), 2},
		{"Internal", Internal("bug"), 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.ExitCode() != test.code {
				t.Errorf("ExitCode() = %d, want %d", test.err.ExitCode(), test.code)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 3}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 3 {
		t.Errorf("ExitError does not report code 3")
	}
	if err.Error() != "exit code 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}
