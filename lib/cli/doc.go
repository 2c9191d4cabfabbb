// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the error types shared by the dropdown binaries.
//
// [ToolError] carries a category and an optional hint. Binaries print
// it as "error: <message>" followed by the hint on its own paragraph.
// [ExitError] requests a specific exit code without an extra message.
package cli
