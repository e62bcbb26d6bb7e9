// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package illustrator bridges to Adobe Illustrator's scripting engine via
// COM automation. The bridge only exists on Windows; elsewhere every
// operation returns ErrUnavailable.
package illustrator

import (
	"context"
	"errors"
)

// ErrUnavailable indicates that the COM bridge does not exist on this
// platform.
var ErrUnavailable = errors.New("COM automation is not available on this platform; the Illustrator bridge requires Windows")

// Scripter executes ExtendScript code in Illustrator and captures the
// application window.
type Scripter interface {
	// RunScript executes the ExtendScript code in Illustrator.
	RunScript(ctx context.Context, code string) error
	// CaptureWindow brings the Illustrator window to the foreground and
	// returns a JPEG screenshot of the screen.
	CaptureWindow(ctx context.Context) ([]byte, error)
}

// New returns the Scripter for this platform.
func New() Scripter {
	return newScripter()
}
