// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package illustrator

import "context"

type unavailableScripter struct{}

func newScripter() Scripter {
	return &unavailableScripter{}
}

func (s *unavailableScripter) RunScript(_ context.Context, _ string) error {
	return ErrUnavailable
}

func (s *unavailableScripter) CaptureWindow(_ context.Context) ([]byte, error) {
	return nil, ErrUnavailable
}
