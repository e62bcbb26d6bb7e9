// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package uiutil

import (
	"github.com/charmbracelet/huh"
)

var InterruptErr = huh.ErrUserAborted

// Confirm is a regular text input that accept yes/no answers.
func Confirm(message string, defaultParam bool) (bool, error) {
	ans := defaultParam
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Value(&ans),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ans, nil
}
