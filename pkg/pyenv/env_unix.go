// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package pyenv

import (
	"path/filepath"
)

// BinDir returns the directory of the environment's executables.
func (env *Environment) BinDir() string {
	return filepath.Join(env.Dir, "bin")
}

// Python returns the path of the environment's interpreter.
func (env *Environment) Python() string {
	return filepath.Join(env.BinDir(), "python3")
}
