// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package dirnames

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DotIllustratorMCP is a directory that appears under the home directory.
const DotIllustratorMCP = ".illustrator-mcp"

// Dir returns the abstract path of `~/.illustrator-mcp` (or $ILLUSTRATOR_MCP_HOME, if set).
func Dir() (string, error) {
	dir := os.Getenv("ILLUSTRATOR_MCP_HOME")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(homeDir, DotIllustratorMCP)
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return dir, nil
	}
	realdir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate symlinks in %q: %w", dir, err)
	}
	return realdir, nil
}

// IllustratorMCP is a directory that appears under the cache directory.
const IllustratorMCP = "illustrator-mcp"

// CacheDir returns the path of the cache directory (or $ILLUSTRATOR_MCP_CACHE, if set).
//
// NOTE: This uses ~/Library/Caches/illustrator-mcp on macOS, or $XDG_CACHE_HOME/illustrator-mcp on Linux.
func CacheDir() (string, error) {
	dir := os.Getenv("ILLUSTRATOR_MCP_CACHE")
	if dir == "" {
		ucd, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(ucd, IllustratorMCP)
	}
	return dir, nil
}

// ServerDir returns the default location of the Python server checkout,
// $ILLUSTRATOR_MCP_HOME/server.
func ServerDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "server"), nil
}
