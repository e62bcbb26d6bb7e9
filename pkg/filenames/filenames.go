// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package filenames defines the names of the files that appear under the
// illustrator-mcp home directory or inside the server checkout.
package filenames

// Filenames that may appear under the home directory

const (
	ConfigYAML = "config.yaml"
	ServerLog  = "server.log"
)

// Filenames that may appear under the server checkout

const (
	VenvDir         = "venv"
	RequirementsTXT = "requirements.txt"
)

// Filenames that may appear under the virtual environment directory

const (
	// DigestMarker records the manifest digest of the last successful install.
	// The environment is presumed stale whenever the marker does not match the
	// manifest byte for byte.
	DigestMarker = "requirements.digest"
)
