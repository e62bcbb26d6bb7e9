// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package config defines the config.yaml that appears under the
// illustrator-mcp home directory.
package config

// Config describes how to locate, bootstrap, and launch the Illustrator MCP
// server. All fields are optional; FillDefault supplies the rest.
type Config struct {
	Python Python `yaml:"python,omitempty" json:"python,omitempty"`
	Server Server `yaml:"server,omitempty" json:"server,omitempty"`
	Env    Env    `yaml:"env,omitempty" json:"env,omitempty"`
	Log    Log    `yaml:"log,omitempty" json:"log,omitempty"`
}

type Python struct {
	// Candidates are the system interpreter names tried in order when the
	// virtual environment does not provide an interpreter yet.
	// Default: ["python3", "python"].
	Candidates []string `yaml:"candidates,omitempty" json:"candidates,omitempty"`
	// MinVersion rejects interpreters older than the given version.
	// An empty string disables the check. Default: "3.10.0".
	MinVersion *string `yaml:"minVersion,omitempty" json:"minVersion,omitempty"`
}

type Server struct {
	// Dir is the checkout of the Python server.
	// Default: "~/.illustrator-mcp/server".
	Dir *string `yaml:"dir,omitempty" json:"dir,omitempty"`
	// Entrypoint is the script handed to the interpreter, relative to Dir
	// unless absolute. Default: "illustrator/server.py".
	Entrypoint *string `yaml:"entrypoint,omitempty" json:"entrypoint,omitempty"`
	// Args are appended to the interpreter command line after Entrypoint.
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`
}

type Env struct {
	// Dir is the virtual environment directory. Default: "<server.dir>/venv".
	Dir *string `yaml:"dir,omitempty" json:"dir,omitempty"`
	// Requirements is the dependency manifest.
	// Default: "<server.dir>/requirements.txt".
	Requirements *string `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	// Imports are the modules probed by the import smoke test. An explicit
	// empty list disables the probe; nil selects the builtin default:
	// ["mcp", "PIL", "win32com"] on Windows, ["mcp", "PIL"] elsewhere.
	Imports []string `yaml:"imports,omitempty" json:"imports,omitempty"`
}

type Log struct {
	// Level is one of "trace", "debug", "info", "warn", "error". Default: "info".
	Level *string `yaml:"level,omitempty" json:"level,omitempty"`
	// Format is "text" or "json". Default: "text".
	Format *string `yaml:"format,omitempty" json:"format,omitempty"`
	// File receives a JSON copy of the server log while serving.
	// Default: "~/.illustrator-mcp/server.log".
	File *string `yaml:"file,omitempty" json:"file,omitempty"`
}
