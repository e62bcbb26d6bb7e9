// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/illustrator-mcp/illustratorctl/pkg/dirnames"
	"github.com/illustrator-mcp/illustratorctl/pkg/filenames"
	"github.com/illustrator-mcp/illustratorctl/pkg/localpathutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/ptr"
)

const (
	DefaultPythonMinVersion = "3.10.0"
	DefaultEntrypoint       = "illustrator/server.py"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// DefaultCandidates returns the interpreter names tried in order when no
// virtual environment interpreter exists yet.
func DefaultCandidates() []string {
	return []string{"python3", "python"}
}

// DefaultImports returns the modules probed by the import smoke test.
// The COM bridge only exists on Windows, so win32com is probed there only.
func DefaultImports() []string {
	if runtime.GOOS == "windows" {
		return []string{"mcp", "PIL", "win32com"}
	}
	return []string{"mcp", "PIL"}
}

// FillDefault fulfills unspecified fields with the default values and
// resolves the path fields to absolute paths.
func FillDefault(y *Config) error {
	if y.Python.Candidates == nil {
		y.Python.Candidates = DefaultCandidates()
	}
	if y.Python.MinVersion == nil {
		y.Python.MinVersion = ptr.Of(DefaultPythonMinVersion)
	}

	if y.Server.Dir == nil || *y.Server.Dir == "" {
		dir, err := dirnames.ServerDir()
		if err != nil {
			return err
		}
		y.Server.Dir = ptr.Of(dir)
	} else {
		dir, err := localpathutil.Expand(*y.Server.Dir)
		if err != nil {
			return fmt.Errorf("field `server.dir` refers to an invalid local path %q: %w", *y.Server.Dir, err)
		}
		y.Server.Dir = ptr.Of(dir)
	}
	if y.Server.Entrypoint == nil || *y.Server.Entrypoint == "" {
		y.Server.Entrypoint = ptr.Of(DefaultEntrypoint)
	}

	if y.Env.Dir == nil || *y.Env.Dir == "" {
		y.Env.Dir = ptr.Of(filepath.Join(*y.Server.Dir, filenames.VenvDir))
	} else {
		dir, err := localpathutil.Expand(*y.Env.Dir)
		if err != nil {
			return fmt.Errorf("field `env.dir` refers to an invalid local path %q: %w", *y.Env.Dir, err)
		}
		y.Env.Dir = ptr.Of(dir)
	}
	if y.Env.Requirements == nil || *y.Env.Requirements == "" {
		y.Env.Requirements = ptr.Of(filepath.Join(*y.Server.Dir, filenames.RequirementsTXT))
	} else {
		p, err := localpathutil.Expand(*y.Env.Requirements)
		if err != nil {
			return fmt.Errorf("field `env.requirements` refers to an invalid local path %q: %w", *y.Env.Requirements, err)
		}
		y.Env.Requirements = ptr.Of(p)
	}
	if y.Env.Imports == nil {
		y.Env.Imports = DefaultImports()
	}

	if y.Log.Level == nil || *y.Log.Level == "" {
		y.Log.Level = ptr.Of(DefaultLogLevel)
	}
	if y.Log.Format == nil || *y.Log.Format == "" {
		y.Log.Format = ptr.Of(DefaultLogFormat)
	}
	if y.Log.File == nil || *y.Log.File == "" {
		dir, err := dirnames.Dir()
		if err != nil {
			return err
		}
		y.Log.File = ptr.Of(filepath.Join(dir, filenames.ServerLog))
	} else {
		p, err := localpathutil.Expand(*y.Log.File)
		if err != nil {
			return fmt.Errorf("field `log.file` refers to an invalid local path %q: %w", *y.Log.File, err)
		}
		y.Log.File = ptr.Of(p)
	}

	return nil
}

// EntrypointPath returns the absolute path of the server entrypoint script.
func (y *Config) EntrypointPath() string {
	ep := filepath.FromSlash(*y.Server.Entrypoint)
	if filepath.IsAbs(ep) {
		return ep
	}
	return filepath.Join(*y.Server.Dir, ep)
}
