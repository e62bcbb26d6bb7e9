// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package launcher hands the process over to the Python server once the
// environment is healthy.
package launcher

import (
	"fmt"
	"os"
	"slices"

	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
)

// Spec describes the server process to launch.
type Spec struct {
	// Python is the virtual environment interpreter.
	Python string
	// Entrypoint is the absolute path of the server script.
	Entrypoint string
	// Dir is the working directory of the server.
	Dir string
	// Args are appended after Entrypoint.
	Args []string
	// Env is the full environment of the server process.
	Env []string
}

// Argv returns the complete command line of the server.
func (spec *Spec) Argv() []string {
	return slices.Concat([]string{spec.Python, spec.Entrypoint}, spec.Args)
}

func (spec *Spec) validate() error {
	if !osutil.FileExists(spec.Entrypoint) {
		return fmt.Errorf("server entrypoint %q does not exist; is the server checkout complete?", spec.Entrypoint)
	}
	if spec.Dir != "" {
		if _, err := os.Stat(spec.Dir); err != nil {
			return fmt.Errorf("server directory %q is not usable: %w", spec.Dir, err)
		}
	}
	return nil
}

// Launch hands control to the server. On Unix the process image is replaced
// with syscall.Exec, so Launch does not return on success and the server
// inherits the terminal together with all signal handling. On Windows the
// server is spawned with inherited standard streams and its exit code is
// propagated through the process exit status.
func Launch(spec *Spec) error {
	if err := spec.validate(); err != nil {
		return err
	}
	return launch(spec)
}
