// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package executil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
)

// Runner is the single entry point for invoking external commands and
// probing the filesystem for executables. Bootstrap logic takes a Runner so
// tests can substitute a scripted implementation without spawning anything.
type Runner interface {
	// Run executes the command in dir with stdout and stderr inherited from
	// the current process.
	Run(ctx context.Context, dir, name string, args ...string) error
	// Output executes the command in dir and returns its trimmed stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
	// LookPath resolves name against PATH.
	LookPath(name string) (string, error)
	// Exists reports whether path exists.
	Exists(path string) bool
}

// SystemRunner is the Runner backed by os/exec.
type SystemRunner struct{}

var _ Runner = SystemRunner{}

func (SystemRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	logrus.Debugf("executing %v", cmd.Args)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %v: %w", cmd.Args, err)
	}
	return nil
}

func (SystemRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	logrus.Debugf("executing %v", cmd.Args)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("failed to run %v: %w (stderr=%q)",
				cmd.Args, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to run %v: %w", cmd.Args, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (SystemRunner) Exists(path string) bool {
	return osutil.FileExists(path)
}
