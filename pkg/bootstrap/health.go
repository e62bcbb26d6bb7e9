// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
	"github.com/illustrator-mcp/illustratorctl/pkg/pyenv"
)

// Stage is a single health check stage.
type Stage struct {
	// Name identifies the stage: "digest", "pip-check", or "imports".
	Name string
	// Check returns nil when the stage passes.
	Check func(ctx context.Context) error
}

// Stages returns the health check stages in the order they must run.
// Every stage is independently sufficient to force a reinstall; all of them
// must pass for the environment to be considered healthy.
func Stages(runner executil.Runner, env *pyenv.Environment) []Stage {
	return []Stage{
		{
			Name: "digest",
			Check: func(ctx context.Context) error {
				return checkDigest(env)
			},
		},
		{
			Name: "pip-check",
			Check: func(ctx context.Context) error {
				return checkConsistency(ctx, runner, env)
			},
		},
		{
			Name: "imports",
			Check: func(ctx context.Context) error {
				return checkImports(ctx, runner, env)
			},
		},
	}
}

// Healthy runs the health check stages sequentially and returns the first
// failure, annotated with the stage name. A nil return certifies the
// environment as healthy.
func Healthy(ctx context.Context, runner executil.Runner, env *pyenv.Environment) error {
	for _, stage := range Stages(runner, env) {
		if err := stage.Check(ctx); err != nil {
			return fmt.Errorf("health check stage %q: %w", stage.Name, err)
		}
		logrus.Debugf("health check stage %q: ok", stage.Name)
	}
	return nil
}

// ManifestDigest returns the canonical digest of the manifest file.
func ManifestDigest(manifest string) (digest.Digest, error) {
	b, err := os.ReadFile(manifest)
	if err != nil {
		return "", err
	}
	return digest.SHA256.FromBytes(b), nil
}

// checkDigest compares the stored marker against the current manifest digest,
// byte for byte. A missing marker is a mismatch, not an error.
func checkDigest(env *pyenv.Environment) error {
	current, err := ManifestDigest(env.Requirements)
	if err != nil {
		return fmt.Errorf("failed to hash the manifest %q: %w", env.Requirements, err)
	}
	stored, err := os.ReadFile(env.MarkerPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("marker %q does not exist", env.MarkerPath())
		}
		return fmt.Errorf("failed to read the marker %q: %w", env.MarkerPath(), err)
	}
	if string(stored) != current.String() {
		return fmt.Errorf("marker %q holds %q, the manifest hashes to %q",
			env.MarkerPath(), string(stored), current.String())
	}
	return nil
}

// checkConsistency asks pip whether the installed packages have compatible
// dependencies.
func checkConsistency(ctx context.Context, runner executil.Runner, env *pyenv.Environment) error {
	if out, err := runner.Output(ctx, "", env.Python(), "-m", "pip", "check"); err != nil {
		return fmt.Errorf("pip reports inconsistent packages: %w (output=%q)", err, out)
	}
	return nil
}

// checkImports probes each configured module with a bare import statement.
// The probe catches packages that pip considers installed but that cannot
// actually be loaded, e.g. after a Python minor version upgrade.
func checkImports(ctx context.Context, runner executil.Runner, env *pyenv.Environment) error {
	for _, m := range env.Imports {
		if _, err := runner.Output(ctx, "", env.Python(), "-c", "import "+m); err != nil {
			return fmt.Errorf("failed to import module %q: %w", m, err)
		}
	}
	return nil
}
