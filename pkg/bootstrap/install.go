// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
	"github.com/illustrator-mcp/illustratorctl/pkg/lockutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/pyenv"
)

// Install brings the environment to a known-good state: upgrade pip itself,
// install the manifest entries, and persist the manifest digest to the
// marker. The marker is the last step, so a failed install leaves the old
// marker (or no marker) in place and the environment keeps reporting
// unhealthy.
func Install(ctx context.Context, runner executil.Runner, env *pyenv.Environment) error {
	venvPy := env.Python()
	logrus.Infof("Installing dependencies from %q", env.Requirements)
	if err := runner.Run(ctx, "", venvPy, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("failed to upgrade pip: %w", err)
	}
	if err := runner.Run(ctx, "", venvPy, "-m", "pip", "install", "-r", env.Requirements); err != nil {
		return fmt.Errorf("failed to install the dependencies from %q: %w", env.Requirements, err)
	}
	if err := writeMarker(env); err != nil {
		return fmt.Errorf("failed to write the marker %q: %w", env.MarkerPath(), err)
	}
	logrus.Infof("Installed dependencies from %q", env.Requirements)
	return nil
}

// writeMarker persists the current manifest digest. The write is atomic
// (temp file + rename) and serialized with a lock on the environment
// directory, so a concurrent bootstrapper never observes a torn marker.
func writeMarker(env *pyenv.Environment) error {
	d, err := ManifestDigest(env.Requirements)
	if err != nil {
		return err
	}
	markerPath := env.MarkerPath()
	return lockutil.WithDirLock(env.Dir, func() error {
		tmp, err := os.CreateTemp(filepath.Dir(markerPath), filepath.Base(markerPath)+".tmp-*")
		if err != nil {
			return err
		}
		tmpName := tmp.Name()
		defer os.RemoveAll(tmpName)
		if _, err := tmp.WriteString(d.String()); err != nil {
			tmp.Close()
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}
		return os.Rename(tmpName, markerPath)
	})
}
