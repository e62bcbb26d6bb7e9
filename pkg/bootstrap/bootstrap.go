// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package bootstrap makes the virtual environment of the server ready to
// launch: it resolves the interpreter, verifies dependency health, and
// reinstalls stale dependencies.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/pyenv"
)

type Status = string

const (
	StatusUnknown   Status = ""
	StatusInstalled Status = "installed"
	StatusUsedCache Status = "used-cache"
)

// Result reports what Ensure did.
type Result struct {
	Status Status
	// Python is the path of the virtual environment interpreter.
	Python string
}

type options struct {
	forceInstall bool
}

func (o *options) apply(opts []Opt) error {
	for _, f := range opts {
		if err := f(o); err != nil {
			return err
		}
	}
	return nil
}

type Opt func(*options) error

// WithForceInstall reinstalls the dependencies even when they look healthy.
func WithForceInstall(force bool) Opt {
	return func(o *options) error {
		o.forceInstall = force
		return nil
	}
}

// Ensure makes the environment ready to serve. The stages are strictly
// sequential: resolve the interpreter (creating the environment when it does
// not exist yet), verify dependency health, and reinstall when stale. The
// first fatal error aborts the pipeline; a failed install never updates the
// digest marker.
func Ensure(ctx context.Context, runner executil.Runner, env *pyenv.Environment, opts ...Opt) (*Result, error) {
	var o options
	if err := o.apply(opts); err != nil {
		return nil, err
	}

	if !osutil.FileExists(env.Requirements) {
		return nil, fmt.Errorf("manifest %q does not exist; is the server checkout complete?", env.Requirements)
	}

	venvPy, err := pyenv.Ensure(ctx, runner, env)
	if err != nil {
		return nil, err
	}

	if o.forceInstall {
		logrus.Info("Reinstalling dependencies (forced)")
	} else if err := Healthy(ctx, runner, env); err != nil {
		logrus.Infof("Environment is stale: %v", err)
	} else {
		logrus.Debugf("Environment %q is up to date", env.Dir)
		return &Result{Status: StatusUsedCache, Python: venvPy}, nil
	}

	if err := Install(ctx, runner, env); err != nil {
		return nil, err
	}
	return &Result{Status: StatusInstalled, Python: venvPy}, nil
}
