// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/bootstrap"
	"github.com/illustrator-mcp/illustratorctl/pkg/config"
	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/pyenv"
)

func newDoctorCommand() *cobra.Command {
	doctorCommand := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment health without changing anything",
		Long: `Check the environment health without changing anything.

Runs the same stages as the bootstrap health check (manifest digest,
pip consistency, import smoke test) and reports each one, but never
installs. Exits nonzero when any stage fails.`,
		Args: WrapArgsError(cobra.NoArgs),
		RunE: doctorAction,
	}
	return doctorCommand
}

func doctorAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	env := pyenv.FromConfig(cfg)
	runner := executil.SystemRunner{}
	unhealthy := false

	if osutil.FileExists(env.Python()) {
		logrus.Infof("OK: virtual environment interpreter %q", env.Python())
	} else {
		unhealthy = true
		logrus.Errorf("FAIL: virtual environment interpreter %q does not exist", env.Python())
		if py, err := pyenv.FindSystemPython(runner, env.Candidates); err != nil {
			logrus.Errorf("FAIL: %v", err)
		} else {
			logrus.Infof("OK: system interpreter %q would create it", py.Exe)
		}
	}

	if osutil.FileExists(env.Requirements) {
		logrus.Infof("OK: manifest %q", env.Requirements)
	} else {
		unhealthy = true
		logrus.Errorf("FAIL: manifest %q does not exist", env.Requirements)
	}

	if osutil.FileExists(cfg.EntrypointPath()) {
		logrus.Infof("OK: server entrypoint %q", cfg.EntrypointPath())
	} else {
		// not fatal: `serve` does not need the Python checkout
		logrus.Warnf("WARN: server entrypoint %q does not exist (only needed by `start`)", cfg.EntrypointPath())
	}

	if osutil.FileExists(env.Python()) {
		for _, stage := range bootstrap.Stages(runner, env) {
			if err := stage.Check(ctx); err != nil {
				unhealthy = true
				logrus.Errorf("FAIL: health check stage %q: %v", stage.Name, err)
			} else {
				logrus.Infof("OK: health check stage %q", stage.Name)
			}
		}
	}

	if unhealthy {
		return errors.New("the environment is unhealthy; run `illustratorctl start` to repair it")
	}
	logrus.Info("The environment is healthy")
	return nil
}
