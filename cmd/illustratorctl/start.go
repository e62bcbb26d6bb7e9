// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/bootstrap"
	"github.com/illustrator-mcp/illustratorctl/pkg/config"
	"github.com/illustrator-mcp/illustratorctl/pkg/envutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
	"github.com/illustrator-mcp/illustratorctl/pkg/launcher"
	"github.com/illustrator-mcp/illustratorctl/pkg/pyenv"
)

func newStartCommand() *cobra.Command {
	startCommand := &cobra.Command{
		Use:   "start",
		Short: "Bootstrap the environment and launch the Python server",
		Long: `Bootstrap the environment and launch the Python server.

The pipeline is linear: resolve a Python interpreter (creating the virtual
environment when absent), verify dependency health, reinstall when stale,
then hand the process over to the server.`,
		Args: WrapArgsError(cobra.NoArgs),
		RunE: startAction,
	}
	startCommand.Flags().Bool("reinstall", false, "Reinstall the dependencies even when they look healthy")
	return startCommand
}

func startAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	reinstall, err := cmd.Flags().GetBool("reinstall")
	if err != nil {
		return err
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	env := pyenv.FromConfig(cfg)
	runner := executil.SystemRunner{}
	res, err := bootstrap.Ensure(ctx, runner, env, bootstrap.WithForceInstall(reinstall))
	if err != nil {
		return err
	}
	logrus.Debugf("bootstrap: %s (python=%q)", res.Status, res.Python)
	spec := &launcher.Spec{
		Python:     res.Python,
		Entrypoint: cfg.EntrypointPath(),
		Dir:        *cfg.Server.Dir,
		Args:       cfg.Server.Args,
		Env:        envutil.VenvEnviron(os.Environ(), env.Dir, env.BinDir()),
	}
	return launcher.Launch(spec)
}
