// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"os"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/config"
	"github.com/illustrator-mcp/illustratorctl/pkg/dirnames"
	"github.com/illustrator-mcp/illustratorctl/pkg/downloader"
	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/pyenv"
	"github.com/illustrator-mcp/illustratorctl/pkg/uiutil"
)

func newPruneCommand() *cobra.Command {
	pruneCommand := &cobra.Command{
		Use:   "prune",
		Short: "Remove the virtual environment and the download cache",
		Long: `Remove the virtual environment and the download cache.

The digest marker lives inside the virtual environment, so the next
` + "`illustratorctl start`" + ` recreates everything from scratch.`,
		Args: WrapArgsError(cobra.NoArgs),
		RunE: pruneAction,
	}
	pruneCommand.Flags().BoolP("force", "f", false, "Do not prompt for confirmation")
	return pruneCommand
}

func pruneAction(cmd *cobra.Command, _ []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	tty, err := cmd.Flags().GetBool("tty")
	if err != nil {
		return err
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	env := pyenv.FromConfig(cfg)
	cacheDir, err := dirnames.CacheDir()
	if err != nil {
		return err
	}

	venvSize, err := osutil.DirSize(env.Dir)
	if err != nil {
		return err
	}
	cacheSize, err := osutil.DirSize(cacheDir)
	if err != nil {
		return err
	}
	total := venvSize + cacheSize
	if total == 0 {
		logrus.Info("Nothing to prune")
		return nil
	}

	if !force {
		if !tty {
			logrus.Warn("Use --force to prune without a terminal")
			return nil
		}
		ok, err := uiutil.Confirm("Remove "+env.Dir+" and "+cacheDir+" ("+units.HumanSize(float64(total))+")?", false)
		if err != nil {
			if errors.Is(err, uiutil.InterruptErr) {
				logrus.Info("Aborted")
				return nil
			}
			return err
		}
		if !ok {
			logrus.Info("Aborted")
			return nil
		}
	}

	logrus.Infof("Pruning the virtual environment %q", env.Dir)
	if err := os.RemoveAll(env.Dir); err != nil {
		return err
	}
	logrus.Infof("Pruning the download cache %q", cacheDir)
	if err := downloader.RemoveAllCacheDir(downloader.WithCache()); err != nil {
		return err
	}
	logrus.Infof("Reclaimed %s", units.HumanSize(float64(total)))
	return nil
}
