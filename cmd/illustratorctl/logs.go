// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/nxadm/tail"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/config"
	"github.com/illustrator-mcp/illustratorctl/pkg/logrusutil"
)

func newLogsCommand() *cobra.Command {
	logsCommand := &cobra.Command{
		Use:   "logs",
		Short: "Show the server log file",
		Args:  WrapArgsError(cobra.NoArgs),
		RunE:  logsAction,
	}
	logsCommand.Flags().BoolP("follow", "f", false, "Follow the log output and re-render JSON lines")
	return logsCommand
}

func logsAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	follow, err := cmd.Flags().GetBool("follow")
	if err != nil {
		return err
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	logFile := *cfg.Log.File

	if !follow {
		f, err := os.Open(logFile)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logrus.Infof("Log file %q does not exist yet; run `illustratorctl serve` first", logFile)
				return nil
			}
			return err
		}
		defer f.Close()
		_, err = io.Copy(cmd.OutOrStdout(), f)
		return err
	}

	t, err := tail.TailFile(logFile,
		tail.Config{
			Follow: true,
			ReOpen: true,
		})
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Stop()
		// Do NOT call t.Cleanup(), it prevents the process from ever tailing the file again
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-t.Lines:
			if line == nil {
				return nil
			}
			if line.Err != nil {
				logrus.Error(line.Err)
			}
			if line.Text == "" {
				continue
			}
			logrusutil.PropagateJSON(logrus.StandardLogger(), []byte(line.Text), "", time.Time{})
		}
	}
}
