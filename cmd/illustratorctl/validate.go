// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/illustrator-mcp/illustratorctl/pkg/config"
)

func newValidateCommand() *cobra.Command {
	validateCommand := &cobra.Command{
		Use:   "validate [FILE.yaml, ...]",
		Short: "Validate config files (defaults to the active config)",
		Args:  WrapArgsError(cobra.ArbitraryArgs),
		RunE:  validateAction,
	}
	return validateCommand
}

func validateAction(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		filePath, err := config.DefaultFilePath()
		if err != nil {
			return err
		}
		cfg, err := config.LoadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to load %q: %w", filePath, err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("%q: %w", filePath, err)
		}
		logrus.Infof("%q: OK", filePath)
		return nil
	}
	for _, f := range args {
		b, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", f, err)
		}
		cfg, err := config.Load(b)
		if err != nil {
			return fmt.Errorf("failed to load %q: %w", f, err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("%q: %w", f, err)
		}
		logrus.Infof("%q: OK", f)
	}
	return nil
}
