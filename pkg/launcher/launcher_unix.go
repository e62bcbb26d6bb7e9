// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package launcher

import (
	"fmt"
	"os"
	"syscall"

	"github.com/sirupsen/logrus"
)

func launch(spec *Spec) error {
	if spec.Dir != "" {
		if err := os.Chdir(spec.Dir); err != nil {
			return fmt.Errorf("failed to enter the server directory %q: %w", spec.Dir, err)
		}
	}
	logrus.Infof("Handing over to the server: %v", spec.Argv())
	// Does not return on success; the server takes over the process image.
	return syscall.Exec(spec.Python, spec.Argv(), spec.Env)
}
