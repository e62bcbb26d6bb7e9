// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"os"
	"os/exec"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
)

// Windows has no execve; the closest faithful mapping is spawn-and-wait with
// inherited standard streams. The *exec.ExitError escapes to the caller so
// that osutil.HandleExitError can propagate the child's exit code.
func launch(spec *Spec) error {
	cmd := exec.Command(spec.Python, slices.Concat([]string{spec.Entrypoint}, spec.Args)...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// Keep the server in our process group so Ctrl+C reaches it.
	cmd.SysProcAttr = executil.ForegroundSysProcAttr
	logrus.Infof("Handing over to the server: %v", cmd.Args)
	return cmd.Run()
}
