// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package pyenv resolves Python interpreters and manages the virtual
// environment that hosts the server.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/mattn/go-shellwords"
	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/config"
	"github.com/illustrator-mcp/illustratorctl/pkg/downloader"
	"github.com/illustrator-mcp/illustratorctl/pkg/executil"
	"github.com/illustrator-mcp/illustratorctl/pkg/filenames"
)

// Environment describes the virtual environment of the server.
type Environment struct {
	// Dir is the virtual environment directory.
	Dir string
	// Requirements is the dependency manifest the environment is built from.
	Requirements string
	// Imports are the modules probed by the import smoke test.
	Imports []string
	// Candidates are the system interpreter names tried in order when the
	// environment does not provide an interpreter yet.
	Candidates []string
	// MinVersion rejects system interpreters older than the given version.
	// Empty disables the check.
	MinVersion string
}

// FromConfig derives the Environment from a filled config.
func FromConfig(y *config.Config) *Environment {
	return &Environment{
		Dir:          *y.Env.Dir,
		Requirements: *y.Env.Requirements,
		Imports:      slices.Clone(y.Env.Imports),
		Candidates:   slices.Clone(y.Python.Candidates),
		MinVersion:   *y.Python.MinVersion,
	}
}

// MarkerPath returns the path of the digest marker inside the environment.
func (env *Environment) MarkerPath() string {
	return filepath.Join(env.Dir, filenames.DigestMarker)
}

// Interpreter is an interpreter invocation: the executable followed by any
// leading arguments, so that overrides like `py -3` keep working.
type Interpreter struct {
	Exe  string
	Args []string
}

func (py *Interpreter) String() string {
	return strings.Join(append([]string{py.Exe}, py.Args...), " ")
}

// Run runs the interpreter with args appended after the leading arguments.
func (py *Interpreter) Run(ctx context.Context, runner executil.Runner, dir string, args ...string) error {
	return runner.Run(ctx, dir, py.Exe, append(slices.Clone(py.Args), args...)...)
}

// Output runs the interpreter and returns its trimmed stdout.
func (py *Interpreter) Output(ctx context.Context, runner executil.Runner, dir string, args ...string) (string, error) {
	return runner.Output(ctx, dir, py.Exe, append(slices.Clone(py.Args), args...)...)
}

// FindSystemPython resolves a system interpreter. $ILLUSTRATOR_MCP_PYTHON
// wins when set; otherwise the candidates are tried in order.
func FindSystemPython(runner executil.Runner, candidates []string) (*Interpreter, error) {
	if v := os.Getenv("ILLUSTRATOR_MCP_PYTHON"); v != "" {
		fields, err := shellwords.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("failed to split $ILLUSTRATOR_MCP_PYTHON (%q): %w", v, err)
		}
		if len(fields) == 0 {
			return nil, fmt.Errorf("$ILLUSTRATOR_MCP_PYTHON (%q) contains no command", v)
		}
		exe, err := runner.LookPath(fields[0])
		if err != nil {
			return nil, fmt.Errorf("$ILLUSTRATOR_MCP_PYTHON (%q): %w", v, err)
		}
		return &Interpreter{Exe: exe, Args: fields[1:]}, nil
	}
	for _, c := range candidates {
		exe, err := runner.LookPath(c)
		if err != nil {
			logrus.Debugf("interpreter %q not found: %v", c, err)
			continue
		}
		return &Interpreter{Exe: exe}, nil
	}
	return nil, fmt.Errorf("no python interpreter found (tried %s); install Python or set $ILLUSTRATOR_MCP_PYTHON",
		strings.Join(candidates, ", "))
}

// pythonVersionRegexp extracts the version number from `python --version`
// output such as "Python 3.12.1". Anchored, so variants like "IronPython 2.7"
// are rejected rather than mistaken for CPython.
var pythonVersionRegexp = regexp.MustCompile(`^Python (\d+(?:\.\d+){0,2})`)

// Version returns the version of the interpreter, as reported by `--version`.
func (py *Interpreter) Version(ctx context.Context, runner executil.Runner) (*semver.Version, error) {
	out, err := py.Output(ctx, runner, "", "--version")
	if err != nil {
		return nil, err
	}
	m := pythonVersionRegexp.FindStringSubmatch(out)
	if m == nil {
		return nil, fmt.Errorf("unexpected `%s --version` output %q", py, out)
	}
	s := m[1]
	for strings.Count(s, ".") < 2 {
		s += ".0"
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse python version %q: %w", m[1], err)
	}
	return v, nil
}

// CheckVersion rejects the interpreter when it is older than minVersion.
// An empty minVersion disables the check.
func (py *Interpreter) CheckVersion(ctx context.Context, runner executil.Runner, minVersion string) error {
	if minVersion == "" {
		return nil
	}
	minimum, err := semver.NewVersion(minVersion)
	if err != nil {
		return fmt.Errorf("failed to parse the minimum python version %q: %w", minVersion, err)
	}
	v, err := py.Version(ctx, runner)
	if err != nil {
		return err
	}
	if v.LessThan(*minimum) {
		return fmt.Errorf("python %s found at %q is too old; %s or later is required", v, py.Exe, minVersion)
	}
	return nil
}

// Ensure returns the interpreter of the virtual environment, creating the
// environment with a system interpreter when it does not exist yet.
func Ensure(ctx context.Context, runner executil.Runner, env *Environment) (string, error) {
	venvPy := env.Python()
	if runner.Exists(venvPy) {
		logrus.Debugf("using the virtual environment interpreter %q", venvPy)
		return venvPy, nil
	}
	py, err := FindSystemPython(runner, env.Candidates)
	if err != nil {
		return "", err
	}
	if err := py.CheckVersion(ctx, runner, env.MinVersion); err != nil {
		return "", err
	}
	if err := CreateVenv(ctx, runner, py, env); err != nil {
		return "", err
	}
	return venvPy, nil
}

// CreateVenv creates the virtual environment with the system interpreter and
// makes sure pip works inside it.
func CreateVenv(ctx context.Context, runner executil.Runner, py *Interpreter, env *Environment) error {
	logrus.Infof("Creating a virtual environment in %q (using %q)", env.Dir, py.String())
	if err := py.Run(ctx, runner, "", "-m", "venv", env.Dir); err != nil {
		return fmt.Errorf("failed to create a virtual environment in %q: %w", env.Dir, err)
	}
	return EnsurePip(ctx, runner, env)
}

// GetPipURL is the upstream pip bootstrap script, for distributions that
// ship Python without ensurepip.
var GetPipURL = "https://bootstrap.pypa.io/get-pip.py"

// EnsurePip verifies that the environment interpreter can run pip.
// Debian-flavored distributions strip ensurepip from the venv module, so a
// freshly created environment may lack pip entirely; recover with ensurepip
// first and a cached copy of get-pip.py second.
func EnsurePip(ctx context.Context, runner executil.Runner, env *Environment) error {
	venvPy := env.Python()
	if _, err := runner.Output(ctx, "", venvPy, "-m", "pip", "--version"); err == nil {
		return nil
	}
	logrus.Warnf("pip is not runnable in %q; bootstrapping with ensurepip", env.Dir)
	if err := runner.Run(ctx, "", venvPy, "-m", "ensurepip", "--upgrade"); err != nil {
		logrus.WithError(err).Warn("ensurepip failed; falling back to get-pip.py")
		return bootstrapPipFromGetPip(ctx, runner, venvPy)
	}
	return nil
}

func bootstrapPipFromGetPip(ctx context.Context, runner executil.Runner, venvPy string) error {
	res, err := downloader.Download(ctx, "", GetPipURL,
		downloader.WithCache(),
		downloader.WithDescription("get-pip.py"))
	if err != nil {
		return fmt.Errorf("failed to download %q: %w", GetPipURL, err)
	}
	logrus.Debugf("get-pip.py: %s (%q)", res.Status, res.CachePath)
	if err := runner.Run(ctx, "", venvPy, res.CachePath); err != nil {
		return fmt.Errorf("failed to bootstrap pip with get-pip.py: %w", err)
	}
	return nil
}
