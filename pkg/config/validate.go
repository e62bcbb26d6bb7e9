// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/coreos/go-semver/semver"
	"github.com/sirupsen/logrus"
)

// moduleNameRegexp matches a dotted Python module path.
var moduleNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Validate validates a filled Config.
func Validate(y *Config) error {
	if len(y.Python.Candidates) == 0 {
		return errors.New("field `python.candidates` must not be empty")
	}
	for i, c := range y.Python.Candidates {
		if c == "" {
			return fmt.Errorf("field `python.candidates[%d]` must not be an empty string", i)
		}
	}
	if v := *y.Python.MinVersion; v != "" {
		if _, err := semver.NewVersion(v); err != nil {
			return fmt.Errorf("field `python.minVersion` must be a semantic version, got %q: %w", v, err)
		}
	}

	if *y.Server.Dir == "" {
		return errors.New("field `server.dir` must be set")
	}
	if *y.Server.Entrypoint == "" {
		return errors.New("field `server.entrypoint` must be set")
	}

	if *y.Env.Dir == "" {
		return errors.New("field `env.dir` must be set")
	}
	if *y.Env.Requirements == "" {
		return errors.New("field `env.requirements` must be set")
	}
	for i, m := range y.Env.Imports {
		if !moduleNameRegexp.MatchString(m) {
			return fmt.Errorf("field `env.imports[%d]` must be a Python module name, got %q", i, m)
		}
	}

	if _, err := logrus.ParseLevel(*y.Log.Level); err != nil {
		return fmt.Errorf("field `log.level` is invalid: %w", err)
	}
	switch *y.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("field `log.format` must be %q or %q, got %q", "text", "json", *y.Log.Format)
	}

	return nil
}
