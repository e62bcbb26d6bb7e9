// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package envutil

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// defaultBlockList contains environment variables that must not leak into the
// virtual environment. These are the variables a venv activation script would
// unset: PYTHONHOME redirects the standard library away from the venv, and
// __PYVENV_LAUNCHER__ confuses framework builds of CPython on macOS.
var defaultBlockList = []string{
	"PYTHONHOME",
	"__PYVENV_LAUNCHER__",
}

func validatePattern(pattern string) error {
	invalidChar := regexp.MustCompile(`([^a-zA-Z0-9_*])`)
	if matches := invalidChar.FindStringSubmatch(pattern); matches != nil {
		invalidCharacter := matches[1]
		pos := strings.Index(pattern, invalidCharacter)
		return fmt.Errorf("pattern %q contains invalid character %q at position %d",
			pattern, invalidCharacter, pos)
	}
	return nil
}

// getBlockList returns the list of environment variable patterns to be blocked.
func getBlockList(blockListRaw []string) []string {
	var shouldAppend bool
	patterns := blockListRaw
	if len(patterns) == 0 {
		blockEnv := os.Getenv("ILLUSTRATOR_MCP_ENV_BLOCK")
		if blockEnv == "" {
			return defaultBlockList
		}
		shouldAppend = strings.HasPrefix(blockEnv, "+")
		patterns = parseEnvList(strings.TrimPrefix(blockEnv, "+"))
	} else {
		shouldAppend = strings.HasPrefix(patterns[0], "+")
	}

	for _, pattern := range patterns {
		if err := validatePattern(pattern); err != nil {
			logrus.Fatalf("Invalid ILLUSTRATOR_MCP_ENV_BLOCK pattern: %v", err)
		}
	}

	if shouldAppend {
		return slices.Concat(defaultBlockList, patterns)
	}
	return patterns
}

// getAllowList returns the list of environment variable patterns to be allowed.
func getAllowList(allowListRaw []string) []string {
	patterns := allowListRaw
	if len(patterns) == 0 {
		allowEnv := os.Getenv("ILLUSTRATOR_MCP_ENV_ALLOW")
		if allowEnv == "" {
			return nil
		}
		patterns = parseEnvList(allowEnv)
	}

	for _, pattern := range patterns {
		if err := validatePattern(pattern); err != nil {
			logrus.Fatalf("Invalid ILLUSTRATOR_MCP_ENV_ALLOW pattern: %v", err)
		}
	}

	return patterns
}

func parseEnvList(envList string) []string {
	parts := strings.Split(envList, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func matchesPattern(name, pattern string) bool {
	if pattern == name {
		return true
	}

	regexPattern := strings.ReplaceAll(pattern, "*", ".*")
	regexPattern = "^" + regexPattern + "$"

	match, err := regexp.MatchString(regexPattern, name)
	if err != nil {
		return false
	}
	return match
}

func matchesAnyPattern(name string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(pattern string) bool {
		return matchesPattern(name, pattern)
	})
}

// filterEnvironmentWithLists returns the environment variables that are not
// blocked. The lists are controlled by ILLUSTRATOR_MCP_ENV_BLOCK and
// ILLUSTRATOR_MCP_ENV_ALLOW.
func filterEnvironmentWithLists(env, allowList, blockList []string) []string {
	var filtered []string

	for _, envVar := range env {
		parts := strings.SplitN(envVar, "=", 2)
		if len(parts) != 2 {
			continue
		}

		name := parts[0]

		if len(allowList) > 0 && matchesAnyPattern(name, allowList) {
			filtered = append(filtered, envVar)
			continue
		}

		if matchesAnyPattern(name, blockList) {
			logrus.Debugf("Blocked env variable %q", name)
			continue
		}

		filtered = append(filtered, envVar)
	}

	return filtered
}

// VenvEnviron derives the launch environment for a process inside the virtual
// environment at venvDir: blocked variables are dropped, VIRTUAL_ENV is set,
// and binDir is prepended to PATH. This mirrors what `activate` would do in a
// shell, without requiring one.
func VenvEnviron(env []string, venvDir, binDir string) []string {
	filtered := filterEnvironmentWithLists(env, getAllowList(nil), getBlockList(nil))

	out := make([]string, 0, len(filtered)+2)
	pathSeen := false
	for _, envVar := range filtered {
		name, _, _ := strings.Cut(envVar, "=")
		switch {
		case name == "VIRTUAL_ENV":
			continue
		// PATH is spelled Path on Windows
		case strings.EqualFold(name, "PATH"):
			pathSeen = true
			_, value, _ := strings.Cut(envVar, "=")
			out = append(out, name+"="+binDir+string(os.PathListSeparator)+value)
		default:
			out = append(out, envVar)
		}
	}
	if !pathSeen {
		out = append(out, "PATH="+binDir)
	}
	out = append(out, "VIRTUAL_ENV="+venvDir)
	return out
}
