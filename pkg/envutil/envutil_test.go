// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package envutil

import (
	"os"
	"slices"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected bool
	}{
		{"PYTHONHOME", "PYTHONHOME", true},
		{"PYTHONHOME", "PATH", false},
		{"PYTHONPATH", "PYTHON*", true},
		{"PYTHONDONTWRITEBYTECODE", "PYTHON*", true},
		{"PATH", "PYTHON*", false},
		{"__PYVENV_LAUNCHER__", "__PYVENV_LAUNCHER__", true},
		{"_SOMETHING", "_*", true},
		{"ILLUSTRATOR_MCP_HOME", "_*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_matches_"+tt.pattern, func(t *testing.T) {
			result := matchesPattern(tt.name, tt.pattern)
			assert.Equal(t, result, tt.expected)
		})
	}
}

func TestMatchesAnyPattern(t *testing.T) {
	patterns := []string{"PATH", "PYTHON*", "XDG_*"}

	tests := []struct {
		name     string
		expected bool
	}{
		{"PATH", true},
		{"HOME", false},
		{"PYTHONHOME", true},
		{"XDG_CONFIG_HOME", true},
		{"USER", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matchesAnyPattern(tt.name, patterns)
			assert.Equal(t, result, tt.expected)
		})
	}
}

func TestParseEnvList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"PATH", []string{"PATH"}},
		{"PATH,HOME", []string{"PATH", "HOME"}},
		{"PATH, HOME , USER", []string{"PATH", "HOME", "USER"}},
		{" , , ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseEnvList(tt.input)
			assert.DeepEqual(t, result, tt.expected)
		})
	}
}

func TestGetBlockAndAllowLists(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		t.Setenv("ILLUSTRATOR_MCP_ENV_BLOCK", "")
		t.Setenv("ILLUSTRATOR_MCP_ENV_ALLOW", "")

		blockList := getBlockList(nil)
		allowList := getAllowList(nil)

		assert.DeepEqual(t, blockList, defaultBlockList)
		assert.Equal(t, len(allowList), 0)
	})

	t.Run("custom blocklist", func(t *testing.T) {
		t.Setenv("ILLUSTRATOR_MCP_ENV_BLOCK", "PATH,HOME")

		blockList := getBlockList(nil)
		assert.DeepEqual(t, blockList, []string{"PATH", "HOME"})
	})

	t.Run("append to default blocklist", func(t *testing.T) {
		t.Setenv("ILLUSTRATOR_MCP_ENV_BLOCK", "+PYTHONSTARTUP")

		blockList := getBlockList(nil)
		assert.Assert(t, slices.Contains(blockList, "PYTHONHOME"))
		assert.Assert(t, slices.Contains(blockList, "PYTHONSTARTUP"))
	})

	t.Run("explicit lists take precedence over environment", func(t *testing.T) {
		t.Setenv("ILLUSTRATOR_MCP_ENV_BLOCK", "HOME")

		blockList := getBlockList([]string{"TMPDIR"})
		assert.DeepEqual(t, blockList, []string{"TMPDIR"})
	})
}

func TestFilterEnvironmentWithLists(t *testing.T) {
	env := []string{
		"PATH=/usr/bin",
		"PYTHONHOME=/opt/python",
		"PYTHONPATH=/src",
		"HOME=/home/user",
		"malformed",
	}

	t.Run("block list only", func(t *testing.T) {
		filtered := filterEnvironmentWithLists(env, nil, []string{"PYTHONHOME"})
		assert.DeepEqual(t, filtered, []string{"PATH=/usr/bin", "PYTHONPATH=/src", "HOME=/home/user"})
	})

	t.Run("allow list wins over block list", func(t *testing.T) {
		filtered := filterEnvironmentWithLists(env, []string{"PYTHON*"}, []string{"PYTHON*"})
		assert.Assert(t, slices.Contains(filtered, "PYTHONHOME=/opt/python"))
	})
}

func TestVenvEnviron(t *testing.T) {
	t.Setenv("ILLUSTRATOR_MCP_ENV_BLOCK", "")
	t.Setenv("ILLUSTRATOR_MCP_ENV_ALLOW", "")

	sep := string(os.PathListSeparator)

	t.Run("sets VIRTUAL_ENV and prepends PATH", func(t *testing.T) {
		env := []string{"PATH=/usr/bin", "HOME=/home/user"}
		got := VenvEnviron(env, "/srv/venv", "/srv/venv/bin")

		assert.Assert(t, slices.Contains(got, "VIRTUAL_ENV=/srv/venv"))
		assert.Assert(t, slices.Contains(got, "PATH=/srv/venv/bin"+sep+"/usr/bin"))
		assert.Assert(t, slices.Contains(got, "HOME=/home/user"))
	})

	t.Run("drops blocked variables", func(t *testing.T) {
		env := []string{"PATH=/usr/bin", "PYTHONHOME=/opt/python", "__PYVENV_LAUNCHER__=/usr/bin/python3"}
		got := VenvEnviron(env, "/srv/venv", "/srv/venv/bin")

		for _, envVar := range got {
			name, _, _ := strings.Cut(envVar, "=")
			assert.Assert(t, name != "PYTHONHOME")
			assert.Assert(t, name != "__PYVENV_LAUNCHER__")
		}
	})

	t.Run("replaces a stale VIRTUAL_ENV", func(t *testing.T) {
		env := []string{"PATH=/usr/bin", "VIRTUAL_ENV=/elsewhere"}
		got := VenvEnviron(env, "/srv/venv", "/srv/venv/bin")

		assert.Assert(t, !slices.Contains(got, "VIRTUAL_ENV=/elsewhere"))
		assert.Assert(t, slices.Contains(got, "VIRTUAL_ENV=/srv/venv"))
	})

	t.Run("synthesizes PATH when absent", func(t *testing.T) {
		got := VenvEnviron([]string{"HOME=/home/user"}, "/srv/venv", "/srv/venv/bin")
		assert.Assert(t, slices.Contains(got, "PATH=/srv/venv/bin"))
	})

	t.Run("windows style Path casing is preserved", func(t *testing.T) {
		got := VenvEnviron([]string{`Path=C:\Windows`}, `C:\srv\venv`, `C:\srv\venv\Scripts`)
		assert.Assert(t, slices.Contains(got, `Path=C:\srv\venv\Scripts`+sep+`C:\Windows`))
	})
}
