// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package pyenv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/illustrator-mcp/illustratorctl/pkg/downloader"
)

// fakeRunner is a scripted executil.Runner. Commands are keyed by their
// space-joined argv.
type fakeRunner struct {
	lookPath map[string]string
	exists   map[string]bool
	outputs  map[string]string
	fails    map[string]string
	calls    []string
}

func key(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (r *fakeRunner) Run(_ context.Context, _, name string, args ...string) error {
	k := key(name, args...)
	r.calls = append(r.calls, k)
	if msg, ok := r.fails[k]; ok {
		return errors.New(msg)
	}
	return nil
}

func (r *fakeRunner) Output(_ context.Context, _, name string, args ...string) (string, error) {
	k := key(name, args...)
	r.calls = append(r.calls, k)
	if msg, ok := r.fails[k]; ok {
		return "", errors.New(msg)
	}
	return r.outputs[k], nil
}

func (r *fakeRunner) LookPath(name string) (string, error) {
	if p, ok := r.lookPath[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (r *fakeRunner) Exists(path string) bool {
	return r.exists[path]
}

func TestFindSystemPython(t *testing.T) {
	t.Setenv("ILLUSTRATOR_MCP_PYTHON", "")

	t.Run("first candidate wins", func(t *testing.T) {
		r := &fakeRunner{lookPath: map[string]string{
			"python3": "/usr/bin/python3",
			"python":  "/usr/bin/python",
		}}
		py, err := FindSystemPython(r, []string{"python3", "python"})
		assert.NilError(t, err)
		assert.Equal(t, py.Exe, "/usr/bin/python3")
		assert.Equal(t, len(py.Args), 0)
	})

	t.Run("falls back in order", func(t *testing.T) {
		r := &fakeRunner{lookPath: map[string]string{
			"python": "/usr/bin/python",
		}}
		py, err := FindSystemPython(r, []string{"python3", "python"})
		assert.NilError(t, err)
		assert.Equal(t, py.Exe, "/usr/bin/python")
	})

	t.Run("none found", func(t *testing.T) {
		r := &fakeRunner{}
		_, err := FindSystemPython(r, []string{"python3", "python"})
		assert.ErrorContains(t, err, "no python interpreter found")
		assert.ErrorContains(t, err, "python3, python")
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("ILLUSTRATOR_MCP_PYTHON", "py -3")
		r := &fakeRunner{lookPath: map[string]string{"py": `C:\Windows\py.exe`}}
		py, err := FindSystemPython(r, []string{"python3"})
		assert.NilError(t, err)
		assert.Equal(t, py.Exe, `C:\Windows\py.exe`)
		assert.DeepEqual(t, py.Args, []string{"-3"})
	})

	t.Run("override not installed", func(t *testing.T) {
		t.Setenv("ILLUSTRATOR_MCP_PYTHON", "pypy3")
		r := &fakeRunner{lookPath: map[string]string{"python3": "/usr/bin/python3"}}
		_, err := FindSystemPython(r, []string{"python3"})
		assert.ErrorContains(t, err, "pypy3")
	})
}

func TestInterpreterVersion(t *testing.T) {
	ctx := context.Background()
	py := &Interpreter{Exe: "/usr/bin/python3"}

	t.Run("full version", func(t *testing.T) {
		r := &fakeRunner{outputs: map[string]string{
			"/usr/bin/python3 --version": "Python 3.12.1",
		}}
		v, err := py.Version(ctx, r)
		assert.NilError(t, err)
		assert.Equal(t, v.String(), "3.12.1")
	})

	t.Run("short version is padded", func(t *testing.T) {
		r := &fakeRunner{outputs: map[string]string{
			"/usr/bin/python3 --version": "Python 3.12",
		}}
		v, err := py.Version(ctx, r)
		assert.NilError(t, err)
		assert.Equal(t, v.String(), "3.12.0")
	})

	t.Run("garbage", func(t *testing.T) {
		r := &fakeRunner{outputs: map[string]string{
			"/usr/bin/python3 --version": "IronPython 2.7",
		}}
		_, err := py.Version(ctx, r)
		assert.ErrorContains(t, err, "unexpected")
	})
}

func TestCheckVersion(t *testing.T) {
	ctx := context.Background()
	py := &Interpreter{Exe: "/usr/bin/python3"}

	t.Run("new enough", func(t *testing.T) {
		r := &fakeRunner{outputs: map[string]string{
			"/usr/bin/python3 --version": "Python 3.12.1",
		}}
		assert.NilError(t, py.CheckVersion(ctx, r, "3.10.0"))
	})

	t.Run("too old", func(t *testing.T) {
		r := &fakeRunner{outputs: map[string]string{
			"/usr/bin/python3 --version": "Python 3.9.7",
		}}
		err := py.CheckVersion(ctx, r, "3.10.0")
		assert.ErrorContains(t, err, "too old")
	})

	t.Run("empty disables the probe", func(t *testing.T) {
		r := &fakeRunner{}
		assert.NilError(t, py.CheckVersion(ctx, r, ""))
		assert.Equal(t, len(r.calls), 0)
	})
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()
	t.Setenv("ILLUSTRATOR_MCP_PYTHON", "")

	env := &Environment{
		Dir:        filepath.Join("/srv", "venv"),
		Candidates: []string{"python3", "python"},
		MinVersion: "3.10.0",
	}
	venvPy := env.Python()

	t.Run("existing interpreter is reused", func(t *testing.T) {
		r := &fakeRunner{exists: map[string]bool{venvPy: true}}
		got, err := Ensure(ctx, r, env)
		assert.NilError(t, err)
		assert.Equal(t, got, venvPy)
		assert.Equal(t, len(r.calls), 0)
	})

	t.Run("environment is created when missing", func(t *testing.T) {
		r := &fakeRunner{
			lookPath: map[string]string{"python3": "/usr/bin/python3"},
			outputs: map[string]string{
				"/usr/bin/python3 --version":           "Python 3.12.1",
				key(venvPy, "-m", "pip", "--version"): "pip 24.0",
			},
		}
		got, err := Ensure(ctx, r, env)
		assert.NilError(t, err)
		assert.Equal(t, got, venvPy)
		assert.Assert(t, slices.Contains(r.calls, key("/usr/bin/python3", "-m", "venv", env.Dir)))
	})

	t.Run("no interpreter is fatal before any mutation", func(t *testing.T) {
		r := &fakeRunner{}
		_, err := Ensure(ctx, r, env)
		assert.ErrorContains(t, err, "no python interpreter found")
		// only LookPath probes happened
		assert.Equal(t, len(r.calls), 0)
	})

	t.Run("old interpreter is fatal before venv creation", func(t *testing.T) {
		r := &fakeRunner{
			lookPath: map[string]string{"python3": "/usr/bin/python3"},
			outputs: map[string]string{
				"/usr/bin/python3 --version": "Python 3.8.10",
			},
		}
		_, err := Ensure(ctx, r, env)
		assert.ErrorContains(t, err, "too old")
		assert.Assert(t, !slices.Contains(r.calls, key("/usr/bin/python3", "-m", "venv", env.Dir)))
	})
}

func TestEnsurePip(t *testing.T) {
	ctx := context.Background()
	env := &Environment{Dir: filepath.Join("/srv", "venv")}
	venvPy := env.Python()

	t.Run("pip already works", func(t *testing.T) {
		r := &fakeRunner{outputs: map[string]string{
			key(venvPy, "-m", "pip", "--version"): "pip 24.0",
		}}
		assert.NilError(t, EnsurePip(ctx, r, env))
		assert.DeepEqual(t, r.calls, []string{key(venvPy, "-m", "pip", "--version")})
	})

	t.Run("ensurepip recovers", func(t *testing.T) {
		r := &fakeRunner{fails: map[string]string{
			key(venvPy, "-m", "pip", "--version"): "No module named pip",
		}}
		assert.NilError(t, EnsurePip(ctx, r, env))
		assert.Assert(t, slices.Contains(r.calls, key(venvPy, "-m", "ensurepip", "--upgrade")))
	})

	t.Run("get-pip.py is the last resort", func(t *testing.T) {
		downloader.HideProgress = true
		cacheDir := t.TempDir()
		t.Setenv("ILLUSTRATOR_MCP_CACHE", cacheDir)

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# get-pip\n"))
		}))
		t.Cleanup(ts.Close)
		oldURL := GetPipURL
		GetPipURL = ts.URL + "/get-pip.py"
		t.Cleanup(func() { GetPipURL = oldURL })

		r := &fakeRunner{fails: map[string]string{
			key(venvPy, "-m", "pip", "--version"):       "No module named pip",
			key(venvPy, "-m", "ensurepip", "--upgrade"): "No module named ensurepip",
		}}
		assert.NilError(t, EnsurePip(ctx, r, env))

		cachePath := filepath.Join(cacheDir, "download", "by-url-sha256", downloader.CacheKey(GetPipURL), "data")
		assert.Assert(t, slices.Contains(r.calls, key(venvPy, cachePath)))
		got, err := os.ReadFile(cachePath)
		assert.NilError(t, err)
		assert.Equal(t, string(got), "# get-pip\n")
	})
}
