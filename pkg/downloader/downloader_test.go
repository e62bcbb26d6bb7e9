// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"gotest.tools/v3/assert"
)

func TestMain(m *testing.M) {
	HideProgress = true
	os.Exit(m.Run())
}

const remoteFileContents = "#!/usr/bin/env python\nprint('hello')\n"

var remoteFileDigest = digest.SHA256.FromString(remoteFileContents)

// startServer serves remoteFileContents with an optional Last-Modified header.
func startServer(t *testing.T, lastModified string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if lastModified != "" {
			w.Header().Set("Last-Modified", lastModified)
		}
		w.Header().Set("Content-Type", "text/x-python")
		_, _ = w.Write([]byte(remoteFileContents))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestDownloadRemote(t *testing.T) {
	ctx := context.Background()
	ts := startServer(t, "Wed, 21 Oct 2015 07:28:00 GMT")
	remoteURL := ts.URL + "/get-pip.py"

	t.Run("without cache", func(t *testing.T) {
		t.Run("without digest", func(t *testing.T) {
			localPath := filepath.Join(t.TempDir(), t.Name())
			r, err := Download(ctx, localPath, remoteURL)
			assert.NilError(t, err)
			assert.Equal(t, StatusDownloaded, r.Status)

			// download again, make sure StatusSkipped is returned
			r, err = Download(ctx, localPath, remoteURL)
			assert.NilError(t, err)
			assert.Equal(t, StatusSkipped, r.Status)
		})
		t.Run("with digest", func(t *testing.T) {
			wrongDigest := digest.SHA256.FromString("something else")
			localPath := filepath.Join(t.TempDir(), t.Name())
			_, err := Download(ctx, localPath, remoteURL, WithExpectedDigest(wrongDigest))
			assert.ErrorContains(t, err, "expected digest")

			r, err := Download(ctx, localPath, remoteURL, WithExpectedDigest(remoteFileDigest))
			assert.NilError(t, err)
			assert.Equal(t, StatusDownloaded, r.Status)

			r, err = Download(ctx, localPath, remoteURL, WithExpectedDigest(remoteFileDigest))
			assert.NilError(t, err)
			assert.Equal(t, StatusSkipped, r.Status)
		})
	})
	t.Run("with cache", func(t *testing.T) {
		cacheDir := filepath.Join(t.TempDir(), "cache")
		localPath := filepath.Join(t.TempDir(), t.Name())
		r, err := Download(ctx, localPath, remoteURL, WithExpectedDigest(remoteFileDigest), WithCacheDir(cacheDir))
		assert.NilError(t, err)
		assert.Equal(t, StatusDownloaded, r.Status)

		r, err = Download(ctx, localPath, remoteURL, WithExpectedDigest(remoteFileDigest), WithCacheDir(cacheDir))
		assert.NilError(t, err)
		assert.Equal(t, StatusSkipped, r.Status)

		localPath2 := localPath + "-2"
		r, err = Download(ctx, localPath2, remoteURL, WithExpectedDigest(remoteFileDigest), WithCacheDir(cacheDir))
		assert.NilError(t, err)
		assert.Equal(t, StatusUsedCache, r.Status)

		got, err := os.ReadFile(localPath2)
		assert.NilError(t, err)
		assert.Equal(t, string(got), remoteFileContents)
	})
	t.Run("caching-only mode", func(t *testing.T) {
		_, err := Download(ctx, "", remoteURL, WithExpectedDigest(remoteFileDigest))
		assert.ErrorContains(t, err, "cache directory to be specified")

		cacheDir := filepath.Join(t.TempDir(), "cache")
		r, err := Download(ctx, "", remoteURL, WithExpectedDigest(remoteFileDigest), WithCacheDir(cacheDir))
		assert.NilError(t, err)
		assert.Equal(t, StatusDownloaded, r.Status)
		assert.Assert(t, strings.HasPrefix(r.CachePath, cacheDir), "expected %s to be in %s", r.CachePath, cacheDir)

		r, err = Download(ctx, "", remoteURL, WithExpectedDigest(remoteFileDigest), WithCacheDir(cacheDir))
		assert.NilError(t, err)
		assert.Equal(t, StatusUsedCache, r.Status)

		localPath := filepath.Join(t.TempDir(), t.Name())
		r, err = Download(ctx, localPath, remoteURL, WithExpectedDigest(remoteFileDigest), WithCacheDir(cacheDir))
		assert.NilError(t, err)
		assert.Equal(t, StatusUsedCache, r.Status)

		wrongDigest := digest.SHA256.FromString("something else")
		_, err = Download(ctx, "", remoteURL, WithExpectedDigest(wrongDigest), WithCacheDir(cacheDir))
		assert.ErrorContains(t, err, "expected digest")
	})
}

func TestRedownloadOnLastModifiedChange(t *testing.T) {
	ctx := context.Background()
	cacheDir := filepath.Join(t.TempDir(), "cache")

	ts := startServer(t, "Wed, 21 Oct 2015 07:28:00 GMT")
	remoteURL := ts.URL + "/get-pip.py"

	r, err := Download(ctx, "", remoteURL, WithCacheDir(cacheDir))
	assert.NilError(t, err)
	assert.Equal(t, StatusDownloaded, r.Status)

	// unchanged Last-Modified is served from the cache
	r, err = Download(ctx, "", remoteURL, WithCacheDir(cacheDir))
	assert.NilError(t, err)
	assert.Equal(t, StatusUsedCache, r.Status)

	// rewrite the cached time file to simulate a remote update
	shadTime := filepath.Join(cacheDir, "download", "by-url-sha256", CacheKey(remoteURL), "time")
	assert.NilError(t, os.WriteFile(shadTime, []byte("Mon, 02 Jan 2006 15:04:05 GMT"), 0o644))

	r, err = Download(ctx, "", remoteURL, WithCacheDir(cacheDir))
	assert.NilError(t, err)
	assert.Equal(t, StatusDownloaded, r.Status)
}

func TestDownloadLocal(t *testing.T) {
	ctx := context.Background()

	t.Run("without digest", func(t *testing.T) {
		localPath := filepath.Join(t.TempDir(), t.Name())
		localFile := filepath.Join(t.TempDir(), "test-file")
		f, err := os.Create(localFile)
		assert.NilError(t, err)
		t.Cleanup(func() { _ = f.Close() })
		testLocalFileURL := "file://" + localFile

		r, err := Download(ctx, localPath, testLocalFileURL)
		assert.NilError(t, err)
		assert.Equal(t, StatusDownloaded, r.Status)
	})

	t.Run("with file digest", func(t *testing.T) {
		localPath := filepath.Join(t.TempDir(), t.Name())
		localTestFile := filepath.Join(t.TempDir(), "some-file")
		testDownloadFileContents := []byte("TestDownloadLocal")

		assert.NilError(t, os.WriteFile(localTestFile, testDownloadFileContents, 0o644))
		testLocalFileURL := "file://" + localTestFile
		wrongDigest := digest.SHA256.FromString("")

		_, err := Download(ctx, localPath, testLocalFileURL, WithExpectedDigest(wrongDigest))
		assert.ErrorContains(t, err, "expected digest")

		r, err := Download(ctx, localPath, testLocalFileURL, WithExpectedDigest(digest.SHA256.FromBytes(testDownloadFileContents)))
		assert.NilError(t, err)
		assert.Equal(t, StatusDownloaded, r.Status)
	})
}
