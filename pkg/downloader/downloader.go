// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

// Package downloader fetches remote files into a digest-validated cache.
// The only remote artifact of the bootstrap pipeline is get-pip.py, so the
// cache is keyed by URL and revalidated with the Last-Modified header when
// no digest is published.
package downloader

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/containerd/continuity/fs"
	"github.com/opencontainers/go-digest"
	"github.com/sirupsen/logrus"

	"github.com/illustrator-mcp/illustratorctl/pkg/dirnames"
	"github.com/illustrator-mcp/illustratorctl/pkg/httpclientutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/localpathutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/lockutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/osutil"
	"github.com/illustrator-mcp/illustratorctl/pkg/progressbar"
)

// HideProgress is used only for testing.
var HideProgress bool

type Status = string

const (
	StatusUnknown    Status = ""
	StatusDownloaded Status = "downloaded"
	StatusSkipped    Status = "skipped"
	StatusUsedCache  Status = "used-cache"
)

type Result struct {
	Status          Status
	CachePath       string // "~/.cache/illustrator-mcp/download/by-url-sha256/<SHA256_OF_URL>/data"
	LastModified    time.Time
	ValidatedDigest bool
}

type options struct {
	cacheDir       string // empty disables caching
	description    string // default: url
	expectedDigest digest.Digest
}

func (o *options) apply(opts []Opt) error {
	for _, f := range opts {
		if err := f(o); err != nil {
			return err
		}
	}
	return nil
}

type Opt func(*options) error

// WithCache enables caching under the default cache directory.
func WithCache() Opt {
	return func(o *options) error {
		cacheDir, err := dirnames.CacheDir()
		if err != nil {
			return err
		}
		return WithCacheDir(cacheDir)(o)
	}
}

// WithCacheDir enables caching under the specified dir.
// An empty value disables caching.
func WithCacheDir(cacheDir string) Opt {
	return func(o *options) error {
		o.cacheDir = cacheDir
		return nil
	}
}

// WithDescription names the download in the progress output.
func WithDescription(description string) Opt {
	return func(o *options) error {
		o.description = description
		return nil
	}
}

// WithExpectedDigest validates the file against the expected digest.
//
// No validation happens when the digest is empty, or when the local target
// path already exists. A cached entry that carries an `<ALGO>.digest` file
// is validated by comparing that file against the expected digest string,
// without rehashing the data.
func WithExpectedDigest(expectedDigest digest.Digest) Opt {
	return func(o *options) error {
		if expectedDigest != "" {
			if !expectedDigest.Algorithm().Available() {
				return fmt.Errorf("expected digest algorithm %q is not available", expectedDigest.Algorithm())
			}
			if err := expectedDigest.Validate(); err != nil {
				return err
			}
		}
		o.expectedDigest = expectedDigest
		return nil
	}
}

// cacheEntry names the files of one cache entry:
//   - "url" contains the URL
//   - "data" contains the payload
//   - "time" contains the Last-Modified header
//   - "<ALGO>.digest" contains the expected digest, when one was given
type cacheEntry struct {
	dir        string
	dataPath   string
	timePath   string
	urlPath    string
	digestPath string // empty when no digest is expected
}

func entryFor(cacheDir, remote string, expectedDigest digest.Digest) (*cacheEntry, error) {
	dir := filepath.Join(cacheDir, "download", "by-url-sha256", CacheKey(remote))
	e := &cacheEntry{
		dir:      dir,
		dataPath: filepath.Join(dir, "data"),
		timePath: filepath.Join(dir, "time"),
		urlPath:  filepath.Join(dir, "url"),
	}
	if expectedDigest != "" {
		algo := expectedDigest.Algorithm().String()
		if strings.ContainsAny(algo, `/\`) {
			return nil, fmt.Errorf("invalid digest algorithm %q", algo)
		}
		e.digestPath = filepath.Join(dir, algo+".digest")
	}
	return e, nil
}

func (e *cacheEntry) lastModified() time.Time {
	b, err := os.ReadFile(e.timePath)
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(http.TimeFormat, string(b))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Download downloads the remote resource into the local path.
//
// The resource is cached when WithCache or WithCacheDir is given; local
// files are never cached. An existing local path short-circuits with
// StatusSkipped. An empty local path selects caching-only mode, which is
// how the pip bootstrap consumes this package (it runs the cached copy in
// place).
func Download(ctx context.Context, local, remote string, opts ...Opt) (*Result, error) {
	var o options
	if err := o.apply(opts); err != nil {
		return nil, err
	}

	var localPath string
	if local == "" {
		if o.cacheDir == "" {
			return nil, errors.New("caching-only mode requires the cache directory to be specified")
		}
	} else {
		var err error
		localPath, err = canonicalLocalPath(local)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(localPath); err == nil {
			logrus.Debugf("file %q already exists, skipping downloading from %q (and skipping digest validation)", localPath, remote)
			return &Result{Status: StatusSkipped}, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			return nil, err
		}
	}

	if isLocal(remote) {
		if err := copyLocal(localPath, remote, o.expectedDigest); err != nil {
			return nil, err
		}
		return &Result{
			Status:          StatusDownloaded,
			ValidatedDigest: o.expectedDigest != "",
		}, nil
	}

	if o.cacheDir == "" {
		if err := fetchHTTP(ctx, localPath, "", remote, o.description, o.expectedDigest); err != nil {
			return nil, err
		}
		return &Result{
			Status:          StatusDownloaded,
			ValidatedDigest: o.expectedDigest != "",
		}, nil
	}

	entry, err := entryFor(o.cacheDir, remote, o.expectedDigest)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(entry.dir, 0o700); err != nil {
		return nil, err
	}

	var res *Result
	err = lockutil.WithDirLock(entry.dir, func() error {
		var err error
		res, err = fromCache(ctx, localPath, remote, entry, o)
		if err != nil || res != nil {
			return err
		}
		res, err = fetchIntoCache(ctx, localPath, remote, entry, o)
		return err
	})
	return res, err
}

// fromCache copies the cached payload to the local path. It returns nil, nil
// when the entry is absent or stale and needs a fresh fetch.
func fromCache(ctx context.Context, localPath, remote string, entry *cacheEntry, o options) (*Result, error) {
	if _, err := os.Stat(entry.dataPath); err != nil {
		return nil, nil
	}
	logrus.Debugf("file %q is cached as %q", localPath, entry.dataPath)
	if entry.digestPath != "" && osutil.FileExists(entry.digestPath) {
		logrus.Debugf("Comparing digest %q with the cached digest file %q, not computing the actual digest of %q",
			o.expectedDigest, entry.digestPath, entry.dataPath)
		if err := validateCachedDigest(entry.digestPath, o.expectedDigest); err != nil {
			return nil, err
		}
		if err := copyLocal(localPath, entry.dataPath, ""); err != nil {
			return nil, err
		}
	} else {
		match, lmCached, lmRemote, err := lastModifiedMatches(ctx, entry.timePath, remote)
		switch {
		case err != nil:
			logrus.WithError(err).Info("Failed to retrieve last-modified for cached digest-less file; using cached file.")
			fallthrough
		case match:
			if err := copyLocal(localPath, entry.dataPath, o.expectedDigest); err != nil {
				return nil, err
			}
		default:
			logrus.Infof("Re-downloading digest-less file: last-modified mismatch (cached: %q, remote: %q)", lmCached, lmRemote)
			return nil, nil
		}
	}
	return &Result{
		Status:          StatusUsedCache,
		CachePath:       entry.dataPath,
		LastModified:    entry.lastModified(),
		ValidatedDigest: o.expectedDigest != "",
	}, nil
}

// fetchIntoCache downloads remote into the cache entry and copies the cached
// payload to the local path.
func fetchIntoCache(ctx context.Context, localPath, remote string, entry *cacheEntry, o options) (*Result, error) {
	if err := os.WriteFile(entry.urlPath, []byte(remote), 0o644); err != nil {
		return nil, err
	}
	if err := fetchHTTP(ctx, entry.dataPath, entry.timePath, remote, o.description, o.expectedDigest); err != nil {
		return nil, err
	}
	if entry.digestPath != "" && o.expectedDigest != "" {
		if err := os.WriteFile(entry.digestPath, []byte(o.expectedDigest.String()), 0o644); err != nil {
			return nil, err
		}
	}
	// fetchHTTP already verified the digest, no need to recheck during the copy
	if err := copyLocal(localPath, entry.dataPath, ""); err != nil {
		return nil, err
	}
	return &Result{
		Status:          StatusDownloaded,
		CachePath:       entry.dataPath,
		LastModified:    entry.lastModified(),
		ValidatedDigest: o.expectedDigest != "",
	}, nil
}

func isLocal(s string) bool {
	return !strings.Contains(s, "://") || strings.HasPrefix(s, "file://")
}

// canonicalLocalPath canonicalizes the local path string: the scheme must be
// absent or `file://` (with an absolute filename); a leading `~` is expanded
// and relative names are made absolute.
func canonicalLocalPath(s string) (string, error) {
	if s == "" {
		return "", errors.New("got empty path")
	}
	if !isLocal(s) {
		return "", fmt.Errorf("got non-local path: %q", s)
	}
	if after, ok := strings.CutPrefix(s, "file://"); ok {
		if !filepath.IsAbs(after) {
			return "", fmt.Errorf("got non-absolute path %q", after)
		}
		return after, nil
	}
	return localpathutil.Expand(s)
}

func copyLocal(dst, src string, expectedDigest digest.Digest) error {
	srcPath, err := canonicalLocalPath(src)
	if err != nil {
		return err
	}
	if expectedDigest != "" {
		logrus.Debugf("verifying digest of local file %q (%s)", srcPath, expectedDigest)
	}
	if err := validateLocalFileDigest(srcPath, expectedDigest); err != nil {
		return err
	}
	if dst == "" {
		// caching-only mode
		return nil
	}
	dstPath, err := canonicalLocalPath(dst)
	if err != nil {
		return err
	}
	return fs.CopyFile(dstPath, srcPath)
}

func validateCachedDigest(digestPath string, expectedDigest digest.Digest) error {
	if expectedDigest == "" {
		return nil
	}
	b, err := os.ReadFile(digestPath)
	if err != nil {
		return err
	}
	if cached := strings.TrimSpace(string(b)); cached != expectedDigest.String() {
		return fmt.Errorf("expected digest %q, got %q", expectedDigest, cached)
	}
	return nil
}

func validateLocalFileDigest(localPath string, expectedDigest digest.Digest) error {
	if localPath == "" {
		return errors.New("validateLocalFileDigest: got empty localPath")
	}
	if expectedDigest == "" {
		return nil
	}
	algo := expectedDigest.Algorithm()
	if !algo.Available() {
		return fmt.Errorf("expected digest algorithm %q is not available", algo)
	}
	r, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer r.Close()
	actualDigest, err := algo.FromReader(r)
	if err != nil {
		return err
	}
	if actualDigest != expectedDigest {
		return fmt.Errorf("expected digest %q, got %q", expectedDigest, actualDigest)
	}
	return nil
}

// lastModifiedMatches compares the cached Last-Modified time with the one
// the remote reports to a HEAD request. Unparsable values on both sides are
// compared as strings; a parse failure on one side only counts as a
// mismatch.
func lastModifiedMatches(ctx context.Context, timePath, url string) (matched bool, lmCached, lmRemote string, err error) {
	b, err := os.ReadFile(timePath)
	if err != nil || len(b) == 0 {
		return false, "<not cached>", "<not checked>", nil
	}
	lmCached = string(b)
	resp, err := httpclientutil.Head(ctx, http.DefaultClient, url)
	if err != nil {
		return false, lmCached, "<failed to fetch remote>", err
	}
	defer resp.Body.Close()
	lmRemote = resp.Header.Get("Last-Modified")
	if lmRemote == "" {
		return false, lmCached, "<missing Last-Modified header>", nil
	}
	lmCachedTime, errCached := time.Parse(http.TimeFormat, lmCached)
	lmRemoteTime, errRemote := time.Parse(http.TimeFormat, lmRemote)
	switch {
	case errCached != nil && errRemote != nil:
		return lmCached == lmRemote, lmCached, lmRemote, nil
	case errCached == nil && errRemote == nil:
		return lmRemoteTime.Equal(lmCachedTime), lmCached, lmRemote, nil
	}
	return false, lmCached, lmRemote, nil
}

// fetchHTTP downloads url into localPath through a per-process temp file,
// verifying the digest on the wire when one is expected. The Last-Modified
// header is recorded into timePath when given.
func fetchHTTP(ctx context.Context, localPath, timePath, url, description string, expectedDigest digest.Digest) error {
	if localPath == "" {
		return errors.New("fetchHTTP: got empty localPath")
	}
	logrus.Debugf("downloading %q into %q", url, localPath)

	resp, err := httpclientutil.Get(ctx, http.DefaultClient, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if timePath != "" {
		lm := resp.Header.Get("Last-Modified")
		if err := os.WriteFile(timePath, []byte(lm), 0o644); err != nil {
			return err
		}
	}
	bar, err := progressbar.New(resp.ContentLength)
	if err != nil {
		return err
	}
	if HideProgress {
		bar.Set(pb.Static, true)
	}

	localPathTmp := perProcessTempfile(localPath)
	fileWriter, err := os.Create(localPathTmp)
	if err != nil {
		return err
	}
	defer fileWriter.Close()
	defer os.RemoveAll(localPathTmp)

	writers := []io.Writer{fileWriter}
	var digester digest.Digester
	if expectedDigest != "" {
		algo := expectedDigest.Algorithm()
		if !algo.Available() {
			return fmt.Errorf("unsupported digest algorithm %q", algo)
		}
		digester = algo.Digester()
		writers = append(writers, digester.Hash())
	}

	if !HideProgress {
		if description == "" {
			description = url
		}
		// stderr corresponds to the progress bar output
		fmt.Fprintf(os.Stderr, "Downloading %s\n", description)
	}
	bar.Start()
	if _, err := io.Copy(io.MultiWriter(writers...), bar.NewProxyReader(resp.Body)); err != nil {
		return err
	}
	bar.Finish()

	if digester != nil {
		if actualDigest := digester.Digest(); actualDigest != expectedDigest {
			return fmt.Errorf("expected digest %q, got %q", expectedDigest, actualDigest)
		}
	}

	if err := fileWriter.Sync(); err != nil {
		return err
	}
	if err := fileWriter.Close(); err != nil {
		return err
	}
	return os.Rename(localPathTmp, localPath)
}

var tempfileCount atomic.Uint64

// Parallel downloads use a per-process unique suffix for temporary files;
// renaming onto the final name is safe without synchronization on posix.
// The counter additionally makes each temp file unique within the process.
func perProcessTempfile(path string) string {
	return fmt.Sprintf("%s.tmp.%d.%d", path, os.Getpid(), tempfileCount.Add(1))
}

// CacheKey returns the key of the cache entry for the remote URL.
func CacheKey(remote string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(remote)))
}

// RemoveAllCacheDir removes the cache directory.
func RemoveAllCacheDir(opts ...Opt) error {
	var o options
	if err := o.apply(opts); err != nil {
		return err
	}
	if o.cacheDir == "" {
		return nil
	}
	logrus.Infof("Pruning %q", o.cacheDir)
	return os.RemoveAll(o.cacheDir)
}
