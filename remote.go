// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// remoteSchemes are the URL prefixes treated as remote. Anything else is a
// local path, even when nothing exists there.
var remoteSchemes = []string{"http://", "https://", "ftp://", "ftps://"}

// IsRemote reports whether sourcePath names a remote resource. Matching is
// a case-insensitive prefix test on the scheme; no URL parsing, no I/O.
func IsRemote(sourcePath string) bool {
	for _, scheme := range remoteSchemes {
		if len(sourcePath) >= len(scheme) && strings.EqualFold(sourcePath[:len(scheme)], scheme) {
			return true
		}
	}
	return false
}

// ObtainLocal produces a locally readable path for sourcePath. Remote
// sources are downloaded to a fresh temp file; local sources come back
// unchanged without an existence check, since some transforms synthesize
// their own input. cleanup removes the temp file and must be called once
// the caller is done with the path; for local sources it is a no-op.
func ObtainLocal(sourcePath string) (string, func(), error) {
	return defaultRegistry.ObtainLocal(sourcePath)
}

// ObtainLocal is the registry-scoped form of the package-level ObtainLocal.
func (r *Registry) ObtainLocal(sourcePath string) (string, func(), error) {
	return r.obtainWith(sourcePath, r.fetcher())
}

func (r *Registry) obtainWith(sourcePath string, fetch FetchFunc) (string, func(), error) {
	noop := func() {}

	if !IsRemote(sourcePath) {
		return sourcePath, noop, nil
	}

	r.warnShortTimeout()

	tmp, err := os.CreateTemp("", "dlr-*"+remoteExt(sourcePath))
	if err != nil {
		return "", noop, fmt.Errorf("failed to create download target: %w", err)
	}
	dest := tmp.Name()
	// The fetcher does its own writing; only the reserved name is needed.
	if err := tmp.Close(); err != nil {
		os.Remove(dest)
		return "", noop, err
	}

	cleanup := func() { os.Remove(dest) }
	if err := fetch(sourcePath, dest); err != nil {
		cleanup()
		return "", noop, err
	}

	log.Debugf("downloaded %s to %s", sourcePath, dest)
	return dest, cleanup, nil
}

// remoteExt extracts a usable filename extension from url for the temp
// file, with any query or fragment stripped.
func remoteExt(url string) string {
	base := path.Base(url)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return path.Ext(base)
}

// warnShortTimeout logs the advisory once per registry, ahead of the first
// remote transfer, when the configured timeout sits below TimeoutFloor.
// Nothing enforces the timeout; the warning is the whole feature.
func (r *Registry) warnShortTimeout() {
	if r.warnedSlow || r.Timeout() >= TimeoutFloor {
		return
	}
	r.warnedSlow = true
	log.Warnf(
		"network timeout is %d seconds, which can interrupt large downloads; consider SetTimeout(%d) or higher",
		r.Timeout(), TimeoutFloor)
}

// httpFetch is the stock FetchFunc: a single blocking GET streamed to
// destPath. Transport failures and non-2xx statuses both come back as a
// *FetchError. Schemes the net/http transport does not speak (ftp, ftps)
// fail the same way.
func httpFetch(url, destPath string) error {
	resp, err := http.Get(url) //nolint:gosec,noctx
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 { //nolint:mnd
		return &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to open %s for download: %w", destPath, err)
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}

	log.Debugf("fetched %s (%s)", url, humanize.Bytes(uint64(n)))
	return nil
}
