// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/macmillancontentscience/dlr/internal/platform"
)

// AppCacheDir resolves the cache directory for appName without creating
// anything. Precedence:
//  1. a runtime override recorded by SetAppCacheDir
//  2. <APPNAME>_CACHE_DIR, if set and non-empty
//  3. the OS user cache directory plus the app name
//
// With verbose set, a warning is logged when the resolved directory does
// not exist yet.
func AppCacheDir(appName string, verbose bool) (string, error) {
	return defaultRegistry.AppCacheDir(appName, verbose)
}

// AppCacheDir is the registry-scoped form of the package-level AppCacheDir.
func (r *Registry) AppCacheDir(appName string, verbose bool) (string, error) {
	dir, err := r.resolveDir(appName)
	if err != nil {
		return "", err
	}
	if verbose {
		if _, err := os.Stat(dir); err != nil {
			log.Warnf("cache directory %s does not exist; create it with SetAppCacheDir(%q, \"\")", dir, appName)
		}
	}
	return dir, nil
}

func (r *Registry) resolveDir(appName string) (string, error) {
	if dir, ok := r.dirs[appName]; ok {
		return dir, nil
	}
	if dir := os.Getenv(CacheDirEnvVar(appName)); dir != "" {
		return canonicalPath(dir), nil
	}
	dir, err := platform.CacheRoot(appName)
	if err != nil {
		return "", err
	}
	return canonicalPath(dir), nil
}

// CacheDirEnvVar returns the environment variable consulted for appName's
// cache directory, e.g. MYAPP_CACHE_DIR for "myapp".
func CacheDirEnvVar(appName string) string {
	return strings.ToUpper(appName) + "_CACHE_DIR"
}

// SetAppCacheDir records dir as appName's cache directory for the rest of
// the process and makes sure it exists on disk. An empty dir means "use
// whatever AppCacheDir resolves right now", which also pins the result
// against later environment changes. The normalized directory is returned.
func SetAppCacheDir(appName, dir string) (string, error) {
	return defaultRegistry.SetAppCacheDir(appName, dir)
}

// SetAppCacheDir is the registry-scoped form of the package-level
// SetAppCacheDir.
func (r *Registry) SetAppCacheDir(appName, dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = r.resolveDir(appName)
		if err != nil {
			return "", err
		}
	} else {
		dir = canonicalPath(dir)
	}

	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		// Already present. Readability decides whether the override is
		// recorded; there is no fallback directory.
		f, err := os.Open(dir)
		if err != nil {
			return "", &DirectoryAccessError{Dir: dir, Err: err}
		}
		f.Close()
	} else if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	r.dirs[appName] = dir
	return dir, nil
}

// CreateDefaultCacheDir creates whatever directory AppCacheDir currently
// resolves for appName and records it as the runtime override.
func CreateDefaultCacheDir(appName string) (string, error) {
	return defaultRegistry.CreateDefaultCacheDir(appName)
}

// CreateDefaultCacheDir is the registry-scoped form of the package-level
// CreateDefaultCacheDir.
func (r *Registry) CreateDefaultCacheDir(appName string) (string, error) {
	return r.SetAppCacheDir(appName, "")
}
