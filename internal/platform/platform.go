// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

// Package platform resolves the OS-convention location for per-application
// cache storage. It consults the environment only and never touches disk.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// CacheRoot returns the default cache directory for appName under the
// current user's OS cache location (XDG_CACHE_HOME or ~/.cache on Linux,
// ~/Library/Caches on macOS, %LocalAppData% on Windows).
func CacheRoot(appName string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache directory: %w", err)
	}

	return filepath.Join(base, appName), nil
}
