// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"

	"github.com/macmillancontentscience/dlr/internal/config"
)

// PruneCache removes files older than the provided number of hours from
// appName's cache directory. With hours <= 0 the cache.clean settings key
// decides; if that is also unset or non-positive, pruning is a no-op. A
// cache directory that does not exist yet is a no-op too.
func PruneCache(appName string, hours int) error {
	return defaultRegistry.PruneCache(appName, hours)
}

// PruneCache is the registry-scoped form of the package-level PruneCache.
func (r *Registry) PruneCache(appName string, hours int) error {
	if hours <= 0 && r.useSettings {
		hours, _ = config.GetInt("cache.clean", 0)
	}
	if hours <= 0 {
		log.Debug("cache pruning disabled")
		return nil
	}

	dir, err := r.AppCacheDir(appName, false)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); err != nil {
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	if err := filepath.Walk(dir, func(path string, info os.FileInfo, _ error) error {
		if info == nil {
			return nil
		}
		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to prune cache: %w", err)
	}
	return nil
}
