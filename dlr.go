// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// ProcessFunc turns a local source file into an in-memory artifact. It
// receives the path of the obtained local copy, which for remote sources
// is the downloaded temp file, and may ignore the path entirely.
type ProcessFunc func(sourcePath string) (any, error)

// ReadFunc loads a previously persisted artifact from targetPath.
type ReadFunc func(targetPath string) (any, error)

// WriteFunc persists an artifact at targetPath. It must write what the
// paired ReadFunc reads back.
type WriteFunc func(artifact any, targetPath string) error

// FetchFunc transfers url to destPath. destPath exists and is empty when
// the hook runs.
type FetchFunc func(url, destPath string) error

// ConfirmFunc decides whether a pending cache write may proceed.
type ConfirmFunc func(prompt string) bool

// ReadOrProcess returns the artifact cached at targetPath, producing and
// persisting it first when the file is missing or WithForce is set. The
// source is only touched on a miss, so a populated cache works offline
// even for remote sources.
func ReadOrProcess(sourcePath, targetPath string, opt ...Option) (any, error) {
	o := newOptions(opt)
	if err := o.validatePair(); err != nil {
		return nil, err
	}
	return readOrProcess(sourcePath, canonicalPath(targetPath), o)
}

// MaybeProcess materializes targetPath when the file is missing or
// WithForce is set, and returns the normalized target path. It never reads
// an artifact back; use it when only the on-disk side effect matters.
func MaybeProcess(sourcePath, targetPath string, opt ...Option) (string, error) {
	o := newOptions(opt)
	if err := o.validatePair(); err != nil {
		return "", err
	}
	return maybeProcess(sourcePath, canonicalPath(targetPath), o)
}

// ReadOrCache is ReadOrProcess with the target derived instead of given:
// the app's cache directory plus the deterministic cache filename for
// sourcePath.
func ReadOrCache(sourcePath, appName string, opt ...Option) (any, error) {
	o := newOptions(opt)
	if err := o.validatePair(); err != nil {
		return nil, err
	}

	target, err := cacheTarget(sourcePath, appName, o)
	if err != nil {
		return nil, err
	}
	return readOrProcess(sourcePath, target, o)
}

// MaybeCache is MaybeProcess with the target derived the same way
// ReadOrCache derives it. The artifact's path in the app cache is
// returned.
func MaybeCache(sourcePath, appName string, opt ...Option) (string, error) {
	o := newOptions(opt)
	if err := o.validatePair(); err != nil {
		return "", err
	}

	target, err := cacheTarget(sourcePath, appName, o)
	if err != nil {
		return "", err
	}
	return maybeProcess(sourcePath, target, o)
}

// readOrProcess runs the shared decision: process on force or miss, read
// on hit.
func readOrProcess(sourcePath, target string, o *options) (any, error) {
	if o.force || !fileExists(target) {
		return processAndWrite(sourcePath, target, o)
	}

	log.Debugf("cache hit: %s", target)
	return o.read(target)
}

// maybeProcess is readOrProcess without the read-back on a hit.
func maybeProcess(sourcePath, target string, o *options) (string, error) {
	if o.force || !fileExists(target) {
		if _, err := processAndWrite(sourcePath, target, o); err != nil {
			return "", err
		}
		return target, nil
	}

	log.Debugf("cache hit: %s", target)
	return target, nil
}

// cacheTarget derives <app cache dir>/<cache filename> for sourcePath. An
// explicit WithFilename wins over the derived name.
func cacheTarget(sourcePath, appName string, o *options) (string, error) {
	dir, err := o.registry.AppCacheDir(appName, false)
	if err != nil {
		return "", err
	}

	name := o.filename
	if name == "" {
		name = CacheFilename(sourcePath, o.extension)
	}
	return filepath.Join(dir, name), nil
}

// processAndWrite obtains the source locally, runs the transform, and
// persists the artifact. The artifact comes back even when the confirmer
// declines the write; transform, fetch and writer failures surface
// unwrapped instead.
func processAndWrite(sourcePath, target string, o *options) (any, error) {
	local, cleanup, err := o.registry.obtainWith(sourcePath, o.fetch)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	artifact, err := o.process(local)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if o.confirm(fmt.Sprintf("Write processed artifact to %s?", target)) {
		if err := o.write(artifact, target); err != nil {
			return nil, err
		}
		log.Debugf("wrote %s", target)
	} else {
		log.Debugf("write to %s declined", target)
	}

	return artifact, nil
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
