// Copyright © 2026 Macmillan Learning
// SPDX-License-Identifier: MIT

package dlr

import (
	"encoding/hex"
	"path"
	"path/filepath"

	"lukechampine.com/blake3"
)

// hashLen is the number of hex digits of the identity hash carried in a
// cache filename.
const hashLen = 8

// CacheFilename derives the deterministic filename for sourcePath's cached
// artifact: the source's base name, a short hash of its canonical identity,
// and the optional extension, dot-separated. Remote URLs hash verbatim;
// local paths hash their canonical absolute form, so two files sharing a
// base name in different directories get distinct filenames. Nothing is
// inferred from the source's own extension, and no trailing dot is added
// when extension is empty.
func CacheFilename(sourcePath, extension string) string {
	sum := blake3.Sum256([]byte(identity(sourcePath)))
	name := baseName(sourcePath) + "." + hex.EncodeToString(sum[:])[:hashLen]
	if extension != "" {
		name += "." + extension
	}
	return name
}

// baseName returns the final path segment of sourcePath. URLs always split
// on forward slashes; local paths split per platform.
func baseName(sourcePath string) string {
	if IsRemote(sourcePath) {
		return path.Base(sourcePath)
	}
	return filepath.Base(sourcePath)
}

// identity is the string hashed into a cache filename: the URL itself for
// remote sources, the canonical absolute path for local ones.
func identity(sourcePath string) string {
	if IsRemote(sourcePath) {
		return sourcePath
	}
	return canonicalPath(sourcePath)
}

// canonicalPath resolves p to a canonical absolute form without requiring
// that it exist. Symlinks along the longest existing ancestor are resolved,
// so a path keeps the same identity before and after the file appears.
func canonicalPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		// Abs only fails when the working directory is unknowable.
		return filepath.Clean(p)
	}

	rest := ""
	for dir := abs; ; {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(resolved, rest)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
	}
}
