// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package platform

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheRootAppendsAppName(t *testing.T) {
	dir, err := CacheRoot("scribr")
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir), "cache root should be absolute: %s", dir)
	assert.True(t, strings.HasSuffix(dir, string(filepath.Separator)+"scribr"), "cache root should end with the app name: %s", dir)
}

func TestCacheRootHonorsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME only applies on Linux")
	}

	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)

	dir, err := CacheRoot("scribr")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "scribr"), dir)
}
