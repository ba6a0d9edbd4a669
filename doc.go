// Copyright © 2026 Macmillan Learning
// SPDX-License-Identifier: MIT

// Package dlr caches processed artifacts of remote or local files at
// deterministic per-application paths, so repeated runs skip both the
// download and the processing step.
//
// The central operation is ReadOrCache: give it a source (URL or local
// path) and an application name, and it either reads the previously cached
// artifact or downloads, processes and persists a fresh one under the
// app's cache directory. ReadOrProcess does the same against an explicit
// target path, and the Maybe variants materialize the file without reading
// it back.
//
//	rows, err := dlr.ReadOrCache("https://example.com/data.csv", "myapp",
//		dlr.WithProcessor(parseCSV),
//		dlr.WithReader(dlr.GobReader[[][]string]()),
//		dlr.WithWriter(dlr.GobWriter[[][]string]()),
//		dlr.WithExtension("gob"),
//	)
//
// Cache locations follow OS conventions and can be overridden per app with
// SetAppCacheDir or an <APPNAME>_CACHE_DIR environment variable. Cache
// filenames are deterministic, derived from the source's base name and a
// short hash of its identity, so the same source always lands at the same
// path.
//
// Package-level functions share one default Registry, which also picks up
// optional settings from a dlr.yaml file. Neither the registry nor the
// operations are safe for concurrent use without caller-side
// synchronization.
package dlr
