// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"errors"
	"fmt"
)

// ErrMismatchedReadWrite is returned when exactly one of the reader/writer
// pair is supplied explicitly. The two halves must round-trip the same
// encoding, so a lone reader or writer is always a caller bug. The check
// runs before any I/O.
var ErrMismatchedReadWrite = errors.New("reader and writer must be supplied together")

// DirectoryAccessError reports a cache directory that exists but is not
// readable by the current user. There is no fallback directory; the caller
// decides what to do.
type DirectoryAccessError struct {
	Dir string
	Err error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("cache directory %s is not accessible: %v", e.Dir, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error { return e.Err }

// FetchError reports a failed remote transfer. StatusCode is set for
// non-success HTTP responses and zero for transport-level failures.
// Transfers are never retried here; hosts that want retries wrap their own
// FetchFunc.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
