// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import "fmt"

// options collects the per-call knobs of a single cache operation.
type options struct {
	process ProcessFunc
	read    ReadFunc
	write   WriteFunc

	// Explicitly-set flags, for the matched-pair check.
	readSet  bool
	writeSet bool

	force     bool
	extension string
	filename  string

	fetch    FetchFunc
	confirm  ConfirmFunc
	registry *Registry
}

// Option customizes one cache operation.
type Option func(*options)

func newOptions(opt []Option) *options {
	o := &options{registry: defaultRegistry}
	for _, fn := range opt {
		fn(o)
	}

	if o.process == nil {
		o.process = ReadBytes
	}
	if o.read == nil {
		o.read = ReadBytes
	}
	if o.write == nil {
		o.write = WriteBytes
	}
	if o.fetch == nil {
		o.fetch = o.registry.fetcher()
	}
	if o.confirm == nil {
		o.confirm = o.registry.confirmer()
	}
	return o
}

// validatePair enforces the matched-pair rule before any I/O happens. The
// reader and writer define the artifact encoding together, so they travel
// together even into operations that only use one of them.
func (o *options) validatePair() error {
	if o.readSet == o.writeSet {
		return nil
	}
	if o.readSet {
		return fmt.Errorf("%w: reader supplied without writer", ErrMismatchedReadWrite)
	}
	return fmt.Errorf("%w: writer supplied without reader", ErrMismatchedReadWrite)
}

// WithProcessor sets the transform run on a cache miss. The default hands
// back the source's raw bytes.
func WithProcessor(f ProcessFunc) Option {
	return func(o *options) {
		if f != nil {
			o.process = f
		}
	}
}

// WithReader sets the function that loads a previously cached artifact.
// Always pair it with the matching WithWriter.
func WithReader(f ReadFunc) Option {
	return func(o *options) {
		if f != nil {
			o.read = f
			o.readSet = true
		}
	}
}

// WithWriter sets the function that persists a fresh artifact. Always pair
// it with the matching WithReader.
func WithWriter(f WriteFunc) Option {
	return func(o *options) {
		if f != nil {
			o.write = f
			o.writeSet = true
		}
	}
}

// WithForce makes the operation re-process even when a cached artifact
// exists. The result overwrites the stale file.
func WithForce(force bool) Option {
	return func(o *options) {
		o.force = force
	}
}

// WithExtension sets the extension appended to derived cache filenames.
// Ignored when WithFilename supplies the full name.
func WithExtension(ext string) Option {
	return func(o *options) {
		o.extension = ext
	}
}

// WithFilename overrides the derived cache filename entirely.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithFetcher overrides the transfer hook for this operation only.
func WithFetcher(f FetchFunc) Option {
	return func(o *options) {
		if f != nil {
			o.fetch = f
		}
	}
}

// WithConfirm overrides the write-confirmation hook for this operation
// only.
func WithConfirm(f ConfirmFunc) Option {
	return func(o *options) {
		if f != nil {
			o.confirm = f
		}
	}
}

// WithRegistry routes the operation through r instead of the default
// registry. Order relative to the other With* options does not matter;
// registry-derived defaults are filled in after all options apply.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}
