// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"github.com/macmillancontentscience/dlr/internal/config"
)

// Advisory timeout bounds, in seconds. DefaultTimeout mirrors the stock
// download timeout most runtimes ship with; TimeoutFloor is the value below
// which large downloads are known to get cut off in practice.
const (
	DefaultTimeout = 60
	TimeoutFloor   = 600
)

// Registry holds the mutable knobs the cache operations consult: per-app
// directory overrides, the advisory network timeout, and the fetch and
// confirm hooks. The package-level functions all route through a single
// default registry; hosts that juggle independent cache configurations, and
// tests that want isolation, build their own with NewRegistry and pass it
// via WithRegistry.
//
// A Registry is not safe for concurrent use. Callers that share one across
// goroutines must bring their own synchronization.
type Registry struct {
	dirs        map[string]string
	timeout     int
	fetch       FetchFunc
	confirm     ConfirmFunc
	useSettings bool
	seeded      bool
	warnedSlow  bool
}

// NewRegistry returns a registry with stock behavior: no directory
// overrides, a 60-second advisory timeout, the plain HTTP fetcher, and the
// terminal confirmer. Registries built here never consult the dlr.yaml
// settings file; only the default registry does.
func NewRegistry() *Registry {
	return &Registry{
		dirs:    make(map[string]string),
		timeout: DefaultTimeout,
	}
}

var defaultRegistry = &Registry{
	dirs:        make(map[string]string),
	timeout:     DefaultTimeout,
	useSettings: true,
}

// seed applies dlr.yaml settings on first use. Every Set* call seeds before
// assigning, so an explicit value always beats the file.
func (r *Registry) seed() {
	if !r.useSettings || r.seeded {
		return
	}
	r.seeded = true

	if t, err := config.GetInt("timeout", 0); err == nil && t > 0 {
		r.timeout = t
	}
	if ok, err := config.GetBool("confirm", true); err == nil && !ok {
		r.confirm = func(string) bool { return true }
	}
}

// Timeout returns the advisory network timeout in seconds.
func (r *Registry) Timeout() int {
	r.seed()
	return r.timeout
}

// SetTimeout sets the advisory network timeout in seconds. The value is
// never enforced on a transfer; it only feeds the slow-download warning.
func (r *Registry) SetTimeout(seconds int) {
	r.seed()
	r.timeout = seconds
}

// SetFetcher replaces the transfer hook used for remote sources. A nil f
// restores the default HTTP fetcher.
func (r *Registry) SetFetcher(f FetchFunc) {
	r.fetch = f
}

// SetConfirm replaces the hook consulted before each cache write. A nil f
// restores the terminal confirmer.
func (r *Registry) SetConfirm(f ConfirmFunc) {
	r.seed()
	r.confirm = f
}

func (r *Registry) fetcher() FetchFunc {
	if r.fetch == nil {
		return httpFetch
	}
	return r.fetch
}

func (r *Registry) confirmer() ConfirmFunc {
	r.seed()
	if r.confirm == nil {
		return TerminalConfirm
	}
	return r.confirm
}

// Timeout returns the default registry's advisory network timeout in
// seconds.
func Timeout() int {
	return defaultRegistry.Timeout()
}

// SetTimeout sets the advisory network timeout on the default registry.
func SetTimeout(seconds int) {
	defaultRegistry.SetTimeout(seconds)
}

// SetFetcher replaces the default registry's transfer hook.
func SetFetcher(f FetchFunc) {
	defaultRegistry.SetFetcher(f)
}

// SetConfirm replaces the default registry's write-confirmation hook.
func SetConfirm(f ConfirmFunc) {
	defaultRegistry.SetConfirm(f)
}
