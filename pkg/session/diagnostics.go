package session

import "sync"

// Diagnostics tracks advisory detection counters for observability.
// Core logic never reads them.
type Diagnostics struct {
	mu sync.RWMutex

	attempts   uint64
	successes  uint64
	misses     uint64 // no-face outcomes
	errors     uint64
	skips      uint64 // requests dropped by the in-flight guard
	staleDrops uint64 // results discarded from a superseded generation
	lastError  string
}

// DiagnosticsSnapshot is a point-in-time copy for the status API.
type DiagnosticsSnapshot struct {
	Attempts   uint64 `json:"attempts"`
	Successes  uint64 `json:"successes"`
	Misses     uint64 `json:"misses"`
	Errors     uint64 `json:"errors"`
	Skips      uint64 `json:"skips"`
	StaleDrops uint64 `json:"stale_drops"`
	LastError  string `json:"last_error,omitempty"`
}

func (d *Diagnostics) attempt() {
	d.mu.Lock()
	d.attempts++
	d.mu.Unlock()
}

func (d *Diagnostics) success() {
	d.mu.Lock()
	d.successes++
	d.mu.Unlock()
}

func (d *Diagnostics) miss() {
	d.mu.Lock()
	d.misses++
	d.mu.Unlock()
}

func (d *Diagnostics) error(err error) {
	d.mu.Lock()
	d.errors++
	d.lastError = err.Error()
	d.mu.Unlock()
}

func (d *Diagnostics) skip() {
	d.mu.Lock()
	d.skips++
	d.mu.Unlock()
}

func (d *Diagnostics) staleDrop() {
	d.mu.Lock()
	d.staleDrops++
	d.mu.Unlock()
}

// Snapshot returns a copy of the current counters.
func (d *Diagnostics) Snapshot() DiagnosticsSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return DiagnosticsSnapshot{
		Attempts:   d.attempts,
		Successes:  d.successes,
		Misses:     d.misses,
		Errors:     d.errors,
		Skips:      d.skips,
		StaleDrops: d.staleDrops,
		LastError:  d.lastError,
	}
}
