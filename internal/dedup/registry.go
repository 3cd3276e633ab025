package dedup

import (
	"sync"
	"time"
)

// Registry tracks identifiers that are in flight or were recently completed,
// so that redelivered updates and double-submitted forms have at most one
// effect. A key inserted by TryBegin stays blocked until Complete schedules
// its expiry or Abort removes it. Expiry is a timestamp on the entry,
// enforced lazily on TryBegin and by a periodic sweep.
type Registry struct {
	mu      sync.Mutex
	entries map[string]entry
	done    chan struct{}
	once    sync.Once

	now func() time.Time
}

type entry struct {
	insertedAt time.Time
	// expiresAt is zero while the key is in flight (TryBegin called,
	// Complete not yet). A zero entry never expires.
	expiresAt time.Time
}

const sweepInterval = 10 * time.Second

func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		done:    make(chan struct{}),
		now:     time.Now,
	}
	go r.sweepLoop()
	return r
}

// TryBegin atomically claims key. It returns true if the caller may proceed
// and false if the key is already in flight or still within its retention
// window. Every TryBegin that returns true must be paired with Complete or
// Abort, otherwise the key is blocked forever.
func (r *Registry) TryBegin(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		if e.expiresAt.IsZero() || r.now().Before(e.expiresAt) {
			return false
		}
		// Retention elapsed; the key may be reused.
	}
	r.entries[key] = entry{insertedAt: r.now()}
	return true
}

// Complete schedules removal of key after retention elapses. Until then the
// key keeps blocking redeliveries.
func (r *Registry) Complete(key string, retention time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		return
	}
	e.expiresAt = r.now().Add(retention)
	r.entries[key] = e
}

// Abort removes key immediately, allowing an instant retry. Used when
// processing fails before completion.
func (r *Registry) Abort(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Stop halts the background sweeper. Expired entries already collapse lazily
// in TryBegin, so Stop only matters for shutdown hygiene.
func (r *Registry) Stop() {
	r.once.Do(func() { close(r.done) })
}

func (r *Registry) sweepLoop() {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			r.sweep()
		case <-r.done:
			return
		}
	}
}

func (r *Registry) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, e := range r.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(r.entries, k)
		}
	}
}

func (r *Registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
