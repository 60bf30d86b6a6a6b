package claim

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"campus-lost-found/internal/model"
)

const (
	DefaultRegistrySize = 1000
	DefaultRegistryTTL  = 30 * time.Minute
)

// Registry keeps one Machine per item so that concurrent requests for the same
// item share a single in-flight claim. Idle entries expire after ttl or fall out
// by size; a submitting machine is also held in inflight until its attempt
// resolves, so eviction never lets a second submission start.
type Registry struct {
	mu       sync.Mutex
	machines *expirable.LRU[string, *Machine]

	// inflightMu is taken under a machine's mu, never the other way round.
	inflightMu sync.Mutex
	inflight   map[string]*Machine
}

func NewRegistry(size int, ttl time.Duration) *Registry {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	if ttl <= 0 {
		ttl = DefaultRegistryTTL
	}
	return &Registry{
		machines: expirable.NewLRU[string, *Machine](size, nil, ttl),
		inflight: make(map[string]*Machine),
	}
}

// track is the watch hook of registry machines. It runs with m.mu held.
func (r *Registry) track(m *Machine) {
	r.inflightMu.Lock()
	defer r.inflightMu.Unlock()
	if m.state == StateSubmitting {
		r.inflight[m.itemID] = m
		return
	}
	if r.inflight[m.itemID] == m {
		delete(r.inflight, m.itemID)
	}
}

func (r *Registry) submitting(id string) (*Machine, bool) {
	r.inflightMu.Lock()
	defer r.inflightMu.Unlock()
	m, ok := r.inflight[id]
	return m, ok
}

// Machine returns the machine for it. A tracked machine that is not submitting
// is re-derived from the freshly loaded item, so its kind and state always
// follow the item's current type and status.
func (r *Registry) Machine(it model.Item) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.submitting(it.ID); ok {
		r.machines.Add(it.ID, m)
		return m
	}
	if m, ok := r.machines.Get(it.ID); ok {
		m.observe(it)
		return m
	}
	m := NewMachine(it)
	m.watch = r.track
	r.machines.Add(it.ID, m)
	return m
}

// State returns the claim state for it without tracking a new machine.
func (r *Registry) State(it model.Item) State {
	if _, ok := r.submitting(it.ID); ok {
		return StateSubmitting
	}
	r.mu.Lock()
	m, ok := r.machines.Peek(it.ID)
	r.mu.Unlock()
	if !ok {
		return NewMachine(it).State()
	}
	m.observe(it)
	return m.State()
}

// Forget drops the machine for id, abandoning any attempt in flight.
func (r *Registry) Forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.submitting(id); ok {
		m.Reset()
	}
	if m, ok := r.machines.Peek(id); ok {
		m.Reset()
		r.machines.Remove(id)
	}
}

func (r *Registry) Len() int {
	return r.machines.Len()
}

func (m *Machine) observe(it model.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateSubmitting {
		return
	}
	m.kind = KindFor(it.Type)
	m.state = StateIdle
	if it.IsClaimed() {
		m.state = StateSuccess
	}
}
