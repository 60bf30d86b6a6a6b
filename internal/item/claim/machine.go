package claim

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"campus-lost-found/internal/model"
)

var (
	ErrClaimInFlight     = errors.New("a claim for this item is already being submitted")
	ErrAlreadyClaimed    = errors.New("item already claimed")
	ErrClaimNotConfirmed = errors.New("backend did not confirm the claim")
	ErrStaleAttempt      = errors.New("claim attempt was discarded")
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
)

// Kind tells which mutation a claim asks the backend for.
type Kind string

const (
	// KindOwnership: someone recognises a found item as theirs; status moves to analyzing.
	KindOwnership Kind = "ownership"
	// KindPossession: someone has a lost item in hand; type moves to found.
	KindPossession Kind = "possession"
)

// KindFor derives the claim kind from the item type.
func KindFor(t model.ItemType) Kind {
	if t == model.ItemTypeLost {
		return KindPossession
	}
	return KindOwnership
}

// Patch is the partial update sent to the backend. Exactly one field is set.
type Patch struct {
	Status model.ItemStatus `json:"status,omitempty"`
	Type   model.ItemType   `json:"type,omitempty"`
}

func PatchFor(k Kind) Patch {
	if k == KindPossession {
		return Patch{Type: model.ItemTypeFound}
	}
	return Patch{Status: model.ItemStatusAnalyzing}
}

// Confirms reports whether the echoed item carries the mutation the patch asked for.
func (p Patch) Confirms(it model.Item) bool {
	if p.Status != "" && it.Status != p.Status {
		return false
	}
	if p.Type != "" && it.Type != p.Type {
		return false
	}
	return true
}

// Submission is one attempt handed to the submit function.
type Submission struct {
	AttemptID string
	ItemID    string
	Kind      Kind
	Patch     Patch
}

// SubmitFunc sends a claim and returns the item as echoed by the backend.
type SubmitFunc func(ctx context.Context, s Submission) (model.Item, error)

// Machine tracks the claim lifecycle of a single item:
// idle -> submitting -> success, or back to idle on failure.
type Machine struct {
	mu         sync.Mutex
	itemID     string
	kind       Kind
	state      State
	generation uint64

	// watch, when set, is called under mu after every state change.
	watch func(*Machine)
}

// NewMachine starts in success when the item's status already reflects a claim.
func NewMachine(it model.Item) *Machine {
	m := &Machine{
		itemID: it.ID,
		kind:   KindFor(it.Type),
		state:  StateIdle,
	}
	if it.IsClaimed() {
		m.state = StateSuccess
	}
	return m
}

func (m *Machine) ItemID() string { return m.itemID }

func (m *Machine) Kind() Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kind
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Run performs one claim attempt. Only one submission is in flight at a time; a
// second caller gets ErrClaimInFlight without reaching submit. On failure the
// machine returns to idle so the user may retry.
func (m *Machine) Run(ctx context.Context, submit SubmitFunc) (model.Item, error) {
	m.mu.Lock()
	switch m.state {
	case StateSuccess:
		m.mu.Unlock()
		return model.Item{}, ErrAlreadyClaimed
	case StateSubmitting:
		m.mu.Unlock()
		return model.Item{}, ErrClaimInFlight
	}
	m.state = StateSubmitting
	m.notify()
	gen := m.generation
	kind := m.kind
	m.mu.Unlock()

	s := Submission{
		AttemptID: uuid.NewString(),
		ItemID:    m.itemID,
		Kind:      kind,
		Patch:     PatchFor(kind),
	}
	echoed, err := submit(ctx, s)

	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.notify()

	if gen != m.generation {
		return model.Item{}, ErrStaleAttempt
	}
	if err != nil {
		m.state = StateIdle
		return model.Item{}, err
	}
	if !s.Patch.Confirms(echoed) {
		m.state = StateIdle
		return model.Item{}, ErrClaimNotConfirmed
	}
	m.state = StateSuccess
	return echoed, nil
}

// Reset abandons any in-flight attempt. Its result, when it arrives, is dropped.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	if m.state == StateSubmitting {
		m.state = StateIdle
		m.notify()
	}
}

func (m *Machine) notify() {
	if m.watch != nil {
		m.watch(m)
	}
}
