package domain

import (
	"fmt"
	"strings"
	"time"
)

// Event is the static part of an iRoot participant: which instruction performs
// which kind of operation.
type Event struct {
	Inst InstID     `json:"inst"`
	Type AccessType `json:"type"`
}

func (e Event) String() string {
	return e.Inst.String() + ":" + e.Type.String()
}

// CandidateKey is the identity of an iRoot. Two candidates are the same iRoot iff
// their keys are equal, no matter which run discovered them. Events beyond the
// idiom arity are zero.
type CandidateKey struct {
	Kind   IdiomKind
	Events [3]Event
}

// NewKey builds a CandidateKey from an idiom and its ordered participants.
func NewKey(kind IdiomKind, events ...Event) (CandidateKey, error) {
	if !kind.Valid() || len(events) != kind.Arity() {
		return CandidateKey{}, ErrInvalidCandidate
	}
	key := CandidateKey{Kind: kind}
	copy(key.Events[:], events)
	return key, nil
}

// MustKey is NewKey for call sites that construct keys from known-good input.
func MustKey(kind IdiomKind, events ...Event) CandidateKey {
	key, err := NewKey(kind, events...)
	if err != nil {
		panic(err)
	}
	return key
}

// Participants returns the events of the key in interleaving order.
func (k CandidateKey) Participants() []Event {
	n := k.Kind.Arity()
	out := make([]Event, n)
	copy(out, k.Events[:n])
	return out
}

// Valid reports whether the key is well formed.
func (k CandidateKey) Valid() bool {
	n := k.Kind.Arity()
	if n == 0 {
		return false
	}
	for i, e := range k.Events {
		if i < n && e.Type == 0 {
			return false
		}
		if i >= n && e != (Event{}) {
			return false
		}
	}
	return true
}

func (k CandidateKey) String() string {
	parts := make([]string, 0, 3)
	for _, e := range k.Participants() {
		parts = append(parts, e.String())
	}
	return k.Kind.String() + "[" + strings.Join(parts, " -> ") + "]"
}

// CandidateID addresses a candidate inside the store that owns it. It is only
// meaningful for a single loaded store.
type CandidateID uint32

// Discovery holds metadata about the run that first found a candidate.
type Discovery struct {
	RunID     string    `json:"run_id,omitzero"`
	FirstSeen time.Time `json:"first_seen,omitzero"`
}

// Candidate is an iRoot recorded in the candidate store.
type Candidate struct {
	ID        CandidateID
	Key       CandidateKey
	Discovery Discovery
}

func (c Candidate) String() string {
	return fmt.Sprintf("#%d %s", c.ID, c.Key)
}
