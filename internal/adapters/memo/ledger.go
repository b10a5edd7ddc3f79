// Package memo implements the memoization ledger that remembers, across runs,
// which candidates were exposed and which were given up on.
package memo

import (
	"sync"

	"go.trai.ch/iroot/internal/adapters/storefile"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MemoLedger = (*Ledger)(nil)

// Ledger tracks the outcome of every candidate in a candidate store.
type Ledger struct {
	store ports.CandidateStore

	mu        sync.Mutex
	entries   map[domain.CandidateKey]*domain.MemoEntry
	threshold uint32
}

// New creates an empty ledger over the given candidate store.
func New(store ports.CandidateStore, threshold uint32) *Ledger {
	return &Ledger{
		store:     store,
		entries:   make(map[domain.CandidateKey]*domain.MemoEntry),
		threshold: max(threshold, 1),
	}
}

// SetFailureThreshold sets how many failed attempts give up on a candidate.
// It does not re-evaluate entries that are already recorded.
func (l *Ledger) SetFailureThreshold(n uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = max(n, 1)
}

// OutcomeOf returns the memoized outcome of key.
func (l *Ledger) OutcomeOf(key domain.CandidateKey) domain.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[key]; ok {
		return e.Outcome
	}
	return domain.OutcomeUnknown
}

// Entry returns a copy of the memo record of key.
func (l *Ledger) Entry(key domain.CandidateKey) (domain.MemoEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return domain.MemoEntry{}, false
	}
	return *e, true
}

func (l *Ledger) entryLocked(key domain.CandidateKey) *domain.MemoEntry {
	e, ok := l.entries[key]
	if !ok {
		e = &domain.MemoEntry{Key: key}
		l.entries[key] = e
	}
	return e
}

// RecordAttempt books one perturbation attempt. Resolved outcomes are final:
// a success after the candidate was given up on does not revive it.
func (l *Ledger) RecordAttempt(key domain.CandidateKey, succeeded bool) domain.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entryLocked(key)
	e.Attempts++
	if e.Outcome.Resolved() {
		return e.Outcome
	}
	if succeeded {
		e.Outcome = domain.OutcomeExposed
		return e.Outcome
	}
	e.Failures++
	if e.Failures >= l.threshold {
		e.Outcome = domain.OutcomeFailedRepeatedly
	}
	return e.Outcome
}

// RecordObserved books an interleaving that happened on its own.
func (l *Ledger) RecordObserved(key domain.CandidateKey) domain.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entryLocked(key)
	if e.Outcome == domain.OutcomeUnknown {
		e.Outcome = domain.OutcomeExposed
	}
	return e.Outcome
}

// Refine removes repeatedly failed candidates from both the ledger and the
// candidate store when pruneFailed is set. Entries whose candidate no longer
// exists are dropped either way.
func (l *Ledger) Refine(pruneFailed bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.entries {
		if _, ok := l.store.Lookup(key); !ok {
			delete(l.entries, key)
			continue
		}
		if pruneFailed && e.Outcome == domain.OutcomeFailedRepeatedly {
			l.store.Remove(key)
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Summary counts candidates of the store by outcome. Candidates without an
// entry count as unknown.
func (l *Ledger) Summary() domain.MemoSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s domain.MemoSummary
	for c := range l.store.All() {
		e, ok := l.entries[c.Key]
		if !ok {
			s.Unknown++
			continue
		}
		s.Attempts += uint64(e.Attempts)
		switch e.Outcome {
		case domain.OutcomeExposed:
			s.Exposed++
		case domain.OutcomeFailedRepeatedly:
			s.FailedRepeatedly++
		default:
			s.Unknown++
		}
	}
	return s
}

type ledgerFile struct {
	Version int           `json:"version"`
	Entries []entryRecord `json:"entries"`
}

func (f *ledgerFile) FormatVersion() int { return f.Version }

type entryRecord struct {
	Kind     domain.IdiomKind `json:"kind"`
	Events   []domain.Event   `json:"events"`
	Outcome  domain.Outcome   `json:"outcome"`
	Attempts uint32           `json:"attempts"`
	Failures uint32           `json:"failures"`
}

// Load replaces the ledger content with the file at path. Entries for
// candidates missing from the store are dropped. The store must be loaded
// first. On error the ledger is unchanged.
func (l *Ledger) Load(path string) error {
	var file ledgerFile
	found, err := storefile.Read(path, &file)
	if err != nil {
		return err
	}

	entries := make(map[domain.CandidateKey]*domain.MemoEntry, len(file.Entries))
	if found {
		for i, rec := range file.Entries {
			key, err := domain.NewKey(rec.Kind, rec.Events...)
			if err != nil {
				return zerr.With(zerr.With(err, "path", path), "record", i)
			}
			if _, ok := l.store.Lookup(key); !ok {
				continue
			}
			entries[key] = &domain.MemoEntry{
				Key:      key,
				Outcome:  rec.Outcome,
				Attempts: rec.Attempts,
				Failures: rec.Failures,
			}
		}
	}

	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
	return nil
}

// Save writes the entries of all stored candidates to path, in store order.
func (l *Ledger) Save(path string) error {
	l.mu.Lock()
	file := ledgerFile{
		Version: domain.StoreFormatVersion,
		Entries: []entryRecord{},
	}
	for c := range l.store.All() {
		e, ok := l.entries[c.Key]
		if !ok {
			continue
		}
		file.Entries = append(file.Entries, entryRecord{
			Kind:     c.Key.Kind,
			Events:   c.Key.Participants(),
			Outcome:  e.Outcome,
			Attempts: e.Attempts,
			Failures: e.Failures,
		})
	}
	l.mu.Unlock()

	return storefile.Write(path, &file)
}
