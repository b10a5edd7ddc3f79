package ports

import (
	"iter"

	"go.trai.ch/iroot/internal/core/domain"
)

// SharedInstRegistry identifies static instructions that access memory also
// accessed by another thread. It only ever grows.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SharedInstRegistry interface {
	// IsShared reports whether the instruction has been seen touching memory
	// that another thread also touched. Once true it stays true.
	IsShared(id domain.InstID) bool
	// RecordAccess feeds one dynamic memory access into the registry.
	RecordAccess(inst domain.Inst, thread domain.ThreadID, addr, size uint64)
	// Len returns the number of shared instructions.
	Len() int
	// Load merges the registry file at path. A missing file is not an error.
	Load(path string) error
	// Save writes the registry to path.
	Save(path string) error
}

// CandidateStore is the persistent set of iRoot candidates.
type CandidateStore interface {
	// Lookup returns the candidate with the given identity.
	Lookup(key domain.CandidateKey) (domain.Candidate, bool)
	// InsertIfAbsent returns the existing candidate for key, or creates it.
	// The boolean reports whether a new candidate was created.
	InsertIfAbsent(key domain.CandidateKey, discovery domain.Discovery) (domain.Candidate, bool)
	// All yields every candidate in insertion order. The sequence may be
	// ranged over more than once.
	All() iter.Seq[domain.Candidate]
	// Remove deletes the candidate with the given identity.
	Remove(key domain.CandidateKey) bool
	// Len returns the number of candidates.
	Len() int
	// Load replaces the store content with the file at path. A missing file
	// yields an empty store.
	Load(path string) error
	// Save writes every candidate to path.
	Save(path string) error
}

// MemoLedger records, across runs, which candidates were exposed, which were
// given up on and which are still unknown.
type MemoLedger interface {
	// OutcomeOf returns the memoized outcome, Unknown for unseen candidates.
	OutcomeOf(key domain.CandidateKey) domain.Outcome
	// Entry returns the full memo record of a candidate.
	Entry(key domain.CandidateKey) (domain.MemoEntry, bool)
	// RecordAttempt books a finished perturbation attempt and returns the new outcome.
	RecordAttempt(key domain.CandidateKey, succeeded bool) domain.Outcome
	// RecordObserved books an interleaving that occurred without perturbation.
	RecordObserved(key domain.CandidateKey) domain.Outcome
	// SetFailureThreshold sets how many failed attempts give up on a candidate.
	SetFailureThreshold(n uint32)
	// Refine prunes repeatedly failed candidates when pruneFailed is set and
	// returns how many candidates were removed.
	Refine(pruneFailed bool) int
	// Summary counts entries by outcome.
	Summary() domain.MemoSummary
	// Load reads the ledger at path, dropping entries without a candidate.
	Load(path string) error
	// Save writes the ledger to path.
	Save(path string) error
}
