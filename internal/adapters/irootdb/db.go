// Package irootdb implements the persistent iRoot candidate store.
package irootdb

import (
	"iter"
	"sync"

	"go.trai.ch/iroot/internal/adapters/storefile"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CandidateStore = (*DB)(nil)

// DB keeps candidates in an arena addressed by CandidateID. Removed slots stay
// empty until the next Load so ids handed out during a run remain stable.
type DB struct {
	mu      sync.Mutex
	records []*domain.Candidate
	index   map[domain.CandidateKey]domain.CandidateID
	live    int
}

// New creates an empty candidate store.
func New() *DB {
	return &DB{
		index: make(map[domain.CandidateKey]domain.CandidateID),
	}
}

// Lookup returns the candidate with the given identity.
func (db *DB) Lookup(key domain.CandidateKey) (domain.Candidate, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id, ok := db.index[key]
	if !ok {
		return domain.Candidate{}, false
	}
	return *db.records[id], true
}

// InsertIfAbsent returns the candidate for key, creating it with the given
// discovery metadata when it does not exist yet.
func (db *DB) InsertIfAbsent(key domain.CandidateKey, discovery domain.Discovery) (domain.Candidate, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if id, ok := db.index[key]; ok {
		return *db.records[id], false
	}
	return *db.insertLocked(key, discovery), true
}

func (db *DB) insertLocked(key domain.CandidateKey, discovery domain.Discovery) *domain.Candidate {
	c := &domain.Candidate{
		ID:        domain.CandidateID(len(db.records)),
		Key:       key,
		Discovery: discovery,
	}
	db.records = append(db.records, c)
	db.index[key] = c.ID
	db.live++
	return c
}

// All yields a snapshot of the candidates taken when iteration starts.
func (db *DB) All() iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		for _, c := range db.snapshot() {
			if !yield(c) {
				return
			}
		}
	}
}

func (db *DB) snapshot() []domain.Candidate {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Candidate, 0, db.live)
	for _, c := range db.records {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// Remove deletes the candidate with the given identity.
func (db *DB) Remove(key domain.CandidateKey) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	id, ok := db.index[key]
	if !ok {
		return false
	}
	delete(db.index, key)
	db.records[id] = nil
	db.live--
	return true
}

// Len returns the number of candidates.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.live
}

type dbFile struct {
	Version    int               `json:"version"`
	Candidates []candidateRecord `json:"candidates"`
}

func (f *dbFile) FormatVersion() int { return f.Version }

type candidateRecord struct {
	Kind      domain.IdiomKind `json:"kind"`
	Events    []domain.Event   `json:"events"`
	Discovery domain.Discovery `json:"discovery,omitzero"`
}

// Load replaces the store content with the candidates in the file at path.
// A missing file leaves the store empty. On error the store is unchanged.
func (db *DB) Load(path string) error {
	var file dbFile
	found, err := storefile.Read(path, &file)
	if err != nil {
		return err
	}

	loaded := New()
	if found {
		for i, rec := range file.Candidates {
			key, err := domain.NewKey(rec.Kind, rec.Events...)
			if err != nil {
				return zerr.With(zerr.With(err, "path", path), "record", i)
			}
			if _, dup := loaded.index[key]; dup {
				continue
			}
			loaded.insertLocked(key, rec.Discovery)
		}
	}

	db.mu.Lock()
	db.records = loaded.records
	db.index = loaded.index
	db.live = loaded.live
	db.mu.Unlock()
	return nil
}

// Save writes every candidate to path in insertion order.
func (db *DB) Save(path string) error {
	file := dbFile{
		Version:    domain.StoreFormatVersion,
		Candidates: []candidateRecord{},
	}
	for c := range db.All() {
		file.Candidates = append(file.Candidates, candidateRecord{
			Kind:      c.Key.Kind,
			Events:    c.Key.Participants(),
			Discovery: c.Discovery,
		})
	}
	return storefile.Write(path, &file)
}
