// Package sinst tracks which static instructions access memory that is also
// accessed by another thread.
package sinst

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/iroot/internal/adapters/storefile"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
)

const (
	wordShift   = 3
	wordSize    = 1 << wordShift
	stripeCount = 64
)

var _ ports.SharedInstRegistry = (*Registry)(nil)

// shadowByte is the state of one byte of memory. Until a second thread
// touches the byte, insts holds every instruction that accessed it.
type shadowByte struct {
	first domain.ThreadID
	used  bool
	multi bool
	insts []domain.Inst
}

// shadowWord groups the bytes of one 8-byte word under one stripe lock.
type shadowWord [wordSize]shadowByte

type stripe struct {
	mu    sync.Mutex
	words map[uint64]*shadowWord
}

// Registry is the shared instruction registry. Shadow memory is split across
// lock stripes by word address; the shared set itself is read without locks.
type Registry struct {
	stripes [stripeCount]stripe
	shared  sync.Map // domain.InstID -> domain.Inst
	count   atomic.Int64
}

// New creates an empty registry.
func New() *Registry {
	r := &Registry{}
	for i := range r.stripes {
		r.stripes[i].words = make(map[uint64]*shadowWord)
	}
	return r
}

// IsShared reports whether the instruction was seen touching memory that
// another thread also touched.
func (r *Registry) IsShared(id domain.InstID) bool {
	_, ok := r.shared.Load(id)
	return ok
}

// Len returns the number of shared instructions.
func (r *Registry) Len() int {
	return int(r.count.Load())
}

func (r *Registry) mark(inst domain.Inst) {
	if _, loaded := r.shared.LoadOrStore(inst.ID, inst); !loaded {
		r.count.Add(1)
	}
}

// RecordAccess feeds one dynamic access of size bytes at addr into the
// shadow memory. Instructions become shared only through bytes that two
// threads both touched.
func (r *Registry) RecordAccess(inst domain.Inst, thread domain.ThreadID, addr, size uint64) {
	size = max(size, 1)
	end := addr + size - 1
	for w := addr >> wordShift; w <= end>>wordShift; w++ {
		base := w << wordShift
		lo := max(addr, base) - base
		hi := min(end, base+wordSize-1) - base
		r.recordWord(w, lo, hi, inst, thread)
	}
}

func (r *Registry) recordWord(w, lo, hi uint64, inst domain.Inst, thread domain.ThreadID) {
	s := &r.stripes[w%stripeCount]
	s.mu.Lock()
	defer s.mu.Unlock()

	word, ok := s.words[w]
	if !ok {
		word = &shadowWord{}
		s.words[w] = word
	}
	for i := lo; i <= hi; i++ {
		r.recordByte(&word[i], inst, thread)
	}
}

func (r *Registry) recordByte(b *shadowByte, inst domain.Inst, thread domain.ThreadID) {
	switch {
	case !b.used:
		b.used = true
		b.first = thread
		b.insts = []domain.Inst{inst}
	case b.multi:
		r.mark(inst)
	case b.first == thread:
		if !slices.ContainsFunc(b.insts, func(i domain.Inst) bool { return i.ID == inst.ID }) {
			b.insts = append(b.insts, inst)
		}
	default:
		b.multi = true
		for _, prev := range b.insts {
			r.mark(prev)
		}
		b.insts = nil
		r.mark(inst)
	}
}

type registryFile struct {
	Version      int           `json:"version"`
	Instructions []domain.Inst `json:"instructions"`
}

func (f *registryFile) FormatVersion() int { return f.Version }

// Load merges the shared instructions recorded in the file at path. A missing
// file is not an error.
func (r *Registry) Load(path string) error {
	var file registryFile
	found, err := storefile.Read(path, &file)
	if err != nil || !found {
		return err
	}
	for _, inst := range file.Instructions {
		r.mark(inst)
	}
	return nil
}

// Save writes every shared instruction to path, ordered by id.
func (r *Registry) Save(path string) error {
	file := registryFile{
		Version:      domain.StoreFormatVersion,
		Instructions: []domain.Inst{},
	}
	r.shared.Range(func(_, v any) bool {
		inst, ok := v.(domain.Inst)
		if ok {
			file.Instructions = append(file.Instructions, inst)
		}
		return true
	})
	slices.SortFunc(file.Instructions, func(a, b domain.Inst) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return storefile.Write(path, &file)
}
