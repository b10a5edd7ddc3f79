package observer

import (
	"slices"
	"sync"

	"go.trai.ch/iroot/internal/core/domain"
)

// target is an Unknown candidate waiting to be perturbed. The thread about to
// run the delayed participant is held back until another thread runs the
// awaited participant. Three-access idioms also require the first participant
// in the delayed thread's window.
type target struct {
	key     domain.CandidateKey
	delayed domain.Event
	await   domain.Event
	precede domain.Event
}

func newTarget(key domain.CandidateKey) *target {
	ev := key.Participants()
	n := len(ev)
	t := &target{
		key:     key,
		delayed: ev[n-1],
		await:   ev[n-2],
	}
	if n == 3 {
		t.precede = ev[0]
	}
	return t
}

func (t *target) needsPrecede() bool {
	return t.precede != (domain.Event{})
}

// targetSet indexes pending targets by the instruction of their delayed participant.
type targetSet struct {
	mu     sync.RWMutex
	byKey  map[domain.CandidateKey]*target
	byInst map[domain.InstID][]*target
}

func newTargetSet() *targetSet {
	return &targetSet{
		byKey:  make(map[domain.CandidateKey]*target),
		byInst: make(map[domain.InstID][]*target),
	}
}

func (s *targetSet) add(key domain.CandidateKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byKey[key]; ok {
		return false
	}
	t := newTarget(key)
	s.byKey[key] = t
	s.byInst[t.delayed.Inst] = append(s.byInst[t.delayed.Inst], t)
	return true
}

func (s *targetSet) remove(key domain.CandidateKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byKey[key]
	if !ok {
		return
	}
	delete(s.byKey, key)
	list := slices.DeleteFunc(s.byInst[t.delayed.Inst], func(x *target) bool { return x == t })
	if len(list) == 0 {
		delete(s.byInst, t.delayed.Inst)
		return
	}
	s.byInst[t.delayed.Inst] = list
}

// forEvent returns the targets delayed at the given event, in registration order.
func (s *targetSet) forEvent(ev domain.Event) []*target {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*target
	for _, t := range s.byInst[ev.Inst] {
		if t.delayed.Type == ev.Type {
			out = append(out, t)
		}
	}
	return out
}

func (s *targetSet) has(key domain.CandidateKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byKey[key]
	return ok
}

func (s *targetSet) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKey)
}

func (s *targetSet) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.byKey)
	clear(s.byInst)
}
