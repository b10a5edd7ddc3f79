package observer

import (
	"go.trai.ch/iroot/internal/core/domain"
)

// detect pairs cur with the windows of the other threads. A conflicting remote
// access that already happened is an observed iRoot; the reverse order is a
// candidate to expose. It reports whether any idiom pattern matched.
func (o *Observer) detect(t *thread, cur entry) bool {
	remotes := o.remoteEntries(t.id, cur)
	if len(remotes) == 0 {
		return false
	}

	var prev entry
	hasPrev := false
	if o.opts.ComplexIdioms && cur.acc.Type.IsMem() {
		prev, hasPrev = o.lastLocal(t, cur)
	}

	seen := make(map[domain.CandidateKey]struct{})
	matched := false
	for _, r := range remotes {
		if domain.Conflicts(r.acc.Type, cur.acc.Type) {
			o.observe(seen, domain.MustKey(domain.Idiom1, r.acc.Event(), cur.acc.Event()))
			matched = true
		}
		if domain.Conflicts(cur.acc.Type, r.acc.Type) {
			o.predict(seen, domain.MustKey(domain.Idiom1, cur.acc.Event(), r.acc.Event()))
			matched = true
		}

		if !hasPrev || !r.acc.Type.IsMem() {
			continue
		}
		if !domain.Unserializable(prev.acc.Type, r.acc.Type, cur.acc.Type) {
			continue
		}
		key := domain.MustKey(domain.Idiom2, prev.acc.Event(), r.acc.Event(), cur.acc.Event())
		if r.seq > prev.seq {
			o.observe(seen, key)
		} else {
			o.predict(seen, key)
		}
		matched = true
	}
	return matched
}

// remoteEntries collects the window entries of other threads that touch
// memory overlapping cur.
func (o *Observer) remoteEntries(self domain.ThreadID, cur entry) []entry {
	var out []entry
	for _, other := range o.otherThreads(self) {
		other.mu.RLock()
		other.win.each(func(e entry) bool {
			if o.tooOld(cur, e) {
				return false
			}
			if e.acc.Overlaps(cur.acc) {
				out = append(out, e)
			}
			return true
		})
		other.mu.RUnlock()
	}
	return out
}

// lastLocal returns the newest memory access of t overlapping cur.
func (o *Observer) lastLocal(t *thread, cur entry) (entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var found entry
	ok := false
	t.win.each(func(e entry) bool {
		if o.tooOld(cur, e) {
			return false
		}
		if e.acc.Type.IsMem() && e.acc.Overlaps(cur.acc) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// observe books an interleaving that happened without perturbation.
func (o *Observer) observe(seen map[domain.CandidateKey]struct{}, key domain.CandidateKey) {
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}

	if _, created := o.deps.Store.InsertIfAbsent(key, o.discovery()); created {
		o.deps.Metrics.CandidateDiscovered(key.Kind)
	}
	if o.deps.Ledger.OutcomeOf(key) == domain.OutcomeUnknown {
		o.deps.Metrics.InterleavingObserved(key.Kind)
	}
	if o.deps.Ledger.RecordObserved(key).Resolved() {
		o.targets.remove(key)
	}
}

// predict records a candidate whose order has not been seen and registers it
// as a target unless its outcome is already resolved.
func (o *Observer) predict(seen map[domain.CandidateKey]struct{}, key domain.CandidateKey) {
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}

	c, created := o.deps.Store.InsertIfAbsent(key, o.discovery())
	if created {
		o.deps.Metrics.CandidateDiscovered(key.Kind)
		o.deps.Logger.Debug("candidate " + c.String())
	}

	outcome := o.deps.Ledger.OutcomeOf(key)
	if outcome.Resolved() {
		o.deps.Metrics.CandidateSkipped(outcome)
		return
	}
	o.targets.add(key)
}
