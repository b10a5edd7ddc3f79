package observer

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
)

// perturbation is one delay of one thread covering one or more targets.
type perturbation struct {
	wake chan struct{}

	mu        sync.Mutex
	exposed   []bool
	remaining int
}

func newPerturbation(n int) *perturbation {
	return &perturbation{
		wake:      make(chan struct{}, 1),
		exposed:   make([]bool, n),
		remaining: n,
	}
}

func (p *perturbation) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *perturbation) succeed(i int) {
	p.mu.Lock()
	if !p.exposed[i] {
		p.exposed[i] = true
		p.remaining--
	}
	p.mu.Unlock()
	p.signal()
}

func (p *perturbation) done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining == 0
}

func (p *perturbation) succeeded(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exposed[i]
}

// waiter waits for another thread to run the awaited participant of a target
// on memory overlapping the delayed access.
type waiter struct {
	p      *perturbation
	idx    int
	thread domain.ThreadID
	await  domain.Event
	addr   uint64
	size   uint64
}

func (w *waiter) matches(e entry) bool {
	return e.acc.Thread != w.thread &&
		e.acc.Type == w.await.Type &&
		domain.RangesOverlap(w.addr, w.size, e.acc.Addr, e.acc.Size)
}

// pendingTargets returns the targets cur would attempt, after the strategy's
// selection and admission rules.
func (o *Observer) pendingTargets(t *thread, cur entry) []*target {
	var pending []*target
	for _, tgt := range o.targets.forEvent(cur.acc.Event()) {
		outcome := o.deps.Ledger.OutcomeOf(tgt.key)
		if outcome.Resolved() {
			o.targets.remove(tgt.key)
			o.deps.Metrics.CandidateSkipped(outcome)
			continue
		}
		if tgt.needsPrecede() && !o.preceded(t, cur, tgt.precede) {
			continue
		}
		pending = append(pending, tgt)
	}
	if len(pending) == 0 || o.strategy.exhaustive {
		return pending
	}
	return []*target{o.leastAttempted(pending)}
}

// preceded reports whether t's window holds ev on memory overlapping cur.
func (o *Observer) preceded(t *thread, cur entry, ev domain.Event) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := false
	t.win.each(func(e entry) bool {
		if o.tooOld(cur, e) {
			return false
		}
		if e.acc.Event() == ev && e.acc.Overlaps(cur.acc) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (o *Observer) leastAttempted(pending []*target) *target {
	attempts := func(t *target) uint32 {
		e, _ := o.deps.Ledger.Entry(t.key)
		return e.Attempts
	}
	return slices.MinFunc(pending, func(a, b *target) int {
		return int(attempts(a)) - int(attempts(b))
	})
}

// perturb delays the calling thread until every target is exposed, the delay
// expires, no other thread can make progress or ctx is done. The outcome of
// each target is booked in the ledger.
func (o *Observer) perturb(ctx context.Context, t *thread, cur entry, targets []*target) {
	if o.strategy.serialize {
		if !o.inflight.CompareAndSwap(false, true) {
			return
		}
		defer o.inflight.Store(false)
	}
	if o.limiter != nil && !o.limiter.Allow() {
		return
	}

	ctx, span := o.deps.Tracer.Start(ctx, "perturb")
	defer span.End()
	span.SetAttribute("strategy", o.strategy.name)
	span.SetAttribute("thread", uint64(t.id))
	span.SetAttribute("targets", len(targets))

	p := newPerturbation(len(targets))
	o.arm(p, cur, targets)
	t.setState(StatePerturbing)

	start := time.Now()
	result := o.wait(ctx, p)
	elapsed := time.Since(start)

	o.disarm(p, targets)
	t.setState(StateTracking)

	exposed := 0
	for i, tgt := range targets {
		ok := p.succeeded(i)
		res := result
		if ok {
			res = ports.PerturbExposed
			exposed++
		}
		if o.deps.Ledger.RecordAttempt(tgt.key, ok).Resolved() {
			o.targets.remove(tgt.key)
		}
		o.deps.Metrics.PerturbationFinished(res, elapsed)
	}

	span.SetAttribute("result", string(result))
	span.SetAttribute("exposed", exposed)
	span.SetAttribute("delay", elapsed)
}

func (o *Observer) wait(ctx context.Context, p *perturbation) ports.PerturbResult {
	timer := time.NewTimer(o.opts.MaxDelay)
	defer timer.Stop()

	for {
		if p.done() {
			return ports.PerturbExposed
		}
		if !o.othersRunning() {
			return ports.PerturbAbandoned
		}
		select {
		case <-p.wake:
		case <-timer.C:
			return ports.PerturbTimeout
		case <-ctx.Done():
			return ports.PerturbAbandoned
		}
	}
}

// othersRunning reports whether a live thread exists that is not delayed.
func (o *Observer) othersRunning() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.live-o.delayed > 0
}

func (o *Observer) arm(p *perturbation, cur entry, targets []*target) {
	o.mu.Lock()
	o.delayed++
	o.mu.Unlock()

	o.waitMu.Lock()
	for i, tgt := range targets {
		w := &waiter{
			p:      p,
			idx:    i,
			thread: cur.acc.Thread,
			await:  tgt.await,
			addr:   cur.acc.Addr,
			size:   cur.acc.Size,
		}
		o.waiters[tgt.await.Inst] = append(o.waiters[tgt.await.Inst], w)
	}
	o.active[p] = struct{}{}
	o.waitMu.Unlock()

	o.notifyAll()
}

func (o *Observer) disarm(p *perturbation, targets []*target) {
	o.waitMu.Lock()
	for _, tgt := range targets {
		id := tgt.await.Inst
		list := slices.DeleteFunc(o.waiters[id], func(w *waiter) bool { return w.p == p })
		if len(list) == 0 {
			delete(o.waiters, id)
		} else {
			o.waiters[id] = list
		}
	}
	delete(o.active, p)
	o.waitMu.Unlock()

	o.mu.Lock()
	o.delayed--
	o.mu.Unlock()
}

// completeWaiters releases perturbations waiting for cur.
func (o *Observer) completeWaiters(cur entry) {
	o.waitMu.Lock()
	defer o.waitMu.Unlock()

	list, ok := o.waiters[cur.acc.Inst.ID]
	if !ok {
		return
	}
	list = slices.DeleteFunc(list, func(w *waiter) bool {
		if !w.matches(cur) {
			return false
		}
		w.p.succeed(w.idx)
		return true
	})
	if len(list) == 0 {
		delete(o.waiters, cur.acc.Inst.ID)
		return
	}
	o.waiters[cur.acc.Inst.ID] = list
}

// notifyAll wakes every delayed thread to re-evaluate its wait.
func (o *Observer) notifyAll() {
	o.waitMu.Lock()
	defer o.waitMu.Unlock()
	for p := range o.active {
		p.signal()
	}
}
