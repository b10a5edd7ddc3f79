// Package observer implements the execution observers that discover iRoot
// candidates in a live execution and perturb the schedule to expose them.
package observer

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

// strategy captures how the observer variants differ.
type strategy struct {
	name string
	// exhaustive attempts every pending target reached in one delay instead
	// of the single least attempted one.
	exhaustive bool
	// ageBound drops remote entries older than WindowAge global events.
	ageBound bool
	// serialize allows at most one perturbation in flight process wide.
	serialize bool
	// limited throttles perturbations with PerturbRate.
	limited bool
}

var (
	baselineStrategy = strategy{
		name:       "baseline",
		exhaustive: true,
	}
	heuristicStrategy = strategy{
		name:      "heuristic",
		ageBound:  true,
		serialize: true,
		limited:   true,
	}
)

var _ ports.Observer = (*Observer)(nil)

// Observer tracks a window of recent shared accesses per thread, turns
// conflicting cross-thread accesses into candidates and delays threads to
// realize the candidates whose outcome is still unknown.
type Observer struct {
	strategy strategy
	deps     ports.ObserverDeps
	opts     domain.Options
	limiter  *rate.Limiter
	ready    atomic.Bool

	clock atomic.Uint64

	mu      sync.RWMutex
	threads map[domain.ThreadID]*thread
	live    int
	delayed int

	targets  *targetSet
	inflight atomic.Bool

	waitMu  sync.Mutex
	waiters map[domain.InstID][]*waiter
	active  map[*perturbation]struct{}
}

type thread struct {
	id     domain.ThreadID
	exited bool // guarded by Observer.mu

	mu    sync.RWMutex
	win   *window
	state ThreadState
}

func (t *thread) setState(s ThreadState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

// NewBaseline creates the baseline observer: count bounded windows and
// exhaustive perturbation of every pending target.
func NewBaseline() *Observer {
	return newObserver(baselineStrategy)
}

// NewHeuristic creates the heuristic observer: windows bounded by count and
// logical age, one rate limited perturbation at a time of the least attempted
// pending target.
func NewHeuristic() *Observer {
	return newObserver(heuristicStrategy)
}

func newObserver(s strategy) *Observer {
	return &Observer{
		strategy: s,
		threads:  make(map[domain.ThreadID]*thread),
		targets:  newTargetSet(),
		waiters:  make(map[domain.InstID][]*waiter),
		active:   make(map[*perturbation]struct{}),
	}
}

// Name identifies the strategy.
func (o *Observer) Name() string {
	return o.strategy.name
}

// Setup wires the observer to its stores and registers every Unknown
// candidate of the store as a perturbation target.
func (o *Observer) Setup(deps ports.ObserverDeps) error {
	if o.ready.Load() {
		return zerr.With(domain.ErrSetupOrder, "observer", o.strategy.name)
	}

	o.deps = deps
	o.opts = deps.Options
	if o.strategy.limited && o.opts.PerturbRate > 0 {
		o.limiter = rate.NewLimiter(rate.Limit(o.opts.PerturbRate), max(o.opts.PerturbBurst, 1))
	}

	for c := range deps.Store.All() {
		if deps.Ledger.OutcomeOf(c.Key) == domain.OutcomeUnknown {
			o.targets.add(c.Key)
		}
	}
	deps.Logger.Debug(fmt.Sprintf("%s observer armed with %d pending targets", o.strategy.name, o.targets.len()))

	o.ready.Store(true)
	return nil
}

// OnThreadStart registers a new application thread.
func (o *Observer) OnThreadStart(tid domain.ThreadID) {
	if !o.ready.Load() {
		return
	}
	o.mu.Lock()
	o.startLocked(tid)
	o.mu.Unlock()
}

func (o *Observer) startLocked(tid domain.ThreadID) *thread {
	t, ok := o.threads[tid]
	if ok && !t.exited {
		return t
	}
	t = &thread{id: tid, win: newWindow(o.opts.WindowSize), state: StateIdle}
	o.threads[tid] = t
	o.live++
	return t
}

// OnThreadExit marks the thread finished. Its window stays visible to the
// remaining threads. Perturbations waiting on other threads re-check whether
// their ordering is still possible.
func (o *Observer) OnThreadExit(tid domain.ThreadID) {
	if !o.ready.Load() {
		return
	}

	o.mu.Lock()
	t, ok := o.threads[tid]
	if ok && !t.exited {
		t.exited = true
		t.setState(StateExited)
		o.live--
	}
	o.mu.Unlock()

	o.notifyAll()
}

func (o *Observer) thread(tid domain.ThreadID) *thread {
	o.mu.RLock()
	t, ok := o.threads[tid]
	o.mu.RUnlock()
	if ok {
		return t
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	return o.startLocked(tid)
}

// ThreadState reports the observation state of a thread.
func (o *Observer) ThreadState(tid domain.ThreadID) (ThreadState, bool) {
	o.mu.RLock()
	t, ok := o.threads[tid]
	o.mu.RUnlock()
	if !ok {
		return "", false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state, true
}

// Pending returns the number of registered perturbation targets.
func (o *Observer) Pending() int {
	return o.targets.len()
}

// OnAccess handles an access that is about to execute on the calling thread.
// Accesses of instructions that are not shared are ignored.
func (o *Observer) OnAccess(ctx context.Context, acc domain.Access) {
	if !o.ready.Load() || !o.deps.Registry.IsShared(acc.Inst.ID) {
		return
	}

	t := o.thread(acc.Thread)
	cur := entry{acc: acc, seq: o.clock.Add(1)}

	o.completeWaiters(cur)

	if o.detect(t, cur) {
		t.setState(StateCandidateFound)
	}
	if pending := o.pendingTargets(t, cur); len(pending) > 0 {
		o.perturb(ctx, t, cur, pending)
	}

	// The access executes once the callback returns, so it only becomes
	// visible to other threads after any delay.
	t.mu.Lock()
	t.win.push(cur)
	t.state = StateTracking
	t.mu.Unlock()
}

// Teardown drops the per-run state. It is called after every thread exited.
func (o *Observer) Teardown() error {
	if !o.ready.Swap(false) {
		return nil
	}

	o.mu.Lock()
	o.deps.Logger.Debug(fmt.Sprintf("%s observer saw %d threads, %d targets left pending",
		o.strategy.name, len(o.threads), o.targets.len()))
	clear(o.threads)
	o.live = 0
	o.delayed = 0
	o.mu.Unlock()

	o.waitMu.Lock()
	clear(o.waiters)
	clear(o.active)
	o.waitMu.Unlock()

	o.targets.reset()
	return nil
}

func (o *Observer) discovery() domain.Discovery {
	return domain.Discovery{
		RunID:     o.deps.RunID,
		FirstSeen: time.Now().UTC().Truncate(time.Second),
	}
}

// otherThreads returns every thread except self, ordered by id.
func (o *Observer) otherThreads(self domain.ThreadID) []*thread {
	o.mu.RLock()
	out := make([]*thread, 0, len(o.threads))
	for id, t := range o.threads {
		if id != self {
			out = append(out, t)
		}
	}
	o.mu.RUnlock()

	slices.SortFunc(out, func(a, b *thread) int { return cmp.Compare(a.id, b.id) })
	return out
}

// tooOld reports whether e is more than WindowAge events older than cur. An
// entry pushed by a concurrent thread after cur took its sequence number is
// never too old.
func (o *Observer) tooOld(cur, e entry) bool {
	return o.strategy.ageBound && e.seq < cur.seq && cur.seq-e.seq > o.opts.WindowAge
}
