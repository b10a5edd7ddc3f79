package observer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/iroot/internal/adapters/irootdb"
	"go.trai.ch/iroot/internal/adapters/memo"
	"go.trai.ch/iroot/internal/adapters/sinst"
	"go.trai.ch/iroot/internal/adapters/telemetry"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/iroot/internal/core/ports/mocks"
	"go.trai.ch/iroot/internal/engine/observer"
)

const addrX = 0x1000

var (
	i1 = domain.NewInst("app", 0x10)
	i2 = domain.NewInst("app", 0x20)
	i3 = domain.NewInst("app", 0x30)
	i4 = domain.NewInst("app", 0x40)
)

type env struct {
	reg     *sinst.Registry
	db      *irootdb.DB
	ledger  *memo.Ledger
	metrics *telemetry.Metrics
	deps    ports.ObserverDeps
}

func newEnv(t *testing.T, opts domain.Options) *env {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	e := &env{
		reg:     sinst.New(),
		db:      irootdb.New(),
		metrics: telemetry.NewMetrics(),
	}
	e.ledger = memo.New(e.db, opts.FailureThreshold)
	e.deps = ports.ObserverDeps{
		Options:  opts,
		Registry: e.reg,
		Store:    e.db,
		Ledger:   e.ledger,
		Tracer:   telemetry.NewNoOpTracer(),
		Metrics:  e.metrics,
		Logger:   log,
		RunID:    "run-test",
	}
	return e
}

// share marks instructions as shared by touching a private address from two threads.
func (e *env) share(insts ...domain.Inst) {
	for n, inst := range insts {
		addr := 0xf0000000 + uint64(n)*64
		e.reg.RecordAccess(inst, 100, addr, 8)
		e.reg.RecordAccess(inst, 101, addr, 8)
	}
}

func acc(tid domain.ThreadID, inst domain.Inst, typ domain.AccessType, addr uint64) domain.Access {
	return domain.Access{Thread: tid, Inst: inst, Type: typ, Addr: addr, Size: 8}
}

func ev(inst domain.Inst, typ domain.AccessType) domain.Event {
	return domain.Event{Inst: inst.ID, Type: typ}
}

func start(t *testing.T, obs *observer.Observer, e *env, tids ...domain.ThreadID) {
	t.Helper()
	require.NoError(t, obs.Setup(e.deps))
	for _, tid := range tids {
		obs.OnThreadStart(tid)
	}
}

func TestObserver_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "baseline", observer.NewBaseline().Name())
	assert.Equal(t, "heuristic", observer.NewHeuristic().Name())
}

func TestObserver_SetupTwice(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	obs := observer.NewBaseline()
	require.NoError(t, obs.Setup(e.deps))

	err := obs.Setup(e.deps)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSetupOrder.Error())
}

func TestObserver_IgnoresUnsharedInstructions(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	obs := observer.NewBaseline()
	start(t, obs, e, 1, 2)

	ctx := context.Background()
	obs.OnAccess(ctx, acc(1, i1, domain.AccessWrite, addrX))
	obs.OnAccess(ctx, acc(2, i2, domain.AccessRead, addrX))

	assert.Zero(t, e.db.Len())
	st, ok := obs.ThreadState(1)
	require.True(t, ok)
	assert.Equal(t, observer.StateIdle, st)
}

func TestObserver_Idiom1(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	e.share(i1, i2)
	obs := observer.NewBaseline()
	start(t, obs, e, 1, 2)

	ctx := context.Background()
	obs.OnAccess(ctx, acc(1, i1, domain.AccessWrite, addrX))
	obs.OnAccess(ctx, acc(2, i2, domain.AccessRead, addrX+4))

	observed := domain.MustKey(domain.Idiom1, ev(i1, domain.AccessWrite), ev(i2, domain.AccessRead))
	predicted := domain.MustKey(domain.Idiom1, ev(i2, domain.AccessRead), ev(i1, domain.AccessWrite))

	c, ok := e.db.Lookup(observed)
	require.True(t, ok)
	assert.Equal(t, "run-test", c.Discovery.RunID)
	assert.Equal(t, domain.OutcomeExposed, e.ledger.OutcomeOf(observed))

	_, ok = e.db.Lookup(predicted)
	require.True(t, ok)
	assert.Equal(t, domain.OutcomeUnknown, e.ledger.OutcomeOf(predicted))
	assert.Equal(t, 1, obs.Pending())
	assert.Equal(t, 2, e.db.Len())

	st, _ := obs.ThreadState(2)
	assert.Equal(t, observer.StateTracking, st)
}

func TestObserver_ReadsDoNotConflict(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	e.share(i1, i2)
	obs := observer.NewBaseline()
	start(t, obs, e, 1, 2)

	ctx := context.Background()
	obs.OnAccess(ctx, acc(1, i1, domain.AccessRead, addrX))
	obs.OnAccess(ctx, acc(2, i2, domain.AccessRead, addrX))
	obs.OnAccess(ctx, acc(2, i2, domain.AccessWrite, addrX+64))

	assert.Zero(t, e.db.Len())
}

func TestObserver_UnlockLock(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	e.share(i1, i2)
	obs := observer.NewBaseline()
	start(t, obs, e, 1, 2)

	ctx := context.Background()
	obs.OnAccess(ctx, acc(1, i1, domain.AccessUnlock, addrX))
	obs.OnAccess(ctx, acc(2, i2, domain.AccessLock, addrX))

	observed := domain.MustKey(domain.Idiom1, ev(i1, domain.AccessUnlock), ev(i2, domain.AccessLock))
	assert.Equal(t, domain.OutcomeExposed, e.ledger.OutcomeOf(observed))
	assert.Equal(t, 1, e.db.Len())
	assert.Zero(t, obs.Pending())
}

func TestObserver_Idiom2(t *testing.T) {
	t.Parallel()

	observed := domain.MustKey(domain.Idiom2,
		ev(i1, domain.AccessRead), ev(i2, domain.AccessWrite), ev(i3, domain.AccessRead))

	run := func(t *testing.T, complexIdioms bool) *env {
		t.Helper()
		opts := domain.DefaultOptions()
		opts.ComplexIdioms = complexIdioms
		e := newEnv(t, opts)
		e.share(i1, i2, i3)
		obs := observer.NewBaseline()
		start(t, obs, e, 1, 2)

		ctx := context.Background()
		obs.OnAccess(ctx, acc(1, i1, domain.AccessRead, addrX))
		obs.OnAccess(ctx, acc(2, i2, domain.AccessWrite, addrX))
		obs.OnAccess(ctx, acc(1, i3, domain.AccessRead, addrX))
		return e
	}

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		e := run(t, true)
		_, ok := e.db.Lookup(observed)
		require.True(t, ok)
		assert.Equal(t, domain.OutcomeExposed, e.ledger.OutcomeOf(observed))
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		e := run(t, false)
		_, ok := e.db.Lookup(observed)
		assert.False(t, ok)
	})
}

func TestObserver_PredictedIdiom2(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	e.share(i1, i2, i3)
	obs := observer.NewBaseline()
	start(t, obs, e, 1, 2)

	ctx := context.Background()
	// The remote write happens before the local pair, so the unserializable
	// order is only predicted.
	obs.OnAccess(ctx, acc(2, i2, domain.AccessWrite, addrX))
	obs.OnAccess(ctx, acc(1, i1, domain.AccessRead, addrX))
	// With no other thread left the immediate attempt on the new target is abandoned.
	obs.OnThreadExit(2)
	obs.OnAccess(ctx, acc(1, i3, domain.AccessRead, addrX))

	predicted := domain.MustKey(domain.Idiom2,
		ev(i1, domain.AccessRead), ev(i2, domain.AccessWrite), ev(i3, domain.AccessRead))
	_, ok := e.db.Lookup(predicted)
	require.True(t, ok)
	entry, ok := e.ledger.Entry(predicted)
	require.True(t, ok)
	assert.Equal(t, domain.MemoEntry{Key: predicted, Outcome: domain.OutcomeUnknown, Attempts: 1, Failures: 1}, entry)
}

func TestObserver_WindowSize(t *testing.T) {
	t.Parallel()

	opts := domain.DefaultOptions()
	opts.WindowSize = 1
	e := newEnv(t, opts)
	e.share(i1, i2, i4)
	obs := observer.NewBaseline()
	start(t, obs, e, 1, 2)

	ctx := context.Background()
	obs.OnAccess(ctx, acc(1, i1, domain.AccessWrite, addrX))
	obs.OnAccess(ctx, acc(1, i4, domain.AccessWrite, addrX+0x100))
	obs.OnAccess(ctx, acc(2, i2, domain.AccessRead, addrX))

	assert.Zero(t, e.db.Len())
}

func TestObserver_WindowAge(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, obs *observer.Observer) int {
		t.Helper()
		opts := domain.DefaultOptions()
		opts.WindowAge = 2
		e := newEnv(t, opts)
		e.share(i1, i2, i4)
		start(t, obs, e, 1, 2)

		ctx := context.Background()
		obs.OnAccess(ctx, acc(1, i1, domain.AccessWrite, addrX))
		obs.OnAccess(ctx, acc(1, i4, domain.AccessWrite, addrX+0x100))
		obs.OnAccess(ctx, acc(1, i4, domain.AccessWrite, addrX+0x200))
		obs.OnAccess(ctx, acc(2, i2, domain.AccessRead, addrX))
		return e.db.Len()
	}

	assert.Equal(t, 2, run(t, observer.NewBaseline()))
	assert.Zero(t, run(t, observer.NewHeuristic()))
}

func TestObserver_SetupRegistersUnknownCandidates(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	unknown := domain.MustKey(domain.Idiom1, ev(i1, domain.AccessWrite), ev(i2, domain.AccessRead))
	exposed := domain.MustKey(domain.Idiom1, ev(i2, domain.AccessWrite), ev(i3, domain.AccessRead))
	failed := domain.MustKey(domain.Idiom1, ev(i3, domain.AccessWrite), ev(i4, domain.AccessRead))
	for _, k := range []domain.CandidateKey{unknown, exposed, failed} {
		e.db.InsertIfAbsent(k, domain.Discovery{})
	}
	e.ledger.RecordObserved(exposed)
	e.ledger.SetFailureThreshold(1)
	e.ledger.RecordAttempt(failed, false)

	obs := observer.NewHeuristic()
	require.NoError(t, obs.Setup(e.deps))
	assert.Equal(t, 1, obs.Pending())
}

func TestObserver_Teardown(t *testing.T) {
	t.Parallel()

	e := newEnv(t, domain.DefaultOptions())
	e.share(i1, i2)
	obs := observer.NewBaseline()
	start(t, obs, e, 1, 2)

	ctx := context.Background()
	obs.OnAccess(ctx, acc(1, i1, domain.AccessWrite, addrX))
	obs.OnThreadExit(1)
	st, _ := obs.ThreadState(1)
	assert.Equal(t, observer.StateExited, st)

	require.NoError(t, obs.Teardown())
	require.NoError(t, obs.Teardown())

	_, ok := obs.ThreadState(1)
	assert.False(t, ok)

	// Events after teardown are ignored.
	obs.OnAccess(ctx, acc(2, i2, domain.AccessRead, addrX))
	assert.Zero(t, e.db.Len())
}
