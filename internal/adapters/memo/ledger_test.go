package memo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iroot/internal/adapters/irootdb"
	"go.trai.ch/iroot/internal/adapters/memo"
	"go.trai.ch/iroot/internal/core/domain"
)

func key(off uint64) domain.CandidateKey {
	return domain.MustKey(domain.Idiom1,
		domain.Event{Inst: domain.HashInst("app", off), Type: domain.AccessWrite},
		domain.Event{Inst: domain.HashInst("app", off+1), Type: domain.AccessRead},
	)
}

func setup(t *testing.T, threshold uint32, keys ...domain.CandidateKey) (*irootdb.DB, *memo.Ledger) {
	t.Helper()
	db := irootdb.New()
	for _, k := range keys {
		_, _ = db.InsertIfAbsent(k, domain.Discovery{})
	}
	return db, memo.New(db, threshold)
}

func TestLedger_UnseenIsUnknown(t *testing.T) {
	t.Parallel()

	_, l := setup(t, 3)
	assert.Equal(t, domain.OutcomeUnknown, l.OutcomeOf(key(1)))
	_, ok := l.Entry(key(1))
	assert.False(t, ok)
}

func TestLedger_FailureThreshold(t *testing.T) {
	t.Parallel()

	k := key(1)
	_, l := setup(t, 3, k)

	assert.Equal(t, domain.OutcomeUnknown, l.RecordAttempt(k, false))
	assert.Equal(t, domain.OutcomeUnknown, l.RecordAttempt(k, false))
	assert.Equal(t, domain.OutcomeFailedRepeatedly, l.RecordAttempt(k, false))

	// A later success does not revive a candidate that was given up on.
	assert.Equal(t, domain.OutcomeFailedRepeatedly, l.RecordAttempt(k, true))
	assert.Equal(t, domain.OutcomeFailedRepeatedly, l.RecordObserved(k))

	e, ok := l.Entry(k)
	require.True(t, ok)
	assert.Equal(t, uint32(4), e.Attempts)
	assert.Equal(t, uint32(3), e.Failures)
}

func TestLedger_ExposedIsFinal(t *testing.T) {
	t.Parallel()

	k := key(1)
	_, l := setup(t, 1, k)

	assert.Equal(t, domain.OutcomeExposed, l.RecordAttempt(k, true))
	assert.Equal(t, domain.OutcomeExposed, l.RecordAttempt(k, false))
	assert.Equal(t, domain.OutcomeExposed, l.OutcomeOf(k))
}

func TestLedger_ObservedExposesWithoutAttempt(t *testing.T) {
	t.Parallel()

	k := key(1)
	_, l := setup(t, 3, k)

	assert.Equal(t, domain.OutcomeExposed, l.RecordObserved(k))
	e, ok := l.Entry(k)
	require.True(t, ok)
	assert.Zero(t, e.Attempts)
}

func TestLedger_SetFailureThreshold(t *testing.T) {
	t.Parallel()

	k := key(1)
	_, l := setup(t, 3, k)
	l.SetFailureThreshold(1)

	assert.Equal(t, domain.OutcomeFailedRepeatedly, l.RecordAttempt(k, false))
}

func TestLedger_Refine(t *testing.T) {
	t.Parallel()

	failed, exposed, unknown := key(1), key(10), key(20)

	t.Run("prunes failed candidates", func(t *testing.T) {
		t.Parallel()
		db, l := setup(t, 1, failed, exposed, unknown)
		l.RecordAttempt(failed, false)
		l.RecordObserved(exposed)

		assert.Equal(t, 1, l.Refine(true))

		_, ok := db.Lookup(failed)
		assert.False(t, ok)
		_, ok = l.Entry(failed)
		assert.False(t, ok)
		assert.Equal(t, domain.OutcomeExposed, l.OutcomeOf(exposed))
		assert.Equal(t, 2, db.Len())
	})

	t.Run("keeps failed candidates when disabled", func(t *testing.T) {
		t.Parallel()
		db, l := setup(t, 1, failed, exposed)
		l.RecordAttempt(failed, false)

		assert.Zero(t, l.Refine(false))
		_, ok := db.Lookup(failed)
		assert.True(t, ok)
		assert.Equal(t, domain.OutcomeFailedRepeatedly, l.OutcomeOf(failed))
	})

	t.Run("drops orphaned entries", func(t *testing.T) {
		t.Parallel()
		db, l := setup(t, 3, exposed)
		l.RecordObserved(exposed)
		db.Remove(exposed)

		assert.Zero(t, l.Refine(true))
		_, ok := l.Entry(exposed)
		assert.False(t, ok)
	})
}

func TestLedger_Summary(t *testing.T) {
	t.Parallel()

	a, b, c := key(1), key(10), key(20)
	_, l := setup(t, 2, a, b, c)
	l.RecordAttempt(a, true)
	l.RecordAttempt(b, false)
	l.RecordAttempt(b, false)

	s := l.Summary()
	assert.Equal(t, 1, s.Exposed)
	assert.Equal(t, 1, s.FailedRepeatedly)
	assert.Equal(t, 1, s.Unknown)
	assert.Equal(t, uint64(3), s.Attempts)
	assert.Equal(t, 3, s.Total())
}

func TestLedger_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, domain.DefaultIRootDB)
	memoPath := filepath.Join(dir, domain.DefaultMemoDB)

	a, b := key(1), key(10)
	db, l := setup(t, 3, a, b)
	l.RecordObserved(a)
	l.RecordAttempt(b, false)
	require.NoError(t, db.Save(dbPath))
	require.NoError(t, l.Save(memoPath))

	db2 := irootdb.New()
	require.NoError(t, db2.Load(dbPath))
	l2 := memo.New(db2, 3)
	require.NoError(t, l2.Load(memoPath))

	assert.Equal(t, domain.OutcomeExposed, l2.OutcomeOf(a))
	e, ok := l2.Entry(b)
	require.True(t, ok)
	assert.Equal(t, domain.MemoEntry{Key: b, Outcome: domain.OutcomeUnknown, Attempts: 1, Failures: 1}, e)

	// Failures keep accumulating across runs.
	l2.RecordAttempt(b, false)
	assert.Equal(t, domain.OutcomeFailedRepeatedly, l2.RecordAttempt(b, false))
}

func TestLedger_LoadDropsOrphans(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	memoPath := filepath.Join(dir, domain.DefaultMemoDB)

	a, b := key(1), key(10)
	_, l := setup(t, 3, a, b)
	l.RecordObserved(a)
	l.RecordObserved(b)
	require.NoError(t, l.Save(memoPath))

	_, l2 := setup(t, 3, a)
	require.NoError(t, l2.Load(memoPath))

	assert.Equal(t, domain.OutcomeExposed, l2.OutcomeOf(a))
	_, ok := l2.Entry(b)
	assert.False(t, ok)
}

func TestLedger_FailedLoadKeepsContent(t *testing.T) {
	t.Parallel()

	k := key(1)
	_, l := setup(t, 3, k)
	l.RecordObserved(k)

	path := filepath.Join(t.TempDir(), domain.DefaultMemoDB)
	w := domain.HashInst("app", 1).String()
	r := domain.HashInst("app", 2).String()
	body := `{"entries":[` +
		`{"attempts":3,"events":[{"inst":"` + w + `","type":"write"},{"inst":"` + r + `","type":"read"}],` +
		`"failures":3,"kind":"idiom1","outcome":"failed"},` +
		`{"attempts":0,"events":[{"inst":"` + w + `","type":"write"}],"failures":0,"kind":"idiom1","outcome":"unknown"}` +
		`],"version":1}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	err := l.Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidCandidate.Error())
	assert.Equal(t, domain.OutcomeExposed, l.OutcomeOf(k))
}

func TestLedger_LoadMissingFile(t *testing.T) {
	t.Parallel()

	k := key(1)
	_, l := setup(t, 3, k)
	l.RecordObserved(k)

	require.NoError(t, l.Load(filepath.Join(t.TempDir(), "nope.db")))
	assert.Equal(t, domain.OutcomeUnknown, l.OutcomeOf(k))
}
