package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iroot/internal/core/domain"
)

func TestConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b domain.AccessType
		want bool
	}{
		{domain.AccessRead, domain.AccessRead, false},
		{domain.AccessRead, domain.AccessWrite, true},
		{domain.AccessWrite, domain.AccessRead, true},
		{domain.AccessWrite, domain.AccessWrite, true},
		{domain.AccessUnlock, domain.AccessLock, true},
		{domain.AccessLock, domain.AccessUnlock, false},
		{domain.AccessLock, domain.AccessLock, false},
		{domain.AccessUnlock, domain.AccessWrite, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Conflicts(tt.a, tt.b), "%s then %s", tt.a, tt.b)
	}
}

func TestRangesOverlap(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.RangesOverlap(0x100, 8, 0x104, 4))
	assert.True(t, domain.RangesOverlap(0x100, 0, 0x100, 0))
	assert.False(t, domain.RangesOverlap(0x100, 4, 0x104, 4))
	assert.False(t, domain.RangesOverlap(0x108, 8, 0x100, 8))
}

func TestUnserializable(t *testing.T) {
	t.Parallel()

	r, w := domain.AccessRead, domain.AccessWrite
	assert.True(t, domain.Unserializable(r, w, r))
	assert.True(t, domain.Unserializable(w, w, r))
	assert.True(t, domain.Unserializable(r, w, w))
	assert.True(t, domain.Unserializable(w, r, w))

	assert.False(t, domain.Unserializable(r, r, r))
	assert.False(t, domain.Unserializable(w, w, w))
	assert.False(t, domain.Unserializable(r, r, w))
	assert.False(t, domain.Unserializable(w, r, r))
	assert.False(t, domain.Unserializable(domain.AccessLock, w, r))
}

func TestParseAccessType(t *testing.T) {
	t.Parallel()

	typ, err := domain.ParseAccessType("WRITE")
	require.NoError(t, err)
	assert.Equal(t, domain.AccessWrite, typ)

	_, err = domain.ParseAccessType("fetch")
	require.ErrorIs(t, err, domain.ErrUnknownAccessType)
}

func TestHashInst_Stable(t *testing.T) {
	t.Parallel()

	a := domain.NewInst("/usr/bin/app", 0x4005d0)
	b := domain.NewInst("/usr/bin/app", 0x4005d0)
	c := domain.NewInst("/usr/bin/other", 0x4005d0)

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)

	text, err := a.ID.MarshalText()
	require.NoError(t, err)
	var back domain.InstID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, a.ID, back)
}
