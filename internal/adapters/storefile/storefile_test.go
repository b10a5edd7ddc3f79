package storefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iroot/internal/adapters/storefile"
	"go.trai.ch/iroot/internal/core/domain"
)

type envelope struct {
	Version int               `json:"version"`
	Names   map[string]string `json:"names"`
	Count   int               `json:"count"`
}

func (e *envelope) FormatVersion() int { return e.Version }

func TestWriteRead_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "store.db")
	in := &envelope{
		Version: domain.StoreFormatVersion,
		Names:   map[string]string{"b": "2", "a": "1"},
		Count:   7,
	}
	require.NoError(t, storefile.Write(path, in))

	var out envelope
	found, err := storefile.Read(path, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, *in, out)
}

func TestWrite_Canonical(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.db")
	require.NoError(t, storefile.Write(path, &envelope{
		Version: domain.StoreFormatVersion,
		Names:   map[string]string{"z": "last", "a": "first"},
	}))

	//nolint:gosec // Test file with controlled path
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"count":0,"names":{"a":"first","z":"last"},"version":1}`+"\n", string(data))
}

func TestRead_MissingAndEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var out envelope
	found, err := storefile.Read(filepath.Join(dir, "missing.db"), &out)
	require.NoError(t, err)
	assert.False(t, found)

	empty := filepath.Join(dir, "empty.db")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	found, err = storefile.Read(empty, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRead_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corrupt.db")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json"), 0o600))

	var out envelope
	_, err := storefile.Read(path, &out)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreDecodeFailed.Error())
}

func TestRead_VersionMismatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "future.db")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99}`), 0o600))

	var out envelope
	_, err := storefile.Read(path, &out)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreVersionMismatch.Error())
}
