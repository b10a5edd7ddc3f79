// Package storefile reads and writes the persisted stores as canonical JSON.
package storefile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gowebpki/jcs"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/zerr"
)

// Versioned is implemented by every store file envelope.
type Versioned interface {
	FormatVersion() int
}

// Read decodes the file at path into v. It reports false, without error, when
// the file does not exist or is empty, which callers treat as an empty store.
func Read(path string, v Versioned) (bool, error) {
	//nolint:gosec // Path is provided by trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreDecodeFailed.Error()), "path", path)
	}

	if got := v.FormatVersion(); got != domain.StoreFormatVersion {
		err := zerr.With(domain.ErrStoreVersionMismatch, "path", path)
		return false, zerr.With(err, "version", got)
	}

	return true, nil
}

// Write encodes v as RFC 8785 canonical JSON and replaces the file at path.
// The file is written to a temporary sibling first and renamed into place.
func Write(path string, v Versioned) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreEncodeFailed.Error()), "path", path)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreEncodeFailed.Error()), "path", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(canonical, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	return nil
}
