// Package config loads and validates the options file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader on top of a YAML file.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Logger:   log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the options file at path over domain.DefaultOptions. Keys absent
// from the file keep their default. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Options, error) {
	opts := domain.DefaultOptions()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Debug("no options file at " + path + ", using defaults")
		return opts, nil
	}
	if err != nil {
		return opts, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := l.Validate(opts); err != nil {
		return opts, zerr.With(err, "path", path)
	}
	return opts, nil
}

// Validate checks field constraints of opts.
func (l *Loader) Validate(opts domain.Options) error {
	if err := l.validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidOptions.Error()), "fields", strings.Join(fields, ", "))
		}
		return zerr.Wrap(err, domain.ErrInvalidOptions.Error())
	}
	return nil
}
