package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/iroot/internal/adapters/config"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports/mocks"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := newLoader(t).Load(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOptions(), opts)
}

func TestLoader_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
ignore_lib: true
memo_failed: false
iroot_out: out/iroot.db
enable_observer_new: true
max_delay: 20ms
failure_threshold: 5
perturb_rate: 2.5
`)
	opts, err := newLoader(t).Load(path)
	require.NoError(t, err)

	want := domain.DefaultOptions()
	want.IgnoreLib = true
	want.MemoFailed = false
	want.IRootOut = "out/iroot.db"
	want.EnableObserverNew = true
	want.MaxDelay = 20 * time.Millisecond
	want.FailureThreshold = 5
	want.PerturbRate = 2.5
	assert.Equal(t, want, opts)
}

func TestLoader_EmptyFile(t *testing.T) {
	t.Parallel()

	opts, err := newLoader(t).Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOptions(), opts)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "malformed yaml", content: "window_size: [", want: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "window: 3", want: domain.ErrConfigParseFailed},
		{name: "bad duration", content: "max_delay: soon", want: domain.ErrConfigParseFailed},
		{name: "zero window", content: "window_size: 0", want: domain.ErrInvalidOptions},
		{name: "empty store path", content: `memo_in: ""`, want: domain.ErrInvalidOptions},
		{name: "zero threshold", content: "failure_threshold: 0", want: domain.ErrInvalidOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newLoader(t).Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestLoader_Validate(t *testing.T) {
	t.Parallel()

	l := newLoader(t)
	require.NoError(t, l.Validate(domain.DefaultOptions()))

	opts := domain.DefaultOptions()
	opts.MaxDelay = 0
	err := l.Validate(opts)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidOptions.Error())
}
