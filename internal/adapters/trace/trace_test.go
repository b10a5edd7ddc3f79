package trace_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/iroot/internal/adapters/trace"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports/mocks"
)

const sample = `
images:
  app: /usr/bin/app
threads:
  - id: 1
    events:
      - app+0x40 write 0x1000 4
      - app+0x44
  - id: 2
    events:
      - libc.so.6+0x10 read 0x1000
      - app+0x80 LOCK 0x2000 8
`

func TestParse(t *testing.T) {
	t.Parallel()

	tr, err := trace.Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, tr.Threads, 2)

	assert.Equal(t, domain.ThreadTrace{
		ID: 1,
		Events: []domain.TraceEvent{
			{Image: "/usr/bin/app", Offset: 0x40, Type: domain.AccessWrite, Addr: 0x1000, Size: 4},
			{Image: "/usr/bin/app", Offset: 0x44},
		},
	}, tr.Threads[0])
	assert.Equal(t, domain.ThreadTrace{
		ID: 2,
		Events: []domain.TraceEvent{
			{Image: "libc.so.6", Offset: 0x10, Type: domain.AccessRead, Addr: 0x1000, Size: 1},
			{Image: "/usr/bin/app", Offset: 0x80, Type: domain.AccessLock, Addr: 0x2000, Size: 8},
		},
	}, tr.Threads[1])
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "yaml", doc: "threads: [", want: domain.ErrTraceParseFailed},
		{name: "missing offset", doc: "threads: [{id: 1, events: [app]}]", want: domain.ErrTraceParseFailed},
		{name: "bad offset", doc: "threads: [{id: 1, events: [app+zz]}]", want: domain.ErrTraceParseFailed},
		{name: "type without addr", doc: "threads: [{id: 1, events: ['app+1 read']}]", want: domain.ErrTraceParseFailed},
		{name: "unknown type", doc: "threads: [{id: 1, events: ['app+1 poke 0x10']}]", want: domain.ErrUnknownAccessType},
		{name: "zero size", doc: "threads: [{id: 1, events: ['app+1 read 0x10 0']}]", want: domain.ErrTraceParseFailed},
		{name: "duplicate thread", doc: "threads: [{id: 1}, {id: 1}]", want: domain.ErrTraceParseFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := trace.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "trace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	tr, err := trace.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Len(t, tr.Threads, 2)

	_, err = trace.NewLoader().Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTraceReadFailed.Error())
}

func TestReplayer_Replay(t *testing.T) {
	t.Parallel()

	tr, err := trace.Parse([]byte(sample))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	write := tr.Threads[0].Events[0].Access(1)
	lock := tr.Threads[1].Events[1].Access(2)
	read := tr.Threads[1].Events[0].Access(2)

	gomock.InOrder(
		sink.EXPECT().OnThreadStart(gomock.Any(), domain.ThreadID(1)),
		sink.EXPECT().OnInstruction(domain.ThreadID(1), "/usr/bin/app"),
		sink.EXPECT().OnAccess(gomock.Any(), write),
		sink.EXPECT().OnInstruction(domain.ThreadID(1), "/usr/bin/app"),
		sink.EXPECT().OnThreadExit(gomock.Any(), domain.ThreadID(1)),
	)
	gomock.InOrder(
		sink.EXPECT().OnThreadStart(gomock.Any(), domain.ThreadID(2)),
		sink.EXPECT().OnInstruction(domain.ThreadID(2), "libc.so.6"),
		sink.EXPECT().OnAccess(gomock.Any(), read),
		sink.EXPECT().OnInstruction(domain.ThreadID(2), "/usr/bin/app"),
		sink.EXPECT().OnAccess(gomock.Any(), lock),
		sink.EXPECT().OnThreadExit(gomock.Any(), domain.ThreadID(2)),
	)

	require.NoError(t, trace.NewReplayer(sink).Replay(context.Background(), tr))
}

type countingSink struct {
	mu     sync.Mutex
	exits  int
	cancel context.CancelFunc
}

func (s *countingSink) OnThreadStart(_ context.Context, _ domain.ThreadID) {}

func (s *countingSink) OnThreadExit(_ context.Context, _ domain.ThreadID) {
	s.mu.Lock()
	s.exits++
	s.mu.Unlock()
}

func (s *countingSink) OnInstruction(_ domain.ThreadID, _ string) {}

func (s *countingSink) OnAccess(_ context.Context, _ domain.Access) {
	s.cancel()
}

func TestReplayer_Cancelled(t *testing.T) {
	t.Parallel()

	tr, err := trace.Parse([]byte(sample))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sink := &countingSink{cancel: cancel}

	err = trace.NewReplayer(sink).Replay(ctx, tr)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, domain.ErrReplayFailed.Error())
	assert.Equal(t, 2, sink.exits)
}
