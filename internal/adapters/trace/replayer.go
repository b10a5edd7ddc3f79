package trace

import (
	"context"
	"runtime"

	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Replayer drives an EventSink with a trace, one goroutine per thread, so the
// sink sees the callbacks concurrently the way live instrumentation would.
type Replayer struct {
	sink ports.EventSink
	// Yield hands the processor to other threads between events.
	Yield bool
}

// NewReplayer creates a replayer feeding sink.
func NewReplayer(sink ports.EventSink) *Replayer {
	return &Replayer{sink: sink, Yield: true}
}

// Replay runs every thread of tr to completion or until ctx is done.
func (r *Replayer) Replay(ctx context.Context, tr *domain.Trace) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, th := range tr.Threads {
		g.Go(func() error {
			return r.runThread(ctx, th)
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, domain.ErrReplayFailed.Error())
	}
	return nil
}

func (r *Replayer) runThread(ctx context.Context, th domain.ThreadTrace) error {
	r.sink.OnThreadStart(ctx, th.ID)
	defer r.sink.OnThreadExit(ctx, th.ID)

	for _, ev := range th.Events {
		if err := ctx.Err(); err != nil {
			return zerr.With(err, "thread", uint64(th.ID))
		}
		r.sink.OnInstruction(th.ID, ev.Image)
		if ev.Type != 0 {
			r.sink.OnAccess(ctx, ev.Access(th.ID))
		}
		if r.Yield {
			runtime.Gosched()
		}
	}
	return nil
}
