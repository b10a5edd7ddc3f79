package ports

import (
	"context"

	"go.trai.ch/iroot/internal/core/domain"
)

// ObserverDeps are the collaborators an observer is wired to at setup.
type ObserverDeps struct {
	Options  domain.Options
	Registry SharedInstRegistry
	Store    CandidateStore
	Ledger   MemoLedger
	Tracer   Tracer
	Metrics  Metrics
	Logger   Logger
	RunID    string
}

// Observer watches a live execution, discovers iRoot candidates and tries to
// expose the ones still unknown.
//
//go:generate go run go.uber.org/mock/mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks
type Observer interface {
	// Name identifies the strategy in logs.
	Name() string
	// Setup wires the observer to its stores. It is called once before any event.
	Setup(deps ObserverDeps) error
	// OnThreadStart is called when an application thread starts.
	OnThreadStart(tid domain.ThreadID)
	// OnThreadExit is called when an application thread exits.
	OnThreadExit(tid domain.ThreadID)
	// OnAccess is called inline, before the access executes, on the accessing thread.
	OnAccess(ctx context.Context, acc domain.Access)
	// Teardown is called once after every application thread has finished.
	Teardown() error
}

// EventSink receives instrumentation callbacks from the execution driver.
type EventSink interface {
	OnThreadStart(ctx context.Context, tid domain.ThreadID)
	OnThreadExit(ctx context.Context, tid domain.ThreadID)
	OnInstruction(tid domain.ThreadID, image string)
	OnAccess(ctx context.Context, acc domain.Access)
}
