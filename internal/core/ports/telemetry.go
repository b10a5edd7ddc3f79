package ports

import (
	"context"
	"time"

	"go.trai.ch/iroot/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// PerturbResult is how a perturbation attempt ended.
type PerturbResult string

const (
	// PerturbExposed means the target ordering was realized.
	PerturbExposed PerturbResult = "exposed"
	// PerturbTimeout means the bounded delay expired.
	PerturbTimeout PerturbResult = "timeout"
	// PerturbAbandoned means the ordering became impossible or the run was cancelled.
	PerturbAbandoned PerturbResult = "abandoned"
)

// Metrics collects counters about the observation engine.
type Metrics interface {
	InstructionsCounted(n uint64)
	AccessFiltered()
	CandidateDiscovered(kind domain.IdiomKind)
	InterleavingObserved(kind domain.IdiomKind)
	CandidateSkipped(outcome domain.Outcome)
	PerturbationFinished(result PerturbResult, delay time.Duration)
	// Export writes the collected metrics as a textfile at path.
	Export(path string) error
}
