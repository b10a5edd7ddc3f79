package ports

import "go.trai.ch/iroot/internal/core/domain"

// TraceLoader reads a recorded execution trace.
//
//go:generate go run go.uber.org/mock/mockgen -source=trace.go -destination=mocks/mock_trace.go -package=mocks
type TraceLoader interface {
	Load(path string) (*domain.Trace, error)
}
