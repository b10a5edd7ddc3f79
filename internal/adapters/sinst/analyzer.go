package sinst

import (
	"sync/atomic"

	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
)

// Analyzer feeds memory accesses into a registry when enabled. It sees every
// access the controller does not filter, independently of the shared filter
// applied to observers.
type Analyzer struct {
	registry ports.SharedInstRegistry
	enabled  atomic.Bool
	fed      atomic.Uint64
}

// NewAnalyzer creates a disabled analyzer over registry.
func NewAnalyzer(registry ports.SharedInstRegistry) *Analyzer {
	return &Analyzer{registry: registry}
}

// SetEnabled turns recording on or off.
func (a *Analyzer) SetEnabled(on bool) {
	a.enabled.Store(on)
}

// Enabled reports whether accesses are recorded.
func (a *Analyzer) Enabled() bool {
	return a.enabled.Load()
}

// OnAccess records a memory access. Synchronization operations are ignored.
func (a *Analyzer) OnAccess(acc domain.Access) {
	if !a.enabled.Load() || !acc.Type.IsMem() {
		return
	}
	a.registry.RecordAccess(acc.Inst, acc.Thread, acc.Addr, acc.Size)
	a.fed.Add(1)
}

// Accesses returns how many accesses were recorded.
func (a *Analyzer) Accesses() uint64 {
	return a.fed.Load()
}
