package telemetry

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Metrics)(nil)

// Metrics collects observer counters in a private prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	instructions  prometheus.Counter
	filtered      prometheus.Counter
	discovered    *prometheus.CounterVec
	observed      *prometheus.CounterVec
	skipped       *prometheus.CounterVec
	perturbations *prometheus.CounterVec
	delay         *prometheus.HistogramVec
}

// NewMetrics creates the counters and registers them.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		instructions: factory.NewCounter(prometheus.CounterOpts{
			Name: "iroot_instructions_total",
			Help: "Instructions executed outside ignored images",
		}),
		filtered: factory.NewCounter(prometheus.CounterOpts{
			Name: "iroot_accesses_filtered_total",
			Help: "Memory accesses dropped by the image filter",
		}),
		discovered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iroot_candidates_discovered_total",
			Help: "New candidates inserted into the candidate store by idiom",
		}, []string{"idiom"}),
		observed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iroot_interleavings_observed_total",
			Help: "Interleavings that occurred without perturbation by idiom",
		}, []string{"idiom"}),
		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iroot_candidates_skipped_total",
			Help: "Candidates skipped because their outcome is already resolved",
		}, []string{"outcome"}),
		perturbations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iroot_perturbations_total",
			Help: "Finished perturbation attempts by result",
		}, []string{"result"}),
		delay: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iroot_perturbation_delay_seconds",
			Help:    "Time a thread spent delayed per perturbation attempt",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"result"}),
	}
}

// Registry returns the registry the counters are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// InstructionsCounted adds n executed instructions.
func (m *Metrics) InstructionsCounted(n uint64) {
	m.instructions.Add(float64(n))
}

// AccessFiltered counts one access dropped by the image filter.
func (m *Metrics) AccessFiltered() {
	m.filtered.Inc()
}

// CandidateDiscovered counts a new candidate.
func (m *Metrics) CandidateDiscovered(kind domain.IdiomKind) {
	m.discovered.WithLabelValues(kind.String()).Inc()
}

// InterleavingObserved counts an interleaving seen without perturbation.
func (m *Metrics) InterleavingObserved(kind domain.IdiomKind) {
	m.observed.WithLabelValues(kind.String()).Inc()
}

// CandidateSkipped counts a candidate skipped because of its memoized outcome.
func (m *Metrics) CandidateSkipped(outcome domain.Outcome) {
	m.skipped.WithLabelValues(outcome.String()).Inc()
}

// PerturbationFinished counts a perturbation attempt and its delay.
func (m *Metrics) PerturbationFinished(result ports.PerturbResult, delay time.Duration) {
	m.perturbations.WithLabelValues(string(result)).Inc()
	m.delay.WithLabelValues(string(result)).Observe(delay.Seconds())
}

// Export writes the metrics in the text exposition format to path.
func (m *Metrics) Export(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	return nil
}
