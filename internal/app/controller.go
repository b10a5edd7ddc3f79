package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.trai.ch/iroot/internal/adapters/sinst" //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/iroot/internal/engine/observer"
	"go.trai.ch/zerr"
)

var _ ports.EventSink = (*Controller)(nil)

// Controller owns the lifecycle of one observed execution: it registers the
// options, loads and saves the stores, filters events by image and dispatches
// them to the shared instruction analyzer and the selected observer.
type Controller struct {
	loader     ports.ConfigLoader
	classifier ports.ImageClassifier
	registry   ports.SharedInstRegistry
	store      ports.CandidateStore
	ledger     ports.MemoLedger
	tracer     ports.Tracer
	metrics    ports.Metrics
	logger     ports.Logger

	flags     *pflag.FlagSet
	flagOpts  domain.Options
	analyzer  *sinst.Analyzer
	baseline  *observer.Observer
	heuristic *observer.Observer

	opts     domain.Options
	observer ports.Observer
	runID    string
	ready    bool
	exited   bool
	pruned   int

	instructions atomic.Uint64
}

// ControllerDeps groups the collaborators of a Controller.
type ControllerDeps struct {
	Loader     ports.ConfigLoader
	Classifier ports.ImageClassifier
	Registry   ports.SharedInstRegistry
	Store      ports.CandidateStore
	Ledger     ports.MemoLedger
	Tracer     ports.Tracer
	Metrics    ports.Metrics
	Logger     ports.Logger
}

// NewController creates a Controller. PreSetup and PostSetup must run before
// any event is dispatched.
func NewController(deps ControllerDeps) *Controller {
	return &Controller{
		loader:     deps.Loader,
		classifier: deps.Classifier,
		registry:   deps.Registry,
		store:      deps.Store,
		ledger:     deps.Ledger,
		tracer:     deps.Tracer,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
}

// PreSetup registers every option as a flag on fs and constructs the
// analyzer and both observers.
func (c *Controller) PreSetup(fs *pflag.FlagSet) {
	c.flags = fs
	c.flagOpts = domain.DefaultOptions()
	registerOptionFlags(fs, &c.flagOpts)

	c.analyzer = sinst.NewAnalyzer(c.registry)
	c.baseline = observer.NewBaseline()
	c.heuristic = observer.NewHeuristic()
}

// configure overlays the explicitly set flags onto base and validates the result.
func (c *Controller) configure(base domain.Options) error {
	if c.flags == nil {
		return zerr.With(domain.ErrSetupOrder, "stage", "PostSetup")
	}

	opts := base
	overlayChanged(c.flags, &opts, &c.flagOpts)
	if err := c.loader.Validate(opts); err != nil {
		return err
	}
	if opts.EnableObserver && opts.EnableObserverNew {
		return domain.ErrConflictingObservers
	}

	c.opts = opts
	c.ledger.SetFailureThreshold(opts.FailureThreshold)
	return nil
}

func (c *Controller) loadStores() error {
	if err := c.registry.Load(c.opts.SinstIn); err != nil {
		return zerr.With(err, "store", "shared instructions")
	}
	if err := c.store.Load(c.opts.IRootIn); err != nil {
		return zerr.With(err, "store", "candidates")
	}
	if err := c.ledger.Load(c.opts.MemoIn); err != nil {
		return zerr.With(err, "store", "memo")
	}
	return nil
}

// PostSetup finalizes the options, loads the three stores and wires the
// selected observer. Enabling both observers fails with
// domain.ErrConflictingObservers before anything is loaded.
func (c *Controller) PostSetup(base domain.Options) error {
	if c.ready {
		return zerr.With(domain.ErrSetupOrder, "stage", "PostSetup")
	}
	if err := c.configure(base); err != nil {
		return err
	}
	if err := c.loadStores(); err != nil {
		return err
	}

	c.analyzer.SetEnabled(c.opts.EnableSharedInst)
	c.runID = uuid.NewString()

	switch {
	case c.opts.EnableObserver:
		c.observer = c.baseline
	case c.opts.EnableObserverNew:
		c.observer = c.heuristic
	}
	if c.observer != nil {
		err := c.observer.Setup(ports.ObserverDeps{
			Options:  c.opts,
			Registry: c.registry,
			Store:    c.store,
			Ledger:   c.ledger,
			Tracer:   c.tracer,
			Metrics:  c.metrics,
			Logger:   c.logger,
			RunID:    c.runID,
		})
		if err != nil {
			return err
		}
	}

	c.logger.Debug(fmt.Sprintf("run %s: %d shared instructions, %d candidates, observer %s",
		c.runID, c.registry.Len(), c.store.Len(), c.ObserverName()))
	c.ready = true
	return nil
}

// Options returns the effective options after PostSetup.
func (c *Controller) Options() domain.Options {
	return c.opts
}

// RunID identifies the current run in discovery metadata.
func (c *Controller) RunID() string {
	return c.runID
}

// ObserverName returns the selected observer, or "none".
func (c *Controller) ObserverName() string {
	if c.observer == nil {
		return "none"
	}
	return c.observer.Name()
}

// IgnoreInstCount reports whether instructions of the image are left out of
// the instruction count.
func (c *Controller) IgnoreInstCount(image string) bool {
	img := c.classifier.Classify(image)
	if !img.Valid {
		return false
	}
	return c.opts.IgnoreInstCountPthread && img.Pthread
}

// IgnoreMemAccess reports whether accesses of instructions in the image are
// left out of the analysis.
func (c *Controller) IgnoreMemAccess(image string) bool {
	img := c.classifier.Classify(image)
	switch {
	case !img.Valid, img.Pthread:
		return true
	case c.opts.IgnoreLib && img.CommonLib:
		return true
	default:
		return false
	}
}

// OnThreadStart dispatches a thread start.
func (c *Controller) OnThreadStart(_ context.Context, tid domain.ThreadID) {
	if c.observer != nil {
		c.observer.OnThreadStart(tid)
	}
}

// OnThreadExit dispatches a thread exit.
func (c *Controller) OnThreadExit(_ context.Context, tid domain.ThreadID) {
	if c.observer != nil {
		c.observer.OnThreadExit(tid)
	}
}

// OnInstruction counts an executed instruction.
func (c *Controller) OnInstruction(_ domain.ThreadID, image string) {
	if !c.IgnoreInstCount(image) {
		c.instructions.Add(1)
	}
}

// OnAccess dispatches an access to the analyzer, then to the observer. It is
// called on the accessing thread before the access executes.
func (c *Controller) OnAccess(ctx context.Context, acc domain.Access) {
	if c.IgnoreMemAccess(acc.Inst.Image) {
		c.metrics.AccessFiltered()
		return
	}
	c.analyzer.OnAccess(acc)
	if c.observer != nil {
		c.observer.OnAccess(ctx, acc)
	}
}

// Instructions returns the number of counted instructions.
func (c *Controller) Instructions() uint64 {
	return c.instructions.Load()
}

// OnProgramExit tears down the observer, refines the ledger and saves every
// store. All save failures are reported together; the refined state is kept
// in memory either way.
func (c *Controller) OnProgramExit(ctx context.Context) error {
	if !c.ready || c.exited {
		return zerr.With(domain.ErrSetupOrder, "stage", "OnProgramExit")
	}
	c.exited = true

	_, span := c.tracer.Start(ctx, "program_exit")
	defer span.End()

	var errs []error
	if c.observer != nil {
		if err := c.observer.Teardown(); err != nil {
			errs = append(errs, err)
		}
	}

	c.pruned = c.ledger.Refine(c.opts.MemoFailed)
	if c.pruned > 0 {
		c.logger.Debug(fmt.Sprintf("pruned %d repeatedly failed candidates", c.pruned))
	}
	c.metrics.InstructionsCounted(c.instructions.Load())

	if err := c.registry.Save(c.opts.SinstOut); err != nil {
		errs = append(errs, zerr.With(err, "store", "shared instructions"))
	}
	if err := c.store.Save(c.opts.IRootOut); err != nil {
		errs = append(errs, zerr.With(err, "store", "candidates"))
	}
	if err := c.ledger.Save(c.opts.MemoOut); err != nil {
		errs = append(errs, zerr.With(err, "store", "memo"))
	}
	if c.opts.MetricsOut != "" {
		if err := c.metrics.Export(c.opts.MetricsOut); err != nil {
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
	}
	span.SetAttribute("pruned", c.pruned)
	span.SetAttribute("instructions", c.instructions.Load())
	return err
}

// Report summarizes the stores and the current run.
func (c *Controller) Report() Report {
	return Report{
		RunID:        c.runID,
		Observer:     c.ObserverName(),
		Instructions: c.instructions.Load(),
		SharedInsts:  c.registry.Len(),
		Candidates:   c.store.Len(),
		Memo:         c.ledger.Summary(),
		Pruned:       c.pruned,
	}
}
