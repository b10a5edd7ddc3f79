// Package app implements the application layer for iroot.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"go.trai.ch/iroot/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/trace"     //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Report summarizes the stores after a run or an inspection.
type Report struct {
	RunID        string
	Observer     string
	Instructions uint64
	SharedInsts  int
	Candidates   int
	Memo         domain.MemoSummary
	Pruned       int
}

// App represents the main application logic.
type App struct {
	controller   *Controller
	configLoader ports.ConfigLoader
	traces       ports.TraceLoader
	logger       ports.Logger
	installOTel  bool
}

// New creates a new App instance.
func New(ctrl *Controller, loader ports.ConfigLoader, traces ports.TraceLoader, logger ports.Logger) *App {
	return &App{
		controller:   ctrl,
		configLoader: loader,
		traces:       traces,
		logger:       logger,
		installOTel:  true,
	}
}

// WithoutOTel keeps the global OpenTelemetry provider untouched during Run.
func (a *App) WithoutOTel() *App {
	a.installOTel = false
	return a
}

// RegisterFlags exposes every option as a flag on fs.
func (a *App) RegisterFlags(fs *pflag.FlagSet) {
	a.controller.PreSetup(fs)
}

// LoadOptions reads the configuration file on top of the defaults.
func (a *App) LoadOptions(path string) (domain.Options, error) {
	opts, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to load configuration")
	}
	return opts, nil
}

// Run replays the trace at tracePath through the full controller lifecycle:
// setup, one goroutine per recorded thread, then refinement and saving of
// every store.
func (a *App) Run(ctx context.Context, tracePath string, base domain.Options) (Report, error) {
	if a.installOTel {
		shutdown := telemetry.Install(telemetry.NewBridge(a.logger))
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	if err := a.controller.PostSetup(base); err != nil {
		return Report{}, err
	}

	tr, err := a.traces.Load(tracePath)
	if err != nil {
		return Report{}, err
	}

	replayErr := trace.NewReplayer(a.controller).Replay(ctx, tr)
	exitErr := a.controller.OnProgramExit(ctx)

	report := a.controller.Report()
	a.logger.Info(fmt.Sprintf("%d instructions, %d shared, %d candidates (%d exposed, %d unknown, %d failed)",
		report.Instructions, report.SharedInsts, report.Candidates,
		report.Memo.Exposed, report.Memo.Unknown, report.Memo.FailedRepeatedly))

	if err := errors.Join(replayErr, exitErr); err != nil {
		return report, err
	}
	return report, nil
}

// Stats loads the stores named by the options and summarizes them without
// running anything.
func (a *App) Stats(base domain.Options) (Report, error) {
	c := a.controller
	if err := c.configure(base); err != nil {
		return Report{}, err
	}
	if err := c.loadStores(); err != nil {
		return Report{}, err
	}
	return c.Report(), nil
}
