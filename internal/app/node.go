package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iroot/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/image"     //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/irootdb"   //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/memo"      //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/sinst"     //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/adapters/trace"     //nolint:depguard // Wired in app layer
	"go.trai.ch/iroot/internal/core/ports"
)

const (
	// ControllerNodeID is the unique identifier for the Controller Graft node.
	ControllerNodeID graft.ID = "app.controller"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        ControllerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			image.NodeID,
			sinst.NodeID,
			irootdb.NodeID,
			memo.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
			logger.NodeID,
		},
		Run: runControllerNode,
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ControllerNodeID,
			config.NodeID,
			trace.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			ctrl, err := graft.Dep[*Controller](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			traces, err := graft.Dep[ports.TraceLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(ctrl, loader, traces, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runControllerNode(ctx context.Context) (*Controller, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	classifier, err := graft.Dep[ports.ImageClassifier](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.SharedInstRegistry](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CandidateStore](ctx)
	if err != nil {
		return nil, err
	}

	ledger, err := graft.Dep[ports.MemoLedger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	metrics, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewController(ControllerDeps{
		Loader:     loader,
		Classifier: classifier,
		Registry:   registry,
		Store:      store,
		Ledger:     ledger,
		Tracer:     tracer,
		Metrics:    metrics,
		Logger:     log,
	}), nil
}
