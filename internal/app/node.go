package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebind/internal/adapters/assembly"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/nuget"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/vcs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/engine/aggregator"
	"go.trai.ch/rebind/internal/engine/reconciler"
	"go.trai.ch/rebind/internal/engine/synthesizer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.LocatorNodeID,
			aggregator.NodeID,
			nuget.NodeID,
			assembly.NodeID,
			cas.NodeID,
			reconciler.NodeID,
			synthesizer.NodeID,
			vcs.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	locator, err := graft.Dep[ports.WorkspaceLocator](ctx)
	if err != nil {
		return nil, err
	}
	agg, err := graft.Dep[*aggregator.Aggregator](ctx)
	if err != nil {
		return nil, err
	}
	registries, err := graft.Dep[ports.PackageRegistryFactory](ctx)
	if err != nil {
		return nil, err
	}
	inspector, err := graft.Dep[ports.ArtifactInspector](ctx)
	if err != nil {
		return nil, err
	}
	identities, err := graft.Dep[ports.IdentityStore](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[*reconciler.Engine](ctx)
	if err != nil {
		return nil, err
	}
	synth, err := graft.Dep[*synthesizer.Synthesizer](ctx)
	if err != nil {
		return nil, err
	}
	checkouts, err := graft.Dep[ports.CheckoutFactory](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locator, agg, registries, inspector, identities, engine, synth, checkouts, tel, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, tel, loader), nil
}
