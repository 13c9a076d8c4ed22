package cli

import (
	"context"
	"fmt"

	"github.com/dnslab/backendctl/internal/backend"
	"github.com/dnslab/backendctl/internal/config"
	"github.com/dnslab/backendctl/internal/host"
	"github.com/dnslab/backendctl/internal/logger"
	"github.com/dnslab/backendctl/internal/pkgmgr"
	"github.com/dnslab/backendctl/internal/service"
	"github.com/dnslab/backendctl/internal/state"
)

// Lifecycle step names, in apply order.
const (
	StepInstall   = "install"
	StepConfigure = "configure"
	StepInit      = "init"
	StepStart     = "start"
	StepStop      = "stop"
	StepCleanup   = "cleanup"
)

var ApplySequence = []string{StepInstall, StepConfigure, StepInit, StepStart}

// Workflow wires config, target host, package/service managers and the
// backend driver together for one CLI invocation.
type Workflow struct {
	Config *config.Config
	Store  *state.FileStore

	host host.Host
}

func NewWorkflow(cliCtx *Context) (*Workflow, error) {
	cfg, err := config.NewLoader(cliCtx.ConfigPath).Load()
	if err != nil {
		return nil, err
	}
	if cliCtx.Backend != "" {
		cfg.Backend = cliCtx.Backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	var h host.Host
	if cfg.Target != nil {
		logger.Info("connecting to target", "host", cfg.Target.Host, "port", cfg.Target.Port)
		h, err = host.NewRemote(cfg.Target.Host, cfg.Target.Port, cfg.Target.User, cfg.Target.Password)
		if err != nil {
			return nil, fmt.Errorf("connecting to target %s: %w", cfg.Target.Host, err)
		}
	} else {
		h = host.NewLocal()
	}

	return &Workflow{
		Config: cfg,
		Store:  state.NewFileStore(cliCtx.StatePath),
		host:   h,
	}, nil
}

func (w *Workflow) Close() error {
	return w.host.Close()
}

func (w *Workflow) driver(ctx context.Context) (backend.Driver, service.Manager, error) {
	pkgs, err := pkgmgr.Detect(ctx, w.host)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewManager(ctx, w.host)

	drv, err := backend.NewFactory().Create(w.Config.Backend, backend.Deps{
		Config:   w.Config,
		Host:     w.host,
		Service:  svc,
		Packages: pkgs,
	})
	if err != nil {
		svc.Close()
		return nil, nil, err
	}
	return drv, svc, nil
}

// RunStep executes one lifecycle step under the state lock and records
// it on success.
func (w *Workflow) RunStep(ctx context.Context, step string) error {
	return w.Store.WithLock(func() error {
		return w.runStepLocked(ctx, step)
	})
}

// RunSteps executes several steps under a single lock, stopping at the
// first failure.
func (w *Workflow) RunSteps(ctx context.Context, steps []string) error {
	return w.Store.WithLock(func() error {
		for _, step := range steps {
			if err := w.runStepLocked(ctx, step); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *Workflow) runStepLocked(ctx context.Context, step string) error {
	ctx = logger.WithStep(ctx, w.Config.Backend, step)

	drv, svc, err := w.driver(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	fn, err := stepFunc(drv, step)
	if err != nil {
		return err
	}

	if err := logger.TimedStep(ctx, drv.Name(), step, func() error { return fn(ctx) }); err != nil {
		return fmt.Errorf("%s %s: %w", drv.Name(), step, err)
	}
	return w.Store.MarkStep(drv.Name(), step)
}

func stepFunc(drv backend.Driver, step string) (func(context.Context) error, error) {
	switch step {
	case StepInstall:
		return drv.Install, nil
	case StepConfigure:
		return drv.Configure, nil
	case StepInit:
		return drv.Init, nil
	case StepStart:
		return drv.Start, nil
	case StepStop:
		return drv.Stop, nil
	case StepCleanup:
		return drv.Cleanup, nil
	default:
		return nil, fmt.Errorf("unknown lifecycle step: %s", step)
	}
}

// ServiceState reports whether the configured backend's unit is
// active, for status output.
func (w *Workflow) ServiceState(ctx context.Context) (string, error) {
	svc := service.NewManager(ctx, w.host)
	defer svc.Close()

	unit := w.Config.Bind9.Service
	if w.Config.Backend == config.BackendPDNS {
		unit = w.Config.PDNS.Service
	}
	active, err := svc.IsActive(ctx, unit)
	if err != nil {
		return "unknown", err
	}
	if active {
		return "active", nil
	}
	return "inactive", nil
}
