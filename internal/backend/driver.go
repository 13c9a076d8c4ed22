package backend

import (
	"context"

	"github.com/dnslab/backendctl/internal/config"
	"github.com/dnslab/backendctl/internal/host"
	"github.com/dnslab/backendctl/internal/pkgmgr"
	"github.com/dnslab/backendctl/internal/service"
)

// Driver is the lifecycle contract every DNS backend implements. The
// orchestrating command picks one by the configured backend name and
// invokes the steps in order; each step is an idempotent re-write of
// fixed files or a delegation to the host's package/service managers.
type Driver interface {
	Name() string
	Install(ctx context.Context) error
	Configure(ctx context.Context) error
	Init(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Cleanup(ctx context.Context) error
}

// Deps carries everything a driver needs to act on the target host.
type Deps struct {
	Config   *config.Config
	Host     host.Host
	Service  service.Manager
	Packages *pkgmgr.Manager
}
