package backend

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dnslab/backendctl/internal/config"
	"github.com/dnslab/backendctl/internal/constants"
	"github.com/dnslab/backendctl/internal/domain"
	"github.com/dnslab/backendctl/internal/host"
	"github.com/dnslab/backendctl/internal/logger"
	"github.com/dnslab/backendctl/internal/pkgmgr"
	"github.com/dnslab/backendctl/internal/service"
)

// bind9Driver bootstraps a BIND 9 server that Designate drives over
// rndc. Zones are created at runtime through allow-new-zones, so the
// only files written here are the options, rndc config and rndc key.
type bind9Driver struct {
	cfg  *config.Config
	host host.Host
	svc  service.Manager
	pkgs *pkgmgr.Manager
}

func NewBind9(deps Deps) (Driver, error) {
	return &bind9Driver{
		cfg:  deps.Config,
		host: deps.Host,
		svc:  deps.Service,
		pkgs: deps.Packages,
	}, nil
}

func (d *bind9Driver) Name() string {
	return config.BackendBind9
}

func (d *bind9Driver) packages() []string {
	if d.pkgs.Family() == pkgmgr.FamilyRedHat {
		return []string{"bind", "bind-utils"}
	}
	return []string{"bind9", "bind9utils"}
}

func (d *bind9Driver) Install(ctx context.Context) error {
	log := logger.FromContext(ctx).With("backend", d.Name())

	if err := d.pkgs.Install(ctx, d.packages()...); err != nil {
		return domain.WrapOp("install bind9 packages", err)
	}

	// The Designate run user needs to read the config dir and write
	// slave zone files into the cache dir.
	b := d.cfg.Bind9
	cmd := fmt.Sprintf(
		"sudo chown -R %s:%s %s %s && sudo chmod -R g+r %s && sudo chmod -R g+rw %s && sudo usermod -a -G %s %s",
		host.ShellEscape(b.User), host.ShellEscape(b.Group),
		host.ShellEscape(b.ConfigDir), host.ShellEscape(b.CacheDir),
		host.ShellEscape(b.ConfigDir), host.ShellEscape(b.CacheDir),
		host.ShellEscape(b.Group), host.ShellEscape(d.cfg.StackUser))
	if _, stderr, err := d.host.Run(ctx, cmd); err != nil {
		return fmt.Errorf("granting %s access to bind dirs: %w, stderr: %s", d.cfg.StackUser, err, stderr)
	}

	log.Info("bind9 installed", "config_dir", b.ConfigDir, "cache_dir", b.CacheDir)
	return nil
}

func (d *bind9Driver) Configure(ctx context.Context) error {
	log := logger.FromContext(ctx).With("backend", d.Name())
	b := d.cfg.Bind9
	owner := b.User + ":" + b.Group

	secret, err := GenerateRNDCSecret()
	if err != nil {
		return err
	}

	keyData := map[string]any{
		"KeyName": constants.RNDCKeyName,
		"Secret":  secret,
	}
	rndcKey, err := renderTemplate("rndc.key.tmpl", keyData)
	if err != nil {
		return domain.WrapOp("render rndc.key", err)
	}
	if err := d.host.WriteFileSudo(ctx, filepath.Join(b.ConfigDir, "rndc.key"), []byte(rndcKey), "0640", owner); err != nil {
		return fmt.Errorf("%w: rndc.key: %v", domain.ErrFileWriteFailed, err)
	}

	optionsData := map[string]any{
		"CacheDir":  b.CacheDir,
		"ConfigDir": b.ConfigDir,
		"DNSPort":   d.cfg.DNS.Port,
		"RNDCHost":  d.cfg.DNS.RNDCHost,
		"RNDCPort":  d.cfg.DNS.RNDCPort,
		"KeyName":   constants.RNDCKeyName,
	}
	options, err := renderTemplate("named.conf.options.tmpl", optionsData)
	if err != nil {
		return domain.WrapOp("render named.conf.options", err)
	}
	if err := d.host.WriteFileSudo(ctx, filepath.Join(b.ConfigDir, "named.conf.options"), []byte(options), "0640", owner); err != nil {
		return fmt.Errorf("%w: named.conf.options: %v", domain.ErrFileWriteFailed, err)
	}

	rndcConfData := map[string]any{
		"ConfigDir": b.ConfigDir,
		"RNDCHost":  d.cfg.DNS.RNDCHost,
		"RNDCPort":  d.cfg.DNS.RNDCPort,
		"KeyName":   constants.RNDCKeyName,
	}
	rndcConf, err := renderTemplate("rndc.conf.tmpl", rndcConfData)
	if err != nil {
		return domain.WrapOp("render rndc.conf", err)
	}
	if err := d.host.WriteFileSudo(ctx, filepath.Join(b.ConfigDir, "rndc.conf"), []byte(rndcConf), "0640", owner); err != nil {
		return fmt.Errorf("%w: rndc.conf: %v", domain.ErrFileWriteFailed, err)
	}

	if err := d.svc.Restart(ctx, b.Service); err != nil {
		return err
	}

	log.Info("bind9 configured", "rndc_port", d.cfg.DNS.RNDCPort)
	return nil
}

func (d *bind9Driver) Init(ctx context.Context) error {
	// bind9 keeps no backing database; nothing to initialize.
	logger.FromContext(ctx).Debug("bind9 init: nothing to do")
	return nil
}

func (d *bind9Driver) Start(ctx context.Context) error {
	return d.svc.Start(ctx, d.cfg.Bind9.Service)
}

func (d *bind9Driver) Stop(ctx context.Context) error {
	return d.svc.Stop(ctx, d.cfg.Bind9.Service)
}

// Cleanup removes runtime zone artifacts and the rndc key so a fresh
// configure starts from a clean slate. Packages stay installed.
func (d *bind9Driver) Cleanup(ctx context.Context) error {
	b := d.cfg.Bind9

	for _, glob := range []string{"*.nzf", "*.nzd", "slave.*"} {
		if err := host.RemoveGlobSudo(ctx, d.host, b.CacheDir, glob); err != nil {
			return domain.WrapOp("cleanup zone artifacts", err)
		}
	}

	if err := host.RemoveSudo(ctx, d.host, filepath.Join(b.ConfigDir, "rndc.key")); err != nil {
		return domain.WrapOp("cleanup rndc key", err)
	}

	logger.FromContext(ctx).Info("bind9 cleanup complete", "cache_dir", b.CacheDir)
	return nil
}
