package backend

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dnslab/backendctl/internal/config"
	"github.com/dnslab/backendctl/internal/domain"
	"github.com/dnslab/backendctl/internal/host"
	"github.com/dnslab/backendctl/internal/logger"
	"github.com/dnslab/backendctl/internal/pkgmgr"
	"github.com/dnslab/backendctl/internal/service"
)

// pdnsDriver bootstraps a PowerDNS 4 server backed by a dedicated
// MySQL database through the gmysql storage backend.
type pdnsDriver struct {
	cfg  *config.Config
	host host.Host
	svc  service.Manager
	pkgs *pkgmgr.Manager
}

func NewPDNS(deps Deps) (Driver, error) {
	return &pdnsDriver{
		cfg:  deps.Config,
		host: deps.Host,
		svc:  deps.Service,
		pkgs: deps.Packages,
	}, nil
}

func (d *pdnsDriver) Name() string {
	return config.BackendPDNS
}

func (d *pdnsDriver) packages() []string {
	if d.pkgs.Family() == pkgmgr.FamilyRedHat {
		return []string{"pdns", "pdns-backend-mysql"}
	}
	return []string{"pdns-server", "pdns-backend-mysql"}
}

func (d *pdnsDriver) Install(ctx context.Context) error {
	if err := d.pkgs.Install(ctx, d.packages()...); err != nil {
		return domain.WrapOp("install powerdns packages", err)
	}
	logger.FromContext(ctx).Info("powerdns installed", "config_dir", d.cfg.PDNS.ConfigDir)
	return nil
}

func (d *pdnsDriver) Configure(ctx context.Context) error {
	if d.cfg.Database.Type != config.DatabaseMySQL {
		return fmt.Errorf("%w: the PowerDNS backend only supports MySQL, got %q",
			domain.ErrInvalidDatabase, d.cfg.Database.Type)
	}

	p := d.cfg.PDNS
	data := map[string]any{
		"DBHost":     d.cfg.Database.Host,
		"DBPort":     d.cfg.Database.Port,
		"DBUser":     d.cfg.Database.User,
		"DBPassword": d.cfg.Database.Password,
		"DBName":     d.cfg.Database.Name,
		"DNSHost":    d.cfg.DNS.Host,
		"DNSPort":    d.cfg.DNS.Port,
		"User":       p.User,
		"Group":      p.Group,
		"ConfigDir":  p.ConfigDir,
	}
	conf, err := renderTemplate("pdns.conf.tmpl", data)
	if err != nil {
		return domain.WrapOp("render pdns.conf", err)
	}

	if err := host.MkdirAllSudo(ctx, d.host, p.ConfigDir, "0755", "root:root"); err != nil {
		return domain.WrapOp("ensure config dir", err)
	}

	// pdns.conf carries the database password.
	owner := p.User + ":" + p.Group
	if err := d.host.WriteFileSudo(ctx, filepath.Join(p.ConfigDir, "pdns.conf"), []byte(conf), "0600", owner); err != nil {
		return fmt.Errorf("%w: pdns.conf: %v", domain.ErrFileWriteFailed, err)
	}

	if err := d.svc.Restart(ctx, p.Service); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("powerdns configured",
		"database", d.cfg.Database.Name, "local_port", d.cfg.DNS.Port)
	return nil
}

// Init recreates the dedicated database and migrates the schema via
// the external management command.
func (d *pdnsDriver) Init(ctx context.Context) error {
	db := d.cfg.Database

	sql := fmt.Sprintf("DROP DATABASE IF EXISTS `%s`; CREATE DATABASE `%s` CHARACTER SET utf8;", db.Name, db.Name)
	mysql := fmt.Sprintf("mysql -h %s -P %d -u %s", host.ShellEscape(db.Host), db.Port, host.ShellEscape(db.User))
	if db.Password != "" {
		mysql += " -p" + host.ShellEscape(db.Password)
	}
	mysql += " -e " + host.ShellEscape(sql)

	if _, stderr, err := d.host.Run(ctx, mysql); err != nil {
		return fmt.Errorf("recreating database %s: %w, stderr: %s", db.Name, err, stderr)
	}

	if _, stderr, err := d.host.Run(ctx, d.cfg.Manage.Command); err != nil {
		return fmt.Errorf("migrating database %s: %w, stderr: %s", db.Name, err, stderr)
	}

	logger.FromContext(ctx).Info("powerdns database initialized", "database", db.Name)
	return nil
}

func (d *pdnsDriver) Start(ctx context.Context) error {
	return d.svc.Start(ctx, d.cfg.PDNS.Service)
}

func (d *pdnsDriver) Stop(ctx context.Context) error {
	return d.svc.Stop(ctx, d.cfg.PDNS.Service)
}

func (d *pdnsDriver) Cleanup(ctx context.Context) error {
	// Zone data lives in MySQL and is dropped on the next init.
	logger.FromContext(ctx).Debug("powerdns cleanup: nothing to do")
	return nil
}
