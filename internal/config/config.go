package config

import (
	"fmt"

	"github.com/dnslab/backendctl/internal/domain"
)

const (
	BackendBind9 = "bind9"
	BackendPDNS  = "pdns4"

	DatabaseMySQL = "mysql"
)

// Config drives every lifecycle step. All generated backend files are
// pure template substitutions of these values.
type Config struct {
	Backend   string `yaml:"backend"`
	StackUser string `yaml:"stack_user"`

	DNS      DNS        `yaml:"dns"`
	Database Database   `yaml:"database"`
	Manage   Manage     `yaml:"manage"`
	Bind9    Bind9      `yaml:"bind9"`
	PDNS     PDNS       `yaml:"pdns"`
	Target   *SSHTarget `yaml:"target,omitempty"`
}

type DNS struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	RNDCHost string `yaml:"rndc_host"`
	RNDCPort int    `yaml:"rndc_port"`
}

type Database struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Manage names the external management command that migrates the
// backend database schema.
type Manage struct {
	Command string `yaml:"command"`
}

type Bind9 struct {
	ConfigDir string `yaml:"config_dir"`
	CacheDir  string `yaml:"cache_dir"`
	Service   string `yaml:"service"`
	User      string `yaml:"user"`
	Group     string `yaml:"group"`
}

type PDNS struct {
	ConfigDir string `yaml:"config_dir"`
	Service   string `yaml:"service"`
	User      string `yaml:"user"`
	Group     string `yaml:"group"`
}

// SSHTarget selects a remote machine to bootstrap instead of the
// local one.
type SSHTarget struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

func Default() *Config {
	return &Config{
		Backend:   BackendBind9,
		StackUser: "stack",
		DNS: DNS{
			Host:     "127.0.0.1",
			Port:     53,
			RNDCHost: "127.0.0.1",
			RNDCPort: 953,
		},
		Database: Database{
			Type:     DatabaseMySQL,
			Host:     "127.0.0.1",
			Port:     3306,
			User:     "root",
			Password: "",
			Name:     "designate_pdns",
		},
		Manage: Manage{
			Command: "designate-manage powerdns sync",
		},
		Bind9: Bind9{
			ConfigDir: "/etc/bind",
			CacheDir:  "/var/cache/bind",
			Service:   "bind9",
			User:      "bind",
			Group:     "bind",
		},
		PDNS: PDNS{
			ConfigDir: "/etc/powerdns",
			Service:   "pdns",
			User:      "pdns",
			Group:     "pdns",
		},
	}
}

func (c *Config) Validate() error {
	if c.Backend == "" {
		return domain.RequiredField("backend")
	}
	if c.Backend != BackendBind9 && c.Backend != BackendPDNS {
		return fmt.Errorf("%w: %s", domain.ErrInvalidBackend, c.Backend)
	}
	if c.StackUser == "" {
		return domain.RequiredField("stack_user")
	}
	if err := validatePort("dns.port", c.DNS.Port); err != nil {
		return err
	}
	if err := validatePort("dns.rndc_port", c.DNS.RNDCPort); err != nil {
		return err
	}
	if err := validatePort("database.port", c.Database.Port); err != nil {
		return err
	}
	if c.Target != nil {
		if c.Target.Host == "" {
			return domain.RequiredField("target.host")
		}
		if err := validatePort("target.port", c.Target.Port); err != nil {
			return err
		}
	}
	return nil
}

func validatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: %s=%d", domain.ErrInvalidPort, field, port)
	}
	return nil
}
