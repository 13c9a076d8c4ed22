package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dnslab/backendctl/internal/domain"
)

// Loader reads the YAML config file (when present) and applies
// BACKENDCTL_* environment overrides on top, so the tool works with no
// file at all in a plain dev environment.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading %s: %v: %w", l.path, err, domain.ErrConfigReadFailed)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %v: %w", l.path, err, domain.ErrConfigParseFailed)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfigValidateFail, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Backend, "BACKENDCTL_BACKEND")
	setString(&cfg.StackUser, "BACKENDCTL_STACK_USER")

	setString(&cfg.DNS.Host, "BACKENDCTL_DNS_HOST")
	setInt(&cfg.DNS.Port, "BACKENDCTL_DNS_PORT")
	setString(&cfg.DNS.RNDCHost, "BACKENDCTL_RNDC_HOST")
	setInt(&cfg.DNS.RNDCPort, "BACKENDCTL_RNDC_PORT")

	setString(&cfg.Database.Type, "BACKENDCTL_DB_TYPE")
	setString(&cfg.Database.Host, "BACKENDCTL_DB_HOST")
	setInt(&cfg.Database.Port, "BACKENDCTL_DB_PORT")
	setString(&cfg.Database.User, "BACKENDCTL_DB_USER")
	setString(&cfg.Database.Password, "BACKENDCTL_DB_PASSWORD")
	setString(&cfg.Database.Name, "BACKENDCTL_DB_NAME")

	setString(&cfg.Manage.Command, "BACKENDCTL_MANAGE_COMMAND")

	setString(&cfg.Bind9.ConfigDir, "BACKENDCTL_BIND9_CONFIG_DIR")
	setString(&cfg.Bind9.CacheDir, "BACKENDCTL_BIND9_CACHE_DIR")
	setString(&cfg.Bind9.Service, "BACKENDCTL_BIND9_SERVICE")

	setString(&cfg.PDNS.ConfigDir, "BACKENDCTL_PDNS_CONFIG_DIR")
	setString(&cfg.PDNS.Service, "BACKENDCTL_PDNS_SERVICE")

	if host := os.Getenv("BACKENDCTL_TARGET_HOST"); host != "" {
		if cfg.Target == nil {
			cfg.Target = &SSHTarget{Port: 22}
		}
		cfg.Target.Host = host
		setInt(&cfg.Target.Port, "BACKENDCTL_TARGET_PORT")
		setString(&cfg.Target.User, "BACKENDCTL_TARGET_USER")
		setString(&cfg.Target.Password, "BACKENDCTL_TARGET_PASSWORD")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
