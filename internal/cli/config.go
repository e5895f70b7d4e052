package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/rdtree/pkg/buildinfo"
	"github.com/matzehuels/rdtree/pkg/errors"
	"github.com/matzehuels/rdtree/pkg/integrations"
	"github.com/matzehuels/rdtree/pkg/integrations/npm"
)

const (
	defaultRegistry = npm.DefaultRegistry

	// registryEnv is the npm environment variable for the registry URL.
	registryEnv = "NPM_CONFIG_REGISTRY"
)

// fileConfig is the on-disk TOML configuration.
//
//	registry   = "https://registry.npmjs.org"
//	timeout    = "30s"
//	user_agent = "rdtree/dev"
type fileConfig struct {
	Registry  string   `toml:"registry"`
	Timeout   duration `toml:"timeout"`
	UserAgent string   `toml:"user_agent"`
}

// duration decodes TOML strings such as "30s" or "1m30s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// config is the effective configuration of a run.
type config struct {
	Registry  string
	Timeout   time.Duration
	UserAgent string
	Output    string
	Silent    bool
}

// configDir returns the config directory using XDG standard (~/.config/rdtree/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfigFile reads the TOML file at path. A missing file is an error only
// when the path was given explicitly.
func loadConfigFile(path string, explicit bool) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return fc, nil
		}
		return fc, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return fc, nil
}

// resolveConfig merges flags, environment, config file and defaults, in that
// order of precedence. changed reports whether a flag was set on the command line.
func resolveConfig(opts options, changed func(string) bool) (config, error) {
	path, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}

	var fc fileConfig
	if path != "" {
		var err error
		if fc, err = loadConfigFile(path, explicit); err != nil {
			return config{}, err
		}
	}

	cfg := config{
		Registry:  defaultRegistry,
		Timeout:   integrations.DefaultTimeout,
		UserAgent: buildinfo.UserAgent(),
		Output:    opts.output,
		Silent:    opts.silent,
	}

	if fc.Registry != "" {
		cfg.Registry = fc.Registry
	}
	if fc.Timeout.Duration != 0 {
		cfg.Timeout = fc.Timeout.Duration
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if env := strings.TrimSpace(os.Getenv(registryEnv)); env != "" {
		cfg.Registry = env
	}
	if changed("registry") {
		cfg.Registry = opts.registry
	}
	if changed("timeout") {
		cfg.Timeout = opts.timeout
	}

	if err := errors.ValidateURL(cfg.Registry); err != nil {
		return config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "registry")
	}
	if cfg.Timeout <= 0 {
		return config{}, errors.New(errors.ErrCodeInvalidInput, "timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
