// Package config provides the configuration loader for agroview.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file agroview looks for, walking up from the
// working directory.
const FileName = "agroview.yaml"

// DefaultServer is used when no configuration file overrides it.
const DefaultServer = "http://localhost:5000"

// Config is the resolved runtime configuration.
type Config struct {
	Server        string
	StateDir      string
	LogJSON       bool
	Retry         domain.RetryPolicy
	CacheTTL      time.Duration
	AttemptBudget int
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Server:        DefaultServer,
		StateDir:      defaultStateDir(),
		Retry:         domain.DefaultRetryPolicy(),
		CacheTTL:      domain.DefaultCacheTTL,
		AttemptBudget: domain.DefaultAttemptBudget,
	}
}

func defaultStateDir() string {
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "agroview")
	}
	return ".agroview"
}

// Loader implements configuration loading from a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration starting from cwd. A missing file is not
// an error: the client falls back to defaults so read-only commands work
// without any setup.
func (l *Loader) Load(cwd string) (Config, error) {
	path, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Info("no " + FileName + " found, using defaults")
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		rerr := zerr.With(domain.ErrConfigReadFailed, "path", path)
		return Config{}, zerr.With(rerr, "error", err.Error())
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		perr := zerr.With(domain.ErrConfigParseFailed, "path", path)
		return Config{}, zerr.With(perr, "error", err.Error())
	}

	return l.resolve(file, path)
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) resolve(file File, path string) (Config, error) {
	cfg := Default()

	if file.Server != "" {
		cfg.Server = file.Server
	}
	if file.StateDir != "" {
		cfg.StateDir = file.StateDir
	}
	cfg.LogJSON = file.LogJSON

	if file.Request != nil {
		if file.Request.MaxRetries != nil {
			cfg.Retry.MaxRetries = *file.Request.MaxRetries
		}
		if d, err := parseDuration(file.Request.BaseDelay, path); err != nil {
			return Config{}, err
		} else if d > 0 {
			cfg.Retry.BaseDelay = d
		}
		if d, err := parseDuration(file.Request.Timeout, path); err != nil {
			return Config{}, err
		} else if d > 0 {
			cfg.Retry.Timeout = d
		}
	}

	if file.Cache != nil {
		if d, err := parseDuration(file.Cache.TTL, path); err != nil {
			return Config{}, err
		} else if d > 0 {
			cfg.CacheTTL = d
		}
	}

	if file.Analysis != nil && file.Analysis.AttemptBudget > 0 {
		cfg.AttemptBudget = file.Analysis.AttemptBudget
	}

	return cfg, nil
}

func parseDuration(s, path string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		perr := zerr.With(domain.ErrConfigParseFailed, "path", path)
		return 0, zerr.With(perr, "duration", s)
	}
	return d, nil
}
