package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/sitetree/pkg/errors"
)

// Config is the on-disk configuration. Every field has a flag of the same
// meaning; a flag given on the command line wins over the file.
//
//	python = "/opt/venvs/app/bin/python"
//	site_packages = ["/opt/venvs/app/lib/python3.12/site-packages"]
//	format = "text"
//	best_effort = true
//	header_sentinel = "Description-Content-Type"
type Config struct {
	Python         string   `toml:"python"`
	SitePackages   []string `toml:"site_packages"`
	Format         string   `toml:"format"`
	BestEffort     bool     `toml:"best_effort"`
	HeaderSentinel string   `toml:"header_sentinel"`
}

// loadConfig reads the config file at path, or at the default location when
// path is empty. A missing default file yields the zero Config; a missing
// explicit file, malformed TOML or an unknown key is an INVALID_CONFIG error.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Format != "" {
		if err := validateFormat(cfg.Format); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
		}
	}
	return cfg, nil
}

// apply copies config values into o for every flag not set explicitly.
func (o *graphOpts) apply(flags *pflag.FlagSet, cfg Config) {
	if cfg.Python != "" && !flags.Changed("python") {
		o.python = cfg.Python
	}
	if len(cfg.SitePackages) > 0 && !flags.Changed("path") {
		o.paths = cfg.SitePackages
	}
	if cfg.Format != "" && !flags.Changed("format") {
		o.format = cfg.Format
	}
	if cfg.BestEffort && !flags.Changed("best-effort") {
		o.bestEffort = true
	}
	if cfg.HeaderSentinel != "" {
		o.sentinel = cfg.HeaderSentinel
	}
}
