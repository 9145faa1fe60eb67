package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "~/.juicer.yaml"
	defaultStoreFile  = "~/.juicer.db"
)

// Config holds the settings read from the config file.
type Config struct {
	Store  string `yaml:"store"`
	Format string `yaml:"format"`
}

func defaultConfig() Config {
	return Config{Store: defaultStoreFile, Format: "text"}
}

// loadConfig reads the config file at fname over the defaults. A missing
// file is only an error when it was named explicitly.
func loadConfig(fname string) (Config, error) {
	cfg := defaultConfig()
	explicit := fname != ""
	if !explicit {
		fname = defaultConfigFile
	}
	data, err := os.ReadFile(expandHome(fname))
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", fname)
	}
	return cfg, nil
}

func expandHome(fname string) string {
	if fname != "~" && !strings.HasPrefix(fname, "~/") {
		return fname
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fname
	}
	return filepath.Join(home, strings.TrimPrefix(fname, "~"))
}
