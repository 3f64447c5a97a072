package server

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/beehive-network/beehive/errors"
)

// ConfigFile is the daemon settings file, relative to the home directory.
const ConfigFile = "config/beehived.toml"

// Config holds the daemon settings. Values are read from ConfigFile when
// present and can be overridden by command line flags.
type Config struct {
	// Bind is the address the ABCI server listens on.
	Bind string `toml:"bind"`
	// Debug returns full error details in ABCI responses.
	Debug bool `toml:"debug"`
	// LogLevel is one of debug, info, error or none.
	LogLevel string `toml:"log_level"`
	// DBPath is the iavl state database, empty for an in memory store.
	DBPath string `toml:"db_path"`
	// AuditPath is the reward pool event journal, empty to disable.
	AuditPath string `toml:"audit_path"`
	// MetricsBind is the prometheus listen address, empty to disable.
	MetricsBind string `toml:"metrics_bind"`
}

// DefaultConfig returns the settings used when neither the file nor a flag
// provides a value.
func DefaultConfig(home string) Config {
	return Config{
		Bind:      "tcp://localhost:26658",
		LogLevel:  "info",
		DBPath:    filepath.Join(home, "state.db"),
		AuditPath: filepath.Join(home, "audit.db"),
	}
}

// LoadConfig returns the default settings updated with the content of the
// home directory config file. A missing file is not an error.
func LoadConfig(home string) (Config, error) {
	conf := DefaultConfig(home)
	path := filepath.Join(home, ConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, errors.Wrapf(errors.ErrInput, "cannot parse %s: %s", path, err)
	}
	return conf, nil
}

// WriteConfig stores the settings in the home directory config file.
func WriteConfig(home string, conf Config) error {
	path := filepath.Join(home, ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(conf); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return nil
}
