// Package config reads the tool's configuration files.
//
// Config files use the git-config style format (via gcfg) and are read in order,
// each one overriding values set by the previous ones; values not set anywhere
// take their defaults from DefaultConfiguration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/please-build/gcfg"

	"github.com/semantic-rs/list-cargo-binaries/src/cli"
	"github.com/semantic-rs/list-cargo-binaries/src/cli/logging"
	"github.com/semantic-rs/list-cargo-binaries/src/fs"
	"github.com/semantic-rs/list-cargo-binaries/src/output"
)

var log = logging.Log

// ConfigFileName is the name of the per-project config file, looked up in the working directory.
const ConfigFileName = ".cargobinsconfig"

// MachineConfigFileName is the machine-level config file.
const MachineConfigFileName = "/etc/cargobinsconfig"

// UserConfigFileName is the per-user config file.
const UserConfigFileName = "~/.config/cargobins/config"

// A Configuration holds everything that can be set in a config file.
type Configuration struct {
	Cargo struct {
		Tool         string       `help:"The cargo command to run. It is split using shell quoting rules, so 'cargo +nightly' works."`
		ManifestPath string       `help:"Path to the Cargo.toml to inspect. Defaults to whatever cargo finds from the working directory."`
		Timeout      cli.Duration `help:"How long to wait for cargo metadata before killing it. Zero waits forever."`
	}
	Output struct {
		Format output.Format `help:"How to print binary names; one of compat, words, lines or json."`
	}
}

// DefaultConfiguration returns the default configuration, used when no config file sets a value.
func DefaultConfiguration() *Configuration {
	config := &Configuration{}
	config.Cargo.Tool = "cargo"
	config.Output.Format = output.Compat
	return config
}

// DefaultConfigFiles returns the config files we read, in order, for the given working directory.
func DefaultConfigFiles(dir string) []string {
	return []string{
		MachineConfigFileName,
		fs.ExpandHomePath(UserConfigFileName),
		filepath.Join(dir, ConfigFileName),
	}
}

// ReadConfigFiles reads the given config files in order on top of the default configuration.
// Files that don't exist are silently skipped.
func ReadConfigFiles(filenames []string) (*Configuration, error) {
	config := DefaultConfiguration()
	for _, filename := range filenames {
		if err := readConfigFile(config, filename); err != nil {
			return config, err
		}
	}
	config.Cargo.ManifestPath = fs.ExpandHomePath(config.Cargo.ManifestPath)
	if config.Cargo.Tool == "" {
		return config, fmt.Errorf("cargo.tool must not be empty")
	}
	if config.Cargo.Timeout < 0 {
		return config, fmt.Errorf("cargo.timeout must not be negative")
	}
	return config, nil
}

func readConfigFile(config *Configuration, filename string) error {
	if err := gcfg.ReadFileInto(config, filename); err != nil && os.IsNotExist(err) {
		return nil // It's not an error to not have the file at all.
	} else if err != nil {
		return fmt.Errorf("error reading config file %s: %w", filename, err)
	}
	log.Debug("Read config from %s", filename)
	return nil
}
