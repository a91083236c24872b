package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	return load(afero.NewBasePathFs(afero.NewOsFs(), path), path)
}

func load(fs afero.Fs, dir string) (*Configuration, error) {
	configContents, err := afero.ReadFile(fs, ConfigurationName)
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	out.configFs = fs
	out.configurationDir = dir
	return &out, nil
}

// LoadOrDefault loads the configuration from the directory, falling back to
// the built-in defaults if the directory has no configuration file. The
// fallback writes nothing to disk: the event log and history are disabled.
func LoadOrDefault(path string) (*Configuration, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		cfg = defaultConfig()
		cfg.EventLog = ""
		cfg.HistoryDB = ""
		cfg.configFs = afero.NewBasePathFs(afero.NewOsFs(), path)
		cfg.configurationDir = path
		return cfg, nil
	}
	return cfg, err
}

// Initialize writes the default configuration into dir. An existing
// configuration is left untouched.
func Initialize(dir string, logger *log.Logger) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	return initialize(afero.NewBasePathFs(afero.NewOsFs(), dir), logger)
}

func initialize(fs afero.Fs, logger *log.Logger) error {
	exists, err := afero.Exists(fs, ConfigurationName)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("%s already exists, skipping\n", ConfigurationName)
		return nil
	}

	logger.Printf("writing %s\n", ConfigurationName)
	fd, err := fs.OpenFile(ConfigurationName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer fd.Close()

	_, err = fd.Write(defaultConfigData)
	return err
}
