package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs         afero.Fs
	configurationDir string

	Prompt           string   `json:"prompt" validate:"required"`
	Color            string   `json:"color" validate:"oneof=always auto never"`
	EventLog         string   `json:"event_log"`
	EventLogRotation Rotation `json:"event_log_rotation"`
	HistoryDB        string   `json:"history_db"`
	HistoryLimit     int      `json:"history_limit" validate:"gte=0"`
}

// Rotation controls when the event log is rotated and how many old copies
// are kept. Zero values use the rotator's defaults.
type Rotation struct {
	MaxSizeMB  int  `json:"max_size_mb" validate:"gte=0"`
	MaxBackups int  `json:"max_backups" validate:"gte=0"`
	MaxAgeDays int  `json:"max_age_days" validate:"gte=0"`
	Compress   bool `json:"compress"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// Dir returns the configuration directory.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

func (c *Configuration) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.configurationDir, name)
}

// EventLogPath returns the path of the event log, or "" if it's disabled.
func (c *Configuration) EventLogPath() string {
	return c.resolve(c.EventLog)
}

// HistoryPath returns the path of the history database, or "" if history is
// disabled.
func (c *Configuration) HistoryPath() string {
	return c.resolve(c.HistoryDB)
}

// ReadEventLog opens the current event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if filepath.IsAbs(c.EventLog) {
		return afero.NewOsFs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
	}
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// ShouldColor reports whether output written to fd should be colorized.
func (c *Configuration) ShouldColor(fd uintptr) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
