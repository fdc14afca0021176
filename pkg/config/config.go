// Package config loads skilltag settings from viper (flags, SKILLTAG_*
// environment variables and config.yaml) and applies named profiles.
package config

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds every setting the CLI and the updater read.
type Config struct {
	LogLevel  string `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" json:"log_format" yaml:"log_format"`

	// IndexFile is the base name of lab metadata records.
	IndexFile string `mapstructure:"index_file" json:"index_file" yaml:"index_file"`
	// Exclude holds doublestar patterns, relative to the walk root, of paths to skip.
	Exclude []string `mapstructure:"exclude" json:"exclude" yaml:"exclude"`
	// Formatter is a command run on each rewritten record, with the path appended.
	Formatter string `mapstructure:"formatter" json:"formatter" yaml:"formatter"`
	// Markers adds fence markers per lab tree on top of the built-in table.
	Markers map[string][]string `mapstructure:"markers" json:"markers" yaml:"markers"`

	Profile  string                    `mapstructure:"profile" json:"profile" yaml:"profile"`
	Profiles map[string]map[string]any `mapstructure:"profiles" json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// Defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "fmt"
	DefaultIndexFile = "index.json"
)

// DefaultExclude skips VCS metadata and vendored node packages.
var DefaultExclude = []string{"**/.git/**", "**/node_modules/**"}

// InitConfig registers defaults on the global viper instance.
func InitConfig() {
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("log_format", DefaultLogFormat)
	viper.SetDefault("index_file", DefaultIndexFile)
	viper.SetDefault("exclude", DefaultExclude)
	viper.SetDefault("formatter", "")
}

// GetConfigFromViper decodes the global viper state and applies the active
// profile, if any.
func GetConfigFromViper() (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if config.Profile != "" && config.Profile != "default" {
		profile, ok := config.Profiles[config.Profile]
		if !ok {
			return config, errors.Errorf("profile %q is not defined", config.Profile)
		}
		if err := applyProfile(&config, profile); err != nil {
			return config, err
		}
	}

	if config.IndexFile == "" {
		config.IndexFile = DefaultIndexFile
	}
	return config, nil
}

// applyProfile overlays profile on config. Keys absent from the profile
// keep their current value; lists and maps named by the profile are
// replaced rather than merged element by element.
func applyProfile(config *Config, profile map[string]any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create profile decoder")
	}
	if err := decoder.Decode(profile); err != nil {
		return errors.Wrap(err, "failed to apply profile configuration")
	}
	return nil
}
