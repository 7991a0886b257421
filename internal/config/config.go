package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/woliveiras/datafetch/pkg/fetch"
)

const (
	defaultConfigurationName = "datafetch"
	envPrefix                = "datafetch"
)

// Defaults describe the dataset fetched when nothing is configured.
const (
	DefaultRoot   = "tests/data"
	DefaultName   = "foundry"
	DefaultRemote = "https://github.com/NetlistIO/foundry-netlists.git"
)

// Config is the resolved configuration for one run.
type Config struct {
	Root     string `mapstructure:"root" yaml:"root"`
	Name     string `mapstructure:"name" yaml:"name"`
	Remote   string `mapstructure:"remote" yaml:"remote"`
	Depth    int    `mapstructure:"depth" yaml:"depth"`
	Cloner   string `mapstructure:"cloner" yaml:"cloner"`
	StateLog string `mapstructure:"state-log" yaml:"state-log"`
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
}

// FetchOptions converts the configuration into fetch.Options.
func (c Config) FetchOptions() fetch.Options {
	return fetch.Options{Root: c.Root, Name: c.Name, Remote: c.Remote, Depth: c.Depth}
}

// Validate rejects settings the fetcher cannot act on.
func (c Config) Validate() error {
	if c.Depth <= 0 {
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	if !slices.Contains(fetch.ClonerNames, strings.ToLower(strings.TrimSpace(c.Cloner))) {
		return fmt.Errorf("unknown cloner %q (want one of %s)", c.Cloner, strings.Join(fetch.ClonerNames, ", "))
	}
	return c.FetchOptions().Validate()
}

// New returns a viper instance with defaults and environment lookup set up.
// Environment variables use the DATAFETCH_ prefix with dashes mapped to
// underscores, e.g. DATAFETCH_STATE_LOG.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("root", DefaultRoot)
	v.SetDefault("name", DefaultName)
	v.SetDefault("remote", DefaultRemote)
	v.SetDefault("depth", fetch.DefaultDepth)
	v.SetDefault("cloner", fetch.ClonerExec)
	v.SetDefault("state-log", "")
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags makes flags in fs override file and environment values. Only
// flags named after config keys are bound.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || !isKey(f.Name) {
			return
		}
		bindErr = v.BindPFlag(f.Name, f)
	})
	return bindErr
}

func isKey(name string) bool {
	switch name {
	case "root", "name", "remote", "depth", "cloner", "state-log", "log-level":
		return true
	}
	return false
}

// Load reads configFile, or datafetch.yaml from the working directory when
// configFile is empty, and decodes the merged configuration. A missing
// default file is not an error; a missing explicit file is.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(defaultConfigurationName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error parsing configuration file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
