// Package config loads cmd/zhconv's configuration via viper, and binds
// environment variables onto cobra/pflag flags the way
// open-policy-agent/opa's cmd/internal/env package does. Most of it
// (dictionary path, log level, cache size) is demo-CLI plumbing with no
// counterpart in package conversion; Weights is the exception — it is
// conversion.Weights itself, handed to conversion.NewConversionEngine
// via conversion.WithWeights.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-chewing/chewconv/conversion"
)

const envPrefix = "ZHCONV"

// Weights overrides the §4.4 scoring weights (1000, 1000, 100, 1 by
// default). It is an alias of conversion.Weights: the engine itself
// consumes the same value via conversion.WithWeights, so a weights
// override in a config file actually changes how Convert/ConvertNext
// score paths, not just what the CLI reports.
type Weights = conversion.Weights

// DefaultWeights are the weights named in §4.4.
func DefaultWeights() Weights {
	return conversion.DefaultWeights()
}

// Config is cmd/zhconv's configuration document.
type Config struct {
	DictionaryPath string  `mapstructure:"dictionary_path" yaml:"dictionary_path"`
	LogLevel       string  `mapstructure:"log_level" yaml:"log_level"`
	CacheSize      int     `mapstructure:"cache_size" yaml:"cache_size"`
	Weights        Weights `mapstructure:"weights" yaml:"weights"`
}

// Default returns the zero-config baseline.
func Default() Config {
	return Config{
		LogLevel:  "info",
		CacheSize: 4096,
		Weights:   DefaultWeights(),
	}
}

// Load reads path (a YAML document) over the default config. An empty
// path returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}

// BindEnvironmentVariables maps ZHCONV_<FLAG_NAME> environment variables
// onto any unset flag on cmd, mirroring
// open-policy-agent/opa/cmd/internal/env.CheckEnvironmentVariables.
func BindEnvironmentVariables(cmd *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return errors.Errorf("config: error mapping environment variables to flags: %s", strings.Join(errs, "; "))
}
