// Package app loads the command line configuration from defaults, an
// optional halite.yaml, HALITE_* environment variables and flags.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "HALITE"

// DefaultMembers is the bot source bundle the original submission held.
var DefaultMembers = []string{"pretty_printing.h", "hlt.hpp", "networking.hpp", "MyBot.cpp"}

var validate = validator.New()

// Config represents the resolved settings for one invocation.
type Config struct {
	LogLevel  string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string        `mapstructure:"log_format" validate:"oneof=console json"`
	Buffered  bool          `mapstructure:"buffered"`
	Workers   int           `mapstructure:"workers" validate:"gte=0,lte=256"`
	Archive   ArchiveConfig `mapstructure:"archive"`
}

// ArchiveConfig configures the submission packager. An empty member list is
// accepted here and rejected by the packager, so commands that never pack
// are not affected by it.
type ArchiveConfig struct {
	Output  string   `mapstructure:"output" validate:"required"`
	Dir     string   `mapstructure:"dir"`
	Members []string `mapstructure:"members" validate:"dive,required"`
	Deflate bool     `mapstructure:"deflate"`
}

// configKey is the flag annotation naming the config key a flag overrides.
const configKey = "halite_config_key"

func bind(fs *pflag.FlagSet, name, key string) {
	_ = fs.SetAnnotation(name, configKey, []string{key})
}

// BindLogging attaches the logging flags shared by every command.
func BindLogging(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console, json)")
	bind(fs, "log-level", "log_level")
	bind(fs, "log-format", "log_format")
}

// BindEmit attaches the flags controlling protocol emission.
func BindEmit(fs *pflag.FlagSet) {
	fs.Bool("buffered", false, "write output only after every transition rendered")
	fs.Int("workers", 0, "render transitions concurrently with this many workers")
	bind(fs, "buffered", "buffered")
	bind(fs, "workers", "workers")
}

// BindArchive attaches the packager flags.
func BindArchive(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "a.zip", "archive to write")
	fs.String("dir", "", "directory member paths are relative to")
	fs.Bool("deflate", false, "compress members instead of storing them")
	bind(fs, "output", "archive.output")
	bind(fs, "dir", "archive.dir")
	bind(fs, "deflate", "archive.deflate")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("buffered", false)
	v.SetDefault("workers", 0)
	v.SetDefault("archive.output", "a.zip")
	v.SetDefault("archive.dir", "")
	v.SetDefault("archive.members", DefaultMembers)
	v.SetDefault("archive.deflate", false)
}

// Load resolves the configuration. configFile may be empty, in which case
// ./halite.yaml is read if present. Flags registered through the Bind
// helpers that the user set take precedence over every other source; other
// flags in fs are ignored.
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("halite")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			keys := f.Annotations[configKey]
			if len(keys) == 0 || bindErr != nil {
				return
			}
			if err := v.BindPFlag(keys[0], f); err != nil {
				bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
