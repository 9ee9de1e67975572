package cfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the user-configuration file.
	FileName = "strm.conf"

	// EnvVarConfigFile contains the name of an environment variable that
	// overrides the location of the user-configuration file.
	EnvVarConfigFile = "STRM_CONFIG"

	// envVarPrefix is the prefix of all environment variables that
	// override single configuration values.
	envVarPrefix = "STRM_"
)

// Config is the strm user configuration.
// All values have defaults, a configuration file only needs to specify the
// keys that deviate from them.
type Config struct {
	Paths     Paths     `yaml:",inline"`
	Cache     Cache     `yaml:"cache" env:", prefix=CACHE_"`
	Scheduler Scheduler `yaml:"scheduler" env:", prefix=SCHEDULER_"`
	Build     Build     `yaml:"build" env:", prefix=BUILD_"`
	Fetch     Fetch     `yaml:"fetch" env:", prefix=FETCH_"`
	Track     Track     `yaml:"track" env:", prefix=TRACK_"`
	Logging   Logging   `yaml:"logging" env:", prefix=LOGGING_"`

	filePath string
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Paths: Paths{
			SourceDir:    "${XDG_CACHE_HOME}/strm/sources",
			CacheDir:     "${XDG_CACHE_HOME}/strm",
			LogDir:       "${XDG_CACHE_HOME}/strm/logs",
			WorkspaceDir: ".",
		},

		Cache: Cache{
			Quota:           QuotaInfinity,
			PullBuildtrees:  false,
			CacheBuildtrees: TriStateAuto,
		},

		Scheduler: Scheduler{
			Fetchers:       10,
			Builders:       4,
			Pushers:        4,
			NetworkRetries: 2,
			OnError:        OnErrorQuit,
		},

		Build: Build{
			MaxJobs:      0,
			Dependencies: BuildDepsNone,
		},

		Fetch: Fetch{Source: SourceScopeAll},
		Track: Track{Source: SourceScopeAll},

		Logging: Logging{
			KeyLength:         8,
			Verbose:           true,
			ErrorLines:        20,
			MessageLines:      20,
			Debug:             false,
			ElementFormat:     "%{state: >12} %{full-key} %{name} %{workspace-dirs}",
			MessageFormat:     "[%{elapsed}][%{key}][%{element}] %{action} %{message}",
			ThrottleUIUpdates: true,
		},
	}
}

// DefaultPath returns the location of the user-configuration file.
// It is the value of the STRM_CONFIG environment variable if set, otherwise
// strm.conf in the user's configuration directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvVarConfigFile); path != "" {
		return path, nil
	}

	confDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating the user configuration directory failed: %w", err)
	}

	return filepath.Join(confDir, FileName), nil
}

// FromFile reads the user configuration from a file and returns it.
// Keys that are missing in the file keep their default values, keys that the
// schema does not define cause an error.
func FromFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	err = dec.Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	config.filePath = path

	return config, nil
}

// Load returns the user configuration from path.
// If path is empty, the default location is used and a missing file yields
// the default configuration. An explicitly passed path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""

	if !explicit {
		var err error

		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	config, err := FromFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}

		return nil, fmt.Errorf("reading configuration file %q failed: %w", path, err)
	}

	return config, nil
}

// MergeEnv overrides single configuration values with the values of set
// STRM_* environment variables, e.g. STRM_SCHEDULER_FETCHERS.
func (c *Config) MergeEnv(ctx context.Context) error {
	return envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   c,
		Lookuper: envconfig.PrefixLookuper(envVarPrefix, envconfig.OsLookuper()),
	})
}

// FilePath returns the path of the file the configuration was loaded from.
// It returns an empty string for the default configuration.
func (c *Config) FilePath() string {
	return c.filePath
}

// ToFile writes the configuration to filepath.
func (c *Config) ToFile(filepath string, opts ...toFileOpt) error {
	return toFile(c, filepath, opts...)
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if err := c.Paths.validate(); err != nil {
		return err
	}

	if err := c.Cache.validate(); err != nil {
		return fieldErrorWrap(err, "cache")
	}

	if err := c.Scheduler.validate(); err != nil {
		return fieldErrorWrap(err, "scheduler")
	}

	if err := c.Build.validate(); err != nil {
		return fieldErrorWrap(err, "build")
	}

	if err := c.Fetch.validate(); err != nil {
		return fieldErrorWrap(err, "fetch")
	}

	if err := c.Track.validate(); err != nil {
		return fieldErrorWrap(err, "track")
	}

	if err := c.Logging.validate(); err != nil {
		return fieldErrorWrap(err, "logging")
	}

	return nil
}

// Resolve applies the resolvers, in order, to all path values.
func (c *Config) Resolve(resolvers ...Resolver) error {
	return c.Paths.resolve(resolvers...)
}

func validateEnum[T ~string](val T, allowed ...T) error {
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}

	strs := make([]string, len(allowed))
	for i, a := range allowed {
		strs[i] = string(a)
	}

	return fmt.Errorf("invalid value %q, must be one of: %s",
		string(val), strings.Join(strs, ", "))
}
