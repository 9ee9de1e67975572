package command

import (
	"fmt"
	"os"

	"github.com/strmbuild/strm/internal/format"
	"github.com/strmbuild/strm/internal/log"
	"github.com/strmbuild/strm/internal/prettyprint"
	"github.com/strmbuild/strm/pkg/cfg"
	"github.com/strmbuild/strm/pkg/cfg/resolver"
	"github.com/strmbuild/strm/pkg/project"
)

func exitOnErrf(err error, format string, v ...any) {
	exitOnErr(err, fmt.Sprintf(format, v...))
}

func exitOnErr(err error, msg ...any) {
	if err == nil {
		return
	}

	stderr.ErrPrintln(err, msg...)
	exitFunc(exitCodeError)
}

// mustLoadConfig loads the user configuration from the path passed via
// --config or the default location, applies STRM_* environment variable
// overrides and validates it.
func mustLoadConfig() *cfg.Config {
	config, err := cfg.Load(configFlag)
	exitOnErr(err, "loading configuration failed")

	err = config.MergeEnv(ctx)
	exitOnErr(err, "applying environment variables to the configuration failed")

	if err := config.Validate(); err != nil {
		if path := config.FilePath(); path != "" {
			exitOnErrf(err, "configuration file %q is invalid", path)
		}

		exitOnErr(err, "configuration is invalid")
	}

	if config.Logging.Debug {
		log.StdLogger.EnableDebug(true)
	}

	log.Debugf("effective configuration:\n%s\n", prettyprint.AsString(config))

	return config
}

// mustResolveConfigPaths resolves environment variables and '~' in the path
// values of the configuration.
func mustResolveConfigPaths(config *cfg.Config) {
	home, err := os.UserHomeDir()
	exitOnErr(err, "locating the home directory failed")

	err = config.Resolve(
		&resolver.EnvVar{Fallbacks: resolver.XDGFallbacks(home)},
		&resolver.HomeDir{Dir: home},
	)
	exitOnErr(err, "resolving configuration paths failed")
}

func mustFindProject() *project.Project {
	log.Debugln("searching for project root...")

	cwd, err := os.Getwd()
	exitOnErr(err)

	p, err := project.FindProject(cwd)
	exitOnErr(err)

	log.Debugf("project root found: %s\n", p.Path)

	return p
}

func mustWriteRow(fmt format.Formatter, row ...any) {
	err := fmt.WriteRow(row...)
	exitOnErr(err)
}

func mustFlush(fmt format.Formatter) {
	exitOnErr(fmt.Flush())
}
