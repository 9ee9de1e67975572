package command

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/internal/command/term"
	"github.com/strmbuild/strm/internal/log"
	"github.com/strmbuild/strm/internal/version"
	"github.com/strmbuild/strm/pkg/cfg"
)

var rootCmd = &cobra.Command{
	Use:              "strm",
	Short:            "strm builds the elements of a project from their sources.",
	PersistentPreRun: initStrm,
}

var verboseFlag bool
var noColorFlag bool
var configFlag string

var ctx = context.Background()

var stdout = term.NewStream(os.Stdout)
var stderr = term.NewStream(os.Stderr)

var exitFunc = func(code int) { os.Exit(code) }

func initStrm(_ *cobra.Command, _ []string) {
	if verboseFlag {
		log.StdLogger.EnableDebug(verboseFlag)
	}

	if noColorFlag {
		color.NoColor = true
	}
}

// Execute parses commandline flags and execute their actions
func Execute() {
	if err := version.LoadPackageVars(); err != nil {
		stderr.Printf("setting version failed: %s\n", err)
	}
	rootCmd.Version = version.CurSemVer.String()

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path of the user configuration file,\ndefault: $"+cfg.EnvVarConfigFile+" or "+cfg.FileName+" in the user config directory")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable color output")

	err := rootCmd.Execute()
	exitOnErr(err)
}
