package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/internal/command/term"
	"github.com/strmbuild/strm/pkg/cfg"
)

var initLongHelp = fmt.Sprintf(`
Create a user configuration file with the default values.
All lines in the file are commented out, uncomment and adapt the settings
that should differ from the defaults.
If no argument is passed, the file is created in the current directory.

To create a project configuration file instead, run 'strm init project'.

Exit Codes:
  %d - Success
  %d - Error
  %d - Configuration file already exist
`,
	exitCodeSuccess,
	exitCodeError,
	exitCodeAlreadyExist,
)

type initCmd struct {
	cobra.Command
}

// initCmdRoot is shared so that the init subcommands can attach themselves.
var initCmdRoot = newInitCmd()

func init() {
	rootCmd.AddCommand(&initCmdRoot.Command)
}

func newInitCmd() *initCmd {
	cmd := initCmd{
		Command: cobra.Command{
			Use:   "init [DIR]",
			Short: "create a user configuration file",
			Long:  strings.TrimSpace(initLongHelp),
			Args:  cobra.MaximumNArgs(1),
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func (c *initCmd) run(_ *cobra.Command, args []string) {
	var dir string
	var err error

	if len(args) == 1 {
		dir = args[0]
	} else {
		dir, err = os.Getwd()
		exitOnErr(err)
	}

	cfgPath := filepath.Join(dir, cfg.FileName)

	err = cfg.Default().ToFile(cfgPath, cfg.ToFileOptCommented())
	if err != nil {
		if os.IsExist(err) {
			stderr.Printf("%s already exist\n", cfgPath)
			exitFunc(exitCodeAlreadyExist)
		}

		exitOnErr(err)
	}

	stdout.Printf("Configuration was written to %s\n", term.Highlight(cfgPath))
	stdout.Printf("strm loads the file from %s or the path in the $%s environment variable.\n",
		term.Highlight(filepath.Join("<USER-CONFIG-DIR>", cfg.FileName)),
		term.Highlight(cfg.EnvVarConfigFile))
}
