package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/internal/command/term"
	"github.com/strmbuild/strm/pkg/cfg"
)

var configValidateLongHelp = fmt.Sprintf(`
Parse and validate a configuration file.
If FILE is not passed, the configuration file at the default location is
validated.

Exit Codes:
  %d - Success
  %d - Configuration file is invalid
  %d - Configuration file does not exist
`,
	exitCodeSuccess,
	exitCodeError,
	exitCodeNotExist,
)

type configValidateCmd struct {
	cobra.Command
}

func init() {
	configCmd.AddCommand(&newConfigValidateCmd().Command)
}

func newConfigValidateCmd() *configValidateCmd {
	cmd := configValidateCmd{
		Command: cobra.Command{
			Use:   "validate [FILE]",
			Short: "validate a configuration file",
			Long:  strings.TrimSpace(configValidateLongHelp),
			Args:  cobra.MaximumNArgs(1),
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func (c *configValidateCmd) run(_ *cobra.Command, args []string) {
	var path string
	var err error

	if len(args) == 1 {
		path = args[0]
	} else if path = configFlag; path == "" {
		path, err = cfg.DefaultPath()
		exitOnErr(err)
	}

	config, err := cfg.FromFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			stderr.Printf("%s does not exist\n", path)
			exitFunc(exitCodeNotExist)
			return
		}

		exitOnErrf(err, "parsing %s failed", path)
	}

	err = config.Validate()
	exitOnErrf(err, "%s is invalid", path)

	stdout.Printf("%s: %s\n", term.Highlight(path), term.GreenHighlight("configuration is valid"))
}
