package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/pkg/cfg"
)

const configPathLongHelp = `
Print the path of the configuration file that strm would load.
The file does not need to exist, strm falls back to the default
configuration when it is missing.
`

type configPathCmd struct {
	cobra.Command
}

func init() {
	configCmd.AddCommand(&newConfigPathCmd().Command)
}

func newConfigPathCmd() *configPathCmd {
	cmd := configPathCmd{
		Command: cobra.Command{
			Use:   "path",
			Short: "print the path of the configuration file",
			Long:  strings.TrimSpace(configPathLongHelp),
			Args:  cobra.NoArgs,
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func (c *configPathCmd) run(_ *cobra.Command, _ []string) {
	path := configFlag

	if path == "" {
		var err error

		path, err = cfg.DefaultPath()
		exitOnErr(err)
	}

	stdout.Println(path)
}
