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

var initProjectLongHelp = fmt.Sprintf(`
Create a project configuration file.
The file marks the root directory of a project, the sources of its elements
are placed in the element-path directory below it.
If DIR is not passed, the file is created in the current directory.

Exit Codes:
  %d - Success
  %d - Error
  %d - Project configuration file already exist
`,
	exitCodeSuccess,
	exitCodeError,
	exitCodeAlreadyExist,
)

type initProjectCmd struct {
	cobra.Command
}

func init() {
	initCmdRoot.AddCommand(&newInitProjectCmd().Command)
}

func newInitProjectCmd() *initProjectCmd {
	cmd := initProjectCmd{
		Command: cobra.Command{
			Use:   "project NAME [DIR]",
			Short: "create a project configuration file",
			Long:  strings.TrimSpace(initProjectLongHelp),
			Args:  cobra.RangeArgs(1, 2),
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func (c *initProjectCmd) run(_ *cobra.Command, args []string) {
	name := args[0]

	var dir string
	var err error

	if len(args) == 2 {
		dir = args[1]
	} else {
		dir, err = os.Getwd()
		exitOnErr(err)
	}

	projectCfg := cfg.ExampleProject(name)
	exitOnErr(projectCfg.Validate())

	cfgPath := filepath.Join(dir, cfg.ProjectFileName)

	err = projectCfg.ToFile(cfgPath)
	if err != nil {
		if os.IsExist(err) {
			stderr.Printf("%s already exist\n", cfgPath)
			exitFunc(exitCodeAlreadyExist)
			return
		}

		exitOnErr(err)
	}

	stdout.Printf("Project configuration was written to %s\n", term.Highlight(cfgPath))
	stdout.Printf("Place the sources of your elements in %s and run '%s' to work on them.\n",
		term.Highlight(filepath.Join(dir, projectCfg.ElementPath, "<NAME>")),
		term.Highlight("strm workspace open"))
}
