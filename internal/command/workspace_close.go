package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/internal/log"
	"github.com/strmbuild/strm/pkg/workspace"
)

var workspaceCloseLongHelp = fmt.Sprintf(`
Close the workspace of an element.
Builds of the element use its tracked sources again.
The workspace directory and its content are kept.

Exit Codes:
  %d - Success
  %d - Error
  %d - No workspace is open for the element
`,
	exitCodeSuccess,
	exitCodeError,
	exitCodeNotExist,
)

type workspaceCloseCmd struct {
	cobra.Command
}

func init() {
	workspaceCmd.AddCommand(&newWorkspaceCloseCmd().Command)
}

func newWorkspaceCloseCmd() *workspaceCloseCmd {
	cmd := workspaceCloseCmd{
		Command: cobra.Command{
			Use:   "close ELEMENT",
			Short: "close the workspace of an element",
			Long:  strings.TrimSpace(workspaceCloseLongHelp),
			Args:  cobra.ExactArgs(1),
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func (c *workspaceCloseCmd) run(_ *cobra.Command, args []string) {
	element := args[0]

	config := mustLoadConfig()
	mustResolveConfigPaths(config)

	printer := mustNewMessagePrinter(config, stdout)
	exitOnErr(printer.enableSessionLog(config.Paths.LogDir))
	defer printer.Close()

	p := mustFindProject()
	mgr := workspace.NewManager(p.Path, log.Debugf)

	ws, err := mgr.Get(element)
	if err == nil {
		err = mgr.Close(element)
	}

	if err != nil {
		if errors.Is(err, workspace.ErrNotExist) {
			stderr.ErrPrintln(err)
			exitFunc(exitCodeNotExist)
			return
		}

		exitOnErrf(err, "closing workspace of %q failed", element)
	}

	printer.Print(element, ws.Key, "success",
		fmt.Sprintf("workspace closed, directory %s is kept", ws.Path))
}
