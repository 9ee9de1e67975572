package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/internal/fs"
	"github.com/strmbuild/strm/internal/log"
	"github.com/strmbuild/strm/pkg/workspace"
)

var workspaceResetLongHelp = fmt.Sprintf(`
Discard the content of the workspace of an element.
The current local sources of the element are staged into the workspace
directory again and a recorded last build is cleared.

Exit Codes:
  %d - Success
  %d - Error
  %d - No workspace is open for the element
`,
	exitCodeSuccess,
	exitCodeError,
	exitCodeNotExist,
)

type workspaceResetCmd struct {
	cobra.Command
}

func init() {
	workspaceCmd.AddCommand(&newWorkspaceResetCmd().Command)
}

func newWorkspaceResetCmd() *workspaceResetCmd {
	cmd := workspaceResetCmd{
		Command: cobra.Command{
			Use:   "reset ELEMENT",
			Short: "discard the workspace content of an element and restage its sources",
			Long:  strings.TrimSpace(workspaceResetLongHelp),
			Args:  cobra.ExactArgs(1),
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func (c *workspaceResetCmd) run(_ *cobra.Command, args []string) {
	element := args[0]

	config := mustLoadConfig()
	mustResolveConfigPaths(config)

	printer := mustNewMessagePrinter(config, stdout)
	exitOnErr(printer.enableSessionLog(config.Paths.LogDir))
	defer printer.Close()

	p := mustFindProject()

	srcDir := p.ElementSourceDir(element)
	if isDir, err := fs.IsDir(srcDir); err != nil || !isDir {
		stderr.Printf("element %q has no local sources in %s\n", element, srcDir)
		exitFunc(exitCodeError)
		return
	}

	mgr := workspace.NewManager(p.Path, log.Debugf)

	printer.Print(element, "", "start", "restaging sources")

	ws, err := mgr.Reset(element, srcDir)
	if err != nil {
		if errors.Is(err, workspace.ErrNotExist) {
			stderr.ErrPrintln(err)
			exitFunc(exitCodeNotExist)
			return
		}

		exitOnErrf(err, "resetting workspace of %q failed", element)
	}

	printer.Print(element, ws.Key, "success", fmt.Sprintf("workspace reset in %s", ws.Path))
}
