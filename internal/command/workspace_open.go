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

var workspaceOpenLongHelp = fmt.Sprintf(`
Open a workspace for an element.
The local sources of the element are staged into DIR, builds of the element
then use the workspace content instead of the tracked sources.

Exit Codes:
  %d - Success
  %d - Error
  %d - A workspace for the element is already open
`,
	exitCodeSuccess,
	exitCodeError,
	exitCodeAlreadyExist,
)

type workspaceOpenCmd struct {
	cobra.Command
}

func init() {
	workspaceCmd.AddCommand(&newWorkspaceOpenCmd().Command)
}

func newWorkspaceOpenCmd() *workspaceOpenCmd {
	cmd := workspaceOpenCmd{
		Command: cobra.Command{
			Use:   "open ELEMENT DIR",
			Short: "open a workspace for an element",
			Long:  strings.TrimSpace(workspaceOpenLongHelp),
			Args:  cobra.ExactArgs(2),
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func (c *workspaceOpenCmd) run(_ *cobra.Command, args []string) {
	element := args[0]
	dir := args[1]

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

	printer.Print(element, "", "start", "staging sources")

	ws, err := mgr.Open(element, srcDir, dir)
	if err != nil {
		if errors.Is(err, workspace.ErrExists) {
			stderr.ErrPrintln(err)
			exitFunc(exitCodeAlreadyExist)
			return
		}

		exitOnErrf(err, "opening workspace for %q failed", element)
	}

	printer.Print(element, ws.Key, "success", fmt.Sprintf("workspace opened in %s", ws.Path))
}
