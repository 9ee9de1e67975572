package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/internal/command/flag"
	"github.com/strmbuild/strm/internal/command/term"
	"github.com/strmbuild/strm/internal/format"
	"github.com/strmbuild/strm/internal/format/json"
	"github.com/strmbuild/strm/internal/format/table"
	"github.com/strmbuild/strm/pkg/fmtstring"
	"github.com/strmbuild/strm/pkg/workspace"
)

const workspaceListLongHelp = `
List the open workspaces of the project.
Keys are abbreviated to the configured logging.key-length.
`

type workspaceListCmd struct {
	cobra.Command

	format *flag.Format
}

func init() {
	workspaceCmd.AddCommand(&newWorkspaceListCmd().Command)
}

func newWorkspaceListCmd() *workspaceListCmd {
	cmd := workspaceListCmd{
		Command: cobra.Command{
			Use:   "list",
			Short: "list the open workspaces of the project",
			Long:  strings.TrimSpace(workspaceListLongHelp),
			Args:  cobra.NoArgs,
		},
	}

	cmd.format = flag.NewFormatFlag()
	cmd.Flags().VarP(cmd.format, "format", "f", cmd.format.Usage(term.Highlight))
	_ = cmd.format.RegisterFlagCompletion(&cmd.Command)

	cmd.Run = cmd.run

	return &cmd
}

type workspaceRow struct {
	ws        *workspace.Workspace
	keyLength int
}

func (r *workspaceRow) AsMap(fields []string) map[string]any {
	res := make(map[string]any, len(fields))

	for _, f := range fields {
		switch f {
		case "element":
			res[f] = r.ws.Element
		case "path":
			res[f] = r.ws.Path
		case "key":
			res[f] = fmtstring.ShortKey(r.ws.Key, r.keyLength)
		case "last-build":
			res[f] = fmtstring.ShortKey(r.ws.LastBuild, r.keyLength)
		}
	}

	return res
}

func (c *workspaceListCmd) run(_ *cobra.Command, _ []string) {
	config := mustLoadConfig()

	p := mustFindProject()

	list, err := workspace.NewManager(p.Path, nil).List()
	exitOnErr(err)

	rows := make([]*workspaceRow, 0, len(list))
	for _, ws := range list {
		rows = append(rows, &workspaceRow{ws: ws, keyLength: config.Logging.KeyLength})
	}

	if c.format.Val == flag.FormatJSON {
		err := json.Encode(stdout, rows, []string{"element", "path", "key", "last-build"})
		exitOnErr(err)

		return
	}

	var formatter format.Formatter = table.New([]string{"Element", "Path", "Key", "Last Build"}, stdout)

	for _, row := range rows {
		mustWriteRow(formatter,
			row.ws.Element,
			row.ws.Path,
			fmtstring.ShortKey(row.ws.Key, row.keyLength),
			fmtstring.ShortKey(row.ws.LastBuild, row.keyLength),
		)
	}

	mustFlush(formatter)
}
