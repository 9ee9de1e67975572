package command

import (
	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "manage element workspaces",
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}
