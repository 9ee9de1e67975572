package command

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "inspect and validate the user configuration",
}

func init() {
	rootCmd.AddCommand(configCmd)
}
