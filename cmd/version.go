package cmd

import (
	"fmt"

	"github.com/Gthulhu/kanagawa/rest"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the engine version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kanagawa %s\n", rest.Version)
		},
	}
}
