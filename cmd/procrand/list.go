package main

import (
	"fmt"

	pcore "procrand/pkg/core"
	"procrand/pkg/shuffle"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generators and shuffler kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "generators:")
			for _, name := range pcore.Names() {
				fmt.Fprintln(out, "  "+name)
			}
			fmt.Fprintln(out, "shufflers:")
			for _, k := range shuffle.Kinds() {
				fmt.Fprintln(out, "  "+string(k))
			}
			return nil
		},
	}
}
