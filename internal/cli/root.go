package cli

import (
	"github.com/opsdeck/opsdeck/internal/config"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "opsdeck",
		Short:   "Opsdeck - generic console engine for OpenAPI-described products",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	config.BindCommonFlags(root)
	root.AddCommand(DiscoverCommand(), ClassifyCommand())

	return root
}
