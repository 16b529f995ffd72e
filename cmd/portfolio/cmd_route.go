package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a site path to its page and parameters",
		Example: `  portfolio resolve /projects/42
  portfolio resolve "/manage/projects/7?tab=images"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := c.container.Router.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("resolve %q: %w", args[0], err)
			}
			return printJSON(cmd.OutOrStdout(), route)
		},
	}
}

func (c *cli) pageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page <path>",
		Short: "Resolve a site path and load the data its page shows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, data, err := c.container.Dispatcher.Dispatch(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load %s page for %q: %w", route.Kind, args[0], err)
			}
			return c.print(cmd.OutOrStdout(), data)
		},
	}
}
