package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rapp/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the cache directory of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Dir: dir})
		},
	}
}
