package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rapp/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a new app crate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if len(args) == 1 {
				dir = args[0]
			}
			name, _ := cmd.Flags().GetString("name")

			return c.app.Init(cmd.Context(), app.InitOptions{
				Dir:  dir,
				Name: name,
			})
		},
	}
	cmd.Flags().String("name", "", "Crate name (defaults to the directory name)")
	return cmd
}
