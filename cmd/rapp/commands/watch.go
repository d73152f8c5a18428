package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rapp/internal/adapters/watcher"
	"go.trai.ch/rapp/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show the app crate and rebuild the viewer when its sources change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ShowOptions: showOptions(cmd),
				Debounce:    debounce,
			})
		},
	}
	showFlags(cmd)
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period that ends a burst of changes")
	return cmd
}
