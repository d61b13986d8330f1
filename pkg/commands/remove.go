package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/detour/pkg/runner/remove"
	"tableflip.dev/detour/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <name>",
		Short:   "Delete a saved destination.",
		Aliases: []string{"rm"},
		Example: `
detour remove club
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := remove.Remove{Name: args[0], Persistence: p}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
