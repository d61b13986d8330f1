package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/detour/pkg/runner/get"
	"tableflip.dev/detour/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get [name]",
		Short: "List saved destinations, or show one by name.",
		Example: `
detour get
detour get club
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			g := get.Get{Persistence: p}
			if len(args) == 1 {
				g.Name = args[0]
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
