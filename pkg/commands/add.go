package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/detour/pkg/commands/options"
	"tableflip.dev/detour/pkg/runner/add"
	"tableflip.dev/detour/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	no := &options.NotesOptions{}

	cmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Save a named destination.",
		Example: `
detour add club https://www.example.com/club-login
detour add docs https://pkg.go.dev --notes "stdlib reference"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				Name:        args[0],
				URL:         args[1],
				Notes:       no.Notes,
				Persistence: p,
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddNotesArg(cmd, no)

	topLevel.AddCommand(cmd)
}
