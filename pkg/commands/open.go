package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/detour/pkg/commands/options"
	"tableflip.dev/detour/pkg/redirect"
	"tableflip.dev/detour/pkg/runner/open"
	"tableflip.dev/detour/pkg/store"
)

func addOpen(topLevel *cobra.Command) {
	do := &options.DestinationOptions{}

	cmd := &cobra.Command{
		Use:   "open [query|url|name]",
		Short: "Count down and open the destination in the browser.",
		Example: `
detour open
detour open club
detour open "to=https://foo.com/x&ref=abc"
detour open https://example.com --now
detour open "destination=not-a-url&session=99" --print
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			cfg := redirect.LoadConfig()
			if do.Destination != "" {
				cfg.BaseURL = do.Destination
			}
			if cmd.Flags().Changed("delay") {
				cfg.DelaySeconds = do.Delay
			}
			if cfg.DelaySeconds < 0 {
				cfg.DelaySeconds = 0
			}

			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}

			o := open.Open{
				Raw:         raw,
				Now:         do.Now,
				Print:       do.Print,
				Config:      cfg,
				Persistence: p,
			}
			return oo.HandleError(o.Do(cmd.Context()))
		},
	}

	options.AddDestinationArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
