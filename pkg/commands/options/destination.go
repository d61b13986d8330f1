// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/detour/pkg/redirect"
)

// DestinationOptions captures the redirect flags for the open command.
type DestinationOptions struct {
	Destination string
	Delay       int
	Now         bool
	Print       bool
}

// AddDestinationArgs wires redirect-related flags on the provided command.
func AddDestinationArgs(cmd *cobra.Command, o *DestinationOptions) {
	cmd.Flags().StringVarP(&o.Destination, "dest", "d", "",
		"Override the default destination URL.")
	cmd.Flags().IntVar(&o.Delay, "delay", redirect.DefaultDelaySeconds,
		"Countdown length in seconds.")
	cmd.Flags().BoolVar(&o.Now, "now", false,
		"Skip the countdown and redirect immediately.")
	cmd.Flags().BoolVar(&o.Print, "print", false,
		"Print the resolved URL instead of opening a browser.")
}

// NotesOptions captures the optional note attached to a saved destination.
type NotesOptions struct {
	Notes string
}

// AddNotesArg wires the notes flag on the provided command.
func AddNotesArg(cmd *cobra.Command, o *NotesOptions) {
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Attach a note to the destination.")
}
