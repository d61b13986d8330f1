// Package theme centralizes Lip Gloss styles for the countdown UI.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used by the countdown view.
type Theme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Digits lipgloss.Style
	Target lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		Title:  lipgloss.NewStyle().Bold(true),
		Digits: lipgloss.NewStyle().Bold(true),
		Target: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// CountdownColor blends from calm to urgent as the countdown runs out.
func CountdownColor(remaining, total int) color.Color {
	if total < 1 {
		total = 1
	}
	t := float64(remaining) / float64(total)
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	urgent, _ := colorful.Hex("#FF5F87")
	calm, _ := colorful.Hex("#04B575")
	c := urgent.BlendLuv(calm, t).Clamped()
	return lipgloss.Color(c.Hex())
}
