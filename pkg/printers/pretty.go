package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/detour/pkg/dest"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Destinations renders saved destinations as a table.
func (pp *PrettyPrint) Destinations(dests ...*dest.Dest) {
	if len(dests) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Name"), b.Sprint("URL"), b.Sprint("Notes"))
	for _, d := range dests {
		tbl.AddRow(d.Name, d.URL, d.Notes)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// URL echoes a resolved redirect target.
func (pp *PrettyPrint) URL(u string) {
	c := color.New(color.FgHiCyan)
	_, _ = c.Println(u)
}
