// Package legend provides CLI helpers to display the mood legend.
package legend

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lumiere/pkg/mood"
)

// Legend prints the mood glyphs and their meanings.
type Legend struct{}

func (k *Legend) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Moods"), bold.Sprint(""), bold.Sprint("Meaning"))
	for _, m := range mood.All() {
		g := m.Glyph()
		tbl.AddRow(g.Symbol, g.Name, g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	fmt.Println("")
	return nil
}
