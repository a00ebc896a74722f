package list

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/printers"
	"tableflip.dev/lumiere/pkg/query"
)

type List struct {
	Query  string
	Table  bool
	ShowID bool
	Lang   i18n.Language

	Journal *journal.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list, no journal")
	}
	fmt.Println("")

	entries := query.Search(n.Journal.List(), n.Query)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Lang: n.Lang}
	title := "Journal"
	if n.Query != "" {
		title = fmt.Sprintf("Journal matching %q", n.Query)
	}
	pp.TitleWithCount(title, len(entries))

	if n.Table {
		pp.Table(entries...)
		return nil
	}
	pp.Entries(entries...)
	return nil
}
