package show

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/printers"
)

type Show struct {
	ID     string
	ShowID bool
	Lang   i18n.Language

	Journal *journal.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show, no journal")
	}
	e, err := n.Journal.Get(n.ID)
	if err != nil {
		return err
	}

	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: n.ShowID, Lang: n.Lang}
	pp.Detail(e)
	return nil
}
