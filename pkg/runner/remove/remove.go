package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lumiere/pkg/journal"
)

type Remove struct {
	ID string

	Journal *journal.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not delete, no journal")
	}
	if err := n.Journal.Delete(ctx, n.ID); err != nil {
		return err
	}
	n.Journal.Flush(ctx)
	fmt.Printf("deleted %s\n", n.ID)
	return nil
}
