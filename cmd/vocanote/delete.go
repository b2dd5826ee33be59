package main

import (
	"fmt"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/browse"
)

// Run executes the delete command. Deleting an unknown ID succeeds.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if c.ID == "" {
		fmt.Fprintf(deps.Stderr, "error: note ID required\n")
		return vocanote.Errorf(vocanote.EINVALID, "note ID required")
	}

	if err := browse.New(deps.Notes).Delete(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocanote.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted note %s\n", c.ID)
	return nil
}
