package main

import (
	"fmt"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/browse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	b := browse.New(deps.Notes)
	b.SetQuery(c.Search)

	notes, err := b.Visible(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocanote.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		if c.Search != "" {
			fmt.Fprintf(deps.Stdout, "No notes match %q.\n", c.Search)
			return nil
		}
		fmt.Fprintln(deps.Stdout, "No notes yet. Use 'vocanote add' to create one.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, vocanote.FormatNotes(notes))
	return nil
}
