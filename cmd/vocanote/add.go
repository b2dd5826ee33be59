package main

import (
	"fmt"

	"github.com/fwojciec/vocanote"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	composer := deps.newComposer(nil)
	if err := composer.ChooseText(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocanote.ErrorMessage(err))
		return err
	}
	composer.ChangeContent(c.Content)

	note, err := composer.Commit(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocanote.ErrorMessage(err))
		return err
	}
	if note == nil {
		fmt.Fprintf(deps.Stderr, "error: note content is empty\n")
		return vocanote.Errorf(vocanote.EINVALID, "note content is empty")
	}

	fmt.Fprintln(deps.Stdout, vocanote.FormatNotes([]*vocanote.Note{note}))
	return nil
}
