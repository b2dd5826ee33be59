package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/vocanote"
)

// Run executes the dictate command. It records until the audio runs out
// or the context is cancelled, then saves the transcript.
func (c *DictateCmd) Run(deps *Dependencies) error {
	var source vocanote.AudioSource
	if deps.NewAudioSource != nil {
		source = deps.NewAudioSource(c.Files...)
	}
	composer := deps.newComposer(source)
	composer.OnChange = func(content string) {
		fmt.Fprintf(deps.Stderr, "… %s\n", content)
	}

	if err := composer.StartDictation(deps.Ctx); err != nil {
		// Unsupported dictation has already alerted the user.
		if vocanote.ErrorCode(err) != vocanote.EUNSUPPORTED {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vocanote.ErrorMessage(err))
		}
		return err
	}
	fmt.Fprintln(deps.Stderr, "Listening... press Ctrl-C to stop.")

	select {
	case <-composer.Done():
	case <-deps.Ctx.Done():
	}
	composer.StopDictation()

	// Interrupting stops the recording, not the save.
	note, err := composer.Commit(context.WithoutCancel(deps.Ctx))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocanote.ErrorMessage(err))
		return err
	}
	if note == nil {
		fmt.Fprintln(deps.Stdout, "No speech recognized. Nothing saved.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, vocanote.FormatNotes([]*vocanote.Note{note}))
	return nil
}
