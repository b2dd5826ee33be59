package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/compose"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Notes    vocanote.NoteService
	Notifier vocanote.Notifier
	Options  vocanote.RecognitionOptions

	// Subscribe, if set, streams the note collection after each change.
	Subscribe func(ctx context.Context) <-chan []*vocanote.Note

	// NewRecognizer returns a recognizer transcribing the given source.
	NewRecognizer func(source vocanote.AudioSource) vocanote.SpeechRecognizer

	// NewAudioSource returns a source reading the given audio files.
	NewAudioSource func(paths ...string) vocanote.AudioSource
}

// newComposer builds a Composer dictating from source, which may be nil.
func (d *Dependencies) newComposer(source vocanote.AudioSource) *compose.Composer {
	var recognizer vocanote.SpeechRecognizer
	if d.NewRecognizer != nil {
		recognizer = d.NewRecognizer(source)
	}
	c := compose.New(d.Notes, recognizer, d.Notifier, d.Logger)
	if d.Options.Lang != "" {
		c.Options = d.Options
	}
	return c
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add     AddCmd     `cmd:"" help:"Create a note from text"`
	Dictate DictateCmd `cmd:"" help:"Create a note by dictation from audio files"`
	List    ListCmd    `cmd:"" help:"List notes, optionally filtered by a search query"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a note"`
	Shell   ShellCmd   `cmd:"" help:"Start an interactive note session"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Content string `arg:"" help:"Note content"`
}

// DictateCmd is the "dictate" subcommand.
type DictateCmd struct {
	Files []string `arg:"" type:"path" help:"Audio files to transcribe, in order"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Search string `short:"s" help:"Show only notes containing this text (case-insensitive)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Note ID"`
}

// ShellCmd is the "shell" subcommand.
type ShellCmd struct {
	Watch bool `help:"Print the note list after every change"`
}
