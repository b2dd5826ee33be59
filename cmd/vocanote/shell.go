package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/browse"
	"github.com/fwojciec/vocanote/compose"
	"golang.org/x/sync/errgroup"
)

const shellHelp = `Commands:
  text            start typing a new note
  dictate FILE... start dictating from audio files
  stop            stop dictation and keep the transcript
  set TEXT        replace the note being written
  clear           clear the note being written
  save            save the note being written
  status          show the note being written
  search [QUERY]  filter the note list (no query shows all)
  list            show the note list
  delete ID       delete a note
  help            show this help
  quit            leave the shell (Ctrl-C also works)`

// Run executes the shell command.
func (c *ShellCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	sh := &shell{
		deps:    deps,
		out:     &syncWriter{w: deps.Stdout},
		browser: browse.New(deps.Notes),
	}
	sh.composer = sh.newComposer(nil)
	defer func() { _ = sh.composer.Close() }()

	g, ctx := errgroup.WithContext(ctx)
	if c.Watch && deps.Subscribe != nil {
		updates := deps.Subscribe(ctx)
		g.Go(func() error {
			_ = sh.browser.Watch(ctx, updates, sh.render)
			return nil
		})
	}

	err := sh.loop(ctx)
	cancel()
	_ = g.Wait()
	return err
}

// shell is the state of one interactive session.
type shell struct {
	deps     *Dependencies
	out      *syncWriter
	browser  *browse.Browser
	composer *compose.Composer
}

func (sh *shell) newComposer(source vocanote.AudioSource) *compose.Composer {
	c := sh.deps.newComposer(source)
	c.OnChange = func(content string) {
		sh.out.printf("… %s\n", content)
	}
	return c
}

func (sh *shell) loop(ctx context.Context) error {
	sh.out.printf("%s\n", onboarding)

	// The reader may stay blocked on stdin after ctx is done; the process
	// is exiting by then.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(sh.deps.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		sh.out.printf("> ")

		var line string
		select {
		case <-ctx.Done():
			sh.out.printf("\n")
			return nil
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			line = l
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		if name == "" {
			continue
		}
		if name == "quit" || name == "exit" {
			return nil
		}
		if err := sh.exec(ctx, name, arg); err != nil {
			sh.out.printf("error: %s\n", vocanote.ErrorMessage(err))
		}
	}
}

const onboarding = "Type 'text' to write a note or 'dictate FILE...' to dictate one. 'help' lists all commands."

func (sh *shell) exec(ctx context.Context, name, arg string) error {
	switch name {
	case "text":
		if err := sh.composer.ChooseText(); err != nil {
			return err
		}
		sh.out.printf("Writing a new note. Use 'set TEXT' then 'save'.\n")
	case "dictate":
		files := strings.Fields(arg)
		if len(files) == 0 {
			return vocanote.Errorf(vocanote.EINVALID, "usage: dictate FILE...")
		}
		if sh.composer.State() != compose.StateIdle {
			return vocanote.Errorf(vocanote.EINVALID, "finish the current note first")
		}
		var source vocanote.AudioSource
		if sh.deps.NewAudioSource != nil {
			source = sh.deps.NewAudioSource(files...)
		}
		_ = sh.composer.Close()
		sh.composer = sh.newComposer(source)
		if err := sh.composer.StartDictation(ctx); err != nil {
			if vocanote.ErrorCode(err) == vocanote.EUNSUPPORTED {
				sh.out.printf("%s\n", onboarding)
				return nil
			}
			return err
		}
		sh.out.printf("Recording. Use 'stop' to finish.\n")
	case "stop":
		sh.composer.StopDictation()
		sh.status()
	case "set":
		sh.composer.ChangeContent(arg)
		sh.status()
	case "clear":
		sh.composer.ChangeContent("")
		sh.status()
	case "status":
		sh.status()
	case "save":
		note, err := sh.composer.Commit(ctx)
		if err != nil {
			return err
		}
		if note == nil {
			sh.out.printf("Nothing to save.\n")
		}
	case "search":
		sh.browser.SetQuery(arg)
		return sh.list(ctx)
	case "list":
		return sh.list(ctx)
	case "delete":
		if arg == "" {
			return vocanote.Errorf(vocanote.EINVALID, "usage: delete ID")
		}
		if err := sh.browser.Delete(ctx, arg); err != nil {
			return err
		}
		sh.out.printf("Deleted note %s\n", arg)
	case "help":
		sh.out.printf("%s\n", shellHelp)
	default:
		return vocanote.Errorf(vocanote.EINVALID, "unknown command %q. Type 'help' for commands", name)
	}
	return nil
}

func (sh *shell) status() {
	switch sh.composer.State() {
	case compose.StateIdle:
		sh.out.printf("%s\n", onboarding)
	case compose.StateRecording:
		sh.out.printf("[recording] %s\n", sh.composer.Content())
	default:
		sh.out.printf("[editing] %s\n", sh.composer.Content())
	}
}

func (sh *shell) list(ctx context.Context) error {
	notes, err := sh.browser.Visible(ctx)
	if err != nil {
		return err
	}
	sh.render(notes)
	return nil
}

func (sh *shell) render(notes []*vocanote.Note) {
	if len(notes) == 0 {
		sh.out.printf("No notes.\n")
		return
	}
	sh.out.printf("%s\n", vocanote.FormatNotes(notes))
}

// syncWriter serializes writes from the input loop and background
// recognizer and watch goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) printf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.w, format, args...)
}
