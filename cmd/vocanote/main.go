package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/fs"
	"github.com/fwojciec/vocanote/gemini"
	locslog "github.com/fwojciec/vocanote/slog"
	"github.com/fwojciec/vocanote/sqlite"
	"github.com/fwojciec/vocanote/store"
	"github.com/spf13/afero"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration. Loaded from the environment by Run when nil.
	Config *Config

	// Filesystem used for the file slot and audio input.
	Fs afero.Fs

	// Stdin feeds the interactive shell.
	Stdin io.Reader

	// SQLite database, when the sqlite storage backend is selected.
	DB *sqlite.DB

	// Note store for end-to-end testing.
	Notes *store.NoteService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Fs:    afero.NewOsFs(),
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vocanote"),
		kong.Description("Capture notes by typing or dictation, and search them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vocanote --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		m.Config = cfg
	}

	logger, err := NewLogger(stderr, m.Config.LogLevel, m.Config.LogPretty)
	if err != nil {
		return err
	}
	deps.Logger = logger

	slot, err := m.openSlot()
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set VOCANOTE_DIR to use a different data directory\n")
		return err
	}
	defer m.Close()

	m.Notes = store.NewNoteService(locslog.NewLoggingSlot(slot, logger), logger)
	m.Notes.Load(ctx)

	deps.Notes = locslog.NewLoggingNoteService(m.Notes, logger)
	deps.Subscribe = m.Notes.Subscribe
	deps.Notifier = NewNotifier(stdout, stderr)
	deps.Options = m.Config.RecognitionOptions()

	// Speech capability is detected once: without an API key every
	// dictation attempt reports the feature as unsupported.
	deps.NewRecognizer = func(vocanote.AudioSource) vocanote.SpeechRecognizer {
		return vocanote.UnavailableRecognizer{}
	}
	if cmd == "dictate" || cmd == "shell" {
		if m.Config.APIKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  m.Config.APIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.NewRecognizer = func(source vocanote.AudioSource) vocanote.SpeechRecognizer {
				return locslog.NewLoggingRecognizer(gemini.NewRecognizer(client.Models, source, m.Config.Model), logger)
			}
		}
	}
	deps.NewAudioSource = func(paths ...string) vocanote.AudioSource {
		return fs.NewAudioFiles(m.Fs, paths...)
	}

	return kongCtx.Run(deps)
}

// openSlot opens the configured storage backend for the notes slot.
func (m *Main) openSlot() (vocanote.Slot, error) {
	switch m.Config.Storage {
	case StorageFile:
		return fs.NewSlot(m.Fs, m.Config.Dir, vocanote.NotesKey), nil
	case StorageSQLite:
		if err := m.Fs.MkdirAll(m.Config.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		path := filepath.Join(m.Config.Dir, "vocanote.db")
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewSlot(m.DB, vocanote.NotesKey), nil
	}
	return nil, vocanote.Errorf(vocanote.EINVALID, "unknown storage backend %q", m.Config.Storage)
}
