package fs

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/vocanote"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// Ensure AudioFiles implements vocanote.AudioSource at compile time.
var _ vocanote.AudioSource = (*AudioFiles)(nil)

// AudioFiles yields one audio segment per file, in the order given.
type AudioFiles struct {
	fs    afero.Fs
	paths []string

	mu   sync.Mutex
	next int
}

// NewAudioFiles creates an AudioFiles source over paths on fsys.
func NewAudioFiles(fsys afero.Fs, paths ...string) *AudioFiles {
	return &AudioFiles{fs: fsys, paths: paths}
}

// Next reads the next file. Returns io.EOF after the last file and
// EINVALID for files that do not contain audio.
func (a *AudioFiles) Next(ctx context.Context) (*vocanote.AudioSegment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	if a.next >= len(a.paths) {
		a.mu.Unlock()
		return nil, io.EOF
	}
	path := a.paths[a.next]
	a.next++
	a.mu.Unlock()

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio %s: %w", path, err)
	}

	mimeType, ok := DetectAudio(data)
	if !ok {
		return nil, vocanote.Errorf(vocanote.EINVALID, "%s is not an audio file (%s)", filepath.Base(path), mimeType)
	}

	return &vocanote.AudioSegment{
		Name:     filepath.Base(path),
		Data:     data,
		MIMEType: mimeType,
	}, nil
}

// DetectAudio returns the MIME type of data without parameters and whether
// it is an audio container.
func DetectAudio(data []byte) (string, bool) {
	mt := mimetype.Detect(data)
	mimeType, _, _ := strings.Cut(mt.String(), ";")

	switch {
	case strings.HasPrefix(mimeType, "audio/"):
		return mimeType, true
	case mimeType == "application/ogg", mimeType == "video/webm":
		return mimeType, true
	}
	return mimeType, false
}
