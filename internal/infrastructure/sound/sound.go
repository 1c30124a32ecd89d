// Package sound plays short effects through a shared audio context.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Bank holds decoded effects keyed by name. A name without a decoded
// effect plays nothing; missing asset files degrade the session to
// silence instead of failing it.
type Bank struct {
	context *audio.Context
	effects map[string][]byte
}

// NewBank creates a bank over a fresh audio context.
func NewBank() *Bank {
	return &Bank{
		context: audio.NewContext(sampleRate),
		effects: make(map[string][]byte),
	}
}

// LoadAll decodes every effect in names from fsys, looking for
// <name>.wav then <name>.ogg. Missing or undecodable files are logged
// and skipped.
func (b *Bank) LoadAll(fsys fs.FS, names ...string) {
	for _, name := range names {
		if err := b.load(fsys, name); err != nil {
			log.Printf("Warning: sound %q unavailable: %v", name, err)
		}
	}
}

func (b *Bank) load(fsys fs.FS, name string) error {
	var lastErr error
	for _, file := range []string{name + ".wav", name + ".ogg"} {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			lastErr = err
			continue
		}

		decoded, err := b.decode(file, data)
		if err != nil {
			return err
		}

		b.effects[name] = decoded
		return nil
	}
	return lastErr
}

func (b *Bank) decode(file string, data []byte) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)

	switch strings.ToLower(filepath.Ext(file)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(b.context.SampleRate(), bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(b.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format %q", file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", file, err)
	}
	return decoded, nil
}

// Play fires the named effect from the start. Each call gets its own
// player so overlapping effects mix instead of cutting each other off.
func (b *Bank) Play(name string) {
	data, ok := b.effects[name]
	if !ok {
		return
	}

	player := b.context.NewPlayerFromBytes(data)
	player.Play()
}

// Loaded reports whether the named effect decoded successfully.
func (b *Bank) Loaded(name string) bool {
	_, ok := b.effects[name]
	return ok
}
