// Package podcast holds the state of the educational podcast player.
// Playback is tracked as state only; no audio device is opened.
package podcast

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTitle is shown until an episode is loaded.
const DefaultTitle = "Episodio Introductorio: El quiebre democrático"

var (
	ErrNotAdmin         = errors.New("admin mode required to load an episode")
	ErrUnsupportedAudio = errors.New("unsupported audio format")
)

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".ogg": true, ".m4a": true, ".flac": true,
}

// Player is the podcast section state.
type Player struct {
	Admin     bool
	AudioPath string
	Title     string
	Playing   bool
}

// New returns a player with the default title and no episode.
func New() *Player {
	return &Player{Title: DefaultTitle}
}

// ToggleAdmin flips admin mode.
func (p *Player) ToggleAdmin() {
	p.Admin = !p.Admin
}

// HasAudio reports whether an episode is loaded.
func (p *Player) HasAudio() bool {
	return p.AudioPath != ""
}

// SetAudio loads the episode at path. The title becomes the file name
// without its extension and playback stops.
func (p *Player) SetAudio(path string) error {
	if !p.Admin {
		return ErrNotAdmin
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !audioExtensions[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedAudio, ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open episode: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("failed to open episode: %s is a directory", path)
	}

	base := filepath.Base(path)
	p.AudioPath = path
	p.Title = strings.TrimSuffix(base, filepath.Ext(base))
	p.Playing = false
	return nil
}

// TogglePlay flips playback. Without an episode it does nothing.
func (p *Player) TogglePlay() {
	if !p.HasAudio() {
		return
	}
	p.Playing = !p.Playing
}

// Ended marks the episode as finished.
func (p *Player) Ended() {
	p.Playing = false
}
