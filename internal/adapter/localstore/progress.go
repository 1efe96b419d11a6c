// Package localstore persists progress and theme state as JSON files
// under a single data directory, the server-side counterpart of a
// browser's local storage.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

const progressFile = "progress.json"

// ProgressRepo stores the whole progress document in one JSON file.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
type ProgressRepo struct {
	mu   sync.Mutex
	path string
}

// NewProgressRepo creates the data directory if needed and returns a
// repo over <dir>/progress.json.
func NewProgressRepo(dir string) (*ProgressRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &ProgressRepo{path: filepath.Join(dir, progressFile)}, nil
}

// Load reads the progress document. A missing file yields empty state,
// not an error; a corrupt file is an error and left for the caller to
// decide on.
func (r *ProgressRepo) Load(ctx context.Context) (domain.ProgressState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// SaveRating writes a single rating through to disk.
func (r *ProgressRepo) SaveRating(ctx context.Context, cardID string, rec domain.RatingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.loadTolerantLocked()
	state.Ratings[cardID] = rec
	return r.writeLocked(state)
}

// SaveVoice writes the voice preference through to disk.
func (r *ProgressRepo) SaveVoice(ctx context.Context, voiceURI string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.loadTolerantLocked()
	state.VoiceURI = voiceURI
	return r.writeLocked(state)
}

// Reset drops all ratings but keeps the voice preference.
func (r *ProgressRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.loadTolerantLocked()
	state.Ratings = make(map[string]domain.RatingRecord)
	return r.writeLocked(state)
}

func (r *ProgressRepo) loadLocked() (domain.ProgressState, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewProgressState(), nil
	}
	if err != nil {
		return domain.ProgressState{}, fmt.Errorf("read %s: %w", r.path, err)
	}

	var state domain.ProgressState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.ProgressState{}, fmt.Errorf("decode %s: %w", r.path, err)
	}
	if state.Ratings == nil {
		state.Ratings = make(map[string]domain.RatingRecord)
	}
	return state, nil
}

// loadTolerantLocked reads whatever is on disk and falls back to empty
// state on corruption, so a write never fails because of an old broken
// file.
func (r *ProgressRepo) loadTolerantLocked() domain.ProgressState {
	state, err := r.loadLocked()
	if err != nil {
		return domain.NewProgressState()
	}
	return state
}

func (r *ProgressRepo) writeLocked(state domain.ProgressState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), progressFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
