package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

const themeFile = "theme.json"

type themeDoc struct {
	Theme domain.Theme `json:"theme"`
}

// ThemeStore persists the UI theme preference in its own file, separate
// from the progress document. Anything other than an explicit "light"
// reads back as dark.
type ThemeStore struct {
	mu   sync.Mutex
	path string
}

// NewThemeStore creates the data directory if needed and returns a
// store over <dir>/theme.json.
func NewThemeStore(dir string) (*ThemeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &ThemeStore{path: filepath.Join(dir, themeFile)}, nil
}

// Theme returns the saved preference. Missing or unreadable state is
// the dark default, never an error.
func (s *ThemeStore) Theme(ctx context.Context) domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.ThemeDark
	}

	var doc themeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.ThemeDark
	}
	if doc.Theme == domain.ThemeLight {
		return domain.ThemeLight
	}
	return domain.ThemeDark
}

// SetTheme persists the preference.
func (s *ThemeStore) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.IsValid() {
		return domain.NewValidationError("theme", "must be light or dark")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(themeDoc{Theme: theme})
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Toggle flips the saved theme and returns the new value.
func (s *ThemeStore) Toggle(ctx context.Context) (domain.Theme, error) {
	next := domain.ThemeLight
	if s.Theme(ctx) == domain.ThemeLight {
		next = domain.ThemeDark
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
