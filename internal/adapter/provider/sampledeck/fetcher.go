// Package sampledeck fetches the bundled starter deck from a
// configured source, either an HTTP(S) URL or a local file path.
package sampledeck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/flashdeck/internal/config"
)

// maxSampleBytes caps the sample download; a sample deck is a small
// CSV, anything bigger is a misconfigured source.
const maxSampleBytes = 10 << 20

// Fetcher retrieves the sample deck CSV on demand.
type Fetcher struct {
	source     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewFetcher creates a Fetcher for the configured sample source.
func NewFetcher(cfg config.DeckConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		source:     cfg.SampleSource,
		httpClient: &http.Client{Timeout: cfg.SampleTimeout},
		log:        logger.With("adapter", "sampledeck"),
	}
}

// Fetch returns the sample deck text and a display name for it.
func (f *Fetcher) Fetch(ctx context.Context) (string, string, error) {
	if strings.HasPrefix(f.source, "http://") || strings.HasPrefix(f.source, "https://") {
		return f.fetchHTTP(ctx)
	}
	return f.fetchFile()
}

func (f *Fetcher) fetchHTTP(ctx context.Context) (string, string, error) {
	f.log.DebugContext(ctx, "sample deck request", slog.String("url", f.source))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.source, nil)
	if err != nil {
		return "", "", fmt.Errorf("sampledeck: create request: %w", err)
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("sampledeck: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("sampledeck: unexpected status %d from %s", resp.StatusCode, f.source)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSampleBytes))
	if err != nil {
		return "", "", fmt.Errorf("sampledeck: read body: %w", err)
	}

	f.log.InfoContext(ctx, "sample deck fetched",
		slog.String("url", f.source),
		slog.Int("bytes", len(data)),
		slog.Duration("took", time.Since(start)),
	)

	return string(data), f.displayName(), nil
}

func (f *Fetcher) fetchFile() (string, string, error) {
	data, err := os.ReadFile(f.source)
	if err != nil {
		return "", "", fmt.Errorf("sampledeck: read %s: %w", f.source, err)
	}
	return string(data), f.displayName(), nil
}

// displayName derives the deck name shown in the UI from the source's
// last path segment.
func (f *Fetcher) displayName() string {
	name := f.source
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	} else {
		name = filepath.Base(name)
	}
	if name == "" {
		return "sample.csv"
	}
	return name
}
