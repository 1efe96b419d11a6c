// Package speech drives an external text-to-speech synthesizer such as
// espeak-ng. The engine is best effort: a missing binary disables
// speech instead of failing the application.
package speech

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/heartmarshall/flashdeck/internal/config"
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// Engine shells out to a synthesizer binary. At most one utterance
// plays at a time; starting a new one cancels whatever is still
// playing, so rapid card navigation never queues up stale speech.
type Engine struct {
	mu           sync.Mutex
	command      string
	defaultVoice string
	available    bool
	current      *exec.Cmd
	log          *slog.Logger
}

// NewEngine probes for the synthesizer binary. A disabled config or a
// binary missing from PATH yields an engine that reports unavailable.
func NewEngine(cfg config.SpeechConfig, logger *slog.Logger) *Engine {
	e := &Engine{
		command:      cfg.Command,
		defaultVoice: cfg.DefaultVoice,
		log:          logger.With("adapter", "speech"),
	}

	if !cfg.Enabled {
		e.log.Info("speech disabled by config")
		return e
	}

	path, err := exec.LookPath(cfg.Command)
	if err != nil {
		e.log.Warn("synthesizer not found, speech disabled", slog.String("command", cfg.Command))
		return e
	}

	e.available = true
	e.log.Info("speech engine ready", slog.String("command", path))
	return e
}

// Available reports whether the synthesizer can be invoked.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.available
}

// Speak starts speaking the text asynchronously, cancelling any
// utterance still in flight. An empty voiceURI falls back to the
// configured default voice.
func (e *Engine) Speak(text, voiceURI string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.available || text == "" {
		return
	}

	if e.current != nil && e.current.Process != nil {
		_ = e.current.Process.Kill()
	}

	voice := voiceURI
	if voice == "" {
		voice = e.defaultVoice
	}

	cmd := exec.Command(e.command, "-v", voice, text)
	if err := cmd.Start(); err != nil {
		e.log.Warn("synthesizer start failed", slog.Any("error", err))
		return
	}
	e.current = cmd

	go func() {
		// Reap the process; a kill from the next Speak surfaces here
		// and is expected.
		_ = cmd.Wait()
	}()
}

// Voices lists the voices the synthesizer offers.
func (e *Engine) Voices(ctx context.Context) ([]domain.Voice, error) {
	if !e.Available() {
		return nil, domain.ErrSpeechUnavailable
	}

	out, err := exec.CommandContext(ctx, e.command, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	return parseVoices(string(out)), nil
}

// parseVoices reads espeak-ng --voices output. Each line after the
// header is: Pty Language Age/Gender VoiceName File [Other Languages].
func parseVoices(out string) []domain.Voice {
	var voices []domain.Voice

	sc := bufio.NewScanner(strings.NewReader(out))
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}

		voices = append(voices, domain.Voice{
			URI:  fields[3],
			Name: fields[3],
			Lang: fields[1],
		})
	}

	return voices
}
