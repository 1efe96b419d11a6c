package study

import (
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// speechTextLocked picks the utterance for the visible face. The front
// face speaks what is shown. The back face speaks the example sentence
// when there is one and otherwise falls back to the prompt; the
// translation itself is never spoken, it is in the wrong language for
// the voice. Caller must hold s.mu.
func (s *Service) speechTextLocked() string {
	card := s.currentCard()
	if card == nil {
		return ""
	}
	if s.sess.face == domain.FaceBack {
		if card.Example != "" {
			return card.Example
		}
		return card.Front
	}
	return card.FrontText(s.opts.PreferExample)
}

// autoSpeakLocked fires speech for the newly visible card when the
// auto-speak option is on. Best effort: unavailable engines are skipped
// silently. Caller must hold s.mu.
func (s *Service) autoSpeakLocked() {
	if !s.opts.AutoSpeak || !s.speech.Available() {
		return
	}
	text := s.speechTextLocked()
	if text == "" {
		return
	}
	s.speech.Speak(text, s.progress.VoiceURI())
}

// SpeakVisible speaks the text of the currently visible face on demand,
// regardless of the auto-speak option.
func (s *Service) SpeakVisible() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentCard() == nil {
		return domain.ErrNoDeck
	}
	if !s.speech.Available() {
		return domain.ErrSpeechUnavailable
	}

	s.speech.Speak(s.speechTextLocked(), s.progress.VoiceURI())
	return nil
}
