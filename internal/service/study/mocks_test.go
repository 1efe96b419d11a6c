package study

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

var _ progressStore = &progressStoreMock{}

type progressStoreMock struct {
	RecordRatingFunc func(ctx context.Context, cardID string, level domain.RatingLevel) (domain.RatingRecord, error)
	CountsFunc       func() domain.RatingCounts
	VoiceURIFunc     func() string

	calls struct {
		RecordRating []struct {
			CardID string
			Level  domain.RatingLevel
		}
	}
	lockRecordRating sync.RWMutex
}

func (mock *progressStoreMock) RecordRating(ctx context.Context, cardID string, level domain.RatingLevel) (domain.RatingRecord, error) {
	if mock.RecordRatingFunc == nil {
		panic("progressStoreMock.RecordRatingFunc: method is nil but progressStore.RecordRating was just called")
	}
	callInfo := struct {
		CardID string
		Level  domain.RatingLevel
	}{CardID: cardID, Level: level}
	mock.lockRecordRating.Lock()
	mock.calls.RecordRating = append(mock.calls.RecordRating, callInfo)
	mock.lockRecordRating.Unlock()
	return mock.RecordRatingFunc(ctx, cardID, level)
}

func (mock *progressStoreMock) RecordRatingCalls() []struct {
	CardID string
	Level  domain.RatingLevel
} {
	mock.lockRecordRating.RLock()
	calls := mock.calls.RecordRating
	mock.lockRecordRating.RUnlock()
	return calls
}

func (mock *progressStoreMock) Counts() domain.RatingCounts {
	if mock.CountsFunc == nil {
		return domain.RatingCounts{}
	}
	return mock.CountsFunc()
}

func (mock *progressStoreMock) VoiceURI() string {
	if mock.VoiceURIFunc == nil {
		return ""
	}
	return mock.VoiceURIFunc()
}

var _ speechEngine = &speechEngineMock{}

type speechEngineMock struct {
	AvailableFunc func() bool
	SpeakFunc     func(text, voiceURI string)

	calls struct {
		Speak []struct {
			Text     string
			VoiceURI string
		}
	}
	lockSpeak sync.RWMutex
}

func (mock *speechEngineMock) Available() bool {
	if mock.AvailableFunc == nil {
		return false
	}
	return mock.AvailableFunc()
}

func (mock *speechEngineMock) Speak(text, voiceURI string) {
	callInfo := struct {
		Text     string
		VoiceURI string
	}{Text: text, VoiceURI: voiceURI}
	mock.lockSpeak.Lock()
	mock.calls.Speak = append(mock.calls.Speak, callInfo)
	mock.lockSpeak.Unlock()
	if mock.SpeakFunc != nil {
		mock.SpeakFunc(text, voiceURI)
	}
}

func (mock *speechEngineMock) SpeakCalls() []struct {
	Text     string
	VoiceURI string
} {
	mock.lockSpeak.RLock()
	calls := mock.calls.Speak
	mock.lockSpeak.RUnlock()
	return calls
}

var _ sampleFetcher = &sampleFetcherMock{}

type sampleFetcherMock struct {
	FetchFunc func(ctx context.Context) (string, string, error)

	calls struct {
		Fetch []struct{}
	}
	lockFetch sync.RWMutex
}

func (mock *sampleFetcherMock) Fetch(ctx context.Context) (string, string, error) {
	if mock.FetchFunc == nil {
		panic("sampleFetcherMock.FetchFunc: method is nil but sampleFetcher.Fetch was just called")
	}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, struct{}{})
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx)
}

func (mock *sampleFetcherMock) FetchCalls() []struct{} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}
