package progress

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

var _ repository = &repositoryMock{}

type repositoryMock struct {
	LoadFunc       func(ctx context.Context) (domain.ProgressState, error)
	SaveRatingFunc func(ctx context.Context, cardID string, rec domain.RatingRecord) error
	SaveVoiceFunc  func(ctx context.Context, voiceURI string) error
	ResetFunc      func(ctx context.Context) error

	calls struct {
		SaveRating []struct {
			CardID string
			Rec    domain.RatingRecord
		}
		SaveVoice []struct {
			VoiceURI string
		}
		Reset []struct{}
	}
	lockSaveRating sync.RWMutex
	lockSaveVoice  sync.RWMutex
	lockReset      sync.RWMutex
}

func (mock *repositoryMock) Load(ctx context.Context) (domain.ProgressState, error) {
	if mock.LoadFunc == nil {
		return domain.NewProgressState(), nil
	}
	return mock.LoadFunc(ctx)
}

func (mock *repositoryMock) SaveRating(ctx context.Context, cardID string, rec domain.RatingRecord) error {
	if mock.SaveRatingFunc == nil {
		panic("repositoryMock.SaveRatingFunc: method is nil but repository.SaveRating was just called")
	}
	callInfo := struct {
		CardID string
		Rec    domain.RatingRecord
	}{CardID: cardID, Rec: rec}
	mock.lockSaveRating.Lock()
	mock.calls.SaveRating = append(mock.calls.SaveRating, callInfo)
	mock.lockSaveRating.Unlock()
	return mock.SaveRatingFunc(ctx, cardID, rec)
}

func (mock *repositoryMock) SaveRatingCalls() []struct {
	CardID string
	Rec    domain.RatingRecord
} {
	mock.lockSaveRating.RLock()
	calls := mock.calls.SaveRating
	mock.lockSaveRating.RUnlock()
	return calls
}

func (mock *repositoryMock) SaveVoice(ctx context.Context, voiceURI string) error {
	if mock.SaveVoiceFunc == nil {
		panic("repositoryMock.SaveVoiceFunc: method is nil but repository.SaveVoice was just called")
	}
	callInfo := struct{ VoiceURI string }{VoiceURI: voiceURI}
	mock.lockSaveVoice.Lock()
	mock.calls.SaveVoice = append(mock.calls.SaveVoice, callInfo)
	mock.lockSaveVoice.Unlock()
	return mock.SaveVoiceFunc(ctx, voiceURI)
}

func (mock *repositoryMock) SaveVoiceCalls() []struct{ VoiceURI string } {
	mock.lockSaveVoice.RLock()
	calls := mock.calls.SaveVoice
	mock.lockSaveVoice.RUnlock()
	return calls
}

func (mock *repositoryMock) Reset(ctx context.Context) error {
	if mock.ResetFunc == nil {
		panic("repositoryMock.ResetFunc: method is nil but repository.Reset was just called")
	}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, struct{}{})
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx)
}

func (mock *repositoryMock) ResetCalls() []struct{} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}
