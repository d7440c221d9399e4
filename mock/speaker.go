package mock

import (
	"context"

	"github.com/fwojciec/folio"
)

// Compile-time interface verification.
var _ folio.Speaker = (*Speaker)(nil)

// Speaker is a mock implementation of folio.Speaker.
type Speaker struct {
	SpeakFn  func(ctx context.Context, text, lang string, rate float64) error
	CancelFn func()
	ReadyFn  func() <-chan struct{}
	VoicesFn func() []folio.Voice
}

func (s *Speaker) Speak(ctx context.Context, text, lang string, rate float64) error {
	return s.SpeakFn(ctx, text, lang, rate)
}

func (s *Speaker) Cancel() {
	s.CancelFn()
}

func (s *Speaker) Ready() <-chan struct{} {
	return s.ReadyFn()
}

func (s *Speaker) Voices() []folio.Voice {
	return s.VoicesFn()
}
