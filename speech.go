package folio

import (
	"context"
	"strings"
)

// Voice is a voice offered by the platform speech service.
type Voice struct {
	Name string
	Lang string // BCP 47 tag, e.g. "fr-FR"
}

// Speaker reads text aloud. At most one utterance plays at a time; starting
// a new one cancels the previous one.
type Speaker interface {
	// Speak blocks until the utterance finishes, fails or is cancelled.
	Speak(ctx context.Context, text, lang string, rate float64) error
	// Cancel stops the current utterance, if any.
	Cancel()
	// Ready is closed once the voice list is available.
	Ready() <-chan struct{}
	// Voices returns the available voices. Empty until Ready is closed.
	Voices() []Voice
}

// SelectVoice picks a voice for lang. Voices named in preferred win, in
// preference order, when their language matches; otherwise the first voice
// whose language starts with the requested prefix is used. It returns false
// when nothing matches.
func SelectVoice(voices []Voice, lang string, preferred []string) (Voice, bool) {
	prefix := langPrefix(lang)
	if prefix == "" {
		return Voice{}, false
	}
	matches := func(v Voice) bool {
		return strings.HasPrefix(strings.ToLower(v.Lang), prefix)
	}
	for _, name := range preferred {
		for _, v := range voices {
			if matches(v) && strings.Contains(strings.ToLower(v.Name), strings.ToLower(name)) {
				return v, true
			}
		}
	}
	for _, v := range voices {
		if matches(v) {
			return v, true
		}
	}
	return Voice{}, false
}

// langPrefix returns the primary language subtag, lower-cased.
func langPrefix(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
