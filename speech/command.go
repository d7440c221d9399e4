// Package speech reads text aloud through a platform speech command such as
// espeak-ng or macOS say.
package speech

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fwojciec/folio"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ folio.Speaker = (*Command)(nil)

// baseWPM is the speaking rate, in words per minute, that rate 1.0 maps to.
const baseWPM = 175

// Runner executes a command and returns its standard output. It must stop
// when ctx is cancelled.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Command is a folio.Speaker backed by an external program.
type Command struct {
	name      string
	preferred []string
	run       Runner
	logger    zerolog.Logger

	ready  chan struct{}
	voices []folio.Voice

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    int
}

// Option configures a Command.
type Option func(*Command)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(c *Command) {
		c.run = r
	}
}

// WithPreferredVoices sets voice names to try first.
func WithPreferredVoices(names []string) Option {
	return func(c *Command) {
		c.preferred = names
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Command) {
		c.logger = l
	}
}

// New creates a Command running the named program and starts loading its
// voice list in the background.
func New(name string, opts ...Option) *Command {
	c := &Command{
		name:   name,
		run:    execRunner,
		logger: zerolog.Nop(),
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.loadVoices()
	return c
}

func (c *Command) isSay() bool {
	return filepath.Base(c.name) == "say"
}

func (c *Command) loadVoices() {
	defer close(c.ready)

	args := []string{"--voices"}
	if c.isSay() {
		args = []string{"-v", "?"}
	}
	out, err := c.run(context.Background(), c.name, args...)
	if err != nil {
		c.logger.Warn().Err(err).Str("command", c.name).Msg("list voices")
		return
	}
	if c.isSay() {
		c.voices = parseSayVoices(out)
	} else {
		c.voices = parseEspeakVoices(out)
	}
	c.logger.Debug().Int("voices", len(c.voices)).Msg("voices loaded")
}

// Ready is closed once the voice list has been loaded or has failed to load.
func (c *Command) Ready() <-chan struct{} {
	return c.ready
}

// Voices returns the available voices, or nil before Ready is closed.
func (c *Command) Voices() []folio.Voice {
	select {
	case <-c.ready:
		return c.voices
	default:
		return nil
	}
}

// Speak reads text aloud and blocks until it finishes. Any utterance in
// progress is cancelled first. Speak waits for Ready before choosing a voice.
func (c *Command) Speak(ctx context.Context, text, lang string, rate float64) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.seq == seq {
			c.cancel = nil
		}
		c.mu.Unlock()
		cancel()
	}()

	// The first utterance waits for the voice list so it gets a voice.
	select {
	case <-c.ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	_, err := c.run(ctx, c.name, c.args(text, lang, rate)...)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			c.logger.Error().Err(err).Str("stderr", string(exitErr.Stderr)).Msg("speak")
		}
		return err
	}
	return nil
}

// Cancel stops the utterance in progress, if any.
func (c *Command) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Command) args(text, lang string, rate float64) []string {
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(math.Round(baseWPM * rate)))
	voice, ok := folio.SelectVoice(c.Voices(), lang, c.preferred)

	if c.isSay() {
		args := []string{"-r", wpm}
		if ok {
			args = append(args, "-v", voice.Name)
		}
		return append(args, text)
	}

	v := lang
	if ok {
		v = voice.Name
	}
	return []string{"-v", v, "-s", wpm, text}
}

// parseEspeakVoices parses `espeak-ng --voices`:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  fr-fr           --/M      French_(France)    roa/fr               (fr 5)
func parseEspeakVoices(out []byte) []folio.Voice {
	var voices []folio.Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		voices = append(voices, folio.Voice{Name: fields[3], Lang: fields[1]})
	}
	return voices
}

// parseSayVoices parses `say -v ?`:
//
//	Thomas              fr_FR    # Bonjour, je m'appelle Thomas.
func parseSayVoices(out []byte) []folio.Voice {
	var voices []folio.Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		last := len(fields) - 1
		voices = append(voices, folio.Voice{
			Name: strings.Join(fields[:last], " "),
			Lang: strings.ReplaceAll(fields[last], "_", "-"),
		})
	}
	return voices
}
