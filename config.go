package folio

import "fmt"

// Storage backends for user translations.
const (
	StoreJSONL  = "jsonl"
	StoreSQLite = "sqlite"
)

// Config holds the reader's configuration.
type Config struct {
	CorpusDir   string       `yaml:"corpus_dir"`   // empty uses the bundled corpus
	DataDir     string       `yaml:"data_dir"`     // where user translations are stored
	Store       string       `yaml:"store"`        // jsonl or sqlite
	DefaultText string       `yaml:"default_text"` // text selected at startup
	Theme       string       `yaml:"theme"`        // dark or light
	LogLevel    string       `yaml:"log_level"`
	LogFile     string       `yaml:"log_file"`
	Speech      SpeechConfig `yaml:"speech"`
}

// SpeechConfig configures text-to-speech.
type SpeechConfig struct {
	Command string   `yaml:"command"` // empty disables speech
	Rate    float64  `yaml:"rate"`
	Voices  []string `yaml:"voices"` // preferred voice names
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Store:       StoreJSONL,
		DefaultText: "valery_crise",
		Theme:       "dark",
		LogLevel:    "info",
		Speech: SpeechConfig{
			Rate:   1.0,
			Voices: []string{"Thomas", "Amelie", "Daniel", "Anna", "Kyoko"},
		},
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Store {
	case StoreJSONL, StoreSQLite:
	default:
		return fmt.Errorf("store must be %q or %q, got %q", StoreJSONL, StoreSQLite, c.Store)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("theme must be dark or light, got %q", c.Theme)
	}
	if c.Speech.Rate <= 0 || c.Speech.Rate > 4 {
		return fmt.Errorf("speech.rate must be in (0, 4], got %v", c.Speech.Rate)
	}
	return nil
}
