package main

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fwojciec/folio"
	"github.com/fwojciec/folio/bubbletea"
	"github.com/fwojciec/folio/clipboard"
	"github.com/fwojciec/folio/corpus"
	"github.com/fwojciec/folio/fs"
	"github.com/fwojciec/folio/jsonl"
	theme "github.com/fwojciec/folio/lipgloss"
	"github.com/fwojciec/folio/markdown"
	"github.com/fwojciec/folio/speech"
	"github.com/fwojciec/folio/sqlite"
	"github.com/fwojciec/folio/yaml"
	flog "github.com/fwojciec/folio/zerolog"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// Build information. Populated at build-time via -ldflags flag.
var version = "dev"

// App encapsulates the application logic for testing.
type App struct {
	Loader folio.CorpusLoader
	Viewer folio.Viewer
	Logger zerolog.Logger
}

// Run loads the corpus and displays it.
func (a *App) Run(ctx context.Context) error {
	c, err := a.Loader.Load(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load corpus")
		return fmt.Errorf("load corpus: %w", err)
	}
	if c.Len() == 0 {
		return folio.ErrNoTexts
	}
	a.Logger.Info().Int("texts", c.Len()).Msg("corpus loaded")
	for _, e := range folio.ValidateCorpus(c) {
		a.Logger.Warn().Err(e).Str("text", e.TextID).Str("reason", string(e.Reason)).Msg("invalid annotation")
	}
	return a.Viewer.View(ctx, c)
}

// Flags holds command line values. Empty values leave the configuration
// file's settings in place.
type Flags struct {
	ConfigPath  string
	CorpusDir   string
	DataDir     string
	Store       string
	Text        string
	Theme       string
	LogLevel    string
	LogFile     string
	NoAltScreen bool
}

// Apply overrides cfg with the flags that were set and fills in the data
// directory.
func (f Flags) Apply(cfg folio.Config) (folio.Config, error) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.CorpusDir, f.CorpusDir)
	override(&cfg.DataDir, f.DataDir)
	override(&cfg.Store, f.Store)
	override(&cfg.DefaultText, f.Text)
	override(&cfg.Theme, f.Theme)
	override(&cfg.LogLevel, f.LogLevel)
	override(&cfg.LogFile, f.LogFile)
	if cfg.DataDir == "" {
		cfg.DataDir = fs.DefaultDataDir()
	}
	if err := cfg.Validate(); err != nil {
		return folio.Config{}, err
	}
	return cfg, nil
}

func newCommand() *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:      "folio",
		Usage:     "Read French and German texts side by side with Japanese translations",
		UsageText: "folio [options]",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FOLIO_CONFIG"),
				Value:       fs.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "corpus",
				Usage:       "directory of corpus JSON files (defaults to the bundled corpus)",
				Sources:     cli.EnvVars("FOLIO_CORPUS"),
				Destination: &flags.CorpusDir,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("FOLIO_DATA_DIR"),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "store",
				Usage:       "translation store (jsonl, sqlite)",
				Sources:     cli.EnvVars("FOLIO_STORE"),
				Destination: &flags.Store,
			},
			&cli.StringFlag{
				Name:        "text",
				Aliases:     []string{"t"},
				Usage:       "id of the text to open",
				Sources:     cli.EnvVars("FOLIO_TEXT"),
				Destination: &flags.Text,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme (dark, light)",
				Sources:     cli.EnvVars("FOLIO_THEME"),
				Destination: &flags.Theme,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FOLIO_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logging is off when unset)",
				Sources:     cli.EnvVars("FOLIO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.BoolFlag{
				Name:        "no-alt-screen",
				Usage:       "render inline instead of in the alternate screen",
				Sources:     cli.EnvVars("FOLIO_NO_ALT_SCREEN"),
				Destination: &flags.NoAltScreen,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unexpected argument %q. Run 'folio --help' for usage", c.Args().First())
			}
			return run(ctx, *flags)
		},
	}
}

func run(ctx context.Context, flags Flags) error {
	base, err := yaml.Load(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err := flags.Apply(base)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger, closeLog, err := flog.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer closeLog()

	kv, closeKV, err := openKV(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeKV(); err != nil {
			logger.Error().Err(err).Msg("close translation store")
		}
	}()

	alternate := "light"
	if cfg.Theme == "light" {
		alternate = "dark"
	}
	modelOpts := []bubbletea.ModelOption{
		bubbletea.WithTheme(theme.ThemeByName(cfg.Theme)),
		bubbletea.WithInitialText(cfg.DefaultText),
		bubbletea.WithTranslationStore(folio.NewTranslationStore(kv, logger.With().Str("component", "translations").Logger())),
		bubbletea.WithBodyRenderer(markdown.NewRenderer(cfg.Theme)),
		bubbletea.WithAlternateTheme(theme.ThemeByName(alternate), markdown.NewRenderer(alternate)),
		bubbletea.WithClipboard(clipboard.NewSystem()),
		bubbletea.WithLogger(logger),
	}
	if cfg.Speech.Command != "" {
		speaker := speech.New(cfg.Speech.Command,
			speech.WithPreferredVoices(cfg.Speech.Voices),
			speech.WithLogger(logger.With().Str("component", "speech").Logger()),
		)
		modelOpts = append(modelOpts, bubbletea.WithSpeaker(speaker, cfg.Speech.Rate))
	}
	viewerOpts := []bubbletea.ViewerOption{bubbletea.WithModelOptions(modelOpts...)}
	if flags.NoAltScreen {
		viewerOpts = append(viewerOpts, bubbletea.WithoutAltScreen())
	}

	app := &App{
		Loader: fs.NewLoader(corpusFS(cfg)),
		Viewer: bubbletea.NewViewer(viewerOpts...),
		Logger: logger,
	}
	return app.Run(ctx)
}

// corpusFS returns the configured corpus directory or the bundled corpus.
func corpusFS(cfg folio.Config) iofs.FS {
	if cfg.CorpusDir != "" {
		return os.DirFS(cfg.CorpusDir)
	}
	return corpus.FS()
}

// openKV opens the configured translation backend under the data directory.
func openKV(cfg folio.Config, logger zerolog.Logger) (folio.KV, func() error, error) {
	switch cfg.Store {
	case folio.StoreSQLite:
		kv, err := sqlite.Open(filepath.Join(cfg.DataDir, "folio.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return kv, kv.Close, nil
	default:
		kv := jsonl.NewKV(
			filepath.Join(cfg.DataDir, "translations.jsonl"),
			jsonl.WithLogger(logger.With().Str("component", "jsonl").Logger()),
		)
		return kv, func() error { return nil }, nil
	}
}

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
