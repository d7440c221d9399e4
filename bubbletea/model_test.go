package bubbletea_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/folio"
	"github.com/fwojciec/folio/bubbletea"
	theme "github.com/fwojciec/folio/lipgloss"
	"github.com/fwojciec/folio/mock"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// Compile-time check that Viewer implements folio.Viewer.
var _ folio.Viewer = (*bubbletea.Viewer)(nil)

func testCorpus(t *testing.T) *folio.Corpus {
	t.Helper()
	chanson := folio.Text{
		ID:       "verlaine_chanson",
		Title:    "Chanson d'automne",
		Author:   "Paul Verlaine",
		Year:     "1866",
		Category: "verlaine",
		Paragraphs: []folio.Paragraph{
			{ID: "s1", OriginalText: "Les sanglots longs\ndes violons", Translation: "TRANSLATION_S1"},
			{ID: "s2", OriginalText: "Tout suffocant\net blême", Translation: "TRANSLATION_S2"},
			{ID: "s3", OriginalText: "Et je m'en vais\nau vent mauvais"},
		},
		Annotations: []folio.Annotation{
			{ParagraphID: "s1", Type: folio.AnnotationGlossary, Anchor: "sanglots longs", Body: "GLOSS_BODY"},
			{
				ParagraphID:       "s1",
				Type:              folio.AnnotationIntertextual,
				Anchor:            "violons",
				Body:              "ECHO_BODY",
				TargetID:          "baudelaire_correspondances",
				TargetParagraphID: "q1",
			},
			{ParagraphID: "s3", Type: folio.AnnotationCommentary, Body: "ENVOI_BODY"},
		},
	}
	correspondances := folio.Text{
		ID:       "baudelaire_correspondances",
		Title:    "Correspondances",
		Author:   "Charles Baudelaire",
		Category: "baudelaire_aesthetics",
		Paragraphs: []folio.Paragraph{
			{ID: "q1", OriginalText: "La Nature est un temple"},
		},
	}
	c, err := folio.NewCorpus([]folio.Text{chanson, correspondances})
	require.NoError(t, err)
	return c
}

// newTestModel starts the reader on the Verlaine text.
func newTestModel(t *testing.T, opts ...bubbletea.ModelOption) *teatest.TestModel {
	t.Helper()
	opts = append([]bubbletea.ModelOption{bubbletea.WithInitialText("verlaine_chanson")}, opts...)
	m := bubbletea.NewModel(testCorpus(t), opts...)
	return teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 40))
}

func keys(tm *teatest.TestModel, runes ...rune) {
	for _, r := range runes {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func waitFor(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte(s))
	}, teatest.WithDuration(3*time.Second))
}

// quit exits the program and returns the final state.
func quit(t *testing.T, tm *teatest.TestModel) folio.State {
	t.Helper()
	keys(tm, 'q')
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	m, ok := fm.(bubbletea.Model)
	require.True(t, ok)
	return m.State()
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

// memoryKV is a folio.KV backed by a map that reports writes.
type memoryKV struct {
	mu      sync.Mutex
	data    map[string]json.RawMessage
	sets    chan string
	removes chan string
}

func newMemoryKV(data map[string]json.RawMessage) *memoryKV {
	if data == nil {
		data = map[string]json.RawMessage{}
	}
	return &memoryKV{data: data, sets: make(chan string, 8), removes: make(chan string, 8)}
}

func (kv *memoryKV) mock() *mock.KV {
	return &mock.KV{
		GetFn: func(_ context.Context, key string) (json.RawMessage, error) {
			kv.mu.Lock()
			defer kv.mu.Unlock()
			v, ok := kv.data[key]
			if !ok {
				return nil, folio.ErrNotFound
			}
			return v, nil
		},
		SetFn: func(_ context.Context, key string, value json.RawMessage) error {
			kv.mu.Lock()
			kv.data[key] = value
			kv.mu.Unlock()
			kv.sets <- key
			return nil
		},
		RemoveFn: func(_ context.Context, key string) error {
			kv.mu.Lock()
			delete(kv.data, key)
			kv.mu.Unlock()
			kv.removes <- key
			return nil
		},
	}
}

func (kv *memoryKV) get(key string) (json.RawMessage, bool) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	return v, ok
}

func (kv *memoryKV) store() *folio.TranslationStore {
	return folio.NewTranslationStore(kv.mock(), zerolog.Nop())
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testCorpus(t))

	assert.Contains(t, m.View(), "Loading", "View should show loading state before WindowSizeMsg")
}

func TestModel_InitWithoutStore(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testCorpus(t))

	assert.Nil(t, m.Init())
}

func TestModel_DefaultsToFirstText(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testCorpus(t))

	assert.Equal(t, "baudelaire_correspondances", m.State().SelectedText)
}

func TestModel_RendersText(t *testing.T) {
	t.Parallel()

	tm := newTestModel(t)

	waitFor(t, tm, "Chanson d'automne")
	waitFor(t, tm, "TRANSLATION_S2")

	quit(t, tm)
}

func TestModel_QuitOnCtrlC(t *testing.T) {
	t.Parallel()

	tm := newTestModel(t)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestModel_UnknownTextShowsNotFound(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testCorpus(t), bubbletea.WithInitialText("missing"))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	waitFor(t, tm, "テキストが見つかりません")

	state := quit(t, tm)
	assert.Equal(t, "missing", state.SelectedText)
}

func TestModel_AppliesColors(t *testing.T) {
	t.Parallel()

	tm := newTestModel(t, bubbletea.WithRenderer(trueColorRenderer()))

	// True color foreground codes use 38;2;R;G;B format
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("38;2;")) && bytes.Contains(out, []byte("sanglots"))
	})

	quit(t, tm)
}

func TestModel_ToggleTheme(t *testing.T) {
	t.Parallel()

	t.Run("T switches to the alternate theme and its renderer", func(t *testing.T) {
		t.Parallel()

		bodies := &mock.BodyRenderer{
			RenderFn: func(body string, _ int) (string, error) {
				return "LIGHT:" + body, nil
			},
		}
		tm := newTestModel(t,
			bubbletea.WithRenderer(trueColorRenderer()),
			bubbletea.WithTheme(theme.DarkTheme()),
			bubbletea.WithAlternateTheme(theme.LightTheme(), bodies),
		)
		keys(tm, 'a')
		waitFor(t, tm, "GLOSS_BODY")
		keys(tm, 'T')
		waitFor(t, tm, "LIGHT:GLOSS_BODY")
		// #4c4f69, the light theme's original text color.
		waitFor(t, tm, "38;2;76;79;105")

		quit(t, tm)
	})

	t.Run("without an alternate theme T reports it", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'T')
		waitFor(t, tm, "切り替えるテーマがありません")

		quit(t, tm)
	})
}

func TestModel_DismissWelcome(t *testing.T) {
	t.Parallel()

	tm := newTestModel(t)
	waitFor(t, tm, "ようこそ")

	keys(tm, 'w')

	state := quit(t, tm)
	assert.False(t, state.ShowWelcome)
}

func TestModel_CollapseParagraphs(t *testing.T) {
	t.Parallel()

	t.Run("o toggles the paragraph under the cursor", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'n', 'o')

		state := quit(t, tm)
		assert.Equal(t, map[string]bool{"s2": true}, state.Collapsed)
	})

	t.Run("z collapses every paragraph and shows previews", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'z')
		waitFor(t, tm, "Les sanglots longs"+folio.Ellipsis)

		state := quit(t, tm)
		assert.True(t, state.IsCollapsed("s1"))
		assert.True(t, state.IsCollapsed("s2"))
		assert.True(t, state.IsCollapsed("s3"))
	})

	t.Run("Z expands everything again", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'z', 'Z')

		state := quit(t, tm)
		assert.Empty(t, state.Collapsed)
	})
}

func TestModel_AnnotationPanel(t *testing.T) {
	t.Parallel()

	t.Run("a opens the panel of the cursor paragraph", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'a')
		waitFor(t, tm, "GLOSS_BODY")

		state := quit(t, tm)
		assert.True(t, state.IsPanelOpen("s1"))
	})

	t.Run("tab selects an annotation and space focuses its anchor", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		keys(tm, ' ')

		state := quit(t, tm)
		assert.True(t, state.IsPanelOpen("s1"))
		assert.True(t, state.IsHighlighted("s1", "sanglots longs"))
	})

	t.Run("space again clears focus", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		keys(tm, ' ', ' ')

		state := quit(t, tm)
		assert.Nil(t, state.ActiveAnchor)
	})

	t.Run("paragraph without annotations keeps its panel closed", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'n')
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})

		state := quit(t, tm)
		assert.False(t, state.IsPanelOpen("s2"))
	})
}

func TestModel_Intertext(t *testing.T) {
	t.Parallel()

	t.Run("x expands the cited paragraph inline", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		keys(tm, 'x')
		waitFor(t, tm, "La Nature est un temple")

		state := quit(t, tm)
		assert.True(t, state.IsExpanded(folio.ExpansionKey{ParagraphID: "s1", Index: 1}))
		assert.Equal(t, "verlaine_chanson", state.SelectedText)
	})

	t.Run("enter navigates to the cited text", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
		waitFor(t, tm, "Correspondances")

		state := quit(t, tm)
		assert.Equal(t, "baudelaire_correspondances", state.SelectedText)
		assert.Empty(t, state.PanelOpen)
	})
}

func TestModel_AnnotationIndex(t *testing.T) {
	t.Parallel()

	t.Run("i lists every annotation", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'i')
		waitFor(t, tm, "ENVOI_BODY")

		state := quit(t, tm)
		assert.True(t, state.IndexOpen)
	})

	t.Run("enter jumps to the annotation and closes the index", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'z', 'i', 'j', 'j')
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

		state := quit(t, tm)
		assert.False(t, state.IndexOpen)
		assert.True(t, state.IsPanelOpen("s3"))
		assert.False(t, state.IsCollapsed("s3"))
		assert.True(t, state.IsCollapsed("s1"))
	})

	t.Run("jumping to an anchored annotation focuses it", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'i')
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

		state := quit(t, tm)
		assert.True(t, state.IsHighlighted("s1", "sanglots longs"))
	})

	t.Run("esc closes the index", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'i')
		tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

		state := quit(t, tm)
		assert.False(t, state.IndexOpen)
	})
}

func TestModel_Picker(t *testing.T) {
	t.Parallel()

	t.Run("tab filters by category and enter selects", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 't')
		waitFor(t, tm, "テキストを選択")
		tm.Send(tea.KeyMsg{Type: tea.KeyTab})
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

		state := quit(t, tm)
		assert.Equal(t, "baudelaire_aesthetics", state.Category)
		assert.Equal(t, "baudelaire_correspondances", state.SelectedText)
	})

	t.Run("search filters across paragraph text", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, '/')
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("temple")})
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

		state := quit(t, tm)
		assert.Equal(t, "temple", state.Query)
		assert.Equal(t, folio.CategoryAll, state.Category)
		assert.Equal(t, "baudelaire_correspondances", state.SelectedText)
	})

	t.Run("esc leaves the selection unchanged", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 't')
		tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

		state := quit(t, tm)
		assert.Equal(t, "verlaine_chanson", state.SelectedText)
	})
}

func TestModel_DisplayToggles(t *testing.T) {
	t.Parallel()

	tm := newTestModel(t)
	keys(tm, '1', '2', '3')

	state := quit(t, tm)
	assert.Equal(t, folio.Display{Original: false, Translation: false, User: true}, state.Display)
}

func TestModel_Translations(t *testing.T) {
	t.Parallel()

	t.Run("loads stored translations at startup", func(t *testing.T) {
		t.Parallel()

		kv := newMemoryKV(map[string]json.RawMessage{
			"translations-verlaine_chanson": json.RawMessage(`{"s2":{"text":"USER_S2","lastModified":"2026-01-02T00:00:00Z"}}`),
		})
		tm := newTestModel(t, bubbletea.WithTranslationStore(kv.store()))
		keys(tm, '3')
		waitFor(t, tm, "USER_S2")

		state := quit(t, tm)
		assert.Equal(t, "USER_S2", state.Translations["s2"].Text)
	})

	t.Run("ctrl+s saves the edited translation", func(t *testing.T) {
		t.Parallel()

		at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		kv := newMemoryKV(nil)
		tm := newTestModel(t,
			bubbletea.WithTranslationStore(kv.store()),
			bubbletea.WithClock(func() time.Time { return at }),
		)
		keys(tm, 'e')
		waitFor(t, tm, "訳を編集")
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("秋の日の")})
		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

		key := receive(t, kv.sets)
		assert.Equal(t, "translations-verlaine_chanson", key)
		raw, ok := kv.get(key)
		require.True(t, ok)
		var stored folio.Translations
		require.NoError(t, json.Unmarshal(raw, &stored))
		assert.Equal(t, folio.UserTranslation{Text: "秋の日の", LastModified: at}, stored["s1"])

		state := quit(t, tm)
		assert.Empty(t, state.Editing)
		assert.Equal(t, "秋の日の", state.Translations["s1"].Text)
	})

	t.Run("esc discards the edit", func(t *testing.T) {
		t.Parallel()

		kv := newMemoryKV(nil)
		tm := newTestModel(t, bubbletea.WithTranslationStore(kv.store()))
		keys(tm, 'e')
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("draft")})
		tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

		state := quit(t, tm)
		assert.Empty(t, state.Editing)
		assert.Empty(t, state.Translations)
		assert.Empty(t, kv.sets)
	})

	t.Run("q types into the editor instead of quitting", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'e', 'q')
		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

		state := quit(t, tm)
		assert.Equal(t, "q", state.Translations["s1"].Text)
	})

	t.Run("confirmed clear removes the stored translations", func(t *testing.T) {
		t.Parallel()

		kv := newMemoryKV(map[string]json.RawMessage{
			"translations-verlaine_chanson": json.RawMessage(`{"s1":{"text":"old","lastModified":"2026-01-02T00:00:00Z"}}`),
		})
		tm := newTestModel(t, bubbletea.WithTranslationStore(kv.store()))
		keys(tm, 'D')
		waitFor(t, tm, "すべての訳文")
		keys(tm, 'y')

		assert.Equal(t, "translations-verlaine_chanson", receive(t, kv.removes))

		state := quit(t, tm)
		assert.False(t, state.ConfirmingClear)
		assert.Empty(t, state.Translations)
	})

	t.Run("declined clear keeps the stored translations", func(t *testing.T) {
		t.Parallel()

		kv := newMemoryKV(map[string]json.RawMessage{
			"translations-verlaine_chanson": json.RawMessage(`{"s1":{"text":"old","lastModified":"2026-01-02T00:00:00Z"}}`),
		})
		tm := newTestModel(t, bubbletea.WithTranslationStore(kv.store()))
		keys(tm, 'D')
		waitFor(t, tm, "すべての訳文")
		keys(tm, 'n')

		state := quit(t, tm)
		assert.False(t, state.ConfirmingClear)
		assert.Empty(t, kv.removes)
		_, ok := kv.get("translations-verlaine_chanson")
		assert.True(t, ok)
	})
}

func TestModel_Speech(t *testing.T) {
	t.Parallel()

	type utterance struct {
		text, lang string
		rate       float64
	}

	t.Run("p reads the cursor paragraph in the text language", func(t *testing.T) {
		t.Parallel()

		spoken := make(chan utterance, 1)
		speaker := &mock.Speaker{
			SpeakFn: func(_ context.Context, text, lang string, rate float64) error {
				spoken <- utterance{text: text, lang: lang, rate: rate}
				return nil
			},
			CancelFn: func() {},
		}
		tm := newTestModel(t, bubbletea.WithSpeaker(speaker, 1.5))
		keys(tm, 'p')

		got := receive(t, spoken)
		assert.Equal(t, utterance{text: "Les sanglots longs\ndes violons", lang: "fr-FR", rate: 1.5}, got)

		quit(t, tm)
	})

	t.Run("p again cancels the utterance", func(t *testing.T) {
		t.Parallel()

		cancelled := make(chan struct{}, 1)
		speaker := &mock.Speaker{
			SpeakFn: func(_ context.Context, _, _ string, _ float64) error {
				<-cancelled
				return context.Canceled
			},
			CancelFn: func() { cancelled <- struct{}{} },
		}
		tm := newTestModel(t, bubbletea.WithSpeaker(speaker, 1))
		keys(tm, 'p', 'p')

		state := quit(t, tm)
		assert.Empty(t, state.Speaking)
	})

	t.Run("marks the paragraph being read", func(t *testing.T) {
		t.Parallel()

		stop := make(chan struct{})
		t.Cleanup(func() { close(stop) })
		speaker := &mock.Speaker{
			SpeakFn: func(ctx context.Context, _, _ string, _ float64) error {
				select {
				case <-stop:
				case <-ctx.Done():
				}
				return context.Canceled
			},
			CancelFn: func() {},
		}
		tm := newTestModel(t, bubbletea.WithSpeaker(speaker, 1))
		keys(tm, 'p')
		waitFor(t, tm, "注2 ♪")

		state := quit(t, tm)
		assert.True(t, state.IsSpeaking("verlaine_chanson", "s1"))
	})

	t.Run("restarting keeps speaking after the cancelled finish", func(t *testing.T) {
		t.Parallel()

		calls := make(chan struct{}, 3)
		cancelled := make(chan struct{}, 3)
		stop := make(chan struct{})
		t.Cleanup(func() { close(stop) })
		speaker := &mock.Speaker{
			SpeakFn: func(_ context.Context, _, _ string, _ float64) error {
				calls <- struct{}{}
				select {
				case <-cancelled:
				case <-stop:
				}
				return context.Canceled
			},
			CancelFn: func() { cancelled <- struct{}{} },
		}
		tm := newTestModel(t, bubbletea.WithSpeaker(speaker, 1))
		keys(tm, 'p')
		receive(t, calls)
		keys(tm, 'p', 'p')
		receive(t, calls)

		state := quit(t, tm)
		assert.Equal(t, "verlaine_chanson#s1", state.Speaking)
	})

	t.Run("without a speaker the request finishes at once", func(t *testing.T) {
		t.Parallel()

		tm := newTestModel(t)
		keys(tm, 'p')
		waitFor(t, tm, "読み上げできません")

		state := quit(t, tm)
		assert.Empty(t, state.Speaking)
	})
}

func TestModel_BodyRenderer(t *testing.T) {
	t.Parallel()

	t.Run("renders annotation bodies", func(t *testing.T) {
		t.Parallel()

		bodies := &mock.BodyRenderer{
			RenderFn: func(body string, width int) (string, error) {
				return "RENDERED:" + body, nil
			},
		}
		tm := newTestModel(t, bubbletea.WithBodyRenderer(bodies))
		keys(tm, 'a')
		waitFor(t, tm, "RENDERED:GLOSS_BODY")

		quit(t, tm)
	})

	t.Run("falls back to plain text when rendering fails", func(t *testing.T) {
		t.Parallel()

		bodies := &mock.BodyRenderer{
			RenderFn: func(body string, width int) (string, error) {
				return "", errors.New("boom")
			},
		}
		tm := newTestModel(t, bubbletea.WithBodyRenderer(bodies))
		keys(tm, 'a')
		waitFor(t, tm, "GLOSS_BODY")

		quit(t, tm)
	})
}

func TestModel_CopyParagraph(t *testing.T) {
	t.Parallel()

	copied := make(chan string, 1)
	clip := &mock.Clipboard{
		CopyFn: func(content string) error {
			copied <- content
			return nil
		},
	}
	tm := newTestModel(t, bubbletea.WithClipboard(clip))
	keys(tm, 'n', 'y')

	assert.Equal(t, "Tout suffocant\net blême", receive(t, copied))

	quit(t, tm)
}

func TestModel_Help(t *testing.T) {
	t.Parallel()

	tm := newTestModel(t)
	keys(tm, '?')
	waitFor(t, tm, "half page down")

	// The first key closes help.
	keys(tm, 'q')
	quit(t, tm)
}

func TestViewer_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Custom IO avoids the TTY requirement
	var in bytes.Buffer
	var out bytes.Buffer
	viewer := bubbletea.NewViewer(
		bubbletea.WithoutAltScreen(),
		bubbletea.WithProgramOptions(
			tea.WithInput(&in),
			tea.WithOutput(&out),
		),
	)

	corpus := testCorpus(t)
	done := make(chan error, 1)
	go func() {
		done <- viewer.View(ctx, corpus)
	}()

	// Give viewer time to start
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled, "viewer should return context.Canceled on cancellation")
	case <-time.After(1 * time.Second):
		t.Fatal("viewer did not exit after context cancellation")
	}
}

func TestViewer_ContextAlreadyCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var in bytes.Buffer
	var out bytes.Buffer
	viewer := bubbletea.NewViewer(
		bubbletea.WithProgramOptions(
			tea.WithInput(&in),
			tea.WithOutput(&out),
		),
	)

	err := viewer.View(ctx, testCorpus(t))
	require.ErrorIs(t, err, context.Canceled, "viewer should return context.Canceled for pre-cancelled context")
}
