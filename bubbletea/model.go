package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/folio"
	theme "github.com/fwojciec/folio/lipgloss"
	"github.com/rs/zerolog"
)

const statusBarHeight = 1

// Model is the Bubble Tea model for reading a text of the corpus.
type Model struct {
	ctx    context.Context
	corpus *folio.Corpus
	state  folio.State

	// Collaborators
	store     *folio.TranslationStore
	speaker   folio.Speaker
	clipboard folio.Clipboard
	bodies    folio.BodyRenderer
	logger    zerolog.Logger
	now       func() time.Time
	rate      float64

	// Themes
	theme     folio.Theme
	altTheme  folio.Theme
	altBodies folio.BodyRenderer

	// Cursor
	cursor    int // paragraph index
	annCursor int // annotation index within the cursor paragraph, -1 for none

	// Overlays
	picking      bool
	pickerCursor int
	indexCursor  int
	search       textinput.Model
	editor       textarea.Model
	confirm      *huh.Form
	confirmed    *bool
	help         help.Model
	showHelp     bool

	// UI state
	viewport   viewport.Model
	offsets    map[string]int
	keymap     KeyMap
	styles     folio.Styles
	palette    folio.Palette
	renderer   *lipgloss.Renderer
	width      int
	height     int
	ready      bool
	pendingKey string
	status     string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	ctx         context.Context
	renderer    *lipgloss.Renderer
	theme       folio.Theme
	altTheme    folio.Theme
	altBodies   folio.BodyRenderer
	store       *folio.TranslationStore
	speaker     folio.Speaker
	rate        float64
	clipboard   folio.Clipboard
	bodies      folio.BodyRenderer
	logger      zerolog.Logger
	now         func() time.Time
	initialText string
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t folio.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithAlternateTheme sets the theme the reader can switch to at runtime,
// with the body renderer that matches it. bodies may be nil to keep the
// current renderer.
func WithAlternateTheme(t folio.Theme, bodies folio.BodyRenderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.altTheme = t
		cfg.altBodies = bodies
	}
}

// WithTranslationStore persists the reader's translations.
// Without a store translations live only for the session.
func WithTranslationStore(s *folio.TranslationStore) ModelOption {
	return func(cfg *modelConfig) {
		cfg.store = s
	}
}

// WithSpeaker enables reading paragraphs aloud at the given rate.
func WithSpeaker(s folio.Speaker, rate float64) ModelOption {
	return func(cfg *modelConfig) {
		cfg.speaker = s
		cfg.rate = rate
	}
}

// WithClipboard enables copying paragraphs.
func WithClipboard(c folio.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithBodyRenderer sets the renderer for annotation bodies and context.
func WithBodyRenderer(r folio.BodyRenderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.bodies = r
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) ModelOption {
	return func(cfg *modelConfig) {
		cfg.logger = l
	}
}

// WithClock sets the time source used to stamp saved translations.
func WithClock(now func() time.Time) ModelOption {
	return func(cfg *modelConfig) {
		cfg.now = now
	}
}

// WithInitialText selects the text shown at startup.
// Defaults to the first text of the corpus.
func WithInitialText(id string) ModelOption {
	return func(cfg *modelConfig) {
		cfg.initialText = id
	}
}

// WithContext sets the context for storage and speech calls.
func WithContext(ctx context.Context) ModelOption {
	return func(cfg *modelConfig) {
		cfg.ctx = ctx
	}
}

// NewModel creates a new Model for the given corpus.
func NewModel(corpus *folio.Corpus, opts ...ModelOption) Model {
	cfg := &modelConfig{
		ctx:    context.Background(),
		logger: zerolog.Nop(),
		now:    time.Now,
		rate:   1.0,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.theme == nil {
		cfg.theme = theme.DefaultTheme()
	}
	initial := cfg.initialText
	if initial == "" {
		if texts := corpus.Texts(); len(texts) > 0 {
			initial = texts[0].ID
		}
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "タイトル・著者・キーワード・本文"

	editor := textarea.New()
	editor.ShowLineNumbers = false

	return Model{
		ctx:       cfg.ctx,
		corpus:    corpus,
		state:     folio.NewState(initial),
		store:     cfg.store,
		speaker:   cfg.speaker,
		clipboard: cfg.clipboard,
		bodies:    cfg.bodies,
		logger:    cfg.logger,
		now:       cfg.now,
		rate:      cfg.rate,
		theme:     cfg.theme,
		altTheme:  cfg.altTheme,
		altBodies: cfg.altBodies,
		annCursor: -1,
		search:    search,
		editor:    editor,
		help:      help.New(),
		offsets:   map[string]int{},
		keymap:    DefaultKeyMap(),
		styles:    cfg.theme.Styles(),
		palette:   cfg.theme.Palette(),
		renderer:  cfg.renderer,
	}
}

// State returns the current reading state.
func (m Model) State() folio.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadTranslations(m.state.SelectedText)
}

type translationsLoadedMsg struct {
	textID       string
	translations folio.Translations
}

type translationsSavedMsg struct{ err error }

type translationsClearedMsg struct{ err error }

type speechFinishedMsg struct {
	id  string
	err error
}

var errSpeechUnavailable = errors.New("speech unavailable")

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil
	case translationsLoadedMsg:
		return m.dispatch(folio.TranslationsLoaded{TextID: msg.textID, Translations: msg.translations})
	case translationsSavedMsg:
		if msg.err != nil {
			m.status = "訳文を保存できませんでした"
		} else {
			m.status = "保存しました"
		}
		return m, nil
	case translationsClearedMsg:
		if msg.err != nil {
			m.status = "訳文を削除できませんでした"
		} else {
			m.status = "訳文を削除しました"
		}
		return m, nil
	case speechFinishedMsg:
		// A cancelled utterance was stopped or replaced, and the same id
		// may already be speaking again.
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		if msg.err != nil {
			if !errors.Is(msg.err, errSpeechUnavailable) {
				m.logger.Warn().Err(msg.err).Str("utterance", msg.id).Msg("speech failed")
			}
			m.status = "読み上げできません"
		}
		return m.dispatch(folio.SpeechFinished{ID: msg.id})
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.status = ""
		switch {
		case m.confirm != nil:
			return m.handleConfirmKeys(msg)
		case m.state.Editing != "":
			return m.handleEditorKeys(msg)
		case m.picking:
			return m.handlePickerKeys(msg)
		case m.state.IndexOpen:
			return m.handleIndexKeys(msg)
		case m.showHelp:
			m.showHelp = false
			return m, nil
		}
		return m.handleReadingKeys(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Blink and focus messages for the active overlay.
	var cmd tea.Cmd
	switch {
	case m.confirm != nil:
		return m.updateConfirm(msg)
	case m.state.Editing != "":
		m.editor, cmd = m.editor.Update(msg)
	case m.picking:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) resize(msg tea.WindowSizeMsg) Model {
	widthChanged := m.width != msg.Width
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.search.Width = max(msg.Width-6, 10)
	m.editor.SetWidth(max(msg.Width-4, 10))

	if !m.ready {
		m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
		m.ready = true
		m.refresh()
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - statusBarHeight
		if widthChanged {
			m.refresh()
		}
	}
	if m.confirm != nil {
		m.confirm = m.confirm.WithWidth(msg.Width)
	}
	return m
}

func (m Model) handleReadingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle multi-key sequences (gg for go to top)
	if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
		m.viewport.GotoTop()
		m.pendingKey = ""
		return m, nil
	}

	// Check for start of multi-key sequence
	if key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = "g"
		return m, nil
	}

	// Clear pending key on any other key press
	m.pendingKey = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.GotoBottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keymap.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keymap.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keymap.NextParagraph):
		m.moveCursor(1)
	case key.Matches(msg, m.keymap.PrevParagraph):
		m.moveCursor(-1)
	case key.Matches(msg, m.keymap.ToggleParagraph):
		if p, ok := m.currentParagraph(); ok {
			return m.dispatch(folio.ToggleParagraph{ParagraphID: p.ID})
		}
	case key.Matches(msg, m.keymap.CollapseAll):
		return m.dispatch(folio.CollapseAll{})
	case key.Matches(msg, m.keymap.ExpandAll):
		return m.dispatch(folio.ExpandAll{})
	case key.Matches(msg, m.keymap.TogglePanel):
		if p, ok := m.currentParagraph(); ok {
			m.annCursor = -1
			return m.dispatch(folio.TogglePanel{ParagraphID: p.ID})
		}
	case key.Matches(msg, m.keymap.NextAnnotation):
		return m.moveAnnotationCursor(1)
	case key.Matches(msg, m.keymap.PrevAnnotation):
		return m.moveAnnotationCursor(-1)
	case key.Matches(msg, m.keymap.ToggleFocus):
		return m.toggleFocus()
	case key.Matches(msg, m.keymap.ToggleExpansion):
		if p, a, ok := m.currentAnnotation(); ok && a.IsIntertextual() {
			return m.dispatch(folio.ToggleExpansion{Key: folio.ExpansionKey{ParagraphID: p.ID, Index: m.annCursor}})
		}
	case key.Matches(msg, m.keymap.FollowReference):
		return m.followReference()
	case key.Matches(msg, m.keymap.ToggleIndex):
		m.indexCursor = 0
		return m.dispatch(folio.ToggleIndex{})
	case key.Matches(msg, m.keymap.OpenPicker):
		return m.openPicker(false)
	case key.Matches(msg, m.keymap.Search):
		return m.openPicker(true)
	case key.Matches(msg, m.keymap.ToggleOriginal):
		d := m.state.Display
		d.Original = !d.Original
		return m.dispatch(folio.SetDisplay{Display: d})
	case key.Matches(msg, m.keymap.ToggleTranslation):
		d := m.state.Display
		d.Translation = !d.Translation
		return m.dispatch(folio.SetDisplay{Display: d})
	case key.Matches(msg, m.keymap.ToggleUser):
		d := m.state.Display
		d.User = !d.User
		return m.dispatch(folio.SetDisplay{Display: d})
	case key.Matches(msg, m.keymap.Edit):
		return m.startEditing()
	case key.Matches(msg, m.keymap.ClearTranslations):
		return m.requestClear()
	case key.Matches(msg, m.keymap.Speak):
		return m.speakParagraph()
	case key.Matches(msg, m.keymap.Copy):
		m.copyParagraph()
	case key.Matches(msg, m.keymap.ToggleTheme):
		m.toggleTheme()
	case key.Matches(msg, m.keymap.DismissWelcome):
		return m.dispatch(folio.DismissWelcome{})
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	}
	return m, nil
}

// dispatch applies an action to the state, re-renders and performs the
// resulting effects.
func (m Model) dispatch(a folio.Action) (Model, tea.Cmd) {
	prev := m.state.SelectedText
	state, eff := folio.Reduce(m.corpus, m.state, a)
	m.state = state
	if state.SelectedText != prev {
		m.cursor, m.annCursor = 0, -1
		m.confirm = nil
	}
	if eff.ScrollTo != "" {
		if i := m.paragraphIndex(eff.ScrollTo); i >= 0 {
			m.cursor, m.annCursor = i, -1
		}
	}
	m.refresh()
	return m, m.perform(eff)
}

// perform carries out the side effects requested by a transition.
func (m *Model) perform(eff folio.Effect) tea.Cmd {
	var cmds []tea.Cmd
	if eff.CancelSpeech && m.speaker != nil {
		m.speaker.Cancel()
	}
	if eff.ScrollTop && m.ready {
		m.viewport.GotoTop()
	}
	if eff.ScrollTo != "" {
		m.scrollTo(eff.ScrollTo)
	}
	if eff.LoadTranslations != "" {
		cmds = append(cmds, m.loadTranslations(eff.LoadTranslations))
	}
	if eff.SaveTranslations != "" {
		cmds = append(cmds, m.saveTranslations(eff.SaveTranslations, m.state.Translations))
	}
	if eff.ClearTranslations != "" {
		cmds = append(cmds, m.clearTranslations(eff.ClearTranslations))
	}
	if eff.Speak != nil {
		cmds = append(cmds, m.speak(*eff.Speak))
	}
	return tea.Batch(cmds...)
}

func (m Model) loadTranslations(textID string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return translationsLoadedMsg{textID: textID, translations: store.Load(ctx, textID)}
	}
}

func (m Model) saveTranslations(textID string, t folio.Translations) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return translationsSavedMsg{err: store.Save(ctx, textID, t)}
	}
}

func (m Model) clearTranslations(textID string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return translationsClearedMsg{err: store.Clear(ctx, textID)}
	}
}

func (m Model) speak(u folio.Utterance) tea.Cmd {
	if m.speaker == nil {
		return func() tea.Msg {
			return speechFinishedMsg{id: u.ID, err: errSpeechUnavailable}
		}
	}
	speaker, ctx, rate := m.speaker, m.ctx, m.rate
	return func() tea.Msg {
		return speechFinishedMsg{id: u.ID, err: speaker.Speak(ctx, u.Text, u.Lang, rate)}
	}
}

// refresh re-renders the document into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	text, found := m.corpus.Text(m.state.SelectedText)
	content, offsets := renderDocument(renderConfig{
		text:      text,
		found:     found,
		total:     m.corpus.Len(),
		state:     m.state,
		source:    m.corpus,
		styles:    m.styles,
		palette:   m.palette,
		renderer:  m.renderer,
		bodies:    m.bodies,
		width:     m.width,
		cursor:    m.cursor,
		annCursor: m.annCursor,
	})
	m.offsets = offsets
	m.viewport.SetContent(content)
}

func (m *Model) scrollTo(paragraphID string) {
	if !m.ready {
		return
	}
	if offset, ok := m.offsets[paragraphID]; ok {
		m.viewport.SetYOffset(offset)
	}
}

func (m Model) currentText() (folio.Text, bool) {
	return m.corpus.Text(m.state.SelectedText)
}

func (m Model) currentParagraph() (folio.Paragraph, bool) {
	text, ok := m.currentText()
	if !ok || m.cursor < 0 || m.cursor >= len(text.Paragraphs) {
		return folio.Paragraph{}, false
	}
	return text.Paragraphs[m.cursor], true
}

func (m Model) currentAnnotations() []folio.Annotation {
	text, _ := m.currentText()
	p, ok := m.currentParagraph()
	if !ok {
		return nil
	}
	return folio.AnnotationsFor(text, p.ID)
}

// currentAnnotation returns the annotation under the cursor.
func (m Model) currentAnnotation() (folio.Paragraph, folio.Annotation, bool) {
	p, ok := m.currentParagraph()
	anns := m.currentAnnotations()
	if !ok || m.annCursor < 0 || m.annCursor >= len(anns) {
		return folio.Paragraph{}, folio.Annotation{}, false
	}
	return p, anns[m.annCursor], true
}

func (m Model) paragraphIndex(id string) int {
	text, _ := m.currentText()
	for i, p := range text.Paragraphs {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// moveCursor moves the paragraph cursor by delta and scrolls to it.
func (m *Model) moveCursor(delta int) {
	text, ok := m.currentText()
	if !ok || len(text.Paragraphs) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(text.Paragraphs)-1)
	m.annCursor = -1
	m.refresh()
	m.scrollTo(text.Paragraphs[m.cursor].ID)
}

// moveAnnotationCursor cycles through the annotations of the cursor
// paragraph, opening its panel first.
func (m Model) moveAnnotationCursor(delta int) (tea.Model, tea.Cmd) {
	p, ok := m.currentParagraph()
	if !ok {
		return m, nil
	}
	anns := m.currentAnnotations()
	if len(anns) == 0 {
		m.status = "この段落に注はありません"
		return m, nil
	}
	if m.annCursor < 0 {
		if delta > 0 {
			m.annCursor = 0
		} else {
			m.annCursor = len(anns) - 1
		}
	} else {
		m.annCursor = (m.annCursor + delta + len(anns)) % len(anns)
	}
	if !m.state.IsPanelOpen(p.ID) {
		return m.dispatch(folio.TogglePanel{ParagraphID: p.ID})
	}
	m.refresh()
	return m, nil
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	p, a, ok := m.currentAnnotation()
	if !ok || a.Anchor == "" {
		m.status = "注を選択してください (tab)"
		return m, nil
	}
	return m.dispatch(folio.ToggleActiveAnchor{ParagraphID: p.ID, Anchor: a.Anchor})
}

func (m Model) followReference() (tea.Model, tea.Cmd) {
	_, a, ok := m.currentAnnotation()
	if !ok || !a.IsIntertextual() {
		return m, nil
	}
	if folio.Resolve(a, m.corpus) == nil {
		m.status = "参照先が見つかりません"
		return m, nil
	}
	return m.dispatch(folio.NavigateToTarget{Annotation: a})
}

func (m Model) speakParagraph() (tea.Model, tea.Cmd) {
	text, ok := m.currentText()
	p, pok := m.currentParagraph()
	if !ok || !pok {
		return m, nil
	}
	return m.dispatch(folio.Speak{
		ID:   folio.UtteranceID(text.ID, p.ID),
		Text: p.OriginalText,
		Lang: text.Lang(),
	})
}

// toggleTheme swaps the current and alternate themes.
func (m *Model) toggleTheme() {
	if m.altTheme == nil {
		m.status = "切り替えるテーマがありません"
		return
	}
	m.theme, m.altTheme = m.altTheme, m.theme
	if m.altBodies != nil {
		m.bodies, m.altBodies = m.altBodies, m.bodies
	}
	m.styles = m.theme.Styles()
	m.palette = m.theme.Palette()
	m.refresh()
}

func (m *Model) copyParagraph() {
	p, ok := m.currentParagraph()
	if !ok {
		return
	}
	if m.clipboard == nil {
		m.status = "クリップボードは利用できません"
		return
	}
	if err := m.clipboard.Copy(p.OriginalText); err != nil {
		m.logger.Warn().Err(err).Str("paragraph", p.ID).Msg("copy paragraph")
		m.status = "コピーできませんでした"
		return
	}
	m.status = "コピーしました"
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	switch {
	case m.confirm != nil:
		return m.overlay(m.confirmView())
	case m.state.Editing != "":
		return m.overlay(m.editorView())
	case m.picking:
		return m.overlay(m.pickerView())
	case m.state.IndexOpen:
		return m.overlay(m.indexView())
	case m.showHelp:
		return m.overlay(m.help.FullHelpView(m.keymap.FullHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// overlay fills the screen above the status bar with content.
func (m Model) overlay(content string) string {
	return lipgloss.JoinVertical(lipgloss.Left, fit(content, m.height-statusBarHeight), m.statusBarView())
}

// statusBarView renders the status bar with position info.
func (m Model) statusBarView() string {
	barStyle := newStyle(m.renderer).
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.Foreground))

	dimStyle := newStyle(m.renderer).
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.Muted))

	sepStyle := newStyle(m.renderer).
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.UIForeground))

	sep := sepStyle.Render(" │ ")
	content := barStyle.Render(" " + m.state.SelectedText)

	if text, ok := m.currentText(); ok && len(text.Paragraphs) > 0 {
		total := len(text.Paragraphs)
		w := digitWidth(total)
		content += sep + barStyle.Render(fmt.Sprintf("¶ %*d/%-*d", w, m.cursor+1, w, total))
		if anns := m.currentAnnotations(); len(anns) > 0 {
			current := 0
			if m.annCursor >= 0 {
				current = m.annCursor + 1
			}
			content += sep + barStyle.Render(fmt.Sprintf("注 %d/%d", current, len(anns)))
		}
	}
	if m.state.Speaking != "" {
		content += sep + barStyle.Render("♪")
	}
	content += sep + barStyle.Render(m.scrollPosition())
	if m.status != "" {
		content += sep + barStyle.Render(m.status)
	}
	content += sep + dimStyle.Render(m.modeHint()) + barStyle.Render("  ")

	// Right-align by padding left side with background
	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		padding := barStyle.Render(strings.Repeat(" ", m.width-contentWidth))
		content = padding + content
	}

	return content
}

func (m Model) modeHint() string {
	switch {
	case m.confirm != nil:
		return "y:はい  n:いいえ"
	case m.state.Editing != "":
		return "ctrl+s:保存  esc:取消"
	case m.picking:
		return "enter:開く  tab:分類  /:検索  esc:戻る"
	case m.state.IndexOpen:
		return "enter:移動  esc:閉じる"
	case m.showHelp:
		return "any key:閉じる"
	}
	return "n/N:段落  tab:注  i:索引  t:選択  ?:help  q:quit"
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	percent := int(m.viewport.ScrollPercent() * 100)
	return fmt.Sprintf("%2d%%", percent)
}
