package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/folio"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	indent     = "  "
	cardIndent = "    "
	minWidth   = 20
)

// renderConfig holds all rendering parameters for renderDocument.
type renderConfig struct {
	text     folio.Text
	found    bool
	total    int
	state    folio.State
	source   folio.TextSource
	styles   folio.Styles
	palette  folio.Palette
	renderer *lipgloss.Renderer
	bodies   folio.BodyRenderer
	width    int

	// Cursor position (paragraph index, annotation index or -1)
	cursor    int
	annCursor int
}

// document accumulates rendered lines and remembers where each paragraph
// starts so the view can scroll to it.
type document struct {
	lines   []string
	offsets map[string]int
}

func (d *document) add(lines ...string) {
	d.lines = append(d.lines, lines...)
}

func (d *document) addBlock(s string) {
	d.lines = append(d.lines, strings.Split(s, "\n")...)
}

// renderDocument renders the selected text and returns its content with the
// line offset of every paragraph.
func renderDocument(cfg renderConfig) (string, map[string]int) {
	cfg.width = max(cfg.width, minWidth)
	d := &document{offsets: make(map[string]int)}
	muted := newStyle(cfg.renderer).Foreground(lipgloss.Color(cfg.palette.Muted))

	if cfg.state.ShowWelcome {
		d.addBlock(renderWelcome(cfg))
		d.add("")
	}

	if !cfg.found {
		d.add("", indent+newStyle(cfg.renderer).Foreground(lipgloss.Color(cfg.palette.Warning)).Render("テキストが見つかりません"))
		d.add(indent + muted.Render("[t] でテキストを選択"))
		return strings.Join(d.lines, "\n"), d.offsets
	}

	renderHeader(d, cfg)
	for i, p := range cfg.text.Paragraphs {
		d.offsets[p.ID] = len(d.lines)
		renderParagraph(d, cfg, i, p)
		d.add("")
	}
	return strings.Join(d.lines, "\n"), d.offsets
}

func renderWelcome(cfg renderConfig) string {
	box := newStyle(cfg.renderer).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(cfg.palette.Accent)).
		Padding(0, 1).
		Width(cfg.width - 4)
	body := "folio へようこそ。原文と仮訳を並べて読み、注釈をたどります。\n" +
		"n/N 段落移動 · tab 注釈 · i 注釈索引 · t テキスト選択 · ? ヘルプ · w 閉じる"
	return box.Render(body)
}

func renderHeader(d *document, cfg renderConfig) {
	t := cfg.text
	title := styleFromColorPair(cfg.styles.Title, cfg.renderer).Bold(true)
	meta := styleFromColorPair(cfg.styles.Meta, cfg.renderer)

	d.add(indent + title.Render(t.Title))

	var parts []string
	for _, s := range []string{t.Author, t.Source, t.Year} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, fmt.Sprintf("%d段落", len(t.Paragraphs)))
	if t.Category != "" {
		parts = append(parts, folio.CategoryName(t.Category))
	}
	if t.Difficulty != "" {
		parts = append(parts, "難易度 "+t.Difficulty)
	}
	parts = append(parts, fmt.Sprintf("全%d作品", cfg.total))
	d.add(indent + meta.Render(strings.Join(parts, " · ")))

	if t.Context != "" {
		d.add("")
		d.addBlock(renderBody(cfg, t.Context, cfg.width-len(indent)))
	}
	d.add("")
}

func renderParagraph(d *document, cfg renderConfig, i int, p folio.Paragraph) {
	s := cfg.state
	anns := folio.AnnotationsFor(cfg.text, p.ID)
	atCursor := i == cfg.cursor
	textWidth := cfg.width - len(indent)

	d.add(paragraphLabel(cfg, p, len(anns), atCursor))

	if s.IsCollapsed(p.ID) {
		muted := newStyle(cfg.renderer).Foreground(lipgloss.Color(cfg.palette.Muted))
		d.add(indent + muted.Render(folio.Preview(p.OriginalText, folio.PreviewLength)))
		return
	}

	if s.Display.Original {
		selected := ""
		if atCursor && cfg.annCursor >= 0 && cfg.annCursor < len(anns) {
			selected = anns[cfg.annCursor].Anchor
		}
		for _, line := range folio.ResolveSpans(p.OriginalText, anns) {
			d.add(wrapIndented(renderLine(cfg, p.ID, line, selected), textWidth, indent)...)
		}
	}

	if s.Display.Translation {
		if tr := p.DisplayTranslation(); tr != "" {
			style := styleFromColorPair(cfg.styles.Translation, cfg.renderer)
			for _, line := range strings.Split(tr, "\n") {
				d.add(wrapIndented(style.Render(ExpandTabs(line, 0)), textWidth, indent)...)
			}
		}
	}

	if s.Display.User {
		style := styleFromColorPair(cfg.styles.UserTranslation, cfg.renderer)
		if ut, ok := s.Translations[p.ID]; ok && ut.Text != "" {
			for _, line := range strings.Split(ut.Text, "\n") {
				d.add(wrapIndented(style.Render(line), textWidth, indent)...)
			}
		} else {
			muted := newStyle(cfg.renderer).Foreground(lipgloss.Color(cfg.palette.Muted))
			d.add(indent + muted.Render("（自分の訳はまだありません · e で入力）"))
		}
	}

	if len(anns) == 0 {
		return
	}
	if !s.IsPanelOpen(p.ID) {
		muted := newStyle(cfg.renderer).Foreground(lipgloss.Color(cfg.palette.Muted))
		d.add(indent + muted.Render(fmt.Sprintf("注 %d件 [a]", len(anns))))
		return
	}
	renderCards(d, cfg, p, anns, atCursor)
}

func paragraphLabel(cfg renderConfig, p folio.Paragraph, annotations int, atCursor bool) string {
	fold := "▾"
	if cfg.state.IsCollapsed(p.ID) {
		fold = "▸"
	}
	badge := styleFromColorPair(cfg.styles.ParagraphLabel, cfg.renderer).Padding(0, 1).Render(p.ID)
	label := fold + " " + badge
	if annotations > 0 {
		label += fmt.Sprintf(" 注%d", annotations)
	}
	if cfg.state.IsSpeaking(cfg.text.ID, p.ID) {
		label += " ♪"
	}
	if atCursor {
		return styleFromColorPair(cfg.styles.Selected, cfg.renderer).Render("›") + " " + label
	}
	return "  " + label
}

// renderLine styles the spans of one original-text line. selected is the
// anchor of the annotation under the cursor.
func renderLine(cfg renderConfig, pid string, line folio.Line, selected string) string {
	plain := styleFromColorPair(cfg.styles.Original, cfg.renderer)
	anchor := styleFromColorPair(cfg.styles.Anchor, cfg.renderer)
	active := styleFromColorPair(cfg.styles.AnchorActive, cfg.renderer)

	var sb strings.Builder
	for _, span := range line {
		if span.Text == "" {
			continue
		}
		text := ExpandTabs(span.Text, 0)
		switch {
		case span.Kind == folio.SpanPlain:
			sb.WriteString(plain.Render(text))
		case cfg.state.IsHighlighted(pid, span.Text):
			sb.WriteString(active.Render(text))
		case span.Text == selected:
			sb.WriteString(anchor.Underline(true).Render(text))
		default:
			sb.WriteString(anchor.Render(text))
		}
	}
	return sb.String()
}

func renderCards(d *document, cfg renderConfig, p folio.Paragraph, anns []folio.Annotation, atCursor bool) {
	s := cfg.state
	placed := folio.AnchoredIndices(p.OriginalText, anns)
	card := styleFromColorPair(cfg.styles.Card, cfg.renderer)
	cardActive := styleFromColorPair(cfg.styles.CardActive, cfg.renderer)
	muted := newStyle(cfg.renderer).Foreground(lipgloss.Color(cfg.palette.Muted))
	bodyWidth := cfg.width - len(cardIndent)

	for idx, a := range anns {
		marker := "·"
		if atCursor && idx == cfg.annCursor {
			marker = "›"
		}
		head := fmt.Sprintf("%s [%s]", marker, a.Type.Label())
		if a.Anchor != "" {
			head += " «" + a.Anchor + "»"
			if !placed[idx] {
				head += " (本文に見当たりません)"
			}
		}
		style := card
		if a.Anchor != "" && s.IsHighlighted(p.ID, a.Anchor) {
			style = cardActive
		}
		d.add(indent + style.Render(head))

		if out := renderBody(cfg, a.Body, bodyWidth); out != "" {
			for _, line := range strings.Split(out, "\n") {
				d.add(cardIndent + line)
			}
		}

		if a.Type == folio.AnnotationIntertextual {
			renderReference(d, cfg, p.ID, idx, a, muted)
		}
	}
}

func renderReference(d *document, cfg renderConfig, pid string, idx int, a folio.Annotation, muted lipgloss.Style) {
	ref := folio.Resolve(a, cfg.source)
	if ref == nil {
		d.add(cardIndent + muted.Render("→ 参照先が見つかりません"))
		return
	}
	label := "→ " + ref.Text.Title
	if ref.Text.Author != "" {
		label += " (" + ref.Text.Author + ")"
	}
	key := folio.ExpansionKey{ParagraphID: pid, Index: idx}
	expanded := cfg.state.IsExpanded(key)
	hint := " [x] 展開 [enter] 移動"
	if expanded {
		hint = " [x] 閉じる [enter] 移動"
	}
	d.add(cardIndent + styleFromColorPair(cfg.styles.Intertext, cfg.renderer).Render(label) + muted.Render(hint))
	if !expanded {
		return
	}
	if len(ref.Paragraphs) == 0 {
		d.add(cardIndent + muted.Render("（該当する段落がありません）"))
		return
	}
	style := styleFromColorPair(cfg.styles.Intertext, cfg.renderer)
	for _, rp := range ref.Paragraphs {
		for _, line := range strings.Split(rp.OriginalText, "\n") {
			d.add(wrapIndented(style.Render(ExpandTabs(line, 0)), cfg.width-len(cardIndent)-2, cardIndent+"│ ")...)
		}
	}
}

// renderBody renders markdown with the configured renderer. The plain text
// is wrapped instead when no renderer is set or rendering fails.
func renderBody(cfg renderConfig, body string, width int) string {
	if cfg.bodies != nil {
		if out, err := cfg.bodies.Render(body, width); err == nil {
			return out
		}
	}
	return strings.Join(wrapIndented(body, width-len(indent), indent), "\n")
}

// wrapIndented wraps s to width display columns and prefixes every line.
// Words wrap first; runs without spaces, such as Japanese, are then cut hard.
func wrapIndented(s string, width int, prefix string) []string {
	width = max(width, 1)
	wrapped := wrap.String(wordwrap.String(s, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return lines
}

// newStyle creates a new lipgloss style using renderer when set.
func newStyle(renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer != nil {
		return renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp folio.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := newStyle(renderer)
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// fit truncates or pads s to exactly height lines.
func fit(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
