package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/folio"
)

const indexBodyPreview = 40

// indexEntries returns the entries of the annotation index in display order.
func (m Model) indexEntries() []folio.IndexEntry {
	text, ok := m.currentText()
	if !ok {
		return nil
	}
	var entries []folio.IndexEntry
	for _, g := range folio.BuildIndex(text) {
		entries = append(entries, g.Entries...)
	}
	return entries
}

func (m Model) handleIndexKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.indexEntries()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.ToggleIndex):
		return m.dispatch(folio.ToggleIndex{})
	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.ListUp):
		m.indexCursor = max(m.indexCursor-1, 0)
	case key.Matches(msg, m.keymap.Down), key.Matches(msg, m.keymap.ListDown):
		m.indexCursor = min(m.indexCursor+1, max(len(entries)-1, 0))
	case key.Matches(msg, m.keymap.Select):
		if len(entries) == 0 {
			return m, nil
		}
		e := entries[min(m.indexCursor, len(entries)-1)]
		next, cmd := m.dispatch(folio.JumpTo{Annotation: e.Annotation})
		if e.Index >= 0 {
			next.annCursor = e.Index
			next.refresh()
		}
		return next, cmd
	}
	return m, nil
}

func (m Model) indexView() string {
	title := styleFromColorPair(m.styles.Title, m.renderer).Bold(true)
	label := styleFromColorPair(m.styles.ParagraphLabel, m.renderer).Padding(0, 1)
	muted := newStyle(m.renderer).Foreground(lipgloss.Color(m.palette.Muted))
	selected := styleFromColorPair(m.styles.Selected, m.renderer)

	text, _ := m.currentText()
	groups := folio.BuildIndex(text)

	lines := []string{title.Render("注釈索引") + muted.Render(fmt.Sprintf("  %d件", len(text.Annotations))), ""}
	if len(groups) == 0 {
		lines = append(lines, muted.Render("このテキストには注がありません"))
		return strings.Join(lines, "\n")
	}

	cursorLine := 0
	n := 0
	for _, g := range groups {
		if g.ParagraphID == "" {
			lines = append(lines, muted.Render("（段落不明）"))
		} else {
			lines = append(lines, label.Render(g.ParagraphID)+" "+muted.Render(g.Preview))
		}
		for _, e := range g.Entries {
			row := fmt.Sprintf("[%s]", e.Annotation.Type.Label())
			if e.Annotation.Anchor != "" {
				row += " «" + e.Annotation.Anchor + "»"
			}
			row += " " + folio.Preview(e.Annotation.Body, indexBodyPreview)
			if n == m.indexCursor {
				cursorLine = len(lines)
				lines = append(lines, selected.Render("  › "+row))
			} else {
				lines = append(lines, "    "+row)
			}
			n++
		}
	}

	// Keep the cursor row on screen.
	height := max(m.height-statusBarHeight, 1)
	if cursorLine >= height {
		lines = lines[cursorLine-height+1:]
	}
	return strings.Join(lines, "\n")
}
