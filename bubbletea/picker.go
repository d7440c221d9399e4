package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/folio"
)

// pickerChrome is the number of picker rows that are not text rows.
const pickerChrome = 5

// pickerTexts returns the texts matching the current category and query.
func (m Model) pickerTexts() []folio.Text {
	return folio.FilterTexts(m.corpus.Texts(), m.state.Category, m.state.Query)
}

func (m Model) openPicker(searching bool) (tea.Model, tea.Cmd) {
	m.picking = true
	m.pickerCursor = 0
	for i, t := range m.pickerTexts() {
		if t.ID == m.state.SelectedText {
			m.pickerCursor = i
			break
		}
	}
	if searching {
		return m, m.search.Focus()
	}
	return m, nil
}

func (m Model) closePicker() Model {
	m.picking = false
	m.search.Blur()
	return m
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	texts := m.pickerTexts()

	switch {
	case key.Matches(msg, m.keymap.Select):
		if len(texts) == 0 {
			return m, nil
		}
		id := texts[min(m.pickerCursor, len(texts)-1)].ID
		m = m.closePicker()
		return m.dispatch(folio.SelectText{ID: id})
	case key.Matches(msg, m.keymap.Back):
		if m.search.Focused() {
			m.search.Blur()
			return m, nil
		}
		return m.closePicker(), nil
	case key.Matches(msg, m.keymap.NextCategory):
		return m.cycleCategory(1)
	case key.Matches(msg, m.keymap.PrevCategory):
		return m.cycleCategory(-1)
	case key.Matches(msg, m.keymap.ListUp):
		m.pickerCursor = max(m.pickerCursor-1, 0)
		return m, nil
	case key.Matches(msg, m.keymap.ListDown):
		m.pickerCursor = min(m.pickerCursor+1, max(len(texts)-1, 0))
		return m, nil
	}

	if m.search.Focused() {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keymap.Up):
		m.pickerCursor = max(m.pickerCursor-1, 0)
	case key.Matches(msg, m.keymap.Down):
		m.pickerCursor = min(m.pickerCursor+1, max(len(texts)-1, 0))
	case key.Matches(msg, m.keymap.OpenPicker), key.Matches(msg, m.keymap.Quit):
		return m.closePicker(), nil
	}
	return m, nil
}

// updateSearch feeds a key to the search input and filters by the new query.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != before {
		var dcmd tea.Cmd
		m, dcmd = m.dispatch(folio.SetSearch{Query: query})
		m.pickerCursor = 0
		return m, tea.Batch(cmd, dcmd)
	}
	return m, cmd
}

func (m Model) cycleCategory(delta int) (tea.Model, tea.Cmd) {
	idx := 0
	for i, c := range folio.Categories {
		if c.Key == m.state.Category {
			idx = i
			break
		}
	}
	n := len(folio.Categories)
	next := folio.Categories[(idx+delta+n)%n]
	m.search.SetValue("")
	m.pickerCursor = 0
	return m.dispatch(folio.SetCategory{Key: next.Key})
}

func (m Model) pickerView() string {
	var s strings.Builder

	title := styleFromColorPair(m.styles.Title, m.renderer).Bold(true)
	muted := newStyle(m.renderer).Foreground(lipgloss.Color(m.palette.Muted))
	accent := newStyle(m.renderer).Foreground(lipgloss.Color(m.palette.Accent)).Bold(true)

	texts := m.pickerTexts()
	s.WriteString(title.Render("テキストを選択"))
	s.WriteString(muted.Render(fmt.Sprintf("  %d/%d", len(texts), m.corpus.Len())))
	s.WriteString("\n")
	s.WriteString(muted.Render("分類: ") + accent.Render(folio.CategoryName(m.state.Category)) + muted.Render("  (tab で切替)"))
	s.WriteString("\n")
	s.WriteString(m.search.View())
	s.WriteString("\n\n")

	if len(texts) == 0 {
		s.WriteString(muted.Render("該当するテキストがありません"))
		return s.String()
	}

	rows := max(m.height-statusBarHeight-pickerChrome, 1)
	start := 0
	if m.pickerCursor >= rows {
		start = m.pickerCursor - rows + 1
	}
	selected := styleFromColorPair(m.styles.Selected, m.renderer)
	for i := start; i < len(texts) && i < start+rows; i++ {
		row := pickerRow(texts[i])
		if i == m.pickerCursor {
			s.WriteString(selected.Render("› " + row))
		} else {
			s.WriteString("  " + row)
		}
		s.WriteString("\n")
	}
	return s.String()
}

// pickerRow describes a text on one line.
func pickerRow(t folio.Text) string {
	row := t.Title
	if t.Author != "" {
		row += " — " + t.Author
	}
	if t.Year != "" {
		row += " (" + t.Year + ")"
	}
	if t.Difficulty != "" {
		row += " · 難易度 " + t.Difficulty
	}
	return row + fmt.Sprintf(" · %d段落", len(t.Paragraphs))
}
