package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/folio"
)

func (m Model) startEditing() (tea.Model, tea.Cmd) {
	p, ok := m.currentParagraph()
	if !ok {
		return m, nil
	}

	// Initialize textarea with the existing translation if any
	ta := textarea.New()
	ta.Placeholder = "自分の訳を入力..."
	ta.ShowLineNumbers = false
	ta.SetWidth(max(m.width-4, 10))
	ta.SetHeight(max(m.height-8-strings.Count(p.OriginalText, "\n"), 3))
	if ut, ok := m.state.Translations[p.ID]; ok {
		ta.SetValue(ut.Text)
	}
	ta.Focus()
	m.editor = ta

	next, _ := m.dispatch(folio.StartEditing{ParagraphID: p.ID})
	return next, textarea.Blink
}

func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Save):
		m.editor.Blur()
		return m.dispatch(folio.SaveTranslation{
			ParagraphID: m.state.Editing,
			Text:        strings.TrimRight(m.editor.Value(), "\n"),
			At:          m.now(),
		})
	case key.Matches(msg, m.keymap.Back):
		m.editor.Blur()
		return m.dispatch(folio.CancelEditing{})
	}

	// Pass all other keys to textarea
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) editorView() string {
	var s strings.Builder

	header := newStyle(m.renderer).Bold(true).Render("訳を編集 · " + m.state.Editing)
	s.WriteString(header)
	s.WriteString("\n\n")
	if text, ok := m.currentText(); ok {
		if p, ok := text.Paragraph(m.state.Editing); ok {
			original := styleFromColorPair(m.styles.Original, m.renderer)
			for _, line := range strings.Split(p.OriginalText, "\n") {
				s.WriteString(original.Render(line))
				s.WriteString("\n")
			}
			s.WriteString("\n")
		}
	}
	s.WriteString(m.editor.View())
	s.WriteString("\n\n")
	s.WriteString(newStyle(m.renderer).Faint(true).Render("[ctrl+s] 保存  [esc] 取消"))

	return s.String()
}

// requestClear asks for confirmation before clearing the current text's
// translations.
func (m Model) requestClear() (tea.Model, tea.Cmd) {
	if _, ok := m.currentText(); !ok {
		return m, nil
	}
	next, cmd := m.dispatch(folio.RequestClearTranslations{})

	var confirmed bool
	next.confirmed = &confirmed
	next.confirm = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("このテキストのすべての訳文を削除してもよろしいですか？").
			Description(next.state.SelectedText).
			Affirmative("削除").
			Negative("キャンセル").
			Value(next.confirmed),
	)).WithWidth(max(next.width, 20)).WithShowHelp(false)

	return next, tea.Batch(cmd, next.confirm.Init())
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.answerConfirm(true)
	case "n", "N", "esc":
		return m.answerConfirm(false)
	}
	return m.updateConfirm(msg)
}

// updateConfirm forwards msg to the confirmation form and answers once the
// form is done.
func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}
	switch m.confirm.State {
	case huh.StateCompleted:
		return m.answerConfirm(*m.confirmed)
	case huh.StateAborted:
		return m.answerConfirm(false)
	}
	return m, cmd
}

func (m Model) answerConfirm(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirm = nil
	m.confirmed = nil
	return m.dispatch(folio.ConfirmClear{Confirmed: confirmed})
}

func (m Model) confirmView() string {
	box := newStyle(m.renderer).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.Warning)).
		Padding(1, 2)
	return "\n" + box.Render(m.confirm.View())
}
