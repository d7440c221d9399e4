package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the reading view.
type KeyMap struct {
	// Scrolling
	Up           key.Binding
	Down         key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Paragraph cursor
	NextParagraph   key.Binding
	PrevParagraph   key.Binding
	ToggleParagraph key.Binding
	CollapseAll     key.Binding
	ExpandAll       key.Binding

	// Annotations
	TogglePanel     key.Binding
	NextAnnotation  key.Binding
	PrevAnnotation  key.Binding
	ToggleFocus     key.Binding
	ToggleExpansion key.Binding
	FollowReference key.Binding
	ToggleIndex     key.Binding

	// Texts and layers
	OpenPicker        key.Binding
	Search            key.Binding
	ToggleOriginal    key.Binding
	ToggleTranslation key.Binding
	ToggleUser        key.Binding

	// Reader actions
	Edit              key.Binding
	ClearTranslations key.Binding
	Speak             key.Binding
	Copy              key.Binding
	ToggleTheme       key.Binding
	DismissWelcome    key.Binding
	Help              key.Binding
	Quit              key.Binding

	// Overlays
	Select       key.Binding
	Back         key.Binding
	Save         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	ListUp       key.Binding
	ListDown     key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		NextParagraph: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next paragraph"),
		),
		PrevParagraph: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous paragraph"),
		),
		ToggleParagraph: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "fold paragraph"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "fold all"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("Z"),
			key.WithHelp("Z", "unfold all"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "annotations"),
		),
		NextAnnotation: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next annotation"),
		),
		PrevAnnotation: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous annotation"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "highlight anchor"),
		),
		ToggleExpansion: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "expand reference"),
		),
		FollowReference: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go to reference"),
		),
		ToggleIndex: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "annotation index"),
		),
		OpenPicker: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "texts"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search texts"),
		),
		ToggleOriginal: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "原文"),
		),
		ToggleTranslation: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "訳文"),
		),
		ToggleUser: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "自分の訳"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "translate paragraph"),
		),
		ClearTranslations: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear my translations"),
		),
		Speak: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "read aloud"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy paragraph"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "dark/light theme"),
		),
		DismissWelcome: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "dismiss welcome"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous category"),
		),
		ListUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		ListDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextParagraph, k.NextAnnotation, k.ToggleIndex, k.OpenPicker, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.HalfPageUp, k.HalfPageDown, k.GotoTop, k.GotoBottom},
		{k.NextParagraph, k.PrevParagraph, k.ToggleParagraph, k.CollapseAll, k.ExpandAll},
		{k.TogglePanel, k.NextAnnotation, k.PrevAnnotation, k.ToggleFocus, k.ToggleExpansion, k.FollowReference, k.ToggleIndex},
		{k.OpenPicker, k.Search, k.ToggleOriginal, k.ToggleTranslation, k.ToggleUser},
		{k.Edit, k.ClearTranslations, k.Speak, k.Copy, k.ToggleTheme, k.DismissWelcome, k.Help, k.Quit},
	}
}
