package folio

import "time"

// Focus identifies the active anchor: one phrase in one paragraph.
type Focus struct {
	ParagraphID string `json:"paragraphId"`
	Anchor      string `json:"anchor"`
}

// Display selects which layers of each paragraph are shown.
type Display struct {
	Original    bool `json:"original"`
	Translation bool `json:"translation"`
	User        bool `json:"user"`
}

// State is the complete reading view state. It is a value: Reduce never
// mutates the state it is given, so any State can be kept, compared or
// serialized.
type State struct {
	SelectedText    string                `json:"selectedText"`
	Category        string                `json:"category"`
	Query           string                `json:"query"`
	ShowWelcome     bool                  `json:"showWelcome"`
	Collapsed       map[string]bool       `json:"collapsed,omitempty"`
	PanelOpen       map[string]bool       `json:"panelOpen,omitempty"`
	ActiveAnchor    *Focus                `json:"activeAnchor,omitempty"`
	IndexOpen       bool                  `json:"indexOpen"`
	Expanded        map[ExpansionKey]bool `json:"expanded,omitempty"`
	Display         Display               `json:"display"`
	Editing         string                `json:"editing,omitempty"`
	Translations    Translations          `json:"translations,omitempty"`
	ConfirmingClear bool                  `json:"confirmingClear"`
	Speaking        string                `json:"speaking,omitempty"`
}

// NewState returns the initial state with textID selected.
func NewState(textID string) State {
	return State{
		SelectedText: textID,
		Category:     CategoryAll,
		ShowWelcome:  true,
		Display:      Display{Original: true, Translation: true},
		Translations: Translations{},
	}
}

// IsCollapsed reports whether a paragraph is collapsed. Paragraphs are
// expanded unless collapsed explicitly.
func (s State) IsCollapsed(paragraphID string) bool {
	return s.Collapsed[paragraphID]
}

// IsPanelOpen reports whether a paragraph's annotation panel is expanded.
func (s State) IsPanelOpen(paragraphID string) bool {
	return s.PanelOpen[paragraphID]
}

// IsHighlighted reports whether the given anchor is the active one.
func (s State) IsHighlighted(paragraphID, anchor string) bool {
	return s.ActiveAnchor != nil &&
		s.ActiveAnchor.ParagraphID == paragraphID &&
		s.ActiveAnchor.Anchor == anchor
}

// IsExpanded reports whether an intertextual annotation is expanded inline.
func (s State) IsExpanded(key ExpansionKey) bool {
	return s.Expanded[key]
}

// UtteranceID identifies the utterance reading a paragraph aloud.
func UtteranceID(textID, paragraphID string) string {
	return textID + "#" + paragraphID
}

// IsSpeaking reports whether the paragraph is being read aloud.
func (s State) IsSpeaking(textID, paragraphID string) bool {
	return s.Speaking != "" && s.Speaking == UtteranceID(textID, paragraphID)
}

// Utterance is a request to read text aloud.
type Utterance struct {
	ID   string
	Text string
	Lang string
}

// Effect lists the side effects a transition asks the view to perform.
// The zero Effect requests nothing.
type Effect struct {
	ScrollTo          string // paragraph id to bring into view
	ScrollTop         bool
	LoadTranslations  string // text id whose translations should be loaded
	SaveTranslations  string // text id whose translations in State should be persisted
	ClearTranslations string // text id whose stored translations should be removed
	CancelSpeech      bool
	Speak             *Utterance
}

// Action is a user intent handled by Reduce.
type Action interface {
	action()
}

// SelectText switches to another text and resets all per-text state.
type SelectText struct{ ID string }

// SetCategory filters the text list by category and clears the search query.
type SetCategory struct{ Key string }

// SetSearch filters the text list by query and resets the category.
type SetSearch struct{ Query string }

// DismissWelcome hides the welcome banner.
type DismissWelcome struct{}

// ToggleParagraph collapses or expands a paragraph.
type ToggleParagraph struct{ ParagraphID string }

// ExpandAll expands every paragraph of the current text.
type ExpandAll struct{}

// CollapseAll collapses every paragraph of the current text.
type CollapseAll struct{}

// TogglePanel opens or closes a paragraph's annotation panel.
type TogglePanel struct{ ParagraphID string }

// ToggleActiveAnchor focuses an anchor, or clears focus if it is already
// the active one.
type ToggleActiveAnchor struct{ ParagraphID, Anchor string }

// ToggleIndex shows or hides the global annotation index.
type ToggleIndex struct{}

// JumpTo reveals an annotation from the global index.
type JumpTo struct{ Annotation Annotation }

// ToggleExpansion expands or collapses one intertextual preview inline.
type ToggleExpansion struct{ Key ExpansionKey }

// NavigateToTarget switches to the text an intertextual annotation cites.
type NavigateToTarget struct{ Annotation Annotation }

// SetDisplay selects which paragraph layers are visible.
type SetDisplay struct{ Display Display }

// StartEditing opens the translation editor for a paragraph.
type StartEditing struct{ ParagraphID string }

// CancelEditing closes the translation editor without saving.
type CancelEditing struct{}

// SaveTranslation stores the reader's translation of a paragraph.
type SaveTranslation struct {
	ParagraphID string
	Text        string
	At          time.Time
}

// RequestClearTranslations asks for confirmation before clearing.
type RequestClearTranslations struct{}

// ConfirmClear answers the clear confirmation.
type ConfirmClear struct{ Confirmed bool }

// TranslationsLoaded delivers stored translations for a text.
type TranslationsLoaded struct {
	TextID       string
	Translations Translations
}

// Speak starts reading text aloud, or stops it if ID is already speaking.
type Speak struct{ ID, Text, Lang string }

// SpeechFinished reports that an utterance ended.
type SpeechFinished struct{ ID string }

func (SelectText) action()               {}
func (SetCategory) action()              {}
func (SetSearch) action()                {}
func (DismissWelcome) action()           {}
func (ToggleParagraph) action()          {}
func (ExpandAll) action()                {}
func (CollapseAll) action()              {}
func (TogglePanel) action()              {}
func (ToggleActiveAnchor) action()       {}
func (ToggleIndex) action()              {}
func (JumpTo) action()                   {}
func (ToggleExpansion) action()          {}
func (NavigateToTarget) action()         {}
func (SetDisplay) action()               {}
func (StartEditing) action()             {}
func (CancelEditing) action()            {}
func (SaveTranslation) action()          {}
func (RequestClearTranslations) action() {}
func (ConfirmClear) action()             {}
func (TranslationsLoaded) action()       {}
func (Speak) action()                    {}
func (SpeechFinished) action()           {}

// Reduce applies a to s and returns the next state with the side effects
// the view must perform. source is consulted for texts; it is never
// modified.
func Reduce(source TextSource, s State, a Action) (State, Effect) {
	switch a := a.(type) {
	case SelectText:
		return selectText(s, a.ID)
	case SetCategory:
		s.Category = a.Key
		s.Query = ""
	case SetSearch:
		s.Query = a.Query
		s.Category = CategoryAll
	case DismissWelcome:
		s.ShowWelcome = false
	case ToggleParagraph:
		s.Collapsed = toggled(s.Collapsed, a.ParagraphID)
	case ExpandAll:
		s.Collapsed = nil
	case CollapseAll:
		if text, ok := lookup(source, s.SelectedText); ok {
			collapsed := make(map[string]bool, len(text.Paragraphs))
			for _, id := range text.ParagraphIDs() {
				collapsed[id] = true
			}
			s.Collapsed = collapsed
		}
	case TogglePanel:
		s.PanelOpen = toggled(s.PanelOpen, a.ParagraphID)
	case ToggleActiveAnchor:
		if s.IsHighlighted(a.ParagraphID, a.Anchor) {
			s.ActiveAnchor = nil
		} else {
			s.ActiveAnchor = &Focus{ParagraphID: a.ParagraphID, Anchor: a.Anchor}
		}
	case ToggleIndex:
		s.IndexOpen = !s.IndexOpen
	case JumpTo:
		return jumpTo(s, a.Annotation)
	case ToggleExpansion:
		s.Expanded = toggledKey(s.Expanded, a.Key)
	case NavigateToTarget:
		if !a.Annotation.IsIntertextual() {
			return s, Effect{}
		}
		if _, ok := lookup(source, a.Annotation.TargetID); !ok {
			return s, Effect{}
		}
		return selectText(s, a.Annotation.TargetID)
	case SetDisplay:
		s.Display = a.Display
	case StartEditing:
		s.Editing = a.ParagraphID
	case CancelEditing:
		s.Editing = ""
	case SaveTranslation:
		s.Translations = s.Translations.With(a.ParagraphID, a.Text, a.At)
		s.Editing = ""
		return s, Effect{SaveTranslations: s.SelectedText}
	case RequestClearTranslations:
		s.ConfirmingClear = true
	case ConfirmClear:
		s.ConfirmingClear = false
		if a.Confirmed {
			s.Translations = Translations{}
			return s, Effect{ClearTranslations: s.SelectedText}
		}
	case TranslationsLoaded:
		if a.TextID == s.SelectedText {
			s.Translations = a.Translations
			if s.Translations == nil {
				s.Translations = Translations{}
			}
		}
	case Speak:
		if s.Speaking == a.ID {
			s.Speaking = ""
			return s, Effect{CancelSpeech: true}
		}
		s.Speaking = a.ID
		return s, Effect{Speak: &Utterance{ID: a.ID, Text: a.Text, Lang: a.Lang}}
	case SpeechFinished:
		if s.Speaking == a.ID {
			s.Speaking = ""
		}
	}
	return s, Effect{}
}

func selectText(s State, id string) (State, Effect) {
	s.SelectedText = id
	s.Collapsed = nil
	s.PanelOpen = nil
	s.ActiveAnchor = nil
	s.IndexOpen = false
	s.Expanded = nil
	s.Editing = ""
	s.ConfirmingClear = false
	s.Translations = Translations{}
	s.Speaking = ""
	return s, Effect{
		ScrollTop:        true,
		LoadTranslations: id,
		CancelSpeech:     true,
	}
}

func jumpTo(s State, a Annotation) (State, Effect) {
	pid := a.ParagraphID
	s.Collapsed = set(s.Collapsed, pid, false)
	s.PanelOpen = set(s.PanelOpen, pid, true)
	if a.Anchor != "" {
		s.ActiveAnchor = &Focus{ParagraphID: pid, Anchor: a.Anchor}
	}
	s.IndexOpen = false
	return s, Effect{ScrollTo: pid}
}

func lookup(source TextSource, id string) (Text, bool) {
	if source == nil {
		return Text{}, false
	}
	return source.Text(id)
}

// toggled returns a copy of m with key flipped.
func toggled(m map[string]bool, key string) map[string]bool {
	return set(m, key, !m[key])
}

// set returns a copy of m with key set to v. False values are dropped.
func set(m map[string]bool, key string, v bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, b := range m {
		out[k] = b
	}
	if v {
		out[key] = true
	} else {
		delete(out, key)
	}
	return out
}

func toggledKey(m map[ExpansionKey]bool, key ExpansionKey) map[ExpansionKey]bool {
	out := make(map[ExpansionKey]bool, len(m)+1)
	for k, b := range m {
		out[k] = b
	}
	if out[key] {
		delete(out, key)
	} else {
		out[key] = true
	}
	return out
}
