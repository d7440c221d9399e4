// Package folio provides domain types for reading annotated literary texts
// alongside their translations.
package folio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// DefaultLang is the language tag assumed for texts that do not declare one.
const DefaultLang = "fr-FR"

// Corpus errors.
var (
	ErrEmptyTextID   = errors.New("text has no id")
	ErrDuplicateText = errors.New("duplicate text id")
	ErrNoTexts       = errors.New("corpus contains no texts")
)

// Text is a single work in the corpus: a poem, an essay or a fragment of one.
type Text struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Author       string       `json:"author"`
	Source       string       `json:"source,omitempty"`
	Year         string       `json:"year,omitempty"`
	Category     string       `json:"category,omitempty"`
	Context      string       `json:"context,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
	OriginalLang string       `json:"originalLang,omitempty"`
	Difficulty   string       `json:"difficulty,omitempty"`
	Paragraphs   []Paragraph  `json:"paragraphs"`
	Annotations  []Annotation `json:"annotations,omitempty"`
}

// UnmarshalJSON accepts year as either a string or a number.
func (t *Text) UnmarshalJSON(data []byte) error {
	type plain Text
	var aux struct {
		plain
		Year json.RawMessage `json:"year"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = Text(aux.plain)
	year, err := parseYear(aux.Year)
	if err != nil {
		return fmt.Errorf("year: %w", err)
	}
	t.Year = year
	return nil
}

func parseYear(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Lang returns the language tag of the original text.
func (t Text) Lang() string {
	if t.OriginalLang == "" {
		return DefaultLang
	}
	return t.OriginalLang
}

// Paragraph returns the paragraph with the given id.
func (t Text) Paragraph(id string) (Paragraph, bool) {
	for _, p := range t.Paragraphs {
		if p.ID == id {
			return p, true
		}
	}
	return Paragraph{}, false
}

// ParagraphIDs returns the ids of all paragraphs in document order.
func (t Text) ParagraphIDs() []string {
	ids := make([]string, len(t.Paragraphs))
	for i, p := range t.Paragraphs {
		ids[i] = p.ID
	}
	return ids
}

// Paragraph is one unit of a text. Verse is kept as a single paragraph
// with embedded line breaks.
type Paragraph struct {
	ID                  string `json:"id"`
	OriginalText        string `json:"originalText"`
	Translation         string `json:"translation,omitempty"`         // provisional
	OfficialTranslation string `json:"officialTranslation,omitempty"` // published
}

// UnmarshalJSON accepts "french" as a legacy name for originalText.
func (p *Paragraph) UnmarshalJSON(data []byte) error {
	type plain Paragraph
	var aux struct {
		plain
		French string `json:"french"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Paragraph(aux.plain)
	if p.OriginalText == "" {
		p.OriginalText = aux.French
	}
	return nil
}

// DisplayTranslation returns the provisional translation, falling back to
// the official one.
func (p Paragraph) DisplayTranslation() string {
	if p.Translation != "" {
		return p.Translation
	}
	return p.OfficialTranslation
}

// AnnotationType classifies an annotation.
type AnnotationType string

// Annotation types.
const (
	AnnotationGlossary     AnnotationType = "glossary"
	AnnotationAllusion     AnnotationType = "allusion"
	AnnotationCommentary   AnnotationType = "commentary"
	AnnotationIntertextual AnnotationType = "intertextual"
	AnnotationProsody      AnnotationType = "prosody"
)

// Label returns a short human-readable name for the type.
func (t AnnotationType) Label() string {
	switch t {
	case AnnotationGlossary:
		return "語釈"
	case AnnotationAllusion:
		return "典拠"
	case AnnotationCommentary:
		return "注解"
	case AnnotationIntertextual:
		return "間テクスト"
	case AnnotationProsody:
		return "韻律"
	default:
		return string(t)
	}
}

// Annotation is a static note attached to a paragraph, optionally bound to
// a phrase of its original text.
type Annotation struct {
	ParagraphID       string         `json:"paragraphId"`
	Type              AnnotationType `json:"type"`
	Body              string         `json:"body"`
	Anchor            string         `json:"anchor,omitempty"`            // verbatim substring of the paragraph
	TargetID          string         `json:"targetId,omitempty"`          // intertextual only
	TargetParagraphID string         `json:"targetParagraphId,omitempty"` // empty means the whole target text
}

// IsIntertextual reports whether the annotation points at another text.
func (a Annotation) IsIntertextual() bool {
	return a.Type == AnnotationIntertextual && a.TargetID != ""
}

// TextSource looks texts up by id.
type TextSource interface {
	Text(id string) (Text, bool)
}

// Corpus is the immutable set of texts available to the reader.
type Corpus struct {
	texts map[string]Text
	ids   []string
}

// Compile-time interface verification.
var _ TextSource = (*Corpus)(nil)

// NewCorpus builds a corpus from texts. Ids must be unique and non-empty.
func NewCorpus(texts []Text) (*Corpus, error) {
	c := &Corpus{texts: make(map[string]Text, len(texts))}
	for _, t := range texts {
		if t.ID == "" {
			return nil, ErrEmptyTextID
		}
		if _, ok := c.texts[t.ID]; ok {
			return nil, &DuplicateTextError{ID: t.ID}
		}
		c.texts[t.ID] = t
		c.ids = append(c.ids, t.ID)
	}
	sort.Strings(c.ids)
	return c, nil
}

// Text returns the text with the given id.
func (c *Corpus) Text(id string) (Text, bool) {
	if c == nil {
		return Text{}, false
	}
	t, ok := c.texts[id]
	return t, ok
}

// Texts returns all texts ordered by id.
func (c *Corpus) Texts() []Text {
	if c == nil {
		return nil
	}
	out := make([]Text, len(c.ids))
	for i, id := range c.ids {
		out[i] = c.texts[id]
	}
	return out
}

// Len returns the number of texts.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// DuplicateTextError reports a text id that occurs more than once.
type DuplicateTextError struct {
	ID string
}

// Error implements the error interface.
func (e *DuplicateTextError) Error() string {
	return fmt.Sprintf("duplicate text id %q", e.ID)
}

// Unwrap allows errors.Is(err, ErrDuplicateText).
func (e *DuplicateTextError) Unwrap() error {
	return ErrDuplicateText
}

// CorpusLoader loads the corpus from its static source.
type CorpusLoader interface {
	Load(ctx context.Context) (*Corpus, error)
}

// Viewer displays the corpus and blocks until the reader exits.
type Viewer interface {
	View(ctx context.Context, corpus *Corpus) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// BodyRenderer renders annotation bodies and text context notes for a
// given display width.
type BodyRenderer interface {
	Render(body string, width int) (string, error)
}
