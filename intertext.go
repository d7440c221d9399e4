package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// Reference is the resolved target of an intertextual annotation.
type Reference struct {
	Text       Text
	Paragraphs []Paragraph
}

// Resolve looks up the text and paragraphs an intertextual annotation points
// at. It returns nil when the annotation is not intertextual or its target
// text does not exist. An unknown target paragraph yields a reference with
// no paragraphs.
func Resolve(a Annotation, source TextSource) *Reference {
	if !a.IsIntertextual() || source == nil {
		return nil
	}
	target, ok := source.Text(a.TargetID)
	if !ok {
		return nil
	}
	ref := &Reference{Text: target}
	if a.TargetParagraphID == "" {
		ref.Paragraphs = append([]Paragraph(nil), target.Paragraphs...)
		return ref
	}
	ref.Paragraphs = []Paragraph{}
	if p, ok := target.Paragraph(a.TargetParagraphID); ok {
		ref.Paragraphs = append(ref.Paragraphs, p)
	}
	return ref
}

// ExpansionKey identifies one annotation instance for inline expansion.
type ExpansionKey struct {
	ParagraphID string
	Index       int // position within the paragraph's annotations
}

// String returns the key in its "paragraph#index" form.
func (k ExpansionKey) String() string {
	return k.ParagraphID + "#" + strconv.Itoa(k.Index)
}

// MarshalText implements encoding.TextMarshaler so keyed maps stay
// JSON-serializable.
func (k ExpansionKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ExpansionKey) UnmarshalText(b []byte) error {
	s := string(b)
	i := strings.LastIndex(s, "#")
	if i < 0 {
		return fmt.Errorf("expansion key %q: missing index", s)
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return fmt.Errorf("expansion key %q: %w", s, err)
	}
	k.ParagraphID = s[:i]
	k.Index = n
	return nil
}
