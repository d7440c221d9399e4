package folio

import "strings"

// SpanKind distinguishes plain text from annotated phrases.
type SpanKind int

// Span kinds.
const (
	SpanPlain SpanKind = iota
	SpanAnchor
)

// Span is a run of text within a single line of a paragraph.
type Span struct {
	Text       string
	Kind       SpanKind
	Annotation *Annotation // set for SpanAnchor
	Index      int         // position of Annotation in the input slice, -1 for plain spans
}

// Line is one line of a paragraph partitioned into spans.
type Line []Span

// String returns the line's text with all spans concatenated.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// ResolveSpans partitions text into lines of plain and anchored spans.
//
// Lines are processed independently, so an anchor never spans a line break.
// Annotations are applied in the order given: each one wraps the leftmost
// occurrence of its anchor inside a span that is still plain. When two
// anchors overlap, the earlier annotation wins and the later one can only
// match elsewhere in the line. Annotations whose anchor is not found produce
// no span.
func ResolveSpans(text string, annotations []Annotation) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, len(rawLines))
	for i, raw := range rawLines {
		lines[i] = resolveLine(raw, annotations)
	}
	return lines
}

func resolveLine(raw string, annotations []Annotation) Line {
	spans := Line{{Text: raw, Kind: SpanPlain, Index: -1}}
	for i := range annotations {
		anchor := annotations[i].Anchor
		if anchor == "" {
			continue
		}
		for j, span := range spans {
			if span.Kind != SpanPlain {
				continue
			}
			pos := strings.Index(span.Text, anchor)
			if pos < 0 {
				continue
			}
			a := annotations[i]
			split := []Span{
				{Text: span.Text[:pos], Kind: SpanPlain, Index: -1},
				{Text: anchor, Kind: SpanAnchor, Annotation: &a, Index: i},
				{Text: span.Text[pos+len(anchor):], Kind: SpanPlain, Index: -1},
			}
			next := make(Line, 0, len(spans)+2)
			next = append(next, spans[:j]...)
			next = append(next, split...)
			next = append(next, spans[j+1:]...)
			spans = next
			break
		}
	}
	return spans
}

// AnchoredIndices returns the positions of annotations whose anchor was
// placed somewhere in text.
func AnchoredIndices(text string, annotations []Annotation) map[int]bool {
	placed := make(map[int]bool)
	for _, line := range ResolveSpans(text, annotations) {
		for _, s := range line {
			if s.Kind == SpanAnchor {
				placed[s.Index] = true
			}
		}
	}
	return placed
}
