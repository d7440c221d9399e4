package folio

import "strings"

// PreviewLength is the maximum number of runes shown in an index preview.
const PreviewLength = 48

// Ellipsis marks a truncated preview.
const Ellipsis = "…"

// AnnotationsFor returns the annotations attached to a paragraph, in the
// order they were authored.
func AnnotationsFor(text Text, paragraphID string) []Annotation {
	var out []Annotation
	for _, a := range text.Annotations {
		if a.ParagraphID == paragraphID {
			out = append(out, a)
		}
	}
	return out
}

// IndexEntry is one annotation listed in the global index.
type IndexEntry struct {
	Index      int // position within the paragraph's annotations
	Annotation Annotation
}

// IndexGroup lists the annotations of one paragraph in the global index.
// An empty ParagraphID collects annotations whose paragraph does not exist.
type IndexGroup struct {
	ParagraphID string
	Preview     string
	Entries     []IndexEntry
}

// BuildIndex groups every annotation of text by paragraph, in the order the
// paragraphs appear in the text.
func BuildIndex(text Text) []IndexGroup {
	known := make(map[string]bool, len(text.Paragraphs))
	var groups []IndexGroup
	for _, p := range text.Paragraphs {
		known[p.ID] = true
		anns := AnnotationsFor(text, p.ID)
		if len(anns) == 0 {
			continue
		}
		g := IndexGroup{ParagraphID: p.ID, Preview: Preview(p.OriginalText, PreviewLength)}
		for i, a := range anns {
			g.Entries = append(g.Entries, IndexEntry{Index: i, Annotation: a})
		}
		groups = append(groups, g)
	}

	var orphans IndexGroup
	for _, a := range text.Annotations {
		if !known[a.ParagraphID] {
			orphans.Entries = append(orphans.Entries, IndexEntry{Index: -1, Annotation: a})
		}
	}
	if len(orphans.Entries) > 0 {
		groups = append(groups, orphans)
	}
	return groups
}

// Preview returns the first line of s capped at limit runes, with an
// ellipsis appended when anything was cut.
func Preview(s string, limit int) string {
	first, rest, multi := strings.Cut(s, "\n")
	runes := []rune(first)
	if len(runes) > limit {
		return string(runes[:limit]) + Ellipsis
	}
	if multi && strings.TrimSpace(rest) != "" {
		return first + Ellipsis
	}
	return first
}
