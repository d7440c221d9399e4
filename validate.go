package folio

import "fmt"

// ValidationReason identifies why an annotation is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrParagraphNotFound       ValidationReason = "paragraph_not_found"
	ErrAnchorNotFound          ValidationReason = "anchor_not_found"
	ErrTargetNotFound          ValidationReason = "target_not_found"
	ErrTargetParagraphNotFound ValidationReason = "target_paragraph_not_found"
)

// ValidationError describes a single problem with an annotation in the corpus.
type ValidationError struct {
	TextID     string
	Index      int // position of the annotation in the text's annotation list
	Annotation Annotation
	Reason     ValidationReason
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	a := e.Annotation
	switch e.Reason {
	case ErrParagraphNotFound:
		return fmt.Sprintf("%s: annotation %d: paragraph %q not found", e.TextID, e.Index, a.ParagraphID)
	case ErrAnchorNotFound:
		return fmt.Sprintf("%s: annotation %d: anchor %q not found in paragraph %q", e.TextID, e.Index, a.Anchor, a.ParagraphID)
	case ErrTargetNotFound:
		return fmt.Sprintf("%s: annotation %d: target text %q not found", e.TextID, e.Index, a.TargetID)
	case ErrTargetParagraphNotFound:
		return fmt.Sprintf("%s: annotation %d: paragraph %q not found in target text %q", e.TextID, e.Index, a.TargetParagraphID, a.TargetID)
	default:
		return fmt.Sprintf("%s: annotation %d: unknown error", e.TextID, e.Index)
	}
}

// ValidateCorpus checks that every annotation points at something that
// exists. The reader tolerates all of these problems; they are reported so
// editors can fix the data. Returns nil if the corpus is clean.
func ValidateCorpus(c *Corpus) []ValidationError {
	var errs []ValidationError
	for _, text := range c.Texts() {
		// Anchors are placed per paragraph, so resolve each paragraph once.
		placed := make(map[string]map[int]bool)
		position := make(map[string]int)
		for _, p := range text.Paragraphs {
			placed[p.ID] = AnchoredIndices(p.OriginalText, AnnotationsFor(text, p.ID))
		}

		for i, a := range text.Annotations {
			fail := func(reason ValidationReason) {
				errs = append(errs, ValidationError{TextID: text.ID, Index: i, Annotation: a, Reason: reason})
			}

			anchored, ok := placed[a.ParagraphID]
			if !ok {
				fail(ErrParagraphNotFound)
				continue
			}
			local := position[a.ParagraphID]
			position[a.ParagraphID]++
			if a.Anchor != "" && !anchored[local] {
				fail(ErrAnchorNotFound)
			}

			if !a.IsIntertextual() {
				continue
			}
			target, ok := c.Text(a.TargetID)
			if !ok {
				fail(ErrTargetNotFound)
				continue
			}
			if a.TargetParagraphID != "" {
				if _, ok := target.Paragraph(a.TargetParagraphID); !ok {
					fail(ErrTargetParagraphNotFound)
				}
			}
		}
	}
	return errs
}
