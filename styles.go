package folio

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the reading view.
type Styles struct {
	Title           ColorPair // Text title in the header
	Meta            ColorPair // Author, source and counts
	Context         ColorPair // Editorial context block
	ParagraphLabel  ColorPair // Paragraph id badge
	Original        ColorPair // Original-language text
	Translation     ColorPair // Provisional or official translation
	UserTranslation ColorPair // The reader's own translation
	Anchor          ColorPair // Annotated phrase
	AnchorActive    ColorPair // Annotated phrase with focus
	Card            ColorPair // Annotation card
	CardActive      ColorPair // Annotation card whose anchor has focus
	Intertext       ColorPair // Inline preview of a cited text
	Selected        ColorPair // Cursor row
}

// Palette holds the semantic colors used for chrome outside the text.
type Palette struct {
	Background   string
	Foreground   string
	Muted        string
	Accent       string
	Warning      string
	UIBackground string
	UIForeground string
}

// Theme provides styles for the reading view.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
