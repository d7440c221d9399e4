package folio

import "strings"

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Category is a named grouping of texts.
type Category struct {
	Key  string
	Name string
}

// Categories lists the known categories in display order.
var Categories = []Category{
	{Key: CategoryAll, Name: "すべて"},
	{Key: "baudelaire_aesthetics", Name: "ボードレール美学"},
	{Key: "baudelaire_music", Name: "ボードレール音楽論"},
	{Key: "baudelaire_modernity", Name: "ボードレール近代性"},
	{Key: "mallarme_poetics", Name: "マラルメ詩学"},
	{Key: "mallarme_book", Name: "マラルメ書物論"},
	{Key: "mallarme_representation", Name: "マラルメ表象論"},
	{Key: "mallarme_culture", Name: "マラルメ文化論"},
	{Key: "mallarme_music", Name: "マラルメ音楽論"},
	{Key: "mallarme_theatre", Name: "マラルメ演劇・表象論"},
	{Key: "valery", Name: "ヴァレリー"},
	{Key: "verlaine", Name: "ヴェルレーヌ"},
	{Key: "hofmannsthal", Name: "ホフマンスタール"},
}

// CategoryName returns the display name for key, or key itself when unknown.
func CategoryName(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Name
		}
	}
	return key
}

// FilterTexts returns the texts matching both the category and the search
// query. An empty category or CategoryAll matches every text; a blank query
// matches every text. Matching is a case-insensitive substring test against
// title, author, keywords and the paragraphs' original and translated text.
func FilterTexts(texts []Text, category, query string) []Text {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Text
	for _, t := range texts {
		if category != "" && category != CategoryAll && t.Category != category {
			continue
		}
		if q != "" && !matchesQuery(t, q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t Text, q string) bool {
	if contains(t.Title, q) || contains(t.Author, q) {
		return true
	}
	for _, k := range t.Keywords {
		if contains(k, q) {
			return true
		}
	}
	for _, p := range t.Paragraphs {
		if contains(p.OriginalText, q) || contains(p.Translation, q) || contains(p.OfficialTranslation, q) {
			return true
		}
	}
	return false
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
