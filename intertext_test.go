package folio_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/folio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCorpus(t *testing.T, texts ...folio.Text) *folio.Corpus {
	t.Helper()
	c, err := folio.NewCorpus(texts)
	require.NoError(t, err)
	return c
}

func TestResolve(t *testing.T) {
	t.Parallel()

	target := folio.Text{
		ID: "baudelaire_correspondances",
		Paragraphs: []folio.Paragraph{
			{ID: "q1", OriginalText: "La Nature est un temple"},
			{ID: "q2", OriginalText: "Comme de longs échos"},
		},
	}
	corpus := newCorpus(t, chanson(), target)

	t.Run("resolves a single target paragraph", func(t *testing.T) {
		t.Parallel()

		ref := folio.Resolve(folio.Annotation{
			Type:              folio.AnnotationIntertextual,
			TargetID:          "baudelaire_correspondances",
			TargetParagraphID: "q2",
		}, corpus)

		require.NotNil(t, ref)
		assert.Equal(t, "baudelaire_correspondances", ref.Text.ID)
		require.Len(t, ref.Paragraphs, 1)
		assert.Equal(t, "q2", ref.Paragraphs[0].ID)
	})

	t.Run("resolves the whole text without paragraph id", func(t *testing.T) {
		t.Parallel()

		ref := folio.Resolve(folio.Annotation{
			Type:     folio.AnnotationIntertextual,
			TargetID: "baudelaire_correspondances",
		}, corpus)

		require.NotNil(t, ref)
		assert.Equal(t, []string{"q1", "q2"}, []string{ref.Paragraphs[0].ID, ref.Paragraphs[1].ID})
	})

	t.Run("unknown paragraph yields empty list", func(t *testing.T) {
		t.Parallel()

		ref := folio.Resolve(folio.Annotation{
			Type:              folio.AnnotationIntertextual,
			TargetID:          "baudelaire_correspondances",
			TargetParagraphID: "q9",
		}, corpus)

		require.NotNil(t, ref)
		assert.NotNil(t, ref.Paragraphs)
		assert.Empty(t, ref.Paragraphs)
	})

	t.Run("unknown text yields nil", func(t *testing.T) {
		t.Parallel()

		ref := folio.Resolve(folio.Annotation{
			Type:     folio.AnnotationIntertextual,
			TargetID: "does_not_exist",
		}, corpus)

		assert.Nil(t, ref)
	})

	t.Run("non-intertextual annotation yields nil", func(t *testing.T) {
		t.Parallel()

		ref := folio.Resolve(folio.Annotation{
			Type:     folio.AnnotationGlossary,
			TargetID: "baudelaire_correspondances",
		}, corpus)

		assert.Nil(t, ref)
	})

	t.Run("nil source yields nil", func(t *testing.T) {
		t.Parallel()

		ref := folio.Resolve(folio.Annotation{
			Type:     folio.AnnotationIntertextual,
			TargetID: "baudelaire_correspondances",
		}, nil)

		assert.Nil(t, ref)
	})
}

func TestExpansionKey_Text(t *testing.T) {
	t.Parallel()

	t.Run("map keyed by expansion key marshals to JSON", func(t *testing.T) {
		t.Parallel()

		m := map[folio.ExpansionKey]bool{{ParagraphID: "p#1", Index: 2}: true}

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"p#1#2":true}`, string(data))

		var back map[folio.ExpansionKey]bool
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, m, back)
	})

	t.Run("rejects key without index", func(t *testing.T) {
		t.Parallel()

		var k folio.ExpansionKey
		assert.Error(t, k.UnmarshalText([]byte("p1")))
		assert.Error(t, k.UnmarshalText([]byte("p1#x")))
	})
}
