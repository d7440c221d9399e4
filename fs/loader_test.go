package fs_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/fwojciec/folio"
	"github.com/fwojciec/folio/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const valery = `{
  "id": "valery_crise",
  "title": "La Crise de l'esprit",
  "author": "Paul Valéry",
  "category": "valery",
  "paragraphs": [
    {"id": "p1", "originalText": "Nous autres, civilisations, nous savons maintenant que nous sommes mortelles."}
  ],
  "annotations": [
    {"paragraphId": "p1", "type": "glossary", "anchor": "civilisations", "body": "文明"}
  ]
}`

const mallarme = `{
  "mallarme_crise_vers": {
    "title": "Crise de vers",
    "author": "Stéphane Mallarmé",
    "paragraphs": [{"id": "p1", "french": "Je dis : une fleur !"}]
  },
  "mallarme_livre": {
    "id": "mallarme_livre",
    "title": "Le Livre, instrument spirituel",
    "paragraphs": [{"id": "p1", "originalText": "tout, au monde, existe pour aboutir à un livre."}]
  }
}`

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads single and bundled files recursively", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"valery/crise.json":    {Data: []byte(valery)},
			"mallarme/index.json":  {Data: []byte(mallarme)},
			"mallarme/README.md":   {Data: []byte("not a text")},
			"mallarme/notes.jsonc": {Data: []byte("{")},
		}

		corpus, err := fs.NewLoader(fsys).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, corpus.Len())

		text, ok := corpus.Text("valery_crise")
		require.True(t, ok)
		assert.Equal(t, "Paul Valéry", text.Author)
		require.Len(t, text.Annotations, 1)
		assert.Equal(t, folio.AnnotationGlossary, text.Annotations[0].Type)

		crise, ok := corpus.Text("mallarme_crise_vers")
		require.True(t, ok)
		assert.Equal(t, "Je dis : une fleur !", crise.Paragraphs[0].OriginalText)
	})

	t.Run("custom pattern restricts files", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"valery/crise.json":   {Data: []byte(valery)},
			"mallarme/index.json": {Data: []byte(mallarme)},
		}

		corpus, err := fs.NewLoader(fsys, fs.WithPattern("valery/*.json"), fs.WithConcurrency(1)).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, corpus.Len())
	})

	t.Run("malformed file is named in the error", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"valery/crise.json": {Data: []byte(valery)},
			"broken/bad.json":   {Data: []byte(`{"id": "x", "paragraphs": [`)},
		}

		_, err := fs.NewLoader(fsys).Load(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken/bad.json")
	})

	t.Run("duplicate ids across files are rejected", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"a.json": {Data: []byte(valery)},
			"b.json": {Data: []byte(valery)},
		}

		_, err := fs.NewLoader(fsys).Load(context.Background())

		assert.ErrorIs(t, err, folio.ErrDuplicateText)
	})

	t.Run("no files", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader(fstest.MapFS{}).Load(context.Background())

		assert.ErrorIs(t, err, folio.ErrNoTexts)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		fsys := fstest.MapFS{"a.json": {Data: []byte(valery)}}

		_, err := fs.NewLoader(fsys).Load(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("map entry id must match key", func(t *testing.T) {
		t.Parallel()

		_, err := fs.Decode([]byte(`{"a": {"id": "b", "paragraphs": []}}`))

		assert.Error(t, err)
	})

	t.Run("map entries are ordered by key", func(t *testing.T) {
		t.Parallel()

		texts, err := fs.Decode([]byte(mallarme))

		require.NoError(t, err)
		require.Len(t, texts, 2)
		assert.Equal(t, "mallarme_crise_vers", texts[0].ID)
		assert.Equal(t, "mallarme_livre", texts[1].ID)
	})

	t.Run("rejects non-object", func(t *testing.T) {
		t.Parallel()

		_, err := fs.Decode([]byte(`[]`))

		assert.Error(t, err)
	})
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	assert.Equal(t, "/tmp/xdg-data/folio", fs.DefaultDataDir())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	assert.Equal(t, "/tmp/xdg-config/folio/config.yaml", fs.DefaultConfigPath())
}
