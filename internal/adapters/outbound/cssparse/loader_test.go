package cssparse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagekraft/pagekraft/internal/adapters/outbound/cssparse"
)

const sampleSheet = `* {
  box-sizing: border-box;
}

.hero, .card {
  Color: #333333;
  padding: 24px;
}

@media (min-width: 768px) {
  main {
    max-width: 960px;
  }
}
`

func TestParseSheet(t *testing.T) {
	loader := cssparse.New()
	set, err := loader.ParseSheet(sampleSheet)
	require.NoError(t, err)
	require.Len(t, set, 3)

	assert.Equal(t, "*", set[0].Selector)
	v, ok := set[0].Declaration("box-sizing")
	assert.True(t, ok)
	assert.Equal(t, "border-box", v)

	// Multi-selector rules keep the full selector list; property names are
	// lowercased.
	assert.Equal(t, ".hero, .card", set[1].Selector)
	_, ok = set[1].Declaration("color")
	assert.True(t, ok)
	assert.Empty(t, set[1].MediaQuery)
}

func TestParseSheet_MediaBlocksFlatten(t *testing.T) {
	loader := cssparse.New()
	set, err := loader.ParseSheet(sampleSheet)
	require.NoError(t, err)

	inner := set[2]
	assert.Equal(t, "main", inner.Selector)
	assert.Equal(t, "(min-width: 768px)", inner.MediaQuery)
	v, _ := inner.Declaration("max-width")
	assert.Equal(t, "960px", v)
}

func TestLoad_ConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("body { margin: 0; }"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.css"), []byte("p { color: red; }"), 0644))

	loader := cssparse.New()
	set, err := loader.Load([]string{filepath.Join(dir, "a.css"), filepath.Join(dir, "b.css")})
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "body", set[0].Selector)
	assert.Equal(t, "p", set[1].Selector)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := cssparse.New()
	_, err := loader.Load([]string{filepath.Join(t.TempDir(), "missing.css")})
	assert.ErrorContains(t, err, "reading stylesheet")
}
