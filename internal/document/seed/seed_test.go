package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sample = `
documents:
  - title: Alpha Document
    content: Hello World
    author: {id: "1", name: Author A}
    created: "2024-05-01T10:00:00Z"
  - id: keep-me
    title: ""
  - content: only content
`

func TestDecode(t *testing.T) {
	docs, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, docs, 3)

	first := docs[0]
	require.Empty(t, first.ID)
	require.Equal(t, "Alpha Document", *first.Title)
	require.Equal(t, "Hello World", *first.Content)
	require.Equal(t, "1", first.Author.ID)
	require.Equal(t, "Author A", first.Author.Name)
	require.True(t, first.Created.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))

	// an explicit empty title is present, missing keys are absent
	second := docs[1]
	require.Equal(t, "keep-me", second.ID)
	require.NotNil(t, second.Title)
	require.Empty(t, *second.Title)
	require.Nil(t, second.Content)
	require.Nil(t, second.Author)
	require.Nil(t, second.Created)

	require.Nil(t, docs[2].Title)
	require.Equal(t, "only content", *docs[2].Content)
}

func TestDecodeEmptyInput(t *testing.T) {
	docs, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestDecodeInvalidCreated(t *testing.T) {
	_, err := Decode(strings.NewReader("documents:\n  - title: x\n  - created: \"yesterday\"\n"))
	require.ErrorIs(t, err, ErrInvalidCreated)
	require.Contains(t, err.Error(), "seed entry 1")
}

func TestDecodeMalformedYAML(t *testing.T) {
	_, err := Decode(strings.NewReader("documents: [unterminated"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	docs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
