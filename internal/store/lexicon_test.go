package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLexicon(t *testing.T) {
	data := "cat 0 4\ndog 20 6\n"
	lex, err := LoadLexicon(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())

	e, err := lex.Lookup("cat")
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.InvListPos)
	assert.Equal(t, int64(4), e.MetadataSize)
}

func TestLexiconLookupMiss(t *testing.T) {
	lex, err := LoadLexicon(strings.NewReader("cat 0 4\n"))
	require.NoError(t, err)
	_, err = lex.Lookup("zebra")
	assert.ErrorIs(t, err, ErrMissingTerm)
}
