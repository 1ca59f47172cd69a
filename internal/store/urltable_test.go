package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadURLTable(t *testing.T) {
	data := "0 http://a.example 11\n1 http://b.example 11\n2 http://c.example 9\n3 http://d.example 15\n"
	table, err := LoadURLTable(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), table.Size())

	e, ok := table.Get(3)
	require.True(t, ok)
	assert.Equal(t, "http://d.example", e.URL)
	assert.Equal(t, uint64(15), e.DocumentLen)

	assert.InDelta(t, (11.0+11.0+9.0+15.0)/4.0, table.AverageDocumentLength(), 1e-9)
}

func TestLoadURLTableOutOfRange(t *testing.T) {
	table, err := LoadURLTable(strings.NewReader("0 http://a.example 11\n"))
	require.NoError(t, err)
	_, ok := table.Get(5)
	assert.False(t, ok)
}

func TestLoadURLTableMalformedLine(t *testing.T) {
	_, err := LoadURLTable(strings.NewReader("not-a-docid url notalen\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
