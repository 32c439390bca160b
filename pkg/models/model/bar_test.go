package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewBar(&buf, 4, "games", false)
	bar.Add(1)
	bar.Add(1)
	assert.Contains(t, buf.String(), "games")
	assert.Contains(t, buf.String(), "2/4")

	require.NoError(t, bar.Close())
	assert.Contains(t, buf.String(), "4/4")
}
