package configlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "wordcount.yaml")
	require.NoError(t, os.WriteFile(name, []byte(body), 0644))
	return name
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 128, c.InitialTableSize)
	assert.Equal(t, 5, c.MaxListSize)
	assert.False(t, c.Stem)
	assert.False(t, c.DropNumeric)
	assert.Empty(t, c.Stopwords)
	assert.Equal(t, HTMLOff, c.HTML)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.RankedOutput)
}

func TestLoadNoFile(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	name := writeConfig(t, `
initialTableSize: 16
maxListSize: 3
stem: true
html: true
stopwords: >-
  the|a|an
  |of|to
rankedOutput: ranked.txt
logLevel: debug
`)
	c, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, 16, c.InitialTableSize)
	assert.Equal(t, 3, c.MaxListSize)
	assert.True(t, c.Stem)
	assert.Equal(t, HTMLOn, c.HTML)
	assert.Equal(t, []string{"the", "a", "an", "of", "to"}, c.Stopwords)
	assert.Equal(t, "ranked.txt", c.RankedOutput)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadStopwordList(t *testing.T) {
	c, err := Load(writeConfig(t, "stopwords: [the, of]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "of"}, c.Stopwords)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("WORDCOUNT_MAXLISTSIZE", "9")
	c, err := Load(writeConfig(t, "maxListSize: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, c.MaxListSize)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "maxListSize: [\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "initialTableSize: 0\n"))
	assert.EqualError(t, err, "initialTableSize must be positive, got 0")

	_, err = Load(writeConfig(t, "html: auto\n"))
	require.NoError(t, err)

	_, err = Load(writeConfig(t, "html: maybe\n"))
	assert.EqualError(t, err, `html must be auto, true or false, got "maybe"`)
}
