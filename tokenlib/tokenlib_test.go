package tokenlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"The cat sat. The dog ran!", []string{"the", "cat", "sat", "the", "dog", "ran"}},
		{"don't stop-me now", []string{"don", "t", "stop", "me", "now"}},
		{"...!!!", nil},
		{"(a)\t[b]{c}", []string{"a", "b", "c"}},
		{"x+y=z|w~v^u`t$s<r>q", []string{"x", "y", "z", "w", "v", "u", "t", "s", "r", "q"}},
		{"3.14 and 42", []string{"3", "14", "and", "42"}},
		{"Ñandú ÉCOLE", []string{"ñandú", "école"}},
		{"“quoted”", []string{"“quoted”"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.input), "Split(%q)", tt.input)
	}
}

func TestTokensNoFilters(t *testing.T) {
	tok := New(Options{})
	assert.Equal(t, []string{"hello", "world", "2020"}, tok.Tokens("Hello, World! 2020"))
	assert.Equal(t, 0, tok.StemCacheSize())
}

func TestTokensDropNumeric(t *testing.T) {
	tok := New(Options{DropNumeric: true})
	assert.Equal(t, []string{"covid", "cases"}, tok.Tokens("covid 19 cases 2020"))
}

func TestTokensStopwords(t *testing.T) {
	tok := New(Options{Stopwords: []string{"The", "of"}})
	assert.Equal(t, []string{"history", "rome"}, tok.Tokens("The history of Rome"))
}

func TestTokensStem(t *testing.T) {
	tok := New(Options{Stem: true})
	assert.Equal(t, []string{"the", "cat", "are", "run"}, tok.Tokens("The cats are running"))
	assert.Equal(t, []string{"cat"}, tok.Tokens("cats"))
	assert.Equal(t, 4, tok.StemCacheSize())
}
