// Package tokenlib splits lines of text into lower-cased words
package tokenlib

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
	"github.com/patrickmn/go-cache"

	"goWordCount/stringlib"
)

// Options selects the optional token filters. The zero value only splits and lower-cases.
type Options struct {
	DropNumeric bool     // drop tokens that parse as numbers
	Stopwords   []string // dropped after lower-casing
	Stem        bool     // snowball English stemming
}

// Tokenizer converts text into a list of tokens
type Tokenizer struct {
	opts      Options
	stopwords map[string]struct{}
	stems     *cache.Cache
}

// New creates a tokenizer
func New(opts Options) *Tokenizer {
	t := &Tokenizer{opts: opts}
	if len(opts.Stopwords) > 0 {
		t.stopwords = make(map[string]struct{}, len(opts.Stopwords))
		for _, w := range opts.Stopwords {
			t.stopwords[strings.ToLower(w)] = struct{}{}
		}
	}
	if opts.Stem {
		// no expiration, no janitor
		t.stems = cache.New(cache.NoExpiration, 0)
	}

	return t
}

// asciiPunct is the POSIX [:punct:] class
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isPunct(r rune) bool {
	return strings.ContainsRune(asciiPunct, r)
}

// Split breaks a line on whitespace, then breaks every fragment on punctuation,
// discarding empty pieces and lower-casing the rest. No filter is applied.
func Split(line string) []string {
	var tokens []string
	for _, fragment := range strings.FieldsFunc(line, unicode.IsSpace) {
		for _, piece := range strings.FieldsFunc(fragment, isPunct) {
			tokens = append(tokens, strings.ToLower(piece))
		}
	}

	return tokens
}

// Tokens splits a line and applies the configured filters
func (t *Tokenizer) Tokens(line string) []string {
	tokens := Split(line)
	if !t.opts.DropNumeric && t.stopwords == nil && !t.opts.Stem {
		return tokens
	}

	r := tokens[:0]
	for _, token := range tokens {
		if t.opts.DropNumeric && stringlib.IsNumeric(token) {
			continue
		}
		if _, stop := t.stopwords[token]; stop {
			continue
		}
		if t.opts.Stem {
			token = t.stem(token)
		}
		r = append(r, token)
	}

	return r
}

func (t *Tokenizer) stem(token string) string {
	if s, found := t.stems.Get(token); found {
		return s.(string)
	}
	s := snowballeng.Stem(token, false)
	t.stems.Set(token, s, cache.NoExpiration)

	return s
}

// StemCacheSize returns the number of memoized stems
func (t *Tokenizer) StemCacheSize() int {
	if t.stems == nil {
		return 0
	}
	return t.stems.ItemCount()
}
