// Package wordcountlib counts the words of a text file into a frequency table and
// writes the table out as "(word count)" tokens
package wordcountlib

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"goWordCount/configlib"
	"goWordCount/freqtablelib"
	"goWordCount/iolib"
	"goWordCount/tokenlib"
)

// Counter accumulates word frequencies
type Counter struct {
	table     *freqtablelib.Table
	tokenizer *tokenlib.Tokenizer
	log       *logrus.Entry
	numTokens int
}

// New creates a counter with an empty table sized and filtered as cfg says
func New(cfg configlib.Config, logger *logrus.Logger) *Counter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Counter{
		table: freqtablelib.New(
			freqtablelib.WithInitialSize(cfg.InitialTableSize),
			freqtablelib.WithMaxListSize(cfg.MaxListSize),
		),
		tokenizer: tokenlib.New(tokenlib.Options{
			DropNumeric: cfg.DropNumeric,
			Stopwords:   cfg.Stopwords,
			Stem:        cfg.Stem,
		}),
		log: logger.WithField("component", "counter"),
	}
}

// AddWord counts one occurrence of an already tokenized word
func (c *Counter) AddWord(word string) {
	c.numTokens++
	if c.table.Search(word) > 0 {
		if err := c.table.IncrementFrequency(word); err != nil {
			// Search found the word and nothing ran since, so this is a broken table
			panic(err)
		}
		return
	}
	c.table.Insert(word, 1)
}

// AddLine tokenizes a line and counts its words
func (c *Counter) AddLine(line string) {
	for _, word := range c.tokenizer.Tokens(line) {
		c.AddWord(word)
	}
}

// ReadFrom counts every line of r
func (c *Counter) ReadFrom(r io.Reader) (int64, error) {
	n, err := iolib.EachLine(r, c.AddLine)
	c.log.WithFields(logrus.Fields{
		"bytes":  n,
		"tokens": c.numTokens,
		"words":  c.table.NumWords(),
		"size":   c.table.Size(),
	}).Debug("input counted")

	return n, err
}

// WriteTo writes one "(word count)" token per distinct word, in table order and
// without separators
func (c *Counter) WriteTo(w io.Writer) (int64, error) {
	return writeTable(w, c.table)
}

func writeTable(w io.Writer, table *freqtablelib.Table) (int64, error) {
	var total int64
	e := table.Elements()
	for e.Next() {
		n, err := fmt.Fprintf(w, "(%s %d)", e.Word(), table.Search(e.Word()))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, e.Err()
}

// Table exposes the underlying frequency table
func (c *Counter) Table() *freqtablelib.Table {
	return c.table
}

// NumTokens returns how many words were counted, repeats included
func (c *Counter) NumTokens() int {
	return c.numTokens
}

// Stats returns the table statistics
func (c *Counter) Stats() freqtablelib.Stats {
	return c.table.Stats()
}

// StemCacheSize returns the number of distinct words stemmed so far
func (c *Counter) StemCacheSize() int {
	return c.tokenizer.StemCacheSize()
}
