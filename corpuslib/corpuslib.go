// Package corpuslib reads and writes word frequency lists in the British National Corpus
// all.num layout ("numTotal word POStagging numDocs", one word per line),
// see http://www.kilgarriff.co.uk/BNClists/all.num.gz
package corpuslib

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"goWordCount/freqtablelib"
	"goWordCount/iolib"
)

// WordCount is one row of a ranked list
type WordCount struct {
	Word  string
	Count int
}

// Load adds every word of the corpus file to table with its total count. The BNC
// lists a word once per POS tag; only the first (most frequent) line is kept.
func Load(path string, table *freqtablelib.Table) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	numLine := 0
	var parseErr error
	_, err = iolib.EachLine(file, func(l string) {
		numLine++
		if parseErr != nil || strings.TrimSpace(l) == "" {
			return
		}

		var word, POStagging string
		var numTotal, numDocs int
		if _, err := fmt.Sscanf(l, "%d %s %s %d", &numTotal, &word, &POStagging, &numDocs); err != nil {
			parseErr = fmt.Errorf("%s:%d: %w", path, numLine, err)
			return
		}

		if numTotal > 0 && table.Search(word) == 0 {
			table.Insert(word, numTotal)
		}
	})
	if err != nil {
		return err
	}

	return parseErr
}

// Ranked lists the table by decreasing count, ties by decreasing word
func Ranked(table *freqtablelib.Table) []WordCount {
	ss := make([]WordCount, 0, table.NumWords())
	for w := range table.Elements().Seq() {
		ss = append(ss, WordCount{w, table.Search(w)})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count == ss[j].Count {
			return ss[i].Word > ss[j].Word
		}
		return ss[i].Count > ss[j].Count
	})

	return ss
}

// WriteRanked saves a ranked list in all.num format, with no POS tag nor document count
func WriteRanked(w io.Writer, ranked []WordCount) error {
	for _, wc := range ranked {
		if _, err := fmt.Fprintf(w, "%d %s %s %d\n", wc.Count, wc.Word, "none", 0); err != nil {
			return err
		}
	}

	return nil
}
