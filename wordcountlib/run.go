package wordcountlib

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/sirupsen/logrus"

	"goWordCount/configlib"
	"goWordCount/corpuslib"
	"goWordCount/freqtablelib"
	"goWordCount/iolib"
)

// Run failures fall in one of these two categories
var (
	ErrInput  = errors.New("input error")
	ErrOutput = errors.New("output error")
)

/***************************************************************************************************************
****************************************************************************************************************
* PIPELINE *****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Run reads inputPath, counts its words and writes them to outputPath, plus the
// optional reports cfg asks for. The input is consumed entirely before anything
// is written. Errors wrap ErrInput or ErrOutput.
func Run(cfg configlib.Config, inputPath, outputPath string, logger *logrus.Logger) (freqtablelib.Stats, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithFields(logrus.Fields{"input": inputPath, "output": outputPath})

	// Step 1: read and count
	raw, err := iolib.File2string(inputPath)
	if err != nil {
		return freqtablelib.Stats{}, fmt.Errorf("%w: %v", ErrInput, err)
	}

	text := raw
	var links *freqtablelib.Table
	if isHTML(cfg.HTML, inputPath) {
		if cfg.LinksOutput != "" {
			links = freqtablelib.New()
			n := countLinkDomains(raw, links)
			log.WithFields(logrus.Fields{"links": n, "domains": links.NumWords()}).Debug("links collected")
		}
		if text, err = htmlToText(raw); err != nil {
			return freqtablelib.Stats{}, fmt.Errorf("%w: html2text: %v", ErrInput, err)
		}
	}

	if cfg.Stem {
		lang := detectLanguage(text)
		log.WithField("language", lang).Info("language detected")
		if !isEnglish(lang) {
			log.Warn("stemming disabled, the stemmer only knows English")
			cfg.Stem = false
		}
	}

	c := New(cfg, logger)
	if _, err := c.ReadFrom(strings.NewReader(text)); err != nil {
		return freqtablelib.Stats{}, fmt.Errorf("%w: %v", ErrInput, err)
	}

	var entities *freqtablelib.Table
	if cfg.EntitiesOutput != "" {
		entities = freqtablelib.New()
		if err := countEntities(text, entities); err != nil {
			return freqtablelib.Stats{}, fmt.Errorf("%w: entity extraction: %v", ErrInput, err)
		}
	}

	if cfg.Baseline != "" {
		baseline := freqtablelib.New()
		if err := corpuslib.Load(cfg.Baseline, baseline); err != nil {
			return freqtablelib.Stats{}, fmt.Errorf("%w: baseline: %v", ErrInput, err)
		}
		log.WithFields(logrus.Fields{
			"baseline": baseline.NumWords(),
			"novel":    novelWords(c.Table(), baseline),
		}).Info("compared against baseline corpus")
	}

	// Step 2: write
	if cfg.Backup && iolib.FileExists(outputPath) {
		if err := iolib.CopyFileContents(outputPath, outputPath+".bak"); err != nil {
			return freqtablelib.Stats{}, fmt.Errorf("%w: backup: %v", ErrOutput, err)
		}
	}

	if err := writeFile(outputPath, func(w io.Writer) error {
		_, err := c.WriteTo(w)
		return err
	}); err != nil {
		return freqtablelib.Stats{}, fmt.Errorf("%w: %v", ErrOutput, err)
	}

	if cfg.RankedOutput != "" {
		if err := writeRanked(cfg.RankedOutput, c.Table()); err != nil {
			return freqtablelib.Stats{}, fmt.Errorf("%w: ranked: %v", ErrOutput, err)
		}
	}
	if links != nil {
		if err := writeTokens(cfg.LinksOutput, links); err != nil {
			return freqtablelib.Stats{}, fmt.Errorf("%w: links: %v", ErrOutput, err)
		}
	}
	if entities != nil {
		if err := writeRanked(cfg.EntitiesOutput, entities); err != nil {
			return freqtablelib.Stats{}, fmt.Errorf("%w: entities: %v", ErrOutput, err)
		}
	}

	// Step 3: stats
	stats := c.Stats()
	log.WithFields(logrus.Fields{
		"tokens":  c.NumTokens(),
		"words":   stats.NumWords,
		"size":    stats.Size,
		"avgList": stats.AverageListLength,
		"maxList": stats.LongestList,
		"stems":   c.StemCacheSize(),
	}).Info("word count done")
	if cfg.Debug {
		goDebug.Print("stats", stats)
	}

	return stats, nil
}

// Outcome renders the result of Run as one of the three report lines
func Outcome(stats freqtablelib.Stats, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("OK; Total Words: %d, Hash Table Size: %d, Average length of collision lists: %d",
			stats.NumWords, stats.Size, stats.AverageListLength)
	case errors.Is(err, ErrOutput):
		return "Error writing to output file"
	default:
		return "Input Error"
	}
}

func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := iolib.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// writeTokens writes a table in "(key count)" format
func writeTokens(path string, table *freqtablelib.Table) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := writeTable(w, table)
		return err
	})
}

func writeRanked(path string, table *freqtablelib.Table) error {
	return writeFile(path, func(w io.Writer) error {
		return corpuslib.WriteRanked(w, corpuslib.Ranked(table))
	})
}

// novelWords counts the words of table missing from baseline
func novelWords(table, baseline *freqtablelib.Table) int {
	n := 0
	for w := range table.Elements().Seq() {
		if baseline.Search(w) == 0 {
			n++
		}
	}

	return n
}
