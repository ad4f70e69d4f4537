// counts the words of a text file into a chained hash table and writes the
// frequencies to an output file
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/sirupsen/logrus"

	"goWordCount/configlib"
	"goWordCount/wordcountlib"
)

// Exit codes
const (
	exitOK     = 0
	exitInput  = 1
	exitOutput = 2
	exitUsage  = 64
)

func newLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logger, err
	}
	logger.SetLevel(lvl)

	return logger, nil
}

func run(args []string) int {
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (default ./wordcount.yaml if present)")
	debug := fs.Bool("debug", false, "debug logging and stats dump")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: wordcount [options] <input> <output>\n\noptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := configlib.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if *debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if cfg.Debug {
		goDebug.Print("config", cfg)
	}

	stats, err := wordcountlib.Run(cfg, fs.Arg(0), fs.Arg(1), logger)
	fmt.Println(wordcountlib.Outcome(stats, err))

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, wordcountlib.ErrOutput):
		logger.WithError(err).Error("writing failed")
		return exitOutput
	default:
		logger.WithError(err).Error("reading failed")
		return exitInput
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}
